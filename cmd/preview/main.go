// Command preview serves a generated fixture over HTTP for UI development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	fixtureCtrl "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/controller"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/storage"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/taxonomy"
	helper "github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers"
	middlewares "github.com/Cortana-Devs/SL-SchoolAttendance/internals/middlewares"
	routes "github.com/Cortana-Devs/SL-SchoolAttendance/internals/route"
)

func main() {
	configPath := flag.String("config", "", "config file")
	file := flag.String("file", "", "fixture JSON to serve (default output.path; generated in memory if missing)")
	flag.Parse()

	configs.LoadEnv()
	cfg, err := configs.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	logger, err := configs.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer func() { _ = logger.Sync() }()

	regenerate := func(seed int64) (*model.Document, error) {
		doc, used, err := service.GenerateFromConfig(cfg.Generator, seed, logger)
		if err == nil {
			logger.Info("🔁 fixture regenerated", zap.Int64("seed", used))
		}
		return doc, err
	}

	path := *file
	if path == "" {
		path = cfg.Output.Path
	}
	doc, err := storage.ReadDocument(path)
	if errors.Is(err, constants.ErrDocumentNotFound) {
		logger.Warn("⚠️ fixture not found, generating in memory", zap.String("file", path))
		doc, err = regenerate(0)
	}
	if err != nil {
		logger.Fatal("❌ fixture unavailable", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
	})
	middlewares.SetupMiddlewares(app, cfg)

	ctl := fixtureCtrl.NewFixtureController(doc, taxonomy.Default(), regenerate)
	routes.SetupRoutes(app, ctl, logger)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port)
	go func() {
		logger.Info("✅ Listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}
