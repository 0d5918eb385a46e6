// Command seed loads a generated fixture into PostgreSQL.
package main

import (
	"errors"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	database "github.com/Cortana-Devs/SL-SchoolAttendance/internals/databases"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/storage"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/seeds"
)

func main() {
	configPath := flag.String("config", "", "config file (default ./config/config.yaml or ./config.yaml)")
	file := flag.String("file", "", "fixture JSON to load (default output.path; generated if missing)")
	skipMigrate := flag.Bool("skip-migrate", false, "do not run AutoMigrate")
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

	path := *file
	if path == "" {
		path = cfg.Output.Path
	}

	doc, err := loadOrGenerate(path, cfg, logger)
	if err != nil {
		logger.Fatal("❌ fixture unavailable", zap.Error(err))
	}

	db, err := database.ConnectDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("❌ database", zap.Error(err))
	}
	defer database.Close(db)

	if err := seeds.RunAllSeeds(db, doc, seeds.Options{
		UserPassword: cfg.Seed.DefaultPassword,
		SkipMigrate:  *skipMigrate,
	}, logger); err != nil {
		logger.Fatal("❌ seeding failed", zap.Error(err))
	}
	logger.Info("✅ seeding finished", zap.String("file", path))
}

func loadOrGenerate(path string, cfg *configs.Config, logger *zap.Logger) (*model.Document, error) {
	logger.Info("📥 reading fixture", zap.String("file", path))
	doc, err := storage.ReadDocument(path)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, constants.ErrDocumentNotFound) {
		return nil, err
	}

	logger.Warn("⚠️ fixture not found, generating a fresh one", zap.String("file", path))
	doc, _, err = service.GenerateFromConfig(cfg.Generator, 0, logger)
	if err != nil {
		return nil, err
	}
	if err := storage.WriteDocument(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
