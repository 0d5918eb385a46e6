package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/storage"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load(configs.GetEnv("FIXTURE_CONFIG"))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger, err := configs.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer func() { _ = logger.Sync() }()

	doc, seed, err := service.GenerateFromConfig(cfg.Generator, 0, logger)
	if err != nil {
		logger.Fatal("❌ generation failed", zap.Error(err))
	}

	if err := storage.WriteDocument(cfg.Output.Path, doc); err != nil {
		logger.Fatal("❌ write failed", zap.Error(err))
	}

	sum := service.Summarize(doc)
	logger.Info("✅ fixture written",
		zap.String("path", cfg.Output.Path),
		zap.Int64("seed", seed),
		zap.Int("students", sum.Students),
		zap.Int("class_records", sum.ClassRecords),
	)
	fmt.Printf("Sample data generated successfully in '%s'\n", cfg.Output.Path)
}
