package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
)

// GenerateFromConfig builds a document from config. A non-zero seed overrides cfg.Seed.
// It returns the seed actually used.
func GenerateFromConfig(cfg configs.GeneratorConfig, seed int64, log *zap.Logger) (*model.Document, int64, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, 0, err
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	g, used := NewSeededGenerator(opts, seed, time.Now, log)
	if log != nil {
		log.Debug("generator seeded", zap.Int64("seed", used))
	}
	doc, err := g.Generate()
	if err != nil {
		return nil, used, err
	}
	return doc, used, nil
}
