package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sample_data.json", cfg.Output.Path)
	assert.Equal(t, 7, cfg.Generator.WindowDays)
	assert.InDelta(t, 0.9, cfg.Generator.PresenceRate, 1e-9)
	assert.Equal(t, 25, cfg.Generator.FlatMin)
	assert.Equal(t, 30, cfg.Generator.FlatMax)
	assert.Equal(t, 15, cfg.Generator.StreamMin)
	assert.Equal(t, 20, cfg.Generator.StreamMax)
	assert.Equal(t, "2024", cfg.Generator.RegistrationPrefix)
	assert.Equal(t, "08:00:00", cfg.Generator.MarkedTime)
	assert.False(t, cfg.Generator.BackdateTimestamps)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIXTURE_GENERATOR_SEED", "42")
	t.Setenv("FIXTURE_OUTPUT_PATH", "out/fixture.json")
	t.Setenv("FIXTURE_GENERATOR_BACKDATE_TIMESTAMPS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, "out/fixture.json", cfg.Output.Path)
	assert.True(t, cfg.Generator.BackdateTimestamps)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.yaml")
	body := []byte("generator:\n  window_days: 14\n  flat_min: 5\n  flat_max: 6\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Generator.WindowDays)
	assert.Equal(t, 5, cfg.Generator.FlatMin)
	assert.Equal(t, 6, cfg.Generator.FlatMax)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidRange(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIXTURE_GENERATOR_FLAT_MIN", "31")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FlatMax")
}

func TestLoad_InvalidPresenceRate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIXTURE_GENERATOR_PRESENCE_RATE", "1.5")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PresenceRate")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FIXTURE_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("FIXTURE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FIXTURE_TEST_MISSING", "fallback"))
	assert.Equal(t, "", GetEnv("FIXTURE_TEST_MISSING"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgresql://u:p@db:5433/n?sslmode=disable", c.DSN())
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger(LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}
