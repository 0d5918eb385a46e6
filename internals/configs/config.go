package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// CONFIG
// =======================

type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Server    ServerConfig    `mapstructure:"server"`
}

type OutputConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// GeneratorConfig holds the fixture constants. Defaults reproduce the stock fixture.
type GeneratorConfig struct {
	Seed               int64   `mapstructure:"seed"` // 0 = seed from the clock
	WindowDays         int     `mapstructure:"window_days" validate:"gte=1,lte=366"`
	PresenceRate       float64 `mapstructure:"presence_rate" validate:"gte=0,lte=1"`
	FlatMin            int     `mapstructure:"flat_min" validate:"gte=0"`
	FlatMax            int     `mapstructure:"flat_max" validate:"gtefield=FlatMin"`
	StreamMin          int     `mapstructure:"stream_min" validate:"gte=0"`
	StreamMax          int     `mapstructure:"stream_max" validate:"gtefield=StreamMin"`
	RegistrationPrefix string  `mapstructure:"registration_prefix" validate:"required,numeric"`
	Timezone           string  `mapstructure:"timezone"`
	BackdateTimestamps bool    `mapstructure:"backdate_timestamps"`
	MarkedTime         string  `mapstructure:"marked_time" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// DatabaseConfig is only needed by the seeder.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN builds a postgres URL.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type SeedConfig struct {
	DefaultPassword string `mapstructure:"default_password"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port" validate:"gte=1,lte=65535"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

var validate = validator.New()

// Load reads defaults, then the config file, then FIXTURE_* env vars (highest priority).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output.path", "sample_data.json")

	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.window_days", 7)
	v.SetDefault("generator.presence_rate", 0.9)
	v.SetDefault("generator.flat_min", 25)
	v.SetDefault("generator.flat_max", 30)
	v.SetDefault("generator.stream_min", 15)
	v.SetDefault("generator.stream_max", 20)
	v.SetDefault("generator.registration_prefix", "2024")
	v.SetDefault("generator.timezone", "Local")
	v.SetDefault("generator.backdate_timestamps", false)
	v.SetDefault("generator.marked_time", "08:00:00")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "attendance")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("seed.default_password", "changeme123")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.allow_origins", []string{"http://localhost:5173"})

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FIXTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags and reports every failing field at once.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
