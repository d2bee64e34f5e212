package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingDatabaseURL = errors.New("database.url is required for postgres storage")
	ErrInvalidStorage     = errors.New("storage must be 'memory' or 'postgres'")
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string    `mapstructure:"env"`     // application environment (local, production)
	Port      string    `mapstructure:"port"`    // HTTP listen port
	Storage   string    `mapstructure:"storage"` // memory or postgres
	DB        DB        `mapstructure:"database"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
	CORS      CORS      `mapstructure:"cors"`
	Generator Generator `mapstructure:"generator"`
	Tests     Tests     `mapstructure:"tests"`
}

type DB struct {
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// RateLimit allows Requests per client IP in every Window.
type RateLimit struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Generator.Seed of 0 means an unseeded, non-reproducible source.
type Generator struct {
	Seed uint64 `mapstructure:"seed"`
}

type Tests struct {
	MaxQuestions int           `mapstructure:"max_questions"`
	TTL          time.Duration `mapstructure:"ttl"` // 0 keeps tests forever (memory storage only)
}

// Load reads an optional .env file, an optional config/config.yaml and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.CORS.AllowedOrigins = splitList(strings.Join(cfg.CORS.AllowedOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "15m")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("generator.seed", 0)
	v.SetDefault("tests.max_questions", 50)
	v.SetDefault("tests.ttl", "24h")
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.URL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStorage, c.Storage)
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit needs positive requests and window, got %d per %s", c.RateLimit.Requests, c.RateLimit.Window)
	}
	if c.Tests.MaxQuestions < 1 {
		return fmt.Errorf("tests.max_questions must be positive, got %d", c.Tests.MaxQuestions)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
