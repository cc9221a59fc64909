// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Log backends.
const (
	LogBackendSlog   = "slog"
	LogBackendLogrus = "logrus"
)

// DefaultEnvFiles are loaded, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.dev"}

type Config struct {
	ListenAddress string `env:"LOOPSETTINGS_LISTEN_ADDRESS" envDefault:":8080"`

	StorageType string `env:"LOOPSETTINGS_STORAGE" envDefault:"memory"`
	SQLitePath  string `env:"LOOPSETTINGS_SQLITE_PATH" envDefault:"loopsettings.db"`
	PostgresDSN string `env:"LOOPSETTINGS_POSTGRES_DSN"`

	RedisAddr     string `env:"LOOPSETTINGS_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"LOOPSETTINGS_REDIS_PASSWORD"`
	RedisDB       int    `env:"LOOPSETTINGS_REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"LOOPSETTINGS_REDIS_PREFIX" envDefault:"loopsettings:"`

	CacheType string        `env:"LOOPSETTINGS_CACHE" envDefault:"none"`
	CacheTTL  time.Duration `env:"LOOPSETTINGS_CACHE_TTL" envDefault:"24h"`

	LogLevel   string `env:"LOOPSETTINGS_LOG_LEVEL" envDefault:"info"`
	LogBackend string `env:"LOOPSETTINGS_LOG_BACKEND" envDefault:"slog"`

	// Empty disables encryption at rest.
	EncryptionKey string `env:"LOOPSETTINGS_ENCRYPTION_KEY"`
}

// Parse loads DefaultEnvFiles and then reads Config from the environment.
func Parse() (*Config, error) {
	return ParseFiles(DefaultEnvFiles...)
}

// ParseFiles is Parse with an explicit list of dotenv files. Missing files are skipped.
func ParseFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Overload(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks backend names and their required settings.
func (c *Config) Validate() error {
	switch c.StorageType {
	case StorageMemory, StorageRedis:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return errors.New("config: sqlite storage requires LOOPSETTINGS_SQLITE_PATH")
		}
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return errors.New("config: postgres storage requires LOOPSETTINGS_POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("config: unknown storage %q", c.StorageType)
	}

	switch c.CacheType {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: unknown cache %q", c.CacheType)
	}

	switch c.LogBackend {
	case LogBackendSlog, LogBackendLogrus:
	default:
		return fmt.Errorf("config: unknown log backend %q", c.LogBackend)
	}

	if c.EncryptionKey != "" && len(c.EncryptionKey) < 32 {
		return errors.New("config: LOOPSETTINGS_ENCRYPTION_KEY must be at least 32 bytes")
	}
	return nil
}
