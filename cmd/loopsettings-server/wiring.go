package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/CreativeUnicorns/loopsettings"
	"github.com/CreativeUnicorns/loopsettings/cache"
	"github.com/CreativeUnicorns/loopsettings/config"
	"github.com/CreativeUnicorns/loopsettings/encryption"
	"github.com/CreativeUnicorns/loopsettings/storage"
)

func newLogger(cfg *config.Config) loopsettings.LevelLogger {
	var logger loopsettings.LevelLogger
	if cfg.LogBackend == config.LogBackendLogrus {
		base := logrus.New()
		base.SetOutput(os.Stderr)
		base.SetFormatter(&logrus.JSONFormatter{})
		logger = loopsettings.NewLogrusLogger(base)
	} else {
		logger = loopsettings.NewDefaultLogger()
	}
	logger.SetLevel(loopsettings.ParseLogLevel(cfg.LogLevel))
	return logger
}

// newStorage opens the configured backend, wrapped in EncryptedStorage when a key is set.
func newStorage(cfg *config.Config) (loopsettings.Storage, error) {
	var (
		backend loopsettings.Storage
		err     error
	)
	switch cfg.StorageType {
	case config.StorageMemory:
		backend = storage.NewMemoryStorage()
	case config.StorageSQLite:
		backend, err = storage.NewSQLiteStorage(cfg.SQLitePath)
	case config.StoragePostgres:
		backend, err = storage.NewPostgresStorage(cfg.PostgresDSN)
	case config.StorageRedis:
		backend, err = storage.NewRedisStorage(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.StorageType)
	}
	if err != nil {
		return nil, err
	}

	if cfg.EncryptionKey == "" {
		return backend, nil
	}
	cipher, err := encryption.NewManager([]byte(cfg.EncryptionKey))
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return storage.NewEncryptedStorage(backend, cipher), nil
}

// newCache returns nil when caching is disabled. The Redis cache is encrypted
// with the storage key so settings never leave the process in the clear.
func newCache(cfg *config.Config) (loopsettings.Cache, error) {
	switch cfg.CacheType {
	case config.CacheNone, "":
		return nil, nil
	case config.CacheMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return withCacheEncryption(rc, cfg.EncryptionKey)
	default:
		return nil, fmt.Errorf("unknown cache %q", cfg.CacheType)
	}
}

// withCacheEncryption wraps c in an EncryptedCache when key is set.
func withCacheEncryption(c loopsettings.Cache, key string) (loopsettings.Cache, error) {
	if key == "" {
		return c, nil
	}
	cipher, err := encryption.NewManager([]byte(key))
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return cache.NewEncryptedCache(c, cipher), nil
}
