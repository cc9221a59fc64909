package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CreativeUnicorns/loopsettings"
	"github.com/CreativeUnicorns/loopsettings/cache"
	"github.com/CreativeUnicorns/loopsettings/config"
	"github.com/CreativeUnicorns/loopsettings/storage"
)

func TestNewStorage(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := newStorage(&config.Config{StorageType: config.StorageMemory})
		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStorage{}, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := newStorage(&config.Config{
			StorageType: config.StorageSQLite,
			SQLitePath:  filepath.Join(t.TempDir(), "settings.db"),
		})
		require.NoError(t, err)
		defer s.Close()
		assert.IsType(t, &storage.SQLiteStorage{}, s)
	})

	t.Run("encrypted", func(t *testing.T) {
		s, err := newStorage(&config.Config{
			StorageType:   config.StorageMemory,
			EncryptionKey: "0123456789abcdef0123456789abcdef",
		})
		require.NoError(t, err)
		require.IsType(t, &storage.EncryptedStorage{}, s)

		ctx := context.Background()
		require.NoError(t, s.Set(ctx, loopsettings.SettingsKey, `{"theme":"dark"}`))
		got, err := s.Get(ctx, loopsettings.SettingsKey)
		require.NoError(t, err)
		assert.Equal(t, `{"theme":"dark"}`, got)
	})

	t.Run("short_key", func(t *testing.T) {
		_, err := newStorage(&config.Config{StorageType: config.StorageMemory, EncryptionKey: "short"})
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := newStorage(&config.Config{StorageType: "mongo"})
		assert.Error(t, err)
	})
}

func TestNewCache(t *testing.T) {
	c, err := newCache(&config.Config{CacheType: config.CacheNone})
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = newCache(&config.Config{CacheType: config.CacheMemory})
	require.NoError(t, err)
	defer c.Close()
	assert.IsType(t, &cache.MemoryCache{}, c)

	_, err = newCache(&config.Config{CacheType: "memcached"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, backend := range []string{config.LogBackendSlog, config.LogBackendLogrus} {
		logger := newLogger(&config.Config{LogBackend: backend, LogLevel: "debug"})
		assert.NotNil(t, logger, backend)
	}
}

func TestWithCacheEncryption(t *testing.T) {
	ctx := context.Background()

	plain := cache.NewMemoryCache()
	defer plain.Close()
	c, err := withCacheEncryption(plain, "")
	require.NoError(t, err)
	assert.Same(t, plain, c)

	inner := cache.NewMemoryCache()
	defer inner.Close()
	c, err = withCacheEncryption(inner, "0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	require.IsType(t, &cache.EncryptedCache{}, c)

	require.NoError(t, c.Set(ctx, "settings:dailyLoopSettings", `{"theme":"dark"}`, time.Minute))
	raw, err := inner.Get(ctx, "settings:dailyLoopSettings")
	require.NoError(t, err)
	assert.NotContains(t, raw, "dark")

	_, err = withCacheEncryption(cache.NewMemoryCache(), "short")
	assert.Error(t, err)
}
