package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CreativeUnicorns/loopsettings"
)

func TestNewMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()
	require.NotNil(t, storage, "NewMemoryStorage() should not return nil")
	assert.Equal(t, 0, storage.Len())
}

func TestMemoryStorage_Set_Get_Remove(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	t.Run("get_missing_key", func(t *testing.T) {
		_, err := storage.Get(ctx, "missing")
		assert.True(t, errors.Is(err, loopsettings.ErrNotFound))
	})

	t.Run("set_then_get", func(t *testing.T) {
		require.NoError(t, storage.Set(ctx, loopsettings.SettingsKey, `{"theme":"dark"}`))
		v, err := storage.Get(ctx, loopsettings.SettingsKey)
		require.NoError(t, err)
		assert.Equal(t, `{"theme":"dark"}`, v)
	})

	t.Run("set_overwrites", func(t *testing.T) {
		require.NoError(t, storage.Set(ctx, loopsettings.SettingsKey, `{"theme":"light"}`))
		v, err := storage.Get(ctx, loopsettings.SettingsKey)
		require.NoError(t, err)
		assert.Equal(t, `{"theme":"light"}`, v)
		assert.Equal(t, 1, storage.Len())
	})

	t.Run("remove_is_idempotent", func(t *testing.T) {
		require.NoError(t, storage.Remove(ctx, loopsettings.SettingsKey))
		require.NoError(t, storage.Remove(ctx, loopsettings.SettingsKey))
		_, err := storage.Get(ctx, loopsettings.SettingsKey)
		assert.ErrorIs(t, err, loopsettings.ErrNotFound)
	})
}

func TestMemoryStorage_Close(t *testing.T) {
	storage := NewMemoryStorage()
	assert.NoError(t, storage.Close())
	assert.NoError(t, storage.Close(), "Close should be idempotent")
}

func TestMemoryStorage_BacksStore(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	store, err := loopsettings.Open(ctx, loopsettings.WithStorage(storage))
	require.NoError(t, err)
	_, err = store.Update(ctx, loopsettings.Record{loopsettings.KeyTheme: "dark"})
	require.NoError(t, err)

	reopened, err := loopsettings.Open(ctx, loopsettings.WithStorage(storage))
	require.NoError(t, err)
	assert.Equal(t, "dark", reopened.Get(loopsettings.KeyTheme))
}
