// cache/encrypted.go
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/CreativeUnicorns/loopsettings"
)

// Cipher encrypts and decrypts cached values. *encryption.Manager implements it.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// EncryptedCache encrypts string values before handing them to the wrapped
// Cache, so an out-of-process cache never holds settings in the clear.
type EncryptedCache struct {
	inner  Cache
	cipher Cipher
}

// NewEncryptedCache wraps inner with cipher.
func NewEncryptedCache(inner Cache, cipher Cipher) *EncryptedCache {
	return &EncryptedCache{inner: inner, cipher: cipher}
}

// Get decrypts the cached value. Values that cannot be decrypted are reported
// as loopsettings.ErrCacheUnavailable.
func (c *EncryptedCache) Get(ctx context.Context, key string) (interface{}, error) {
	value, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	ciphertext, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cached type %T", loopsettings.ErrCacheUnavailable, value)
	}
	plaintext, err := c.cipher.Decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt cached value: %v", loopsettings.ErrCacheUnavailable, err)
	}
	return plaintext, nil
}

// Set encrypts value, which must be a string, and stores it with ttl.
func (c *EncryptedCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	plaintext, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: only string values can be encrypted, got %T", loopsettings.ErrInvalidValue, value)
	}
	ciphertext, err := c.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt cached value: %w", err)
	}
	return c.inner.Set(ctx, key, ciphertext, ttl)
}

// Delete removes key from the wrapped cache.
func (c *EncryptedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

// Close closes the wrapped cache.
func (c *EncryptedCache) Close() error {
	return c.inner.Close()
}
