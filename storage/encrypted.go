package storage

import (
	"context"
	"fmt"

	"github.com/CreativeUnicorns/loopsettings"
)

// Cipher encrypts and decrypts stored values. *encryption.Manager implements it.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// EncryptedStorage encrypts values before handing them to the wrapped Storage.
// Keys are stored in the clear.
type EncryptedStorage struct {
	inner  loopsettings.Storage
	cipher Cipher
}

// NewEncryptedStorage wraps inner so that every value is encrypted at rest.
func NewEncryptedStorage(inner loopsettings.Storage, cipher Cipher) *EncryptedStorage {
	return &EncryptedStorage{inner: inner, cipher: cipher}
}

// Get decrypts the stored value. A value that cannot be decrypted is reported
// as loopsettings.ErrMalformedPersistedData.
func (s *EncryptedStorage) Get(ctx context.Context, key string) (string, error) {
	ciphertext, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: key %q: %v", loopsettings.ErrMalformedPersistedData, key, err)
	}
	return plaintext, nil
}

// Set encrypts value and stores it under key.
func (s *EncryptedStorage) Set(ctx context.Context, key, value string) error {
	ciphertext, err := s.cipher.Encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value for key %q: %w", key, err)
	}
	return s.inner.Set(ctx, key, ciphertext)
}

// Remove deletes key from the wrapped Storage.
func (s *EncryptedStorage) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}

// Close closes the wrapped Storage.
func (s *EncryptedStorage) Close() error {
	return s.inner.Close()
}
