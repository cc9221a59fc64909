package loopsettings

import (
	"testing"
)

func TestErrorVariables(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrInvalidKey", ErrInvalidKey, "invalid setting key"},
		{"ErrInvalidValue", ErrInvalidValue, "invalid setting value"},
		{"ErrNotFound", ErrNotFound, "key not found"},
		{"ErrMalformedPersistedData", ErrMalformedPersistedData, "malformed persisted settings"},
		{"ErrImportParse", ErrImportParse, "unable to parse imported settings"},
		{"ErrStorageUnavailable", ErrStorageUnavailable, "storage backend unavailable"},
		{"ErrCacheUnavailable", ErrCacheUnavailable, "cache backend unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message '%s', got '%s'", tt.expected, tt.err.Error())
			}
		})
	}
}
