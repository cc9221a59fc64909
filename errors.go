// errors.go
package loopsettings

import "errors"

var (
	ErrInvalidKey             = errors.New("invalid setting key")
	ErrInvalidValue           = errors.New("invalid setting value")
	ErrNotFound               = errors.New("key not found")
	ErrMalformedPersistedData = errors.New("malformed persisted settings")
	ErrImportParse            = errors.New("unable to parse imported settings")
	ErrStorageUnavailable     = errors.New("storage backend unavailable")
	ErrCacheUnavailable       = errors.New("cache backend unavailable")
)
