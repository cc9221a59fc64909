// Package loopsettings manages the preferences record of the Daily Loop habit tracker.
//
// A Store loads the record from a key-value Storage backend, fills gaps from the
// default record, persists updates, and pushes the resulting theme, focus timer
// and notification settings to injected sinks. Storage backends (memory, SQLite,
// PostgreSQL, Redis) live in the storage package and optional caches in the
// cache package.
package loopsettings
