// Package storage provides key-value backends for the settings Store.
//
// Every backend satisfies loopsettings.Storage: Get reports
// loopsettings.ErrNotFound for absent keys and Remove is idempotent.
package storage
