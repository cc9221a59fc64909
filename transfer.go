package loopsettings

import (
	"context"
	"encoding/json"
	"fmt"
)

// Export renders the current record as indented JSON with sorted keys.
func (s *Store) Export() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}
	return string(data), nil
}

// Import replaces the settings with text merged over the defaults, persists
// them and re-runs Init. Settings not present in text revert to their defaults.
// Unparsable text returns an error wrapping ErrImportParse and leaves the store unchanged.
func (s *Store) Import(ctx context.Context, text string) error {
	imported, err := decodeRecord(text)
	if err != nil {
		s.config.logger.Error("Error importing settings", "error", err)
		return fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	next := merge(defaultRecord, imported)

	s.mu.Lock()
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = next
	s.mu.Unlock()

	s.config.logger.Info("Settings imported", "keys", len(imported))
	return s.Init(ctx)
}
