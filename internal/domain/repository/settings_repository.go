package repository

import "context"

// SettingsRepository defines the interface for the flat key-value business
// configuration store. Writes commit immediately; reads are on demand.
type SettingsRepository interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set inserts or overwrites the value for key (last write wins).
	Set(ctx context.Context, key, value string) error
}
