package domain

import "time"

// StateRepository loads and saves the whole snapshot.
type StateRepository interface {
	// Load returns the stored snapshot. A missing or unreadable document
	// yields the default snapshot and Recovered reports why.
	Load() (*LoadResult, error)

	// Save replaces the stored snapshot.
	Save(state *AppState) error

	// Update loads, applies fn and saves under one exclusive lock.
	// Nothing is written when fn returns an error or reports no change.
	Update(fn func(state *AppState) (changed bool, err error)) (*AppState, error)
}

// LoadResult is the outcome of loading a snapshot.
type LoadResult struct {
	State     *AppState
	Recovered error // Non-nil when the default snapshot replaced a bad document
}

// Logger writes diagnostic lines by category.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local).
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// BackupCodec converts snapshots to and from backup documents.
type BackupCodec interface {
	// Encode serializes the snapshot in format (BackupJSON or BackupYAML).
	Encode(state *AppState, format string) ([]byte, error)

	// Decode parses and validates a backup document. today seeds the
	// fields the document leaves out. Failures are *ImportError.
	Decode(content []byte, format, today string) (*AppState, error)
}
