package model

import "fmt"

// StoreBackend selects the key-value store implementation.
type StoreBackend string

const (
	StoreBackendMemory StoreBackend = "memory"
	StoreBackendFile   StoreBackend = "file"
	StoreBackendSQLite StoreBackend = "sqlite"
)

// AppConfig is the application configuration, assembled from the optional
// config file and the command line flags (flags win).
type AppConfig struct {
	Store  StoreConfig
	Logger LoggerConfig
}

// StoreConfig configures the key-value store backend.
type StoreConfig struct {
	Backend StoreBackend
	// Path is the store directory (file backend) or database file (sqlite
	// backend). Unused by the memory backend.
	Path string
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	Type  string
	Debug bool
}

// Validate validates the application configuration.
func (c *AppConfig) Validate() error {
	switch c.Store.Backend {
	case StoreBackendMemory:
	case StoreBackendFile, StoreBackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the %s backend: %w", c.Store.Backend, ErrNotValid)
		}
	default:
		return fmt.Errorf("unknown store backend %q: %w", c.Store.Backend, ErrNotValid)
	}

	return nil
}
