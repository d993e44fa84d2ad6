package file

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/taskdeck/taskdeck/internal/kv"
	"github.com/taskdeck/taskdeck/internal/log"
	"github.com/taskdeck/taskdeck/internal/model"
)

// StoreConfig is the configuration for the file store.
type StoreConfig struct {
	// RootDir is the directory where the key files live. It is created if
	// it does not exist.
	RootDir string
	Logger  log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.RootDir == "" {
		return fmt.Errorf("root dir is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "kv.File"})
	return nil
}

// Store is a file based implementation of kv.Store. Each key is stored as a
// single file inside the root directory, the value is the raw file content.
// Writes go through a temp file rename so readers never see partial values.
type Store struct {
	rootDir string
	mu      sync.RWMutex
	logger  log.Logger
}

var _ kv.Store = (*Store)(nil)

// NewStore creates a new file store.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create store directory: %w", err)
	}

	cfg.Logger.Debugf("File store initialized at %s", cfg.RootDir)

	return &Store{
		rootDir: cfg.RootDir,
		logger:  cfg.Logger,
	}, nil
}

// Get returns the value stored under a key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return "", fmt.Errorf("could not read key file: %w", err)
	}

	return string(data), nil
}

// Set stores a value under a key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("could not write key file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace key file: %w", err)
	}

	s.logger.Debugf("Set key in store: %s", key)

	return nil
}

// Delete removes a key, absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete key file: %w", err)
	}

	s.logger.Debugf("Deleted key from store: %s", key)

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.rootDir, sanitizeKey(key)+".kv")
}

// sanitizeKey maps a key to a safe file name. Alphanumerics, dashes and
// underscores pass through, anything else is hex escaped.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteString("%" + hex.EncodeToString([]byte(string(r))))
		}
	}
	return b.String()
}
