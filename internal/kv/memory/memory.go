package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/taskdeck/taskdeck/internal/kv"
	"github.com/taskdeck/taskdeck/internal/log"
	"github.com/taskdeck/taskdeck/internal/model"
)

// StoreConfig is the configuration for the memory store.
type StoreConfig struct {
	Logger log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "kv.Memory"})
	return nil
}

// Store is an in-memory implementation of kv.Store. Data does not survive
// the process, it is meant for tests and ephemeral runs.
type Store struct {
	values map[string]string
	mu     sync.RWMutex
	logger log.Logger
}

var _ kv.Store = (*Store)(nil)

// NewStore creates a new memory store.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Store{
		values: map[string]string{},
		logger: cfg.Logger,
	}, nil
}

// Get returns the value stored under a key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("key %s: %w", key, model.ErrNotFound)
	}

	return value, nil
}

// Set stores a value under a key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	s.logger.Debugf("Set key in store: %s", key)

	return nil
}

// Delete removes a key, absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	s.logger.Debugf("Deleted key from store: %s", key)

	return nil
}
