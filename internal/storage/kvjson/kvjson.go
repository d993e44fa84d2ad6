// Package kvjson implements the storage repositories on top of a kv.Store,
// serializing collections as JSON arrays. Malformed or absent stored JSON is
// treated as an empty collection so a corrupted store never blocks the
// application, at worst previously stored data is not visible.
package kvjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/kv"
	"github.com/taskdeck/taskdeck/internal/log"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// Store keys. The names are part of the persisted format, do not rename.
const (
	keyTasks          = "tasks"
	keyLogs           = "userLogs"
	keyCurrentSession = "currentSessionId"
	keyLoggedInUser   = "loggedInUser"
)

// RepositoryConfig is the configuration for the kvjson repository.
type RepositoryConfig struct {
	Store  kv.Store
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.KVJSON"})
	return nil
}

// Repository implements the storage repositories over a single kv.Store.
type Repository struct {
	store  kv.Store
	logger log.Logger
}

var (
	_ storage.TaskRepository    = (*Repository)(nil)
	_ storage.LogRepository     = (*Repository)(nil)
	_ storage.SessionRepository = (*Repository)(nil)
	_ storage.UserRepository    = (*Repository)(nil)
)

// NewRepository creates a new kvjson repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// GetCurrentSession returns the current session pointer, empty when none.
func (r *Repository) GetCurrentSession(ctx context.Context) (string, error) {
	value, err := r.store.Get(ctx, keyCurrentSession)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("could not read current session: %w", err)
	}

	return value, nil
}

// SetCurrentSession stores the current session pointer.
func (r *Repository) SetCurrentSession(ctx context.Context, sessionID string) error {
	if err := r.store.Set(ctx, keyCurrentSession, sessionID); err != nil {
		return fmt.Errorf("could not store current session: %w", err)
	}

	return nil
}

// ClearCurrentSession removes the current session pointer.
func (r *Repository) ClearCurrentSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyCurrentSession); err != nil {
		return fmt.Errorf("could not clear current session: %w", err)
	}

	return nil
}

type storedUser struct {
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// GetLoggedInUser returns the stored logged-in user record. An absent or
// unreadable record yields the unknown-user sentinel, never an error.
func (r *Repository) GetLoggedInUser(ctx context.Context) (model.User, error) {
	raw, err := r.store.Get(ctx, keyLoggedInUser)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			r.logger.Warningf("Could not read logged-in user, using sentinel: %s", err)
		}
		return model.UnknownUser(), nil
	}

	var u storedUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		r.logger.Warningf("Malformed logged-in user record, using sentinel: %s", err)
		return model.UnknownUser(), nil
	}

	user := model.User{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if user.Name == "" {
		user.Name = model.UnknownUserName
	}

	return user, nil
}

// getCollection reads and decodes a JSON array under a key. Absent keys and
// undecodable JSON yield an empty collection, never partial data: a decode
// error discards whatever elements were filled before it.
func getCollection[T any](ctx context.Context, r *Repository, key string) ([]T, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.Warningf("Malformed JSON under %q, treating as empty collection: %s", key, err)
		return nil, nil
	}

	return items, nil
}

// setCollection encodes a collection as a JSON array and overwrites the key.
func (r *Repository) setCollection(ctx context.Context, key string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", key, err)
	}

	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("could not store %s: %w", key, err)
	}

	return nil
}
