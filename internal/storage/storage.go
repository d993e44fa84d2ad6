package storage

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/model"
)

// TaskRepository is the interface for task collection persistence. The
// collection is always written back as a whole, never appended to.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

// LogRepository is the interface for activity log persistence.
type LogRepository interface {
	ListEntries(ctx context.Context) ([]model.LogEntry, error)
	SaveEntries(ctx context.Context, entries []model.LogEntry) error
	// Clear removes the whole log collection.
	Clear(ctx context.Context) error
}

// SessionRepository tracks the current session pointer, a single value
// separate from the log collection.
type SessionRepository interface {
	// GetCurrentSession returns the current session ID, empty when none.
	GetCurrentSession(ctx context.Context) (string, error)
	SetCurrentSession(ctx context.Context, sessionID string) error
	ClearCurrentSession(ctx context.Context) error
}

// UserRepository gives read access to the logged-in user record. The record
// is written by the outer authentication layer, this application only reads it.
type UserRepository interface {
	// GetLoggedInUser returns the stored user, or the unknown-user sentinel
	// when no record exists.
	GetLoggedInUser(ctx context.Context) (model.User, error)
}
