package kvjson

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/model"
)

// storedLogEntry is the persisted JSON shape of a log entry. Field names are
// part of the stored format.
type storedLogEntry struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Username   string         `json:"username"`
	Role       string         `json:"role"`
	Action     string         `json:"action"`
	LoginTime  time.Time      `json:"loginTime"`
	LogoutTime *time.Time     `json:"logoutTime"`
	IPAddress  string         `json:"ipAddress"`
	TokenName  string         `json:"tokenName"`
	SessionID  string         `json:"sessionId,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

func (e storedLogEntry) toModel() model.LogEntry {
	return model.LogEntry{
		ID:         e.ID,
		UserID:     e.UserID,
		Username:   e.Username,
		Role:       e.Role,
		Action:     e.Action,
		LoginTime:  e.LoginTime,
		LogoutTime: e.LogoutTime,
		IPAddress:  e.IPAddress,
		TokenName:  e.TokenName,
		SessionID:  e.SessionID,
		Details:    e.Details,
	}
}

func logEntryToStored(e model.LogEntry) storedLogEntry {
	return storedLogEntry{
		ID:         e.ID,
		UserID:     e.UserID,
		Username:   e.Username,
		Role:       e.Role,
		Action:     e.Action,
		LoginTime:  e.LoginTime,
		LogoutTime: e.LogoutTime,
		IPAddress:  e.IPAddress,
		TokenName:  e.TokenName,
		SessionID:  e.SessionID,
		Details:    e.Details,
	}
}

// ListEntries returns the stored log collection.
func (r *Repository) ListEntries(ctx context.Context) ([]model.LogEntry, error) {
	stored, err := getCollection[storedLogEntry](ctx, r, keyLogs)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, 0, len(stored))
	for _, se := range stored {
		entries = append(entries, se.toModel())
	}

	return entries, nil
}

// SaveEntries overwrites the stored log collection.
func (r *Repository) SaveEntries(ctx context.Context, entries []model.LogEntry) error {
	stored := make([]storedLogEntry, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, logEntryToStored(e))
	}

	if err := r.setCollection(ctx, keyLogs, stored); err != nil {
		return fmt.Errorf("could not save log entries: %w", err)
	}

	r.logger.Debugf("Saved %d log entries", len(entries))

	return nil
}

// Clear removes the whole log collection.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyLogs); err != nil {
		return fmt.Errorf("could not clear log entries: %w", err)
	}

	r.logger.Debugf("Cleared log collection")

	return nil
}
