// Package activitylog implements the user activity log: an append-only record
// of logins, logouts and arbitrary actions, with logout-to-login session
// correlation and read-side filtering for administrative review.
package activitylog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/log"
	"github.com/taskdeck/taskdeck/internal/mockmeta"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// RoleAll is the role filter value that matches every role.
const RoleAll = "all"

const defaultRole = "user"

// ServiceConfig is the configuration for the activity log service.
type ServiceConfig struct {
	LogRepository     storage.LogRepository
	SessionRepository storage.SessionRepository
	Metadata          mockmeta.Generator
	Logger            log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.LogRepository == nil {
		return fmt.Errorf("log repository is required")
	}
	if c.SessionRepository == nil {
		return fmt.Errorf("session repository is required")
	}
	if c.Metadata == nil {
		gen, err := mockmeta.NewGenerator(mockmeta.GeneratorConfig{})
		if err != nil {
			return fmt.Errorf("could not create metadata generator: %w", err)
		}
		c.Metadata = gen
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.ActivityLog"})
	return nil
}

// Service handles the activity log business logic.
type Service struct {
	logRepo     storage.LogRepository
	sessionRepo storage.SessionRepository
	metadata    mockmeta.Generator
	logger      log.Logger
}

// NewService creates a new activity log service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		logRepo:     cfg.LogRepository,
		sessionRepo: cfg.SessionRepository,
		metadata:    cfg.Metadata,
		logger:      cfg.Logger,
	}, nil
}

// RecordLogin appends a login entry with a fresh session ID and stores that
// session ID as the current session pointer.
func (s *Service) RecordLogin(ctx context.Context, user model.User) (*model.LogEntry, error) {
	entries, err := s.logRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load log entries: %w", err)
	}

	entry := s.newEntry(user, model.ActionLogin)
	entry.SessionID = "session-" + ulid.Make().String()

	entries = append(entries, entry)
	if err := s.logRepo.SaveEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("could not save log entries: %w", err)
	}

	if err := s.sessionRepo.SetCurrentSession(ctx, entry.SessionID); err != nil {
		return nil, fmt.Errorf("could not store session pointer: %w", err)
	}

	s.logger.Infof("Recorded login for %s (session %s)", entry.Username, entry.SessionID)

	return &entry, nil
}

// RecordLogout closes the most recent open login entry of the user: the entry
// gets its logout time set and its action switched to logout, in place. When
// the user has no open session nothing is changed. The current session
// pointer is cleared in every case.
func (s *Service) RecordLogout(ctx context.Context, user model.User) error {
	entries, err := s.logRepo.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("could not load log entries: %w", err)
	}

	var saveErr error
	if idx := latestOpenLogin(entries, user.Email); idx >= 0 {
		now := time.Now().UTC()
		entries[idx].LogoutTime = &now
		entries[idx].Action = model.ActionLogout

		if saveErr = s.logRepo.SaveEntries(ctx, entries); saveErr != nil {
			saveErr = fmt.Errorf("could not save log entries: %w", saveErr)
		} else {
			s.logger.Infof("Recorded logout for %s (session %s)", user.Email, entries[idx].SessionID)
		}
	} else {
		s.logger.Debugf("No open session for %s, logout is a no-op", user.Email)
	}

	// The pointer is cleared even when no open session matched.
	if err := s.sessionRepo.ClearCurrentSession(ctx); err != nil {
		return fmt.Errorf("could not clear session pointer: %w", err)
	}

	return saveErr
}

// RecordAction appends an entry for an arbitrary action with an optional
// details payload. Action entries are never correlated to a login.
func (s *Service) RecordAction(ctx context.Context, user model.User, action string, details map[string]any) error {
	entries, err := s.logRepo.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("could not load log entries: %w", err)
	}

	entry := s.newEntry(user, action)
	entry.Details = details

	entries = append(entries, entry)
	if err := s.logRepo.SaveEntries(ctx, entries); err != nil {
		return fmt.Errorf("could not save log entries: %w", err)
	}

	s.logger.Infof("Recorded action %q for %s", action, entry.Username)

	return nil
}

// Delete removes the entry with the given ID and persists the collection.
// Deleting an absent entry is a silent no-op, only storage failures are
// reported.
func (s *Service) Delete(ctx context.Context, logID string) error {
	entries, err := s.logRepo.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("could not load log entries: %w", err)
	}

	kept := make([]model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != logID {
			kept = append(kept, e)
		}
	}

	if err := s.logRepo.SaveEntries(ctx, kept); err != nil {
		return fmt.Errorf("could not save log entries: %w", err)
	}

	s.logger.Infof("Deleted log entry: %s", logID)

	return nil
}

// QueryFilters are the optional, conjunctive log query filters.
type QueryFilters struct {
	// Role keeps entries with this exact role. Empty and RoleAll match all.
	Role string
	// Search keeps entries whose username, user ID or IP address contains
	// the term (case-insensitive). Any one field matching is enough.
	Search string
	// Action keeps entries with this exact action.
	Action string
}

// Query returns the log entries that pass all the given filters, applied in
// role, search, action order. The stored collection is never mutated.
func (s *Service) Query(ctx context.Context, filters QueryFilters) ([]model.LogEntry, error) {
	entries, err := s.logRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load log entries: %w", err)
	}

	matched := make([]model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if filters.Role != "" && filters.Role != RoleAll && e.Role != filters.Role {
			continue
		}
		if filters.Search != "" && !matchesSearch(e, filters.Search) {
			continue
		}
		if filters.Action != "" && e.Action != filters.Action {
			continue
		}
		matched = append(matched, e)
	}

	return matched, nil
}

// ClearAll removes the whole log collection.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.logRepo.Clear(ctx); err != nil {
		return fmt.Errorf("could not clear log entries: %w", err)
	}

	s.logger.Infof("Cleared all log entries")

	return nil
}

// CurrentSession returns the current session pointer, empty when none is set.
func (s *Service) CurrentSession(ctx context.Context) (string, error) {
	sessionID, err := s.sessionRepo.GetCurrentSession(ctx)
	if err != nil {
		return "", fmt.Errorf("could not read session pointer: %w", err)
	}

	return sessionID, nil
}

func (s *Service) newEntry(user model.User, action string) model.LogEntry {
	userID := user.ID
	if userID == "" {
		userID = "user-" + ulid.Make().String()
	}
	role := user.Role
	if role == "" {
		role = defaultRole
	}

	return model.LogEntry{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Username:  user.Email,
		Role:      role,
		Action:    action,
		LoginTime: time.Now().UTC(),
		IPAddress: s.metadata.IP(),
		TokenName: s.metadata.Token(),
	}
}

// latestOpenLogin returns the index of the open login entry with the greatest
// login time for the username, -1 when there is none. Ties resolve to the
// most recently appended entry.
func latestOpenLogin(entries []model.LogEntry, username string) int {
	best := -1
	for i, e := range entries {
		if e.Username != username || !e.Open() {
			continue
		}
		if best == -1 || !e.LoginTime.Before(entries[best].LoginTime) {
			best = i
		}
	}
	return best
}

func matchesSearch(e model.LogEntry, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Username), term) ||
		strings.Contains(strings.ToLower(e.UserID), term) ||
		strings.Contains(strings.ToLower(e.IPAddress), term)
}
