package model

import "time"

const (
	// ActionLogin marks a log entry that opened a session.
	ActionLogin = "login"
	// ActionLogout marks a login entry that has been closed by a logout.
	ActionLogout = "logout"
)

// LogEntry represents a single recorded user activity. Login entries carry a
// session ID and stay "open" (nil LogoutTime) until a logout is correlated to
// them, at which point the entry mutates in place to action=logout.
type LogEntry struct {
	ID         string
	UserID     string
	Username   string
	Role       string
	Action     string
	LoginTime  time.Time
	LogoutTime *time.Time

	// IPAddress and TokenName are placeholder metadata, not security material.
	IPAddress string
	TokenName string

	// SessionID is only present on login entries.
	SessionID string

	// Details is an optional free-form payload for generic actions.
	Details map[string]any
}

// Open reports whether the entry is a login without a correlated logout.
func (e LogEntry) Open() bool {
	return e.Action == ActionLogin && e.LogoutTime == nil
}
