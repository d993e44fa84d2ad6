package activitylog_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/app/activitylog"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/storage/storagemock"
)

type fixedMetadata struct{}

func (fixedMetadata) IP() string    { return "192.168.1.100" }
func (fixedMetadata) Token() string { return "token-test" }

func newTestService(t *testing.T) (*activitylog.Service, *storagemock.MockLogRepository, *storagemock.MockSessionRepository) {
	logRepo := storagemock.NewMockLogRepository(t)
	sessionRepo := storagemock.NewMockSessionRepository(t)

	svc, err := activitylog.NewService(activitylog.ServiceConfig{
		LogRepository:     logRepo,
		SessionRepository: sessionRepo,
		Metadata:          fixedMetadata{},
	})
	require.NoError(t, err)

	return svc, logRepo, sessionRepo
}

func TestServiceRecordLogin(t *testing.T) {
	svc, logRepo, sessionRepo := newTestService(t)

	var saved []model.LogEntry
	logRepo.On("ListEntries", mock.Anything).Once().Return([]model.LogEntry{{ID: "old"}}, nil)
	logRepo.On("SaveEntries", mock.Anything, mock.MatchedBy(func(entries []model.LogEntry) bool {
		saved = entries
		return len(entries) == 2
	})).Once().Return(nil)
	sessionRepo.On("SetCurrentSession", mock.Anything, mock.MatchedBy(func(id string) bool {
		return strings.HasPrefix(id, "session-")
	})).Once().Return(nil)

	entry, err := svc.RecordLogin(context.Background(), model.User{
		ID:    "u-1",
		Email: "jordan@example.com",
		Role:  "admin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "u-1", entry.UserID)
	assert.Equal(t, "jordan@example.com", entry.Username)
	assert.Equal(t, "admin", entry.Role)
	assert.Equal(t, model.ActionLogin, entry.Action)
	assert.True(t, strings.HasPrefix(entry.SessionID, "session-"))
	assert.Equal(t, "192.168.1.100", entry.IPAddress)
	assert.Equal(t, "token-test", entry.TokenName)
	assert.Nil(t, entry.LogoutTime)
	assert.False(t, entry.LoginTime.IsZero())

	// The appended entry is the returned one.
	require.Len(t, saved, 2)
	assert.Equal(t, *entry, saved[1])
}

func TestServiceRecordLoginDefaults(t *testing.T) {
	svc, logRepo, sessionRepo := newTestService(t)

	logRepo.On("ListEntries", mock.Anything).Once().Return(nil, nil)
	logRepo.On("SaveEntries", mock.Anything, mock.Anything).Once().Return(nil)
	sessionRepo.On("SetCurrentSession", mock.Anything, mock.Anything).Once().Return(nil)

	entry, err := svc.RecordLogin(context.Background(), model.User{Email: "jordan@example.com"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(entry.UserID, "user-"), "missing user ID should be generated")
	assert.Equal(t, "user", entry.Role, "missing role should default")
}

func TestServiceRecordLogout(t *testing.T) {
	now := time.Now().UTC()
	earlier := now.Add(-time.Hour)
	closed := now.Add(-2 * time.Hour)

	tests := map[string]struct {
		email   string
		entries []model.LogEntry
		// expClosedIdx is the index expected to be mutated, -1 when none.
		expClosedIdx int
	}{
		"The open login of the user should be closed.": {
			email: "jordan@example.com",
			entries: []model.LogEntry{
				{ID: "a", Username: "jordan@example.com", Action: model.ActionLogin, LoginTime: earlier},
			},
			expClosedIdx: 0,
		},

		"With several open logins the most recent one should be closed.": {
			email: "jordan@example.com",
			entries: []model.LogEntry{
				{ID: "a", Username: "jordan@example.com", Action: model.ActionLogin, LoginTime: earlier},
				{ID: "b", Username: "jordan@example.com", Action: model.ActionLogin, LoginTime: now},
				{ID: "c", Username: "other@example.com", Action: model.ActionLogin, LoginTime: now},
			},
			expClosedIdx: 1,
		},

		"With identical login times the most recently appended one wins.": {
			email: "jordan@example.com",
			entries: []model.LogEntry{
				{ID: "a", Username: "jordan@example.com", Action: model.ActionLogin, LoginTime: now},
				{ID: "b", Username: "jordan@example.com", Action: model.ActionLogin, LoginTime: now},
			},
			expClosedIdx: 1,
		},

		"Already closed logins should not be touched.": {
			email: "jordan@example.com",
			entries: []model.LogEntry{
				{ID: "a", Username: "jordan@example.com", Action: model.ActionLogout, LoginTime: closed, LogoutTime: &closed},
			},
			expClosedIdx: -1,
		},

		"A user with no entries at all should be a no-op.": {
			email:        "jordan@example.com",
			entries:      nil,
			expClosedIdx: -1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc, logRepo, sessionRepo := newTestService(t)

			logRepo.On("ListEntries", mock.Anything).Once().Return(tc.entries, nil)
			if tc.expClosedIdx >= 0 {
				expID := tc.entries[tc.expClosedIdx].ID
				logRepo.On("SaveEntries", mock.Anything, mock.MatchedBy(func(entries []model.LogEntry) bool {
					for i, e := range entries {
						closedHere := e.LogoutTime != nil && e.Action == model.ActionLogout && e.ID == expID
						if i == tc.expClosedIdx && !closedHere {
							return false
						}
					}
					return true
				})).Once().Return(nil)
			}
			// The pointer is cleared whether or not a login matched.
			sessionRepo.On("ClearCurrentSession", mock.Anything).Once().Return(nil)

			err := svc.RecordLogout(context.Background(), model.User{Email: tc.email})
			require.NoError(t, err)
		})
	}
}

func TestServiceRecordLogoutClearsPointerOnSaveFailure(t *testing.T) {
	svc, logRepo, sessionRepo := newTestService(t)

	logRepo.On("ListEntries", mock.Anything).Once().Return([]model.LogEntry{
		{ID: "a", Username: "jordan@example.com", Action: model.ActionLogin, LoginTime: time.Now().UTC()},
	}, nil)
	logRepo.On("SaveEntries", mock.Anything, mock.Anything).Once().Return(fmt.Errorf("boom"))
	sessionRepo.On("ClearCurrentSession", mock.Anything).Once().Return(nil)

	err := svc.RecordLogout(context.Background(), model.User{Email: "jordan@example.com"})
	assert.Error(t, err)
}

func TestServiceRecordAction(t *testing.T) {
	svc, logRepo, _ := newTestService(t)

	details := map[string]any{"taskId": "42"}

	logRepo.On("ListEntries", mock.Anything).Once().Return(nil, nil)
	logRepo.On("SaveEntries", mock.Anything, mock.MatchedBy(func(entries []model.LogEntry) bool {
		if len(entries) != 1 {
			return false
		}
		e := entries[0]
		return e.Action == "create_task" &&
			e.Username == "jordan@example.com" &&
			e.SessionID == "" &&
			e.Details["taskId"] == "42"
	})).Once().Return(nil)

	err := svc.RecordAction(context.Background(), model.User{Email: "jordan@example.com"}, "create_task", details)
	require.NoError(t, err)
}

func TestServiceDelete(t *testing.T) {
	tests := map[string]struct {
		logID   string
		entries []model.LogEntry
		expKept []model.LogEntry
	}{
		"Deleting an existing entry should persist the collection without it.": {
			logID:   "b",
			entries: []model.LogEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			expKept: []model.LogEntry{{ID: "a"}, {ID: "c"}},
		},

		"Deleting an unknown ID should be a silent no-op.": {
			logID:   "missing",
			entries: []model.LogEntry{{ID: "a"}},
			expKept: []model.LogEntry{{ID: "a"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc, logRepo, _ := newTestService(t)

			logRepo.On("ListEntries", mock.Anything).Once().Return(tc.entries, nil)
			logRepo.On("SaveEntries", mock.Anything, tc.expKept).Once().Return(nil)

			err := svc.Delete(context.Background(), tc.logID)
			require.NoError(t, err)
		})
	}
}

func TestServiceQuery(t *testing.T) {
	entries := []model.LogEntry{
		{ID: "1", Username: "jordan@example.com", UserID: "u-1", Role: "admin", Action: model.ActionLogin, IPAddress: "192.168.1.100"},
		{ID: "2", Username: "alex@example.com", UserID: "u-2", Role: "user", Action: model.ActionLogin, IPAddress: "10.0.0.50"},
		{ID: "3", Username: "alex@example.com", UserID: "u-2", Role: "user", Action: "export_report", IPAddress: "10.0.0.50"},
	}

	tests := map[string]struct {
		filters activitylog.QueryFilters
		expIDs  []string
	}{
		"No filters should return everything.": {
			filters: activitylog.QueryFilters{},
			expIDs:  []string{"1", "2", "3"},
		},

		"The 'all' role should match every role.": {
			filters: activitylog.QueryFilters{Role: activitylog.RoleAll},
			expIDs:  []string{"1", "2", "3"},
		},

		"A concrete role should keep only matching entries.": {
			filters: activitylog.QueryFilters{Role: "admin"},
			expIDs:  []string{"1"},
		},

		"The search should match the username case-insensitively.": {
			filters: activitylog.QueryFilters{Search: "JORDAN"},
			expIDs:  []string{"1"},
		},

		"The search should match the user ID.": {
			filters: activitylog.QueryFilters{Search: "u-2"},
			expIDs:  []string{"2", "3"},
		},

		"The search should match the IP address.": {
			filters: activitylog.QueryFilters{Search: "10.0.0"},
			expIDs:  []string{"2", "3"},
		},

		"The action filter should match exactly.": {
			filters: activitylog.QueryFilters{Action: "export_report"},
			expIDs:  []string{"3"},
		},

		"All filters should combine conjunctively.": {
			filters: activitylog.QueryFilters{Role: "user", Search: "alex", Action: model.ActionLogin},
			expIDs:  []string{"2"},
		},

		"Filters that match nothing should return an empty collection.": {
			filters: activitylog.QueryFilters{Role: "admin", Action: "export_report"},
			expIDs:  []string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc, logRepo, _ := newTestService(t)

			logRepo.On("ListEntries", mock.Anything).Once().Return(entries, nil)

			got, err := svc.Query(context.Background(), tc.filters)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(got))
			for _, e := range got {
				gotIDs = append(gotIDs, e.ID)
			}
			assert.Equal(t, tc.expIDs, gotIDs)
		})
	}
}

func TestServiceClearAll(t *testing.T) {
	svc, logRepo, _ := newTestService(t)

	logRepo.On("Clear", mock.Anything).Once().Return(nil)

	err := svc.ClearAll(context.Background())
	require.NoError(t, err)
}

func TestServiceCurrentSession(t *testing.T) {
	tests := map[string]struct {
		stored string
		exp    string
	}{
		"A stored pointer should be returned.":   {stored: "session-abc", exp: "session-abc"},
		"An absent pointer should return empty.": {stored: "", exp: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _, sessionRepo := newTestService(t)

			sessionRepo.On("GetCurrentSession", mock.Anything).Once().Return(tc.stored, nil)

			got, err := svc.CurrentSession(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}
