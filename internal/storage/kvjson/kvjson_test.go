package kvjson_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kvmemory "github.com/taskdeck/taskdeck/internal/kv/memory"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/storage/kvjson"
)

func newTestRepository(t *testing.T) (*kvjson.Repository, *kvmemory.Store) {
	store, err := kvmemory.NewStore(kvmemory.StoreConfig{})
	require.NoError(t, err)

	repo, err := kvjson.NewRepository(kvjson.RepositoryConfig{Store: store})
	require.NoError(t, err)

	return repo, store
}

func TestRepositoryTasksRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	deadline := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t1", Title: "Write report", Description: "Quarterly numbers", Priority: model.PriorityHigh, Deadline: &deadline, Progress: 40, AssignedTo: "Jordan"},
		{ID: "t2", Title: "Review PR", Description: "Storage layer", Priority: model.PriorityLow, Progress: 100, AssignedTo: "Alex"},
	}

	require.NoError(t, repo.SaveTasks(ctx, tasks))

	got, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestRepositoryTasksStoredFormat(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	deadline := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveTasks(ctx, []model.Task{
		{ID: "t1", Title: "Write report", Description: "Quarterly numbers", Priority: model.PriorityHigh, Deadline: &deadline, Progress: 40, AssignedTo: "Jordan"},
	}))

	raw, err := store.Get(ctx, "tasks")
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": "t1",
		"title": "Write report",
		"description": "Quarterly numbers",
		"priority": "High",
		"deadline": "2026-09-15",
		"progress": 40,
		"assignedTo": "Jordan"
	}]`, raw)
}

func TestRepositoryTasksFailSoft(t *testing.T) {
	tests := map[string]struct {
		stored *string
	}{
		"An absent key should yield an empty collection.":         {stored: nil},
		"Malformed JSON should yield an empty collection.":        {stored: strPtr(`{not json`)},
		"A JSON object instead of an array should yield empty.":   {stored: strPtr(`{"id": "t1"}`)},
		"A JSON scalar instead of an array should yield empty.":   {stored: strPtr(`42`)},
		"An empty stored string should yield an empty collection": {stored: strPtr(``)},
		"A mistyped element should discard the whole collection, not keep a partial one.": {
			stored: strPtr(`[{"id": "t1", "title": "A"}, {"id": "t2", "progress": "high"}]`),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo, store := newTestRepository(t)
			ctx := context.Background()

			if tc.stored != nil {
				require.NoError(t, store.Set(ctx, "tasks", *tc.stored))
			}

			got, err := repo.ListTasks(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestRepositoryTasksOutOfRangeProgress(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tasks", `[
		{"id": "t1", "title": "A", "progress": 250},
		{"id": "t2", "title": "B", "progress": -5}
	]`))

	got, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].Progress)
	assert.Equal(t, 0, got[1].Progress)
}

func TestRepositoryLogEntriesRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	login := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	logout := login.Add(time.Hour)
	entries := []model.LogEntry{
		{
			ID: "l1", UserID: "u-1", Username: "jordan@example.com", Role: "admin",
			Action: model.ActionLogout, LoginTime: login, LogoutTime: &logout,
			IPAddress: "192.168.1.100", TokenName: "token-a", SessionID: "session-abc",
		},
		{
			ID: "l2", UserID: "u-2", Username: "alex@example.com", Role: "user",
			Action: "export_report", LoginTime: login,
			IPAddress: "10.0.0.50", TokenName: "token-b",
			Details: map[string]any{"format": "csv"},
		},
	}

	require.NoError(t, repo.SaveEntries(ctx, entries))

	got, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestRepositoryLogClear(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveEntries(ctx, []model.LogEntry{{ID: "l1", LoginTime: time.Now().UTC()}}))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Clearing again is a no-op.
	require.NoError(t, repo.Clear(ctx))
}

func TestRepositoryCurrentSession(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	// Absent pointer reads as empty.
	got, err := repo.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.SetCurrentSession(ctx, "session-abc"))

	got, err = repo.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", got)

	require.NoError(t, repo.ClearCurrentSession(ctx))

	got, err = repo.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositoryGetLoggedInUser(t *testing.T) {
	tests := map[string]struct {
		stored  *string
		expUser model.User
	}{
		"A stored user record should be returned.": {
			stored: strPtr(`{"userId": "u-1", "name": "Jordan", "email": "jordan@example.com", "role": "admin"}`),
			expUser: model.User{
				ID: "u-1", Name: "Jordan", Email: "jordan@example.com", Role: "admin",
			},
		},

		"An absent record should yield the unknown-user sentinel.": {
			stored:  nil,
			expUser: model.UnknownUser(),
		},

		"A malformed record should yield the unknown-user sentinel.": {
			stored:  strPtr(`{broken`),
			expUser: model.UnknownUser(),
		},

		"A record without a name should get the sentinel name.": {
			stored:  strPtr(`{"email": "jordan@example.com"}`),
			expUser: model.User{Name: model.UnknownUserName, Email: "jordan@example.com"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo, store := newTestRepository(t)
			ctx := context.Background()

			if tc.stored != nil {
				require.NoError(t, store.Set(ctx, "loggedInUser", *tc.stored))
			}

			got, err := repo.GetLoggedInUser(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expUser, got)
		})
	}
}

func strPtr(s string) *string { return &s }
