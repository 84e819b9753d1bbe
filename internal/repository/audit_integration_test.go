//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditRepository(setupTestDB(t))

	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.Create(ctx, &AuditDocument{
		Timestamp: base.Add(-2 * time.Minute),
		Level:     "info",
		RequestID: "req-1",
		Action:    "resolve_package",
		Subject:   "key:aaa",
		Names:     []string{"@suifrens/core"},
	}))
	require.NoError(t, repo.CreateMany(ctx, []*AuditDocument{
		{
			Timestamp: base.Add(-time.Minute),
			Level:     "warn",
			RequestID: "req-2",
			Action:    "resolve_packages",
			Subject:   "key:bbb",
			Names:     []string{"@suifrens/core", "@suifrens/accessories"},
			ErrorKind: "package_not_found",
		},
		{
			Timestamp: base,
			Level:     "info",
			RequestID: "req-3",
			Action:    "resolve_type",
			Subject:   "key:aaa",
			Names:     []string{"@suifrens/core::suifren::SuiFren"},
		},
	}))

	tests := []struct {
		name     string
		query    AuditQuery
		expected []string
	}{
		{name: "all newest first", query: AuditQuery{}, expected: []string{"req-3", "req-2", "req-1"}},
		{name: "by action", query: AuditQuery{Action: "resolve_type"}, expected: []string{"req-3"}},
		{name: "by subject", query: AuditQuery{Subject: "key:aaa"}, expected: []string{"req-3", "req-1"}},
		{name: "by name", query: AuditQuery{Name: "@suifrens/core"}, expected: []string{"req-2", "req-1"}},
		{name: "by level", query: AuditQuery{Level: "warn"}, expected: []string{"req-2"}},
		{name: "limit and skip", query: AuditQuery{Limit: 1, Skip: 1}, expected: []string{"req-2"}},
		{
			name:     "time window",
			query:    AuditQuery{StartTime: timePtr(base.Add(-90 * time.Second)), EndTime: timePtr(base.Add(-30 * time.Second))},
			expected: []string{"req-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := repo.Query(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]string, len(docs))
			for i, d := range docs {
				ids[i] = d.RequestID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	t.Run("count ignores limit", func(t *testing.T) {
		n, err := repo.Count(ctx, AuditQuery{Subject: "key:aaa", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("empty bulk insert is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
