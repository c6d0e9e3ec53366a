package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestDB opens an in-memory SQLite database with the real schema.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Connect(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRepos(t *testing.T) (*UserRepository, *PracticeRepository, *StatsRepository) {
	t.Helper()
	db := newTestDB(t)
	log := zap.NewNop()
	users := NewUserRepository(db, log)
	practices := NewPracticeRepository(db, log)
	stats := NewStatsRepository(db, users, log)
	return users, practices, stats
}

func countRows(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, db.Rebind(query), args...))
	return n
}
