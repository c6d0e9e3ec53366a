package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/example/practicebot/pkg/models"
)

// StatsRepository derives aggregate statistics from raw practice events.
// It holds no state of its own; every call recomputes from the store.
type StatsRepository struct {
	db    *sqlx.DB
	users *UserRepository
	log   *zap.Logger
}

// NewStatsRepository creates a new repository instance
func NewStatsRepository(db *sqlx.DB, users *UserRepository, log *zap.Logger) *StatsRepository {
	return &StatsRepository{db: db, users: users, log: log}
}

// GetUserStats returns the user's aggregated practice statistics.
// A user with zero events gets a zero-valued Stats, not an error;
// ErrNotFound is returned only when the user row itself is absent.
func (r *StatsRepository) GetUserStats(ctx context.Context, chatID int64) (*models.UserStats, error) {
	user, err := r.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{User: user}

	var (
		total        int
		practiceDays int
		avgDuration  sql.NullFloat64
	)
	aggQuery := r.db.Rebind(`
		SELECT COUNT(*), COUNT(DISTINCT DATE(completed_at)), AVG(duration_minutes)
		FROM practice_events WHERE chat_id = ?`)
	row := r.db.QueryRowContext(ctx, aggQuery, chatID)
	if err := row.Scan(&total, &practiceDays, &avgDuration); err != nil {
		return nil, wrapError("aggregate stats", err)
	}
	stats.TotalPractices = total
	stats.PracticeDays = practiceDays
	if avgDuration.Valid {
		v := avgDuration.Float64
		stats.AvgDuration = &v
	}

	var last time.Time
	lastQuery := r.db.Rebind(`
		SELECT completed_at FROM practice_events
		WHERE chat_id = ? ORDER BY completed_at DESC LIMIT 1`)
	err = r.db.QueryRowContext(ctx, lastQuery, chatID).Scan(&last)
	switch {
	case err == nil:
		stats.LastPractice = &last
	case errors.Is(err, sql.ErrNoRows):
		// no activity yet — a valid state
	default:
		return nil, wrapError("last practice", err)
	}

	// Most frequent practice name. Ties break lexicographically so the
	// result is deterministic.
	var (
		favorite string
		count    int
	)
	favQuery := r.db.Rebind(`
		SELECT practice_name, COUNT(*) AS cnt
		FROM practice_events
		WHERE chat_id = ?
		GROUP BY practice_name
		ORDER BY cnt DESC, practice_name ASC
		LIMIT 1`)
	err = r.db.QueryRowContext(ctx, favQuery, chatID).Scan(&favorite, &count)
	switch {
	case err == nil:
		stats.FavoritePractice = favorite
		stats.FavoriteCount = count
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, wrapError("favorite practice", err)
	}

	r.log.Debug("stats computed",
		zap.Int64("chat_id", chatID),
		zap.Int("total", stats.TotalPractices),
	)
	return stats, nil
}
