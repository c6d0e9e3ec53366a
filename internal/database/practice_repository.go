package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/example/practicebot/pkg/models"
)

// PracticeEntry describes one completed session to be recorded.
type PracticeEntry struct {
	PracticeType    string
	PracticeName    string
	DurationMinutes *int
	Notes           string
}

// PracticeRepository handles database operations for practice events
type PracticeRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewPracticeRepository creates a new repository instance
func NewPracticeRepository(db *sqlx.DB, log *zap.Logger) *PracticeRepository {
	return &PracticeRepository{db: db, log: log}
}

// Log records a completed practice session and increments the owner's
// practice counter in the same transaction. Either both writes land or
// neither does, so practice_count always equals the number of event rows.
func (r *PracticeRepository) Log(ctx context.Context, chatID int64, entry PracticeEntry) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapError("log practice", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()

	// Bump the counter first: zero rows affected means the user is unknown,
	// reported before the event insert can trip the foreign key.
	bump := tx.Rebind(`
		UPDATE users SET practice_count = practice_count + 1, updated_at = ?
		WHERE chat_id = ?`)
	res, execErr := tx.ExecContext(ctx, bump, now, chatID)
	if execErr != nil {
		err = wrapError("increment practice count", execErr)
		return err
	}
	rows, raErr := res.RowsAffected()
	if raErr != nil {
		err = wrapError("increment practice count", raErr)
		return err
	}
	if rows == 0 {
		err = fmt.Errorf("log practice for %d: %w", chatID, ErrNotFound)
		return err
	}

	insert := tx.Rebind(`
		INSERT INTO practice_events (
			chat_id, practice_type, practice_name, duration_minutes, completed_at, notes
		) VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err = tx.ExecContext(ctx, insert,
		chatID, entry.PracticeType, entry.PracticeName,
		nullInt(entry.DurationMinutes), now, nullString(entry.Notes),
	); err != nil {
		return wrapError("insert practice event", err)
	}

	if err = tx.Commit(); err != nil {
		return wrapError("log practice", err)
	}

	r.log.Info("practice logged",
		zap.Int64("chat_id", chatID),
		zap.String("practice", entry.PracticeName),
	)
	return nil
}

// ListByUser returns a user's practice events, most recent first.
func (r *PracticeRepository) ListByUser(ctx context.Context, chatID int64, limit int) ([]models.PracticeEvent, error) {
	var events []models.PracticeEvent
	query := r.db.Rebind(`
		SELECT id, chat_id, practice_type, practice_name, duration_minutes, completed_at, notes
		FROM practice_events
		WHERE chat_id = ?
		ORDER BY completed_at DESC
		LIMIT ?`)
	if err := r.db.SelectContext(ctx, &events, query, chatID, limit); err != nil {
		return nil, wrapError("list practices", err)
	}
	return events, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
