package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/example/practicebot/pkg/models"
)

// UserProfile carries the optional profile fields delivered with a chat update.
type UserProfile struct {
	Username  string
	FirstName string
	LastName  string
}

// UserUpdate is a partial update of a user row. Only whitelisted fields are
// settable; nil fields are left untouched. updated_at is always bumped.
type UserUpdate struct {
	Username         *string
	FirstName        *string
	LastName         *string
	LastAction       *string
	RemindersEnabled *bool
}

// UserRepository handles database operations for users
type UserRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *sqlx.DB, log *zap.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// GetByChatID returns a user by chat ID, or ErrNotFound.
func (r *UserRepository) GetByChatID(ctx context.Context, chatID int64) (*models.User, error) {
	var user models.User
	query := r.db.Rebind(`
		SELECT chat_id, username, first_name, last_name, joined_at,
		       reminders_enabled, last_action, last_active, practice_count,
		       created_at, updated_at
		FROM users WHERE chat_id = ?`)
	if err := r.db.GetContext(ctx, &user, query, chatID); err != nil {
		return nil, wrapError("get user", err)
	}
	return &user, nil
}

// Upsert fetches the user by chat ID, inserting a fresh row on first contact.
// An existing user gets last_active and updated_at bumped. Safe to call on
// every inbound interaction.
func (r *UserRepository) Upsert(ctx context.Context, chatID int64, profile UserProfile) (*models.User, error) {
	user, err := r.GetByChatID(ctx, chatID)
	switch {
	case err == nil:
		now := time.Now().UTC()
		touch := r.db.Rebind(`UPDATE users SET last_active = ?, updated_at = ? WHERE chat_id = ?`)
		if _, err := r.db.ExecContext(ctx, touch, now, now, chatID); err != nil {
			return nil, wrapError("touch user", err)
		}
		user.LastActive = now
		user.UpdatedAt = now
		return user, nil

	case errors.Is(err, ErrNotFound):
		if created, insErr := r.insert(ctx, chatID, profile); insErr == nil {
			return created, nil
		} else if errors.Is(insErr, ErrAlreadyExists) {
			// Lost a race with a concurrent upsert; the row exists now.
			return r.GetByChatID(ctx, chatID)
		} else {
			return nil, insErr
		}

	default:
		return nil, err
	}
}

func (r *UserRepository) insert(ctx context.Context, chatID int64, profile UserProfile) (*models.User, error) {
	now := time.Now().UTC()
	query := r.db.Rebind(`
		INSERT INTO users (
			chat_id, username, first_name, last_name, joined_at,
			reminders_enabled, last_active, practice_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		chatID,
		nullString(profile.Username),
		nullString(profile.FirstName),
		nullString(profile.LastName),
		now, false, now, now, now,
	)
	if err != nil {
		return nil, wrapError("insert user", err)
	}

	r.log.Info("new user registered", zap.Int64("chat_id", chatID))
	return r.GetByChatID(ctx, chatID)
}

// Update applies a partial update to a user row. Returns ErrNotFound when
// the chat ID is unknown.
func (r *UserRepository) Update(ctx context.Context, chatID int64, upd UserUpdate) error {
	setClauses := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}

	if upd.Username != nil {
		setClauses = append(setClauses, "username = ?")
		args = append(args, *upd.Username)
	}
	if upd.FirstName != nil {
		setClauses = append(setClauses, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		setClauses = append(setClauses, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.LastAction != nil {
		setClauses = append(setClauses, "last_action = ?")
		args = append(args, *upd.LastAction)
	}
	if upd.RemindersEnabled != nil {
		setClauses = append(setClauses, "reminders_enabled = ?")
		args = append(args, *upd.RemindersEnabled)
	}
	args = append(args, chatID)

	query := r.db.Rebind(fmt.Sprintf(
		"UPDATE users SET %s WHERE chat_id = ?", strings.Join(setClauses, ", ")))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapError("update user", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return wrapError("update user", err)
	}
	if rows == 0 {
		return fmt.Errorf("update user %d: %w", chatID, ErrNotFound)
	}
	return nil
}

// SetReminders toggles the daily reminder opt-in flag for a user.
func (r *UserRepository) SetReminders(ctx context.Context, chatID int64, enabled bool) error {
	return r.Update(ctx, chatID, UserUpdate{RemindersEnabled: &enabled})
}

// ListActiveSubscribers returns the chat IDs of all users with reminders
// enabled. The result is a point-in-time snapshot, not a live view.
func (r *UserRepository) ListActiveSubscribers(ctx context.Context) ([]int64, error) {
	var chatIDs []int64
	query := `SELECT chat_id FROM users WHERE reminders_enabled = ? ORDER BY chat_id`
	if err := r.db.SelectContext(ctx, &chatIDs, r.db.Rebind(query), true); err != nil {
		return nil, wrapError("list subscribers", err)
	}
	return chatIDs, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
