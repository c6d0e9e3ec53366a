package models

import (
	"database/sql"
	"time"
)

// User represents a Telegram user interacting with the bot
type User struct {
	ChatID           int64          `json:"chat_id" db:"chat_id"` // Telegram chat ID
	Username         sql.NullString `json:"username" db:"username"`
	FirstName        sql.NullString `json:"first_name" db:"first_name"`
	LastName         sql.NullString `json:"last_name" db:"last_name"`
	JoinedAt         time.Time      `json:"joined_at" db:"joined_at"`
	RemindersEnabled bool           `json:"reminders_enabled" db:"reminders_enabled"`
	LastAction       sql.NullString `json:"last_action" db:"last_action"`
	LastActive       time.Time      `json:"last_active" db:"last_active"`
	PracticeCount    int            `json:"practice_count" db:"practice_count"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the friendliest name available for the user
func (u *User) DisplayName() string {
	if u.FirstName.Valid && u.FirstName.String != "" {
		return u.FirstName.String
	}
	if u.Username.Valid && u.Username.String != "" {
		return "@" + u.Username.String
	}
	return "друг"
}
