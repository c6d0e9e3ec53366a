package models

import (
	"database/sql"
	"time"
)

// PracticeEvent represents one completed practice session.
// Rows are immutable once written.
type PracticeEvent struct {
	ID              int64          `json:"id" db:"id"`
	ChatID          int64          `json:"chat_id" db:"chat_id"`
	PracticeType    string         `json:"practice_type" db:"practice_type"`
	PracticeName    string         `json:"practice_name" db:"practice_name"`
	DurationMinutes sql.NullInt64  `json:"duration_minutes" db:"duration_minutes"`
	CompletedAt     time.Time      `json:"completed_at" db:"completed_at"`
	Notes           sql.NullString `json:"notes" db:"notes"`
}
