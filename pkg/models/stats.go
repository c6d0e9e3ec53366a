package models

import "time"

// UserStats aggregates a user's practice history.
// Computed on demand from practice events; never cached.
type UserStats struct {
	User             *User
	TotalPractices   int
	PracticeDays     int
	AvgDuration      *float64   // nil when no event has a recorded duration
	LastPractice     *time.Time // nil when the user has no events yet
	FavoritePractice string     // empty when the user has no events yet
	FavoriteCount    int
}
