package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsZeroEventsIsNotAnError(t *testing.T) {
	users, _, stats := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, 1, UserProfile{})
	require.NoError(t, err)

	s, err := stats.GetUserStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalPractices)
	assert.Equal(t, 0, s.PracticeDays)
	assert.Nil(t, s.AvgDuration)
	assert.Nil(t, s.LastPractice)
	assert.Empty(t, s.FavoritePractice)
}

func TestStatsUnknownUser(t *testing.T) {
	_, _, stats := newTestRepos(t)

	_, err := stats.GetUserStats(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStatsFavoritePractice(t *testing.T) {
	users, practices, stats := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, 2, UserProfile{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, practices.Log(ctx, 2, PracticeEntry{PracticeType: "meditation", PracticeName: "meditation"}))
	}
	require.NoError(t, practices.Log(ctx, 2, PracticeEntry{PracticeType: "breathing", PracticeName: "breathing"}))

	s, err := stats.GetUserStats(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, s.TotalPractices)
	assert.Equal(t, "meditation", s.FavoritePractice)
	assert.Equal(t, 3, s.FavoriteCount)
}

func TestStatsFavoriteTieBreaksLexicographically(t *testing.T) {
	users, practices, stats := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, 3, UserProfile{})
	require.NoError(t, err)

	// Insert the later name first to prove order doesn't depend on insertion.
	require.NoError(t, practices.Log(ctx, 3, PracticeEntry{PracticeType: "t", PracticeName: "yoga"}))
	require.NoError(t, practices.Log(ctx, 3, PracticeEntry{PracticeType: "t", PracticeName: "breathing"}))

	s, err := stats.GetUserStats(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "breathing", s.FavoritePractice)
	assert.Equal(t, 1, s.FavoriteCount)
}

func TestStatsAvgDurationIgnoresMissing(t *testing.T) {
	users, practices, stats := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, 4, UserProfile{})
	require.NoError(t, err)

	ten, twenty := 10, 20
	require.NoError(t, practices.Log(ctx, 4, PracticeEntry{PracticeType: "t", PracticeName: "a", DurationMinutes: &ten}))
	require.NoError(t, practices.Log(ctx, 4, PracticeEntry{PracticeType: "t", PracticeName: "b", DurationMinutes: &twenty}))
	require.NoError(t, practices.Log(ctx, 4, PracticeEntry{PracticeType: "t", PracticeName: "c"}))

	s, err := stats.GetUserStats(ctx, 4)
	require.NoError(t, err)
	require.NotNil(t, s.AvgDuration)
	assert.InDelta(t, 15.0, *s.AvgDuration, 0.001)
}

func TestStatsLastPracticeAndDays(t *testing.T) {
	users, practices, stats := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, 5, UserProfile{})
	require.NoError(t, err)

	require.NoError(t, practices.Log(ctx, 5, PracticeEntry{PracticeType: "t", PracticeName: "a"}))
	require.NoError(t, practices.Log(ctx, 5, PracticeEntry{PracticeType: "t", PracticeName: "b"}))

	s, err := stats.GetUserStats(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, s.LastPractice)
	// Both events landed today.
	assert.Equal(t, 1, s.PracticeDays)

	events, err := practices.ListByUser(ctx, 5, 1)
	require.NoError(t, err)
	assert.True(t, s.LastPractice.Equal(events[0].CompletedAt))
}

func TestStatsAreRecomputedPerRequest(t *testing.T) {
	users, practices, stats := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, 6, UserProfile{})
	require.NoError(t, err)

	before, err := stats.GetUserStats(ctx, 6)
	require.NoError(t, err)
	require.Equal(t, 0, before.TotalPractices)

	require.NoError(t, practices.Log(ctx, 6, PracticeEntry{PracticeType: "t", PracticeName: "a"}))

	after, err := stats.GetUserStats(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, after.TotalPractices)
}
