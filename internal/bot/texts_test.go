package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/practicebot/internal/practice"
	"github.com/example/practicebot/pkg/models"
)

func TestFormatStatsEmptyState(t *testing.T) {
	stats := &models.UserStats{User: &models.User{ChatID: 1}}
	text := formatStats(stats)
	assert.Contains(t, text, "ни одной практики")
}

func TestFormatStatsFull(t *testing.T) {
	avg := 13.4
	last := time.Date(2026, time.August, 30, 9, 15, 0, 0, time.UTC)
	stats := &models.UserStats{
		User:             &models.User{ChatID: 1},
		TotalPractices:   5,
		PracticeDays:     3,
		AvgDuration:      &avg,
		LastPractice:     &last,
		FavoritePractice: "🧘 Медитация для начинающих",
		FavoriteCount:    4,
	}

	text := formatStats(stats)
	assert.Contains(t, text, "Всего практик: 5")
	assert.Contains(t, text, "Дней с практикой: 3")
	assert.Contains(t, text, "Средняя длительность: 13 мин")
	assert.Contains(t, text, "30.08.2026 09:15")
	assert.Contains(t, text, "🧘 Медитация для начинающих (4 раз)")
}

func TestFormatPracticeShowsNumberedSteps(t *testing.T) {
	p := practice.Practice{
		Key:         "breathing",
		Name:        "💨 Дыхательное упражнение",
		Description: "Балансирующее дыхание",
		Steps:       []string{"первый шаг", "второй шаг"},
		Duration:    "5 минут",
	}

	text := formatPractice(p)
	assert.Contains(t, text, "1. первый шаг")
	assert.Contains(t, text, "2. второй шаг")
	assert.Contains(t, text, "⏱ 5 минут")
}

func TestPracticeButtonsCoverBuiltinCatalog(t *testing.T) {
	c := practice.Builtin()
	for _, key := range practiceButtons {
		_, err := c.Get(key)
		assert.NoError(t, err, "button key %q must exist in the built-in catalog", key)
	}
}
