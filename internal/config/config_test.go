package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/practicebot")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", cfg.Timezone)
	assert.Equal(t, 8, cfg.ReminderHour)
	assert.Equal(t, 0, cfg.ReminderMinute)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingToken(t *testing.T) {
	// t.Setenv registers restoration; the unset makes the variable truly absent.
	t.Setenv("TELEGRAM_BOT_TOKEN", "x")
	require.NoError(t, os.Unsetenv("TELEGRAM_BOT_TOKEN"))
	t.Setenv("DATABASE_URL", "postgres://localhost/practicebot")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadReminderTime(t *testing.T) {
	setRequired(t)
	t.Setenv("REMINDER_HOUR", "25")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("REMINDER_HOUR", "8")
	t.Setenv("REMINDER_MINUTE", "75")
	_, err = Load()
	require.Error(t, err)
}

func TestLocation(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "Europe/Berlin")

	cfg, err := Load()
	require.NoError(t, err)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	cfg.Timezone = "Nowhere/Invalid"
	_, err = cfg.Location()
	require.Error(t, err)
}
