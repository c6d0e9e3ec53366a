// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all recognized application settings.
type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	DatabaseURL      string `env:"DATABASE_URL" env-required:"true"`

	// Daily reminder fire time, wall-clock in Timezone.
	Timezone       string `env:"TIMEZONE" env-default:"Europe/Moscow"`
	ReminderHour   int    `env:"REMINDER_HOUR" env-default:"8"`
	ReminderMinute int    `env:"REMINDER_MINUTE" env-default:"0"`

	HTTPAddr string `env:"HTTP_ADDR" env-default:":8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// Optional .xlsx/.csv file with extra practices merged into the catalog.
	PracticeCatalogFile string `env:"PRACTICE_CATALOG_FILE"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be in 0..23, got %d", cfg.ReminderHour)
	}
	if cfg.ReminderMinute < 0 || cfg.ReminderMinute > 59 {
		return nil, fmt.Errorf("REMINDER_MINUTE must be in 0..59, got %d", cfg.ReminderMinute)
	}

	return &cfg, nil
}

// Location resolves the configured timezone identifier.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
