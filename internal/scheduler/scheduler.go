// Package scheduler runs the daily reminder loop: once per day at the
// configured wall-clock time it snapshots the subscriber list and dispatches
// a reminder to each subscriber.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// SubscriberStore lists users who opted into daily reminders.
type SubscriberStore interface {
	ListActiveSubscribers(ctx context.Context) ([]int64, error)
}

// Notifier delivers one reminder to one chat. A returned error means the
// reminder was not delivered; the scheduler logs it and moves on.
type Notifier interface {
	SendReminder(ctx context.Context, chatID int64) error
}

// Scheduler fires the reminder dispatch once per day at a fixed local time.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     SubscriberStore
	notifier  Notifier
	log       *zap.Logger
	fireAt    string
}

// New creates a scheduler that fires daily at hour:minute in the given
// location. Firing is wall-clock local, so daylight-saving shifts are
// respected.
func New(store SubscriberStore, notifier Notifier, log *zap.Logger, loc *time.Location, hour, minute int) (*Scheduler, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid reminder time %02d:%02d", hour, minute)
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		store:     store,
		notifier:  notifier,
		log:       log,
		fireAt:    fmt.Sprintf("%02d:%02d", hour, minute),
	}, nil
}

// Start registers the daily job and begins running it in the background.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(1).Day().At(s.fireAt).Do(func() {
		s.Dispatch(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily reminder: %w", err)
	}

	s.scheduler.StartAsync()
	s.log.Info("reminder scheduler started", zap.String("fire_at", s.fireAt))
	return nil
}

// Stop terminates the timer. In-flight dispatch is best-effort and is not
// waited for beyond the current iteration.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("reminder scheduler stopped")
}

// Dispatch performs one reminder cycle: snapshot the subscribers, then
// notify each independently. A failure for one subscriber never aborts the
// rest, and there is no retry until the next day's tick.
func (s *Scheduler) Dispatch(ctx context.Context) {
	subscribers, err := s.store.ListActiveSubscribers(ctx)
	if err != nil {
		s.log.Error("failed to list reminder subscribers", zap.Error(err))
		return
	}
	if len(subscribers) == 0 {
		s.log.Debug("no reminder subscribers")
		return
	}

	sent := 0
	for _, chatID := range subscribers {
		if ctx.Err() != nil {
			s.log.Warn("reminder dispatch interrupted by shutdown",
				zap.Int("sent", sent),
				zap.Int("total", len(subscribers)),
			)
			return
		}
		if err := s.notifier.SendReminder(ctx, chatID); err != nil {
			s.log.Error("failed to send reminder",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.log.Info("daily reminders dispatched",
		zap.Int("sent", sent),
		zap.Int("total", len(subscribers)),
	)
}
