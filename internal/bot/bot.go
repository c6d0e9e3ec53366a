// Package bot implements the Telegram transport: the update loop, the
// keyboard-driven handlers, and outbound reminder delivery.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/practicebot/internal/database"
	"github.com/example/practicebot/internal/practice"
)

// Bot wires Telegram updates to the store and the practice catalog.
type Bot struct {
	api       *tgbotapi.BotAPI
	users     *database.UserRepository
	practices *database.PracticeRepository
	stats     *database.StatsRepository
	catalog   *practice.Catalog
	log       *zap.Logger
}

// New creates a new bot instance
func New(
	token string,
	users *database.UserRepository,
	practices *database.PracticeRepository,
	stats *database.StatsRepository,
	catalog *practice.Catalog,
	log *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram client: %w", err)
	}
	api.Debug = false

	return &Bot{
		api:       api,
		users:     users,
		practices: practices,
		stats:     stats,
		catalog:   catalog,
		log:       log,
	}, nil
}

// Run starts the long-poll update loop and blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info("bot update loop stopped")
			return nil
		case upd := <-updates:
			if upd.Message == nil {
				continue
			}
			b.handleMessage(ctx, upd.Message)
		}
	}
}

// SendReminder delivers the daily reminder to one chat. This makes Bot
// satisfy scheduler.Notifier.
func (b *Bot) SendReminder(ctx context.Context, chatID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, reminderText)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("reminder not delivered to %d: %w", chatID, err)
	}
	return nil
}

// send delivers a plain text message, logging delivery failures instead of
// propagating them: a lost message must not break the handler loop.
func (b *Bot) send(chatID int64, text string) {
	b.sendWithKeyboard(chatID, text, nil)
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard *tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
