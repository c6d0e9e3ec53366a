package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/practicebot/internal/database"
	"github.com/example/practicebot/internal/practice"
	"github.com/example/practicebot/pkg/models"
)

// handleMessage routes one inbound message. Store failures degrade to a
// "try again" reply; they never escape into the update loop.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	user, err := b.touchUser(ctx, msg, text)
	if err != nil {
		b.log.Error("user upsert failed", zap.Int64("chat_id", chatID), zap.Error(err))
		b.send(chatID, tryAgainText)
		return
	}

	switch {
	case strings.HasPrefix(text, "/start"):
		b.sendWithKeyboard(chatID, greetingText(user), &mainKeyboard)

	case text == btnStartPractice:
		b.sendWithKeyboard(chatID, "Выберите практику:", &practiceKeyboard)

	case text == btnBack:
		b.sendWithKeyboard(chatID, "Главное меню:", &mainKeyboard)

	case text == btnAllPractices:
		b.send(chatID, formatPracticeList(b.catalog.All()))

	case text == btnStats:
		b.handleStats(ctx, chatID)

	case text == btnQuote:
		b.send(chatID, practice.RandomQuote())

	case text == btnReminders:
		b.handleToggleReminders(ctx, chatID, user.RemindersEnabled)

	case text == btnAbout:
		b.send(chatID, aboutText)

	default:
		if key, ok := practiceButtons[text]; ok {
			b.handlePractice(ctx, chatID, key)
			return
		}
		b.sendWithKeyboard(chatID, "Я вас не понял 🙈 Выберите действие на клавиатуре:", &mainKeyboard)
	}
}

// touchUser upserts the user and records the action label, mirroring every
// inbound interaction into the store.
func (b *Bot) touchUser(ctx context.Context, msg *tgbotapi.Message, action string) (*models.User, error) {
	var profile database.UserProfile
	if msg.From != nil {
		profile = database.UserProfile{
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
	}

	user, err := b.users.Upsert(ctx, msg.Chat.ID, profile)
	if err != nil {
		return nil, err
	}

	if action != "" {
		if err := b.users.Update(ctx, msg.Chat.ID, database.UserUpdate{LastAction: &action}); err != nil {
			// The interaction still proceeds; only the action label is lost.
			b.log.Warn("failed to record last action",
				zap.Int64("chat_id", msg.Chat.ID),
				zap.Error(err),
			)
		}
	}
	return user, nil
}

// handlePractice shows the practice card and records a completed session.
func (b *Bot) handlePractice(ctx context.Context, chatID int64, key string) {
	p, err := b.catalog.Get(key)
	if err != nil {
		b.log.Warn("unknown practice key", zap.String("key", key))
		b.send(chatID, tryAgainText)
		return
	}

	b.send(chatID, formatPractice(p))

	duration := p.DurationMinutes
	entry := database.PracticeEntry{
		PracticeType:    p.Key,
		PracticeName:    p.Name,
		DurationMinutes: &duration,
	}
	if err := b.practices.Log(ctx, chatID, entry); err != nil {
		b.log.Error("failed to log practice",
			zap.Int64("chat_id", chatID),
			zap.String("practice", p.Key),
			zap.Error(err),
		)
		b.send(chatID, tryAgainText)
		return
	}

	b.send(chatID, "✅ Практика записана! Отличная работа 🙏")
}

func (b *Bot) handleStats(ctx context.Context, chatID int64) {
	stats, err := b.stats.GetUserStats(ctx, chatID)
	if err != nil {
		b.log.Error("failed to get stats", zap.Int64("chat_id", chatID), zap.Error(err))
		b.send(chatID, tryAgainText)
		return
	}
	b.send(chatID, formatStats(stats))
}

func (b *Bot) handleToggleReminders(ctx context.Context, chatID int64, current bool) {
	enabled := !current
	if err := b.users.SetReminders(ctx, chatID, enabled); err != nil {
		b.log.Error("failed to toggle reminders", zap.Int64("chat_id", chatID), zap.Error(err))
		b.send(chatID, tryAgainText)
		return
	}
	b.send(chatID, remindersToggledText(enabled))
}
