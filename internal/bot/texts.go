package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/practicebot/internal/practice"
	"github.com/example/practicebot/pkg/models"
)

// Main menu button labels.
const (
	btnStartPractice = "🎯 Начать практику"
	btnStats         = "📊 Моя статистика"
	btnQuote         = "💫 Случайная цитата"
	btnReminders     = "⏰ Напомнить о практике"
	btnAbout         = "ℹ️ О боте"

	btnMeditation   = "🧘 Медитация"
	btnMorningYoga  = "🌅 Утренняя йога"
	btnBreathing    = "💨 Дыхание"
	btnAllPractices = "📋 Все практики"
	btnBack         = "🔙 Назад"
)

// practiceButtons maps practice-menu labels to catalog keys.
var practiceButtons = map[string]string{
	btnMeditation:  "meditation",
	btnMorningYoga: "morning_yoga",
	btnBreathing:   "breathing",
}

const reminderText = "🌅 Доброе утро! Время для практики 🎯"

const aboutText = `ℹ️ Этот бот помогает выстроить ежедневную практику:
медитация, йога и дыхательные упражнения.

🎯 Выбирайте практику — бот запишет её в ваш дневник.
📊 Статистика покажет ваш прогресс.
⏰ Включите напоминания, чтобы не пропускать практику.`

const tryAgainText = "⚠️ Что-то пошло не так. Попробуйте ещё раз."

var mainKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnStartPractice),
		tgbotapi.NewKeyboardButton(btnStats),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnQuote),
		tgbotapi.NewKeyboardButton(btnReminders),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnAbout),
	),
)

var practiceKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnMeditation),
		tgbotapi.NewKeyboardButton(btnMorningYoga),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnBreathing),
		tgbotapi.NewKeyboardButton(btnAllPractices),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnBack),
	),
)

func init() {
	mainKeyboard.ResizeKeyboard = true
	practiceKeyboard.ResizeKeyboard = true
}

func greetingText(user *models.User) string {
	return fmt.Sprintf(
		"Привет, %s! 🙏\n\nЯ помогу вам практиковать каждый день.\nВыберите, с чего начнём:",
		user.DisplayName(),
	)
}

// formatPractice renders one catalog entry for the chat.
func formatPractice(p practice.Practice) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString("\n\n")
	sb.WriteString(p.Description)
	sb.WriteString("\n\n")
	for i, step := range p.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	sb.WriteString("\n⏱ ")
	sb.WriteString(p.Duration)
	return sb.String()
}

func formatPracticeList(all []practice.Practice) string {
	var sb strings.Builder
	sb.WriteString("📋 Все практики:\n\n")
	for _, p := range all {
		sb.WriteString(fmt.Sprintf("%s — %s (%s)\n", p.Name, p.Description, p.Duration))
	}
	return sb.String()
}

// formatStats renders the aggregated statistics. A user without events gets
// an encouraging empty-state message instead of zeros.
func formatStats(stats *models.UserStats) string {
	if stats.TotalPractices == 0 {
		return "📊 Вы ещё не записали ни одной практики.\nНажмите «🎯 Начать практику» — и первая запись появится здесь!"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Статистика — %s\n\n", stats.User.DisplayName()))
	sb.WriteString(fmt.Sprintf("Всего практик: %d\n", stats.TotalPractices))
	sb.WriteString(fmt.Sprintf("Дней с практикой: %d\n", stats.PracticeDays))
	if stats.AvgDuration != nil {
		sb.WriteString(fmt.Sprintf("Средняя длительность: %.0f мин\n", *stats.AvgDuration))
	}
	if stats.LastPractice != nil {
		sb.WriteString(fmt.Sprintf("Последняя практика: %s\n", stats.LastPractice.Format("02.01.2006 15:04")))
	}
	if stats.FavoritePractice != "" {
		sb.WriteString(fmt.Sprintf("Любимая практика: %s (%d раз)\n", stats.FavoritePractice, stats.FavoriteCount))
	}
	return sb.String()
}

func remindersToggledText(enabled bool) string {
	if enabled {
		return "⏰ Напоминания включены! Каждое утро я напомню вам о практике."
	}
	return "🔕 Напоминания выключены. Включить их можно той же кнопкой."
}
