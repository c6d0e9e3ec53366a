package practice

import "math/rand"

// MeditationQuotes is the quote pool for the "случайная цитата" button.
var MeditationQuotes = []string{
	"«Ты — небо. Все остальное — это просто погода.» — Пема Чодрон",
	"«Медитация — это не о том, чтобы избавиться от мыслей, а о том, чтобы наблюдать их без осуждения.»",
	"«Самый важный момент для медитации — сейчас.»",
	"«В тишине ума рождается мудрость.» — Шри Юктешвар",
	"«Практика медитации — это подарок, который вы делаете себе каждый день.»",
}

// RandomQuote returns a random meditation quote.
func RandomQuote() string {
	return MeditationQuotes[rand.Intn(len(MeditationQuotes))]
}
