// Package practice holds the static practice content catalog: the built-in
// practices, the quote list, and an importer for extending the catalog from
// Excel/CSV files.
package practice

import "fmt"

// Practice describes one guided practice in the catalog.
type Practice struct {
	Key             string
	Name            string
	Description     string
	Steps           []string
	Duration        string // human-readable label shown to the user
	DurationMinutes int    // recorded with the practice event
}

// Catalog is an ordered collection of practices keyed by their short key.
type Catalog struct {
	byKey map[string]Practice
	order []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byKey: make(map[string]Practice)}
}

// Builtin returns the catalog preloaded with the standard practices.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, p := range builtinPractices {
		c.Add(p)
	}
	return c
}

// Add inserts or replaces a practice. Insertion order is preserved for
// listing; replacing keeps the original position.
func (c *Catalog) Add(p Practice) {
	if _, exists := c.byKey[p.Key]; !exists {
		c.order = append(c.order, p.Key)
	}
	c.byKey[p.Key] = p
}

// Get returns the practice for a key.
func (c *Catalog) Get(key string) (Practice, error) {
	p, ok := c.byKey[key]
	if !ok {
		return Practice{}, fmt.Errorf("unknown practice: %q", key)
	}
	return p, nil
}

// All returns every practice in insertion order.
func (c *Catalog) All() []Practice {
	out := make([]Practice, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

// Len returns the number of practices in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

var builtinPractices = []Practice{
	{
		Key:         "meditation",
		Name:        "🧘 Медитация для начинающих",
		Description: "Базовая практика осознанности",
		Steps: []string{
			"Сядьте в удобное положение с прямой спиной",
			"Закройте глаза и сделайте 3 глубоких вдоха",
			"Сосредоточьтесь на дыхании",
			"Если ум отвлекается, мягко возвращайте внимание к дыханию",
			"Практикуйте 5-10 минут",
		},
		Duration:        "10 минут",
		DurationMinutes: 10,
	},
	{
		Key:         "morning_yoga",
		Name:        "🌅 Утренний комплекс йоги",
		Description: "Энергизирующая практика на утро",
		Steps: []string{
			"Сурья Намаскар - 5 кругов",
			"Поза Горы - 1 минута",
			"Поза Воина I - 30 сек на каждую сторону",
			"Поза Дерева - 1 минута на каждую сторону",
			"Наклон вперёд - 1 минута",
			"Шавасана - 3 минуты",
		},
		Duration:        "15 минут",
		DurationMinutes: 15,
	},
	{
		Key:         "breathing",
		Name:        "💨 Дыхательное упражнение",
		Description: "Балансирующее дыхание",
		Steps: []string{
			"Сядьте удобно, закройте глаза",
			"Правая рука: большой палец на правую ноздрю",
			"Закройте правую ноздрю, вдох через левую",
			"Закройте левую, откройте правую, выдох",
			"Повторите 10-15 циклов",
		},
		Duration:        "5 минут",
		DurationMinutes: 5,
	},
}
