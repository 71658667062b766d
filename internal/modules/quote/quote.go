// Package quote picks random quotes from a user-editable collection.
package quote

import (
	"context"
	"strings"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	quotesFile  = "quotes.json"
	configFile  = "quote_config.json"
	historyFile = "quote_history.json"
)

type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Collection is the seeded quotes file.
type Collection struct {
	Quotes []Quote `json:"quotes"`
}

func DefaultCollection() Collection {
	return Collection{Quotes: []Quote{
		{Text: "Simplicity is prerequisite for reliability.", Author: "Edsger W. Dijkstra", Category: "programming"},
		{Text: "Premature optimization is the root of all evil.", Author: "Donald Knuth", Category: "programming"},
		{Text: "Clear is better than clever.", Author: "Rob Pike", Category: "programming"},
		{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "motivation"},
		{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela", Category: "motivation"},
		{Text: "Well begun is half done.", Author: "Aristotle", Category: "wisdom"},
		{Text: "Knowing yourself is the beginning of all wisdom.", Author: "Aristotle", Category: "wisdom"},
	}}
}

func (c *Collection) Validate() error {
	if len(c.Quotes) == 0 {
		return domain.Invalid("quote.validate", "the collection is empty")
	}
	return nil
}

type Config struct {
	Category string `json:"category"` // empty matches every category
	Count    int    `json:"count"`
}

func DefaultConfig() Config { return Config{Count: 1} }

func (c *Config) Validate() error {
	if c.Count < 1 || c.Count > 50 {
		return domain.Invalid("quote.validate", "count must be within 1..50, got %d", c.Count)
	}
	return nil
}

type Record struct {
	domain.Stamp
	Quote
}

// Filter keeps quotes in category, case-insensitively.
func Filter(qs []Quote, category string) []Quote {
	if category == "" {
		return qs
	}
	var out []Quote
	for _, q := range qs {
		if strings.EqualFold(q.Category, category) {
			out = append(out, q)
		}
	}
	return out
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "quote" }

func (m *Module) Summary() string { return "Random quote generator" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	coll, _, err := store.LoadOrInit(env.Results.Path(quotesFile), DefaultCollection)
	if err != nil {
		return err
	}
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	pool := Filter(coll.Quotes, cfg.Category)
	if len(pool) == 0 {
		return domain.Invalid("quote.run", "no quotes in category %q", cfg.Category)
	}

	ui := console.New(env.Out, env.Locale)
	for i := 0; i < cfg.Count; i++ {
		q := pool[env.Rand.IntN(len(pool))]
		ui.Linef("%q", q.Text)
		ui.Linef("    - %s", q.Author)

		if err := env.Results.Append(historyFile, Record{Stamp: env.NewStamp(), Quote: q}); err != nil {
			env.Log.Warn("could not save result", "err", err)
		}
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
