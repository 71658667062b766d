// Package tip splits a bill and its tip between diners.
package tip

import (
	"context"
	"math"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile = "tip_config.json"
	resultFile = "tip_result.json"
)

type Config struct {
	Bill       float64 `json:"bill"`
	TipPercent float64 `json:"tip_percent"`
	People     int     `json:"people"`
}

func DefaultConfig() Config { return Config{Bill: 50, TipPercent: 15, People: 2} }

func (c *Config) Validate() error {
	switch {
	case c.Bill < 0:
		return domain.Invalid("tip.validate", "bill cannot be negative, got %v", c.Bill)
	case c.TipPercent < 0 || c.TipPercent > 100:
		return domain.Invalid("tip.validate", "tip percent must be within 0..100, got %v", c.TipPercent)
	case c.People < 1:
		return domain.Invalid("tip.validate", "people must be at least 1, got %d", c.People)
	}
	return nil
}

type Result struct {
	domain.Stamp
	Config
	Tip       float64 `json:"tip"`
	Total     float64 `json:"total"`
	PerPerson float64 `json:"per_person"`
}

// Split computes the tip, the total, and each person's share, in cents.
func Split(c Config) (tip, total, perPerson float64) {
	tip = round2(c.Bill * c.TipPercent / 100)
	total = round2(c.Bill + tip)
	perPerson = round2(total / float64(c.People))
	return tip, total, perPerson
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "tip" }

func (m *Module) Summary() string { return "Tip calculator with bill splitting" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	res := Result{Stamp: env.NewStamp(), Config: cfg}
	res.Tip, res.Total, res.PerPerson = Split(cfg)

	ui := console.New(env.Out, env.Locale)
	ui.Title("Tip")
	ui.Field("Bill", ui.Money(cfg.Bill))
	ui.Field("Tip", ui.Money(res.Tip)+" ("+ui.Number(cfg.TipPercent, 1)+"%)")
	ui.Field("Total", ui.Money(res.Total))
	if cfg.People > 1 {
		ui.Field("Per person", ui.Money(res.PerPerson))
	}

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
