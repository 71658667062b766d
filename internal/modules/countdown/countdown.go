// Package countdown runs a labelled countdown timer.
package countdown

import (
	"context"
	"time"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile  = "countdown_config.json"
	historyFile = "countdown_history.json"
)

type Config struct {
	Label   string `json:"label"`
	Seconds int    `json:"seconds"`
}

func DefaultConfig() Config { return Config{Label: "Tea", Seconds: 10} }

func (c *Config) Validate() error {
	if c.Seconds < 1 || c.Seconds > 24*60*60 {
		return domain.Invalid("countdown.validate", "seconds must be within 1..86400, got %d", c.Seconds)
	}
	return nil
}

type Result struct {
	domain.Stamp
	Label     string `json:"label"`
	Seconds   int    `json:"seconds"`
	Remaining int    `json:"remaining"`
	Completed bool   `json:"completed"`
}

// Countdown calls onTick with the remaining count once per interval until it
// reaches zero or ctx is done. It returns the count left when it stopped.
func Countdown(ctx context.Context, from int, interval time.Duration, onTick func(remaining int)) (int, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	remaining := from
	onTick(remaining)
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return remaining, err
		}
		select {
		case <-ctx.Done():
			return remaining, ctx.Err()
		case <-ticker.C:
			remaining--
			onTick(remaining)
		}
	}
	return 0, nil
}

type Module struct {
	interval time.Duration
}

func New() *Module { return &Module{interval: time.Second} }

// WithInterval changes the tick length, mostly for tests.
func (m *Module) WithInterval(d time.Duration) *Module {
	m.interval = d
	return m
}

func (m *Module) Name() domain.ModuleName { return "countdown" }

func (m *Module) Summary() string { return "Countdown timer" }

func (m *Module) Run(ctx context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title(cfg.Label)
	left, err := Countdown(ctx, cfg.Seconds, m.interval, func(remaining int) {
		ui.Linef("%d", remaining)
	})

	res := Result{
		Stamp:     env.NewStamp(),
		Label:     cfg.Label,
		Seconds:   cfg.Seconds,
		Remaining: left,
		Completed: err == nil,
	}
	if res.Completed {
		ui.Title("Time's up!")
	} else {
		ui.Warn("Cancelled")
	}

	if werr := env.Results.Append(historyFile, res); werr != nil {
		env.Log.Warn("could not save result", "err", werr)
	}
	return err
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
