// Package change breaks an amount down into notes and coins.
package change

import (
	"context"
	"fmt"
	"math"
	"sort"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile = "change_config.json"
	resultFile = "change_result.json"
)

type Config struct {
	Amount        float64   `json:"amount"`
	Denominations []float64 `json:"denominations"`
}

func DefaultConfig() Config {
	return Config{
		Amount:        87.65,
		Denominations: []float64{100, 50, 20, 10, 5, 2, 1, 0.5, 0.2, 0.1, 0.05},
	}
}

// MaxAmount caps the amount and each denomination so cents fit in an int64.
const MaxAmount = 1e12

func (c *Config) Validate() error {
	if !(c.Amount >= 0 && c.Amount <= MaxAmount) {
		return domain.Invalid("change.validate", "amount must be within 0..%.0f, got %v", MaxAmount, c.Amount)
	}
	if len(c.Denominations) == 0 {
		return domain.Invalid("change.validate", "at least one denomination is required")
	}
	seen := make(map[int64]bool, len(c.Denominations))
	for _, d := range c.Denominations {
		if !(d <= MaxAmount) {
			return domain.Invalid("change.validate", "denomination must be at most %.0f, got %v", MaxAmount, d)
		}
		cents := toCents(d)
		if cents <= 0 {
			return domain.Invalid("change.validate", "denominations must be at least 0.01, got %v", d)
		}
		if seen[cents] {
			return domain.Invalid("change.validate", "duplicate denomination %v", d)
		}
		seen[cents] = true
	}
	return nil
}

// Piece is how many of one denomination are handed out.
type Piece struct {
	Denomination float64 `json:"denomination"`
	Count        int64   `json:"count"`
}

type Result struct {
	domain.Stamp
	Amount    float64 `json:"amount"`
	Pieces    []Piece `json:"pieces"`
	Remainder float64 `json:"remainder"`
}

// Breakdown greedily hands out the largest denominations first. Arithmetic
// is done in whole cents; the remainder is whatever is smaller than the
// smallest denomination.
func Breakdown(amount float64, denominations []float64) (pieces []Piece, remainder float64) {
	ds := make([]int64, 0, len(denominations))
	for _, d := range denominations {
		ds = append(ds, toCents(d))
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] > ds[j] })

	left := toCents(amount)
	for _, d := range ds {
		if n := left / d; n > 0 {
			pieces = append(pieces, Piece{Denomination: float64(d) / 100, Count: n})
			left -= n * d
		}
	}
	return pieces, float64(left) / 100
}

func toCents(v float64) int64 { return int64(math.Round(v * 100)) }

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "change" }

func (m *Module) Summary() string { return "Break an amount into notes and coins" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	path := env.Results.Path(configFile)
	cfg, created, err := store.LoadOrInit(path, DefaultConfig)
	if err != nil {
		return err
	}
	if created {
		env.Log.Info("seeded config", "path", path)
		return domain.ErrEditAndRerun
	}

	res := Result{Stamp: env.NewStamp(), Amount: cfg.Amount}
	res.Pieces, res.Remainder = Breakdown(cfg.Amount, cfg.Denominations)

	ui := console.New(env.Out, env.Locale)
	ui.Title("Change for " + ui.Money(cfg.Amount))
	for _, p := range res.Pieces {
		ui.Field(ui.Money(p.Denomination), fmt.Sprintf("x %d", p.Count))
	}
	if res.Remainder > 0 {
		ui.Warn("Remainder " + ui.Money(res.Remainder) + " cannot be paid out")
	}

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
