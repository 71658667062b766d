// Package dice rolls polyhedral dice and computes exact sum distributions.
package dice

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile  = "dice_config.json"
	historyFile = "dice_history.json"

	// maxOutcomes caps the brute-force distribution walk.
	maxOutcomes = 1_000_000
)

type Config struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Rolls int `json:"rolls"`
}

func DefaultConfig() Config { return Config{Count: 2, Sides: 6, Rolls: 1} }

func (c *Config) Validate() error {
	switch {
	case c.Count < 1 || c.Count > 100:
		return domain.Invalid("dice.validate", "count must be within 1..100, got %d", c.Count)
	case c.Sides < 2 || c.Sides > 1000:
		return domain.Invalid("dice.validate", "sides must be within 2..1000, got %d", c.Sides)
	case c.Rolls < 1 || c.Rolls > 100:
		return domain.Invalid("dice.validate", "rolls must be within 1..100, got %d", c.Rolls)
	}
	return nil
}

// Notation renders the config as e.g. "2d6".
func (c Config) Notation() string { return fmt.Sprintf("%dd%d", c.Count, c.Sides) }

type Result struct {
	domain.Stamp
	Dice       string  `json:"dice"`
	Rolls      [][]int `json:"rolls"`
	Totals     []int   `json:"totals"`
	GrandTotal int     `json:"grand_total"`
}

// Roll throws count dice with the given number of sides.
func Roll(r *rand.Rand, count, sides int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = r.IntN(sides) + 1
	}
	return out
}

// Sum adds up faces.
func Sum(faces []int) int {
	total := 0
	for _, f := range faces {
		total += f
	}
	return total
}

// Distribution enumerates every outcome of count dice and counts the ways to
// reach each sum. ok is false when the walk would exceed maxOutcomes.
func Distribution(count, sides int) (ways map[int]uint64, ok bool) {
	if math.Pow(float64(sides), float64(count)) > maxOutcomes {
		return nil, false
	}
	ways = make(map[int]uint64)
	var walk func(left, sum int)
	walk = func(left, sum int) {
		if left == 0 {
			ways[sum]++
			return
		}
		for f := 1; f <= sides; f++ {
			walk(left-1, sum+f)
		}
	}
	walk(count, 0)
	return ways, true
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "dice" }

func (m *Module) Summary() string { return "Dice roller with exact sum probabilities" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	res := Result{Stamp: env.NewStamp(), Dice: cfg.Notation()}
	for i := 0; i < cfg.Rolls; i++ {
		faces := Roll(env.Rand, cfg.Count, cfg.Sides)
		total := Sum(faces)
		res.Rolls = append(res.Rolls, faces)
		res.Totals = append(res.Totals, total)
		res.GrandTotal += total
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title("Rolling " + res.Dice)
	for i, faces := range res.Rolls {
		ui.Field(fmt.Sprintf("Roll %d", i+1), fmt.Sprintf("%v = %d", faces, res.Totals[i]))
	}
	if cfg.Rolls > 1 {
		ui.Field("Grand total", res.GrandTotal)
	}

	if ways, ok := Distribution(cfg.Count, cfg.Sides); ok {
		outcomes := math.Pow(float64(cfg.Sides), float64(cfg.Count))
		sums := make([]int, 0, len(ways))
		for s := range ways {
			sums = append(sums, s)
		}
		sort.Ints(sums)
		ui.Linef("")
		ui.Title("Probability of each sum")
		for _, s := range sums {
			ui.Field(fmt.Sprint(s), ui.Number(100*float64(ways[s])/outcomes, 2)+"%")
		}
	}

	if err := env.Results.Append(historyFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
