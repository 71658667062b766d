// Package fibonacci lists the Fibonacci sequence.
package fibonacci

import (
	"context"
	"fmt"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile = "fibonacci_config.json"
	resultFile = "fibonacci_result.json"

	// MaxN is the largest index whose value fits in a uint64.
	MaxN = 93
)

type Config struct {
	N int `json:"n"`
}

func DefaultConfig() Config { return Config{N: 10} }

func (c *Config) Validate() error {
	if c.N < 0 || c.N > MaxN {
		return domain.Invalid("fibonacci.validate", "n must be within 0..%d, got %d", MaxN, c.N)
	}
	return nil
}

type Result struct {
	domain.Stamp
	N        int      `json:"n"`
	Value    uint64   `json:"value"`
	Sequence []uint64 `json:"sequence"`
}

// Sequence returns F(0) through F(n) computed iteratively.
func Sequence(n int) []uint64 {
	if n < 0 {
		return nil
	}
	seq := make([]uint64, n+1)
	if n >= 1 {
		seq[1] = 1
	}
	for i := 2; i <= n; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq
}

// Nth returns F(n).
func Nth(n int) uint64 {
	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "fibonacci" }

func (m *Module) Summary() string { return "Fibonacci sequence up to n" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	seq := Sequence(cfg.N)
	res := Result{Stamp: env.NewStamp(), N: cfg.N, Value: seq[cfg.N], Sequence: seq}

	ui := console.New(env.Out, env.Locale)
	ui.Title("Fibonacci")
	ui.Field(fmt.Sprintf("F(%d)", cfg.N), res.Value)
	ui.Linef("%v", seq)

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
