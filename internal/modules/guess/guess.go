// Package guess is a number-guessing game.
package guess

import (
	"context"
	"errors"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/prompt"
	"toolbox/internal/store"
)

const (
	configFile  = "guess_config.json"
	historyFile = "guess_history.json"
)

type Config struct {
	Min      int `json:"min"`
	Max      int `json:"max"`
	Attempts int `json:"attempts"`
}

func DefaultConfig() Config { return Config{Min: 1, Max: 100, Attempts: 7} }

// Limit bounds Min and Max so the range size always fits in an int.
const Limit = 1_000_000_000

func (c *Config) Validate() error {
	if c.Min < -Limit || c.Max > Limit {
		return domain.Invalid("guess.validate", "range must stay within -%d..%d, got %d..%d", Limit, Limit, c.Min, c.Max)
	}
	if c.Min >= c.Max {
		return domain.Invalid("guess.validate", "min must be below max, got %d..%d", c.Min, c.Max)
	}
	if c.Attempts < 1 {
		return domain.Invalid("guess.validate", "attempts must be positive, got %d", c.Attempts)
	}
	return nil
}

// Hint is the answer to a single guess.
type Hint int

const (
	Correct Hint = iota
	TooLow
	TooHigh
)

func (h Hint) String() string {
	switch h {
	case TooLow:
		return "too low"
	case TooHigh:
		return "too high"
	default:
		return "correct"
	}
}

// Game holds one round's state.
type Game struct {
	secret  int
	left    int
	Guesses []int
}

// NewGame starts a round with the given secret.
func NewGame(secret, attempts int) *Game { return &Game{secret: secret, left: attempts} }

// Guess scores n and consumes an attempt.
func (g *Game) Guess(n int) (Hint, error) {
	if g.left == 0 {
		return 0, domain.Invalid("guess", "no attempts left")
	}
	g.left--
	g.Guesses = append(g.Guesses, n)
	switch {
	case n < g.secret:
		return TooLow, nil
	case n > g.secret:
		return TooHigh, nil
	default:
		return Correct, nil
	}
}

// Left reports remaining attempts.
func (g *Game) Left() int { return g.left }

// Record is one history entry.
type Record struct {
	domain.Stamp
	Secret  int   `json:"secret"`
	Guesses []int `json:"guesses"`
	Won     bool  `json:"won"`
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "guess" }

func (m *Module) Summary() string { return "Guess the secret number" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	ui := console.New(env.Out, env.Locale)
	p := prompt.New(env.In, env.Out)
	g := NewGame(cfg.Min+env.Rand.IntN(cfg.Max-cfg.Min+1), cfg.Attempts)

	ui.Title("Guess the number")
	ui.Linef("I'm thinking of a number between %d and %d. You have %d tries.", cfg.Min, cfg.Max, cfg.Attempts)

	won := false
	for g.Left() > 0 && !won {
		n, err := p.Int("Guess", cfg.Min, cfg.Max)
		if errors.Is(err, prompt.ErrNoInput) {
			break
		}
		if err != nil {
			return err
		}
		h, err := g.Guess(n)
		if err != nil {
			return err
		}
		if h == Correct {
			won = true
			ui.Linef("Correct! Got it in %d.", len(g.Guesses))
			break
		}
		ui.Linef("%d is %s, %d left", n, h, g.Left())
	}
	if !won {
		ui.Linef("Out of tries. The number was %d.", g.secret)
	}

	rec := Record{Stamp: env.NewStamp(), Secret: g.secret, Guesses: g.Guesses, Won: won}
	if rec.Guesses == nil {
		rec.Guesses = []int{}
	}
	if err := env.Results.Append(historyFile, rec); err != nil {
		env.Log.Warn("could not save game", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
