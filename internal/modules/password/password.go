// Package password generates random passwords. Only an argon2id hash of each
// generated password is kept on disk, never the plaintext.
package password

import (
	"context"
	"fmt"

	"toolbox/internal/console"
	"toolbox/internal/crypto"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile  = "password_config.json"
	historyFile = "password_history.json"
)

type Config struct {
	Length  int  `json:"length"`
	Count   int  `json:"count"`
	Lower   bool `json:"lower"`
	Upper   bool `json:"upper"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

func DefaultConfig() Config {
	return Config{Length: 16, Count: 1, Lower: true, Upper: true, Digits: true, Symbols: true}
}

func (c *Config) Validate() error {
	switch {
	case c.Length < 4 || c.Length > 128:
		return domain.Invalid("password.validate", "length must be within 4..128, got %d", c.Length)
	case c.Count < 1 || c.Count > 20:
		return domain.Invalid("password.validate", "count must be within 1..20, got %d", c.Count)
	case len(c.Classes()) == 0:
		return domain.Invalid("password.validate", "enable at least one character class")
	}
	return nil
}

// Classes returns the enabled character sets.
func (c Config) Classes() []string {
	var out []string
	if c.Lower {
		out = append(out, crypto.Lower)
	}
	if c.Upper {
		out = append(out, crypto.Upper)
	}
	if c.Digits {
		out = append(out, crypto.Digits)
	}
	if c.Symbols {
		out = append(out, crypto.Symbols)
	}
	return out
}

// Record is one history entry.
type Record struct {
	domain.Stamp
	Length      int             `json:"length"`
	Strength    crypto.Strength `json:"strength"`
	EntropyBits float64         `json:"entropy_bits"`
	Hash        string          `json:"hash"`
	Fingerprint string          `json:"fingerprint"`
}

type Module struct {
	params crypto.Argon2Params
}

func New() *Module { return &Module{params: crypto.DefaultArgon2Params()} }

// WithParams overrides the argon2id tunables.
func (m *Module) WithParams(p crypto.Argon2Params) *Module {
	m.params = p
	return m
}

func (m *Module) Name() domain.ModuleName { return "password" }

func (m *Module) Summary() string { return "Random password generator" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	classes := cfg.Classes()
	pool := 0
	for _, c := range classes {
		pool += len(c)
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title("Passwords")
	for i := 0; i < cfg.Count; i++ {
		pw, err := crypto.Generate(cfg.Length, classes...)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		hash, err := crypto.HashPassword(pw, m.params)
		if err != nil {
			crypto.Wipe(pw)
			return fmt.Errorf("hash password: %w", err)
		}
		rec := Record{
			Stamp:       env.NewStamp(),
			Length:      len(pw),
			Strength:    crypto.Classify(pw),
			EntropyBits: crypto.EntropyBits(len(pw), pool),
			Hash:        hash,
			Fingerprint: crypto.Fingerprint([]byte(hash)),
		}
		ui.Linef("%s  %s, %s bits", pw, rec.Strength, ui.Number(rec.EntropyBits, 1))
		crypto.Wipe(pw)

		if err := env.Results.Append(historyFile, rec); err != nil {
			env.Log.Warn("could not save result", "err", err)
		}
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
