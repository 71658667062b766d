// Package caesar applies the Caesar shift cipher to text.
package caesar

import (
	"context"
	"strings"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile = "caesar_config.json"
	resultFile = "caesar_result.json"
)

// Mode selects the direction of the shift.
type Mode string

const (
	Encrypt Mode = "encrypt"
	Decrypt Mode = "decrypt"
)

type Config struct {
	Text  string `json:"text"`
	Shift int    `json:"shift"`
	Mode  Mode   `json:"mode"`
}

func DefaultConfig() Config { return Config{Text: "Hello, World!", Shift: 3, Mode: Encrypt} }

func (c *Config) Validate() error {
	if c.Mode != Encrypt && c.Mode != Decrypt {
		return domain.Invalid("caesar.validate", "mode must be %q or %q, got %q", Encrypt, Decrypt, c.Mode)
	}
	return nil
}

type Result struct {
	domain.Stamp
	Mode   Mode   `json:"mode"`
	Shift  int    `json:"shift"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Normalize reduces any shift, negative included, into 0..25.
func Normalize(shift int) int { return ((shift % 26) + 26) % 26 }

// Shift rotates ASCII letters by shift places, preserving case. Every other
// rune passes through untouched.
func Shift(text string, shift int) string {
	s := Normalize(shift)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			r = 'a' + (r-'a'+rune(s))%26
		case r >= 'A' && r <= 'Z':
			r = 'A' + (r-'A'+rune(s))%26
		}
		b.WriteRune(r)
	}
	return b.String()
}

func EncryptText(text string, shift int) string { return Shift(text, shift) }

func DecryptText(text string, shift int) string { return Shift(text, -Normalize(shift)) }

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "caesar" }

func (m *Module) Summary() string { return "Caesar cipher encrypt/decrypt" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	res := Result{Stamp: env.NewStamp(), Mode: cfg.Mode, Shift: Normalize(cfg.Shift), Input: cfg.Text}
	if cfg.Mode == Encrypt {
		res.Output = EncryptText(cfg.Text, cfg.Shift)
	} else {
		res.Output = DecryptText(cfg.Text, cfg.Shift)
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title("Caesar " + string(cfg.Mode))
	ui.Field("Shift", res.Shift)
	ui.Field("Input", res.Input)
	ui.Field("Output", res.Output)

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
