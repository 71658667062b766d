// Package bmi computes the body mass index from weight and height.
package bmi

import (
	"context"
	"math"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile  = "bmi_config.json"
	historyFile = "bmi_history.json"
)

// Category is a BMI classification band.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Config is the user-edited input.
type Config struct {
	WeightKg float64 `json:"weight_kg"`
	HeightM  float64 `json:"height_m"`
}

// DefaultConfig seeds a first run.
func DefaultConfig() Config { return Config{WeightKg: 70, HeightM: 1.75} }

// Validate enforces positive weight and height.
func (c *Config) Validate() error {
	if c.WeightKg <= 0 || c.HeightM <= 0 {
		return domain.Invalid("bmi.validate", "weight and height must be positive, got %v kg and %v m", c.WeightKg, c.HeightM)
	}
	return nil
}

// Result is one history record.
type Result struct {
	domain.Stamp
	WeightKg float64  `json:"weight_kg"`
	HeightM  float64  `json:"height_m"`
	BMI      float64  `json:"bmi"`
	Category Category `json:"category"`
}

// Compute returns weight / height².
func Compute(weightKg, heightM float64) (float64, error) {
	c := Config{WeightKg: weightKg, HeightM: heightM}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return weightKg / (heightM * heightM), nil
}

// Categorize maps a BMI onto the 18.5 / 25 / 30 bands.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "bmi" }

func (m *Module) Summary() string { return "Body mass index from weight and height" }

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

	v, err := Compute(cfg.WeightKg, cfg.HeightM)
	if err != nil {
		return err
	}
	// Categorize the value as shown so 24.96 reads "25.0 Overweight".
	shown := math.Round(v*10) / 10
	res := Result{
		Stamp:    env.NewStamp(),
		WeightKg: cfg.WeightKg,
		HeightM:  cfg.HeightM,
		BMI:      shown,
		Category: Categorize(shown),
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title("Body Mass Index")
	ui.Field("BMI", ui.Number(res.BMI, 1))
	ui.Field("Category", res.Category)

	if err := env.Results.Append(historyFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
