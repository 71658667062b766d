// Package interest projects compound growth of a principal.
package interest

import (
	"context"
	"fmt"
	"math"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile = "interest_config.json"
	resultFile = "interest_result.json"
)

type Config struct {
	Principal          float64 `json:"principal"`
	AnnualRatePercent  float64 `json:"annual_rate_percent"`
	CompoundsPerYear   int     `json:"compounds_per_year"`
	Years              int     `json:"years"`
	YearlyContribution float64 `json:"yearly_contribution"`
}

func DefaultConfig() Config {
	return Config{Principal: 1000, AnnualRatePercent: 5, CompoundsPerYear: 12, Years: 10}
}

func (c *Config) Validate() error {
	switch {
	case c.Principal < 0 || c.YearlyContribution < 0:
		return domain.Invalid("interest.validate", "principal and contribution cannot be negative")
	case c.AnnualRatePercent < 0 || c.AnnualRatePercent > 100:
		return domain.Invalid("interest.validate", "annual rate must be within 0..100, got %v", c.AnnualRatePercent)
	case c.CompoundsPerYear < 1 || c.CompoundsPerYear > 365:
		return domain.Invalid("interest.validate", "compounds per year must be within 1..365, got %d", c.CompoundsPerYear)
	case c.Years < 1 || c.Years > 100:
		return domain.Invalid("interest.validate", "years must be within 1..100, got %d", c.Years)
	}
	return nil
}

// Year is one row of the schedule.
type Year struct {
	Year     int     `json:"year"`
	Interest float64 `json:"interest"`
	Balance  float64 `json:"balance"`
}

type Result struct {
	domain.Stamp
	Config
	FinalBalance     float64 `json:"final_balance"`
	TotalContributed float64 `json:"total_contributed"`
	TotalInterest    float64 `json:"total_interest"`
	Schedule         []Year  `json:"schedule"`
}

// Project compounds the principal period by period and adds the yearly
// contribution at the end of each year.
func Project(c Config) Result {
	rate := c.AnnualRatePercent / 100 / float64(c.CompoundsPerYear)
	balance := c.Principal
	contributed := c.Principal
	res := Result{Config: c}

	for y := 1; y <= c.Years; y++ {
		start := balance
		for p := 0; p < c.CompoundsPerYear; p++ {
			balance *= 1 + rate
		}
		earned := balance - start
		balance += c.YearlyContribution
		contributed += c.YearlyContribution
		res.Schedule = append(res.Schedule, Year{Year: y, Interest: round2(earned), Balance: round2(balance)})
	}

	res.FinalBalance = round2(balance)
	res.TotalContributed = round2(contributed)
	res.TotalInterest = round2(balance - contributed)
	return res
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "interest" }

func (m *Module) Summary() string { return "Compound interest projection" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	res := Project(cfg)
	res.Stamp = env.NewStamp()

	ui := console.New(env.Out, env.Locale)
	ui.Title("Compound interest")
	for _, y := range res.Schedule {
		ui.Field(fmt.Sprintf("Year %d", y.Year), ui.Money(y.Balance)+"  (+"+ui.Money(y.Interest)+")")
	}
	ui.Field("Final balance", ui.Money(res.FinalBalance))
	ui.Field("Total interest", ui.Money(res.TotalInterest))

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
