// Package convert is an interactive unit converter for temperature, length,
// and mass.
package convert

import (
	"context"
	"math"
	"slices"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/prompt"
)

const historyFile = "convert_history.json"

// Category groups units that convert into each other.
type Category string

const (
	Temperature Category = "temperature"
	Length      Category = "length"
	Mass        Category = "mass"
)

// Unit is a unit symbol.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"

	Meter     Unit = "m"
	Kilometer Unit = "km"
	Mile      Unit = "mi"
	Foot      Unit = "ft"

	Kilogram Unit = "kg"
	Pound    Unit = "lb"
	Gram     Unit = "g"
)

// factors maps linear units onto their category's base unit (m, kg).
var factors = map[Unit]float64{
	Meter:     1,
	Kilometer: 1000,
	Mile:      1609.344,
	Foot:      0.3048,
	Kilogram:  1,
	Pound:     0.45359237,
	Gram:      0.001,
}

var units = map[Category][]Unit{
	Temperature: {Celsius, Fahrenheit, Kelvin},
	Length:      {Meter, Kilometer, Mile, Foot},
	Mass:        {Kilogram, Pound, Gram},
}

// Units lists the units of c in menu order.
func Units(c Category) []Unit { return slices.Clone(units[c]) }

// Record is one history entry.
type Record struct {
	domain.Stamp
	Category Category `json:"category"`
	From     Unit     `json:"from"`
	To       Unit     `json:"to"`
	Value    float64  `json:"value"`
	Result   float64  `json:"result"`
}

// Convert converts v between two units of category c.
func Convert(c Category, from, to Unit, v float64) (float64, error) {
	us, ok := units[c]
	if !ok {
		return 0, domain.Invalid("convert", "unknown category %q", c)
	}
	if !slices.Contains(us, from) || !slices.Contains(us, to) {
		return 0, domain.Invalid("convert", "cannot convert %s to %s as %s", from, to, c)
	}
	if c == Temperature {
		return temperature(from, to, v)
	}
	if v < 0 {
		return 0, domain.Invalid("convert", "%s cannot be negative", c)
	}
	return v * factors[from] / factors[to], nil
}

func temperature(from, to Unit, v float64) (float64, error) {
	var k float64
	switch from {
	case Celsius:
		k = v + 273.15
	case Fahrenheit:
		k = (v-32)*5/9 + 273.15
	case Kelvin:
		k = v
	}
	// Tolerate float noise just below zero.
	if k < -1e-9 {
		return 0, domain.Invalid("convert", "%v%s is below absolute zero", v, from)
	}
	k = math.Max(k, 0)
	switch to {
	case Celsius:
		return k - 273.15, nil
	case Fahrenheit:
		return (k-273.15)*9/5 + 32, nil
	default:
		return k, nil
	}
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "convert" }

func (m *Module) Summary() string { return "Temperature, length, and mass converter" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	ui := console.New(env.Out, env.Locale)
	p := prompt.New(env.In, env.Out)

	run := func(c Category) func() error {
		return func() error {
			opts := make([]string, 0, len(units[c]))
			for _, u := range units[c] {
				opts = append(opts, string(u))
			}
			from, err := p.Choice("From", opts...)
			if err != nil {
				return err
			}
			to, err := p.Choice("To", opts...)
			if err != nil {
				return err
			}
			v, err := p.Float("Value", math.Inf(-1), math.Inf(1))
			if err != nil {
				return err
			}
			out, err := Convert(c, Unit(from), Unit(to), v)
			if err != nil {
				return err
			}
			ui.Linef("%s %s = %s %s", ui.Number(v, 2), from, ui.Number(out, 4), to)

			rec := Record{Stamp: env.NewStamp(), Category: c, From: Unit(from), To: Unit(to), Value: v, Result: out}
			if err := env.Results.Append(historyFile, rec); err != nil {
				env.Log.Warn("could not save conversion", "err", err)
			}
			return nil
		}
	}

	return p.Menu("Unit converter, type exit to quit", []prompt.MenuItem{
		{Key: "1", Label: "Temperature (C/F/K)", Run: run(Temperature)},
		{Key: "2", Label: "Length (m/km/mi/ft)", Run: run(Length)},
		{Key: "3", Label: "Mass (kg/lb/g)", Run: run(Mass)},
		{Key: "4", Label: "Exit", Exit: true},
	})
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
