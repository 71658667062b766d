// Package distance measures great-circle distances with the Haversine formula.
package distance

import (
	"context"
	"math"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile  = "distance_config.json"
	historyFile = "distance_history.json"

	EarthRadiusKm = 6371.0
	kmToMiles     = 0.621371
)

// Point is a named coordinate in decimal degrees.
type Point struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (p Point) validate(op string) error {
	if p.Lat < -90 || p.Lat > 90 {
		return domain.Invalid(op, "%s: latitude must be within -90..90, got %v", p.Name, p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return domain.Invalid(op, "%s: longitude must be within -180..180, got %v", p.Name, p.Lon)
	}
	return nil
}

type Config struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

func DefaultConfig() Config {
	return Config{
		From: Point{Name: "London", Lat: 51.5074, Lon: -0.1278},
		To:   Point{Name: "Paris", Lat: 48.8566, Lon: 2.3522},
	}
}

func (c *Config) Validate() error {
	if err := c.From.validate("distance.validate"); err != nil {
		return err
	}
	return c.To.validate("distance.validate")
}

type Result struct {
	domain.Stamp
	From  Point   `json:"from"`
	To    Point   `json:"to"`
	Km    float64 `json:"km"`
	Miles float64 `json:"miles"`
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "distance" }

func (m *Module) Summary() string { return "Great-circle distance between two coordinates" }

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

	km := Haversine(cfg.From, cfg.To)
	res := Result{
		Stamp: env.NewStamp(),
		From:  cfg.From,
		To:    cfg.To,
		Km:    math.Round(km*100) / 100,
		Miles: math.Round(km*kmToMiles*100) / 100,
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title(cfg.From.Name + " to " + cfg.To.Name)
	ui.Field("Kilometres", ui.Number(res.Km, 2))
	ui.Field("Miles", ui.Number(res.Miles, 2))

	if err := env.Results.Append(historyFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
