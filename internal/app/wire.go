package app

import (
	"io"

	"toolbox/internal/domain"
	"toolbox/internal/modules/bank"
	"toolbox/internal/modules/bmi"
	"toolbox/internal/modules/caesar"
	"toolbox/internal/modules/change"
	"toolbox/internal/modules/convert"
	"toolbox/internal/modules/countdown"
	"toolbox/internal/modules/dice"
	"toolbox/internal/modules/distance"
	"toolbox/internal/modules/fibonacci"
	"toolbox/internal/modules/guess"
	"toolbox/internal/modules/interest"
	"toolbox/internal/modules/journal"
	"toolbox/internal/modules/maze"
	"toolbox/internal/modules/password"
	"toolbox/internal/modules/quote"
	"toolbox/internal/modules/shapes"
	"toolbox/internal/modules/tip"
	"toolbox/internal/modules/todo"
)

// Catalogue returns one fresh instance of every module.
func Catalogue() []domain.Module {
	return []domain.Module{
		bank.New(),
		bmi.New(),
		caesar.New(),
		change.New(),
		convert.New(),
		countdown.New(),
		dice.New(),
		distance.New(),
		fibonacci.New(),
		guess.New(),
		interest.New(),
		journal.New(),
		maze.New(),
		password.New(),
		quote.New(),
		shapes.New(),
		tip.New(),
		todo.New(),
	}
}

// Wire holds the console streams the app talks through.
type Wire struct {
	In     io.Reader
	Out    io.Writer
	Stderr io.Writer
}

// NewApp builds the logger and registry from cfg and returns a ready App.
func NewApp(cfg Config, w Wire) *App {
	return New(cfg, NewLogger(w.Stderr, cfg.LogLevel), w.In, w.Out, Catalogue()...)
}
