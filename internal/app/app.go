package app

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

type App struct {
	cfg     Config
	log     domain.Logger
	in      io.Reader
	out     io.Writer
	modules map[domain.ModuleName]domain.Module
}

func New(cfg Config, log domain.Logger, in io.Reader, out io.Writer, modules ...domain.Module) *App {
	a := &App{
		cfg:     cfg,
		log:     log,
		in:      in,
		out:     out,
		modules: make(map[domain.ModuleName]domain.Module, len(modules)),
	}
	for _, m := range modules {
		a.modules[m.Name()] = m
	}
	return a
}

// Modules returns the registry sorted by name.
func (a *App) Modules() []domain.Module {
	out := make([]domain.Module, 0, len(a.modules))
	for _, m := range a.modules {
		out = append(out, m)
	}
	slices.SortFunc(out, func(x, y domain.Module) int { return strings.Compare(string(x.Name()), string(y.Name())) })
	return out
}

func (a *App) Lookup(name string) (domain.Module, bool) {
	m, ok := a.modules[domain.ModuleName(strings.ToLower(name))]
	return m, ok
}

// DataDir resolves the data folder for a module: the configured override,
// else <Home>/<name>.
func (a *App) DataDir(name string) string {
	if a.cfg.DataDir != "" {
		return a.cfg.DataDir
	}
	return filepath.Join(a.cfg.Home, strings.ToLower(name))
}

// Run executes module name inside dataDir (empty means DataDir(name)) and
// reports whether it succeeded. Errors are logged, never returned.
func (a *App) Run(ctx context.Context, name, dataDir string) bool {
	m, ok := a.Lookup(name)
	if !ok {
		a.log.Error("unknown module", "module", name)
		return false
	}
	if dataDir == "" {
		dataDir = a.DataDir(name)
	}
	if err := ctx.Err(); err != nil {
		a.log.Error("not started", "module", name, "err", err)
		return false
	}

	env := &domain.Env{
		DataDir:    dataDir,
		In:         a.in,
		Out:        a.out,
		Results:    store.NewResultWriter(dataDir, a.cfg.Pretty),
		Log:        a.log,
		Locale:     a.cfg.Locale,
		Passphrase: a.cfg.Passphrase,
		Rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Now:        time.Now,
	}

	a.log.Debug("running module", "module", m.Name(), "data", dataDir)
	err := m.Run(ctx, env)
	switch {
	case errors.Is(err, domain.ErrEditAndRerun):
		console.New(a.out, a.cfg.Locale).Warn("Defaults written to " + dataDir + ". Edit them and run again.")
		return true
	case err != nil:
		a.log.Error("module failed", "module", m.Name(), "err", err)
		return false
	}
	return true
}
