// Package bank is an interactive ledger of simple savings accounts.
package bank

import (
	"context"
	"math"
	"time"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/prompt"
	"toolbox/internal/store"
)

const accountsFile = "accounts.json"

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "bank" }

func (m *Module) Summary() string { return "Interactive bank account manager" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	path := env.Results.Path(accountsFile)
	ledger, _, err := store.LoadOrInit(path, func() Ledger { return Ledger{Accounts: []Account{}} })
	if err != nil {
		return err
	}

	ui := console.New(env.Out, env.Locale)
	p := prompt.New(env.In, env.Out)
	now := time.Now
	if env.Now != nil {
		now = env.Now
	}

	show := func(a Account) { ui.Field(a.Owner, ui.Money(a.Balance)) }
	amountFor := func(owner string, op func(string, float64) (Account, error)) error {
		amount, err := p.Float("Amount", 0, math.Inf(1))
		if err != nil {
			return err
		}
		a, err := op(owner, amount)
		if err != nil {
			return err
		}
		show(a)
		return nil
	}

	items := []prompt.MenuItem{
		{Key: "1", Label: "Open account", Run: func() error {
			owner, err := p.Line("Owner")
			if err != nil {
				return err
			}
			a, err := ledger.Open(owner, now())
			if err != nil {
				return err
			}
			ui.Linef("Opened account %s for %s", a.ID, a.Owner)
			return nil
		}},
		{Key: "2", Label: "Deposit", Run: func() error {
			owner, err := p.Line("Owner")
			if err != nil {
				return err
			}
			return amountFor(owner, ledger.Deposit)
		}},
		{Key: "3", Label: "Withdraw", Run: func() error {
			owner, err := p.Line("Owner")
			if err != nil {
				return err
			}
			return amountFor(owner, ledger.Withdraw)
		}},
		{Key: "4", Label: "Balance", Run: func() error {
			owner, err := p.Line("Owner")
			if err != nil {
				return err
			}
			a, err := ledger.Get(owner)
			if err != nil {
				return err
			}
			show(a)
			return nil
		}},
		{Key: "5", Label: "List accounts", Run: func() error {
			if len(ledger.Accounts) == 0 {
				ui.Linef("No accounts yet.")
			}
			for _, a := range ledger.Sorted() {
				show(a)
			}
			return nil
		}},
		{Key: "6", Label: "Close account", Run: func() error {
			owner, err := p.Line("Owner")
			if err != nil {
				return err
			}
			a, err := ledger.Close(owner)
			if err != nil {
				return err
			}
			ui.Linef("Closed %s, paid out %s", a.Owner, ui.Money(a.Balance))
			return nil
		}},
		{Key: "7", Label: "Exit", Exit: true},
	}

	if err := p.Menu("Bank", items); err != nil {
		return err
	}
	return store.Save(path, ledger)
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
