package bank

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"toolbox/internal/domain"
)

// Account is one customer balance.
type Account struct {
	ID      string    `json:"id"`
	Owner   string    `json:"owner"`
	Balance float64   `json:"balance"`
	Opened  time.Time `json:"opened"`
}

// Ledger is the persisted set of accounts.
type Ledger struct {
	Accounts []Account `json:"accounts"`
}

func (l *Ledger) index(owner string) int {
	for i, a := range l.Accounts {
		if strings.EqualFold(a.Owner, owner) {
			return i
		}
	}
	return -1
}

// Open adds a zero-balance account. Owners are unique, ignoring case.
func (l *Ledger) Open(owner string, now time.Time) (Account, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return Account{}, domain.Invalid("bank.open", "owner name is required")
	}
	if l.index(owner) >= 0 {
		return Account{}, domain.Invalid("bank.open", "%s already has an account", owner)
	}
	a := Account{ID: uuid.NewString(), Owner: owner, Opened: now.UTC()}
	l.Accounts = append(l.Accounts, a)
	return a, nil
}

// Get returns the account held by owner.
func (l *Ledger) Get(owner string) (Account, error) {
	i := l.index(owner)
	if i < 0 {
		return Account{}, domain.Invalid("bank.get", "no account for %q", owner)
	}
	return l.Accounts[i], nil
}

// Deposit credits a positive amount.
func (l *Ledger) Deposit(owner string, amount float64) (Account, error) {
	if err := checkAmount("bank.deposit", amount); err != nil {
		return Account{}, err
	}
	i := l.index(owner)
	if i < 0 {
		return Account{}, domain.Invalid("bank.deposit", "no account for %q", owner)
	}
	cur, add := toCents(l.Accounts[i].Balance), toCents(amount)
	if cur > math.MaxInt64-add {
		return Account{}, domain.Invalid("bank.deposit", "balance of %q would overflow", owner)
	}
	l.Accounts[i].Balance = fromCents(cur + add)
	return l.Accounts[i], nil
}

// Withdraw debits a positive amount. The balance may never go below zero.
func (l *Ledger) Withdraw(owner string, amount float64) (Account, error) {
	if err := checkAmount("bank.withdraw", amount); err != nil {
		return Account{}, err
	}
	i := l.index(owner)
	if i < 0 {
		return Account{}, domain.Invalid("bank.withdraw", "no account for %q", owner)
	}
	left := toCents(l.Accounts[i].Balance) - toCents(amount)
	if left < 0 {
		return Account{}, domain.Invalid("bank.withdraw", "insufficient funds: balance is %.2f", l.Accounts[i].Balance)
	}
	l.Accounts[i].Balance = fromCents(left)
	return l.Accounts[i], nil
}

// Close removes owner's account and returns its final state.
func (l *Ledger) Close(owner string) (Account, error) {
	i := l.index(owner)
	if i < 0 {
		return Account{}, domain.Invalid("bank.close", "no account for %q", owner)
	}
	a := l.Accounts[i]
	l.Accounts = append(l.Accounts[:i], l.Accounts[i+1:]...)
	return a, nil
}

// Sorted returns the accounts ordered by owner.
func (l *Ledger) Sorted() []Account {
	out := append([]Account(nil), l.Accounts...)
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Owner) < strings.ToLower(out[j].Owner) })
	return out
}

// MaxAmount caps a single deposit or withdrawal.
const MaxAmount = 1e12

func checkAmount(op string, amount float64) error {
	if !(amount <= MaxAmount) {
		return domain.Invalid(op, "amount must be at most %.0f, got %v", MaxAmount, amount)
	}
	if toCents(amount) <= 0 {
		return domain.Invalid(op, "amount must be at least 0.01, got %v", amount)
	}
	return nil
}

func toCents(v float64) int64 { return int64(math.Round(v * 100)) }

func fromCents(c int64) float64 { return float64(c) / 100 }
