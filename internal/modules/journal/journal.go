// Package journal is a passphrase-protected diary. Entries are kept in a
// single sealed file; a wrong passphrase leaves it untouched.
package journal

import (
	"context"
	"strings"
	"time"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/prompt"
	"toolbox/internal/store"
)

const journalFile = "journal.enc"

type Entry struct {
	domain.Stamp
	Text string `json:"text"`
}

// Journal is the sealed payload.
type Journal struct {
	Entries []Entry `json:"entries"`
}

// Add appends a non-empty entry.
func (j *Journal) Add(s domain.Stamp, text string) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, domain.Invalid("journal.add", "entry is empty")
	}
	e := Entry{Stamp: s, Text: text}
	j.Entries = append(j.Entries, e)
	return e, nil
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "journal" }

func (m *Module) Summary() string { return "Encrypted personal journal" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	p := prompt.New(env.In, env.Out)
	ui := console.New(env.Out, env.Locale)

	pass := env.Passphrase
	if pass == "" {
		var err error
		if pass, err = p.Line("Passphrase"); err != nil {
			return err
		}
	}
	if pass == "" {
		return domain.Invalid("journal", "passphrase is required")
	}

	path := env.Results.Path(journalFile)
	var j Journal
	ok, err := store.OpenJSON(path, pass, &j)
	if err != nil {
		return err
	}
	if !ok {
		env.Log.Info("starting a new journal", "path", path)
	}

	dirty := false
	items := []prompt.MenuItem{
		{Key: "add", Label: "Write an entry", Run: func() error {
			text, err := p.Line("Entry")
			if err != nil {
				return err
			}
			if _, err := j.Add(env.NewStamp(), text); err != nil {
				return err
			}
			dirty = true
			return nil
		}},
		{Key: "list", Label: "Read entries", Run: func() error {
			if len(j.Entries) == 0 {
				ui.Linef("No entries yet.")
			}
			for _, e := range j.Entries {
				ui.Linef("%s  %s", e.At.Format(time.DateTime), e.Text)
			}
			return nil
		}},
	}
	if err := p.Menu("Journal, type exit to save and quit", items); err != nil {
		return err
	}

	if !dirty && ok {
		return nil
	}
	if j.Entries == nil {
		j.Entries = []Entry{}
	}
	return store.SealJSON(path, pass, j)
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
