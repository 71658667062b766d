// Package todo is an interactive task tracker.
package todo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/prompt"
	"toolbox/internal/store"
)

const tasksFile = "todo.json"

type Task struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Done    bool      `json:"done"`
	Created time.Time `json:"created"`
}

// List is the persisted task list, in insertion order.
type List struct {
	Tasks []Task `json:"tasks"`
}

// Add appends a new open task.
func (l *List) Add(title string, now time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, domain.Invalid("todo.add", "title is required")
	}
	t := Task{ID: uuid.NewString(), Title: title, Created: now.UTC()}
	l.Tasks = append(l.Tasks, t)
	return t, nil
}

// at resolves a 1-based position as shown by the list command.
func (l *List) at(op string, n int) (int, error) {
	if n < 1 || n > len(l.Tasks) {
		return 0, domain.Invalid(op, "no task number %d", n)
	}
	return n - 1, nil
}

// Complete marks task n done.
func (l *List) Complete(n int) (Task, error) {
	i, err := l.at("todo.done", n)
	if err != nil {
		return Task{}, err
	}
	l.Tasks[i].Done = true
	return l.Tasks[i], nil
}

// Remove deletes task n.
func (l *List) Remove(n int) (Task, error) {
	i, err := l.at("todo.remove", n)
	if err != nil {
		return Task{}, err
	}
	t := l.Tasks[i]
	l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
	return t, nil
}

// Pending counts open tasks.
func (l *List) Pending() int {
	n := 0
	for _, t := range l.Tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "todo" }

func (m *Module) Summary() string { return "Interactive to-do list" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	path := env.Results.Path(tasksFile)
	list, _, err := store.LoadOrInit(path, func() List { return List{Tasks: []Task{}} })
	if err != nil {
		return err
	}

	ui := console.New(env.Out, env.Locale)
	p := prompt.New(env.In, env.Out)
	now := time.Now
	if env.Now != nil {
		now = env.Now
	}
	number := func() (int, error) { return p.Int("Task number", 1, max(1, len(list.Tasks))) }

	items := []prompt.MenuItem{
		{Key: "add", Label: "Add a task", Run: func() error {
			title, err := p.Line("Title")
			if err != nil {
				return err
			}
			_, err = list.Add(title, now())
			return err
		}},
		{Key: "list", Label: "Show tasks", Run: func() error {
			if len(list.Tasks) == 0 {
				ui.Linef("Nothing to do.")
			}
			for i, t := range list.Tasks {
				mark := " "
				if t.Done {
					mark = "x"
				}
				ui.Linef("%2d. [%s] %s", i+1, mark, t.Title)
			}
			ui.Linef("%d pending", list.Pending())
			return nil
		}},
		{Key: "done", Label: "Mark a task done", Run: func() error {
			n, err := number()
			if err != nil {
				return err
			}
			t, err := list.Complete(n)
			if err != nil {
				return err
			}
			ui.Linef("Done: %s", t.Title)
			return nil
		}},
		{Key: "remove", Label: "Remove a task", Run: func() error {
			n, err := number()
			if err != nil {
				return err
			}
			t, err := list.Remove(n)
			if err != nil {
				return err
			}
			ui.Linef("Removed: %s", t.Title)
			return nil
		}},
	}

	if err := p.Menu(fmt.Sprintf("To-do (%d pending), type exit to save and quit", list.Pending()), items); err != nil {
		return err
	}
	return store.Save(path, list)
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
