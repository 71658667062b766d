// Package prompt implements the line-oriented console dialogue shared by the
// interactive modules: typed reads that re-prompt on bad input, and a menu
// loop that dispatches commands until a sentinel is read.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"toolbox/internal/domain"
)

// DefaultAttempts bounds how many bad answers a single read tolerates.
const DefaultAttempts = 5

// ErrNoInput is returned when input ends or the attempt budget is exhausted.
var ErrNoInput = errors.New("prompt: no more input")

// Prompter asks questions through huh input fields in accessible mode, which
// reads plain lines from in and writes prompts to out.
type Prompter struct {
	in       *lineReader
	out      io.Writer
	theme    *huh.Theme
	attempts int
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:       &lineReader{r: bufio.NewReader(in)},
		out:      out,
		theme:    huh.ThemeBase(),
		attempts: DefaultAttempts,
	}
}

// WithAttempts overrides the per-read attempt budget.
func (p *Prompter) WithAttempts(n int) *Prompter {
	if n > 0 {
		p.attempts = n
	}
	return p
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// ask runs one huh input until parse accepts an answer. huh re-prompts on
// every rejection and reports end of input as an empty answer, so the budget
// and end of input are tracked here: both yield ErrNoInput.
func (p *Prompter) ask(title string, parse func(string) error) error {
	var (
		misses   int
		accepted bool
	)
	field := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			if err := parse(strings.TrimSpace(s)); err != nil {
				misses++
				if misses < p.attempts {
					return err
				}
				// Accepting ends huh's loop; accepted stays false.
				p.printf("%v\n", err)
				return nil
			}
			accepted = true
			return nil
		})
	field.WithTheme(p.theme)

	if err := field.RunAccessible(p.out, p.in); err != nil {
		return err
	}
	if !accepted {
		return ErrNoInput
	}
	return nil
}

// Line prints label and returns the next trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	var v string
	err := p.ask(label+":", func(s string) error {
		v = s
		return nil
	})
	return v, err
}

// Int reads an integer in [lo, hi].
func (p *Prompter) Int(label string, lo, hi int) (int, error) {
	var v int
	err := p.ask(label+":", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", s)
		}
		if n < lo || n > hi {
			return fmt.Errorf("enter a number between %d and %d", lo, hi)
		}
		v = n
		return nil
	})
	return v, err
}

// Float reads a decimal in [lo, hi]. Pass math.Inf bounds for an open range.
func (p *Prompter) Float(label string, lo, hi float64) (float64, error) {
	var v float64
	err := p.ask(label+":", func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%q is not a number", s)
		}
		if f < lo || f > hi {
			return fmt.Errorf("enter a number between %v and %v", lo, hi)
		}
		v = f
		return nil
	})
	return v, err
}

// Choice reads one of options, case-insensitively, and returns it as listed.
func (p *Prompter) Choice(label string, options ...string) (string, error) {
	var v string
	full := fmt.Sprintf("%s [%s]", label, strings.Join(options, "/"))
	err := p.ask(full+":", func(s string) error {
		for _, o := range options {
			if strings.EqualFold(s, o) {
				v = o
				return nil
			}
		}
		return fmt.Errorf("choose one of %s", strings.Join(options, ", "))
	})
	return v, err
}

// MenuItem is one command of a Menu. Key is matched case-insensitively.
type MenuItem struct {
	Key   string
	Label string
	Run   func() error
	Exit  bool // stop the loop after Run
}

// Menu shows items and dispatches commands until an Exit item, the words
// "exit" or "quit", end of input, or too many unknown commands in a row. All
// of these end the loop normally so callers can persist the session. Handler
// errors of kind invalid_input are printed and the loop continues; any other
// error ends the loop.
func (p *Prompter) Menu(title string, items []MenuItem) error {
	misses := 0
	for {
		p.printf("\n%s\n", title)
		for _, it := range items {
			p.printf("  %s) %s\n", it.Key, it.Label)
		}
		var cmd string
		err := p.ask(">", func(s string) error {
			cmd = s
			return nil
		})
		if errors.Is(err, ErrNoInput) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(cmd, "exit") || strings.EqualFold(cmd, "quit") {
			return nil
		}

		it, ok := find(items, cmd)
		if !ok {
			misses++
			p.printf("  unknown command %q\n", cmd)
			if misses >= p.attempts {
				p.printf("  too many unknown commands, leaving the menu\n")
				return nil
			}
			continue
		}
		misses = 0

		if it.Run != nil {
			if err := it.Run(); err != nil {
				if errors.Is(err, ErrNoInput) {
					return nil
				}
				if !domain.IsKind(err, domain.KindInvalidInput) {
					return err
				}
				p.printf("  %v\n", err)
			}
		}
		if it.Exit {
			return nil
		}
	}
}

func find(items []MenuItem, key string) (MenuItem, bool) {
	for _, it := range items {
		if strings.EqualFold(it.Key, key) {
			return it, true
		}
	}
	return MenuItem{}, false
}

// lineReader hands out at most one line per Read. Each huh field wraps the
// reader in a fresh scanner, so this keeps one field from buffering answers
// meant for the next.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			return 0, err
		}
		l.pending = line
	}
	n := copy(b, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
