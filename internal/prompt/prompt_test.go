package prompt_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/prompt"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out), &out
}

func TestInt_RepromptsUntilValid(t *testing.T) {
	p, out := newPrompter("abc\n42\n7\n")

	v, err := p.Int("Pick", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Contains(t, out.String(), `"abc" is not a whole number`)
	assert.Contains(t, out.String(), "enter a number between 1 and 10")
}

func TestFloat_OpenRange(t *testing.T) {
	p, _ := newPrompter("  12.5  \n")
	v, err := p.Float("Amount", 0, math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 1e-12)
}

func TestChoice_CaseInsensitive(t *testing.T) {
	p, _ := newPrompter("maybe\nYES\n")
	v, err := p.Choice("Continue", "yes", "no")
	require.NoError(t, err)
	assert.Equal(t, "yes", v)
}

func TestAttemptBudget(t *testing.T) {
	p, _ := newPrompter("x\nx\nx\n5\n")
	p.WithAttempts(3)
	_, err := p.Int("N", 0, 10)
	assert.ErrorIs(t, err, prompt.ErrNoInput)

	// The answer after the exhausted read is still there for the next one.
	v, err := p.Int("N", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestSequentialReadsShareInput(t *testing.T) {
	p, out := newPrompter("Ada\n3\n2.5\nno\n")
	name, err := p.Line("Name")
	require.NoError(t, err)
	n, err := p.Int("Count", 1, 5)
	require.NoError(t, err)
	f, err := p.Float("Ratio", 0, 10)
	require.NoError(t, err)
	c, err := p.Choice("Again", "yes", "no")
	require.NoError(t, err)

	assert.Equal(t, "Ada", name)
	assert.Equal(t, 3, n)
	assert.InDelta(t, 2.5, f, 1e-12)
	assert.Equal(t, "no", c)
	assert.Contains(t, out.String(), "Name:")
	assert.Contains(t, out.String(), "Again [yes/no]:")
}

func TestEndOfInput(t *testing.T) {
	p, _ := newPrompter("")
	_, err := p.Line("Name")
	assert.ErrorIs(t, err, prompt.ErrNoInput)
}

func TestMenu_DispatchUntilSentinel(t *testing.T) {
	p, out := newPrompter("1\nbogus\n1\n2\nquit\n1\n")
	count := 0
	items := []prompt.MenuItem{
		{Key: "1", Label: "increment", Run: func() error { count++; return nil }},
		{Key: "2", Label: "fail softly", Run: func() error { return domain.Invalid("test", "nope") }},
	}
	require.NoError(t, p.Menu("Test", items))
	assert.Equal(t, 2, count)
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.Contains(t, out.String(), "nope")
}

func TestMenu_ExitItemAndHardError(t *testing.T) {
	p, _ := newPrompter("3\n")
	exited := false
	items := []prompt.MenuItem{{Key: "3", Label: "exit", Exit: true, Run: func() error { exited = true; return nil }}}
	require.NoError(t, p.Menu("Test", items))
	assert.True(t, exited)

	boom := errors.New("boom")
	p, _ = newPrompter("x\n")
	err := p.Menu("Test", []prompt.MenuItem{{Key: "x", Run: func() error { return boom }}})
	assert.ErrorIs(t, err, boom)
}

func TestMenu_EndOfInputStopsQuietly(t *testing.T) {
	p, _ := newPrompter("1\n")
	err := p.Menu("Test", []prompt.MenuItem{{Key: "1", Run: func() error { return nil }}})
	assert.NoError(t, err)
}

func TestMenu_UnknownCommandBudgetEndsNormally(t *testing.T) {
	p, out := newPrompter("1\nx\nx\nx\nx\nx\n1\n")
	count := 0
	err := p.Menu("Test", []prompt.MenuItem{{Key: "1", Run: func() error { count++; return nil }}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "too many unknown commands")
}
