// Package testutil builds module environments for tests.
package testutil

import (
	"bytes"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"toolbox/internal/domain"
	"toolbox/internal/store"
)

// FixedTime is the clock every test env reports.
var FixedTime = time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

// NewEnv returns an env rooted at a fresh temp dir, reading input and
// capturing console output. Randomness is seeded for repeatability.
func NewEnv(t *testing.T, input string) (*domain.Env, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	return &domain.Env{
		DataDir: dir,
		In:      strings.NewReader(input),
		Out:     &out,
		Results: store.NewResultWriter(dir, true),
		Log:     log.New(io.Discard),
		Locale:  "en",
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Now:     func() time.Time { return FixedTime },
	}, &out
}

// WithInput returns a copy of env reading from input and writing to a new buffer.
func WithInput(env *domain.Env, input string) (*domain.Env, *bytes.Buffer) {
	var out bytes.Buffer
	cp := *env
	cp.In = strings.NewReader(input)
	cp.Out = &out
	return &cp, &out
}
