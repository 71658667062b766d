package domain

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Module is a single self-contained calculator, generator, or tracker.
type Module interface {
	Name() ModuleName
	Summary() string
	Run(ctx context.Context, env *Env) error
}

// Env is everything a module may touch during one run. A module owns its
// data folder exclusively for the duration of the run.
type Env struct {
	DataDir    string
	In         io.Reader
	Out        io.Writer
	Results    ResultStore
	Log        Logger
	Locale     string
	Passphrase string
	Rand       *rand.Rand
	Now        func() time.Time
}

// NewStamp returns a fresh record stamp using env's clock.
func (e *Env) NewStamp() Stamp {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return Stamp{ID: uuid.NewString(), At: now().UTC()}
}
