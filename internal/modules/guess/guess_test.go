package guess_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/modules/guess"
	"toolbox/internal/store"
	"toolbox/internal/testutil"
)

func TestGame(t *testing.T) {
	g := guess.NewGame(42, 3)
	h, err := g.Guess(10)
	require.NoError(t, err)
	assert.Equal(t, guess.TooLow, h)
	h, _ = g.Guess(50)
	assert.Equal(t, guess.TooHigh, h)
	h, _ = g.Guess(42)
	assert.Equal(t, guess.Correct, h)
	assert.Equal(t, 0, g.Left())

	_, err = g.Guess(1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, []int{10, 50, 42}, g.Guesses)
}

func TestConfig_Validate(t *testing.T) {
	bad := guess.Config{Min: 5, Max: 5, Attempts: 3}
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidInput)
	bad = guess.Config{Min: 1, Max: 5}
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidInput)
	bad = guess.Config{Min: math.MinInt64, Max: math.MaxInt64, Attempts: 3}
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidInput)

	wide := guess.Config{Min: -guess.Limit, Max: guess.Limit, Attempts: 3}
	require.NoError(t, wide.Validate())
}

func TestRun_RejectsOverwideRange(t *testing.T) {
	env, _ := testutil.NewEnv(t, "")
	require.NoError(t, store.Save(env.Results.Path("guess_config.json"), guess.Config{Min: math.MinInt64, Max: math.MaxInt64, Attempts: 3}))

	var err error
	assert.NotPanics(t, func() { err = guess.New().Run(t.Context(), env) })
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRun_GivesUpAtEndOfInput(t *testing.T) {
	env, out := testutil.NewEnv(t, "")
	require.NoError(t, guess.New().Run(t.Context(), env))

	hist, err := store.ReadHistory[guess.Record](env.Results.Path("guess_history.json"))
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.False(t, hist[0].Won)
	assert.Empty(t, hist[0].Guesses)
	assert.Contains(t, out.String(), "Out of tries")

	cfg, ok, err := store.Load[guess.Config](env.Results.Path("guess_config.json"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, guess.DefaultConfig(), cfg)
}

// Binary search over 1..100 always wins within 7 tries.
func TestRun_BinarySearchWins(t *testing.T) {
	env, _ := testutil.NewEnv(t, "")
	require.NoError(t, guess.New().Run(t.Context(), env))
	hist, err := store.ReadHistory[guess.Record](env.Results.Path("guess_history.json"))
	require.NoError(t, err)
	secret := hist[0].Secret
	require.GreaterOrEqual(t, secret, 1)
	require.LessOrEqual(t, secret, 100)

	var in strings.Builder
	lo, hi := 1, 100
	for {
		mid := (lo + hi) / 2
		fmt.Fprintf(&in, "%d\n", mid)
		if mid == secret {
			break
		}
		if mid < secret {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	replay, out := testutil.WithInput(env, in.String())
	replay.Rand = rand.New(rand.NewPCG(1, 2))
	require.NoError(t, guess.New().Run(t.Context(), replay))

	hist, err = store.ReadHistory[guess.Record](env.Results.Path("guess_history.json"))
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, secret, hist[1].Secret)
	assert.True(t, hist[1].Won)
	assert.LessOrEqual(t, len(hist[1].Guesses), 7)
	assert.Contains(t, out.String(), "Correct!")
}
