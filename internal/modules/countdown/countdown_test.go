package countdown_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"toolbox/internal/modules/countdown"
	"toolbox/internal/store"
	"toolbox/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCountdown_TicksToZero(t *testing.T) {
	var seen []int
	left, err := countdown.Countdown(t.Context(), 3, time.Millisecond, func(r int) { seen = append(seen, r) })
	require.NoError(t, err)
	assert.Zero(t, left)
	assert.Equal(t, []int{3, 2, 1, 0}, seen)
}

func TestCountdown_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	left, err := countdown.Countdown(ctx, 1000, time.Millisecond, func(r int) {
		if r == 995 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 995, left)
}

func TestRun_AppendsHistory(t *testing.T) {
	env, out := testutil.NewEnv(t, "")
	require.NoError(t, store.Save(env.Results.Path("countdown_config.json"), countdown.Config{Label: "Eggs", Seconds: 2}))

	require.NoError(t, countdown.New().WithInterval(time.Millisecond).Run(t.Context(), env))

	hist, err := store.ReadHistory[countdown.Result](env.Results.Path("countdown_history.json"))
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.True(t, hist[0].Completed)
	assert.Contains(t, out.String(), "Time's up!")
}

func TestRun_CancelledIsRecorded(t *testing.T) {
	env, _ := testutil.NewEnv(t, "")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := countdown.New().WithInterval(time.Hour).Run(ctx, env)
	assert.ErrorIs(t, err, context.Canceled)

	hist, rerr := store.ReadHistory[countdown.Result](env.Results.Path("countdown_history.json"))
	require.NoError(t, rerr)
	require.Len(t, hist, 1)
	assert.False(t, hist[0].Completed)
	assert.Equal(t, 10, hist[0].Remaining)
}
