package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/modules/distance"
	"toolbox/internal/store"
	"toolbox/internal/testutil"
)

func TestHaversine(t *testing.T) {
	d := distance.DefaultConfig()
	assert.InDelta(t, 343.5, distance.Haversine(d.From, d.To), 1.0)

	p := distance.Point{Lat: 10, Lon: 20}
	assert.Zero(t, distance.Haversine(p, p))

	// Antipodal points are half the circumference apart.
	a := distance.Point{Lat: 0, Lon: 0}
	b := distance.Point{Lat: 0, Lon: 180}
	assert.InDelta(t, 20015.09, distance.Haversine(a, b), 0.1)
}

func TestValidate(t *testing.T) {
	c := distance.Config{From: distance.Point{Name: "x", Lat: 91}, To: distance.Point{}}
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidInput)
	c = distance.Config{From: distance.Point{}, To: distance.Point{Name: "y", Lon: -181}}
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidInput)
}

func TestRun_EditAndRerun(t *testing.T) {
	env, out := testutil.NewEnv(t, "")
	m := distance.New()
	require.ErrorIs(t, m.Run(t.Context(), env), domain.ErrEditAndRerun)
	require.NoError(t, m.Run(t.Context(), env))

	hist, err := store.ReadHistory[distance.Result](env.Results.Path("distance_history.json"))
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.InDelta(t, 343.5, hist[0].Km, 1.0)
	assert.InDelta(t, hist[0].Km*0.621371, hist[0].Miles, 0.01)
	assert.Contains(t, out.String(), "London to Paris")
}
