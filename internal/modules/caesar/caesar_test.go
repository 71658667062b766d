package caesar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/modules/caesar"
	"toolbox/internal/store"
	"toolbox/internal/testutil"
)

func TestShift(t *testing.T) {
	assert.Equal(t, "Khoor, Zruog!", caesar.EncryptText("Hello, World!", 3))
	assert.Equal(t, "abc", caesar.EncryptText("xyz", 3))
	assert.Equal(t, "wxy", caesar.EncryptText("abc", -4))
	assert.Equal(t, "héllo", caesar.EncryptText("héllo", 26))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 3, caesar.Normalize(29))
	assert.Equal(t, 23, caesar.Normalize(-3))
	assert.Equal(t, 0, caesar.Normalize(-52))
}

func TestRoundTripAnyShift(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. 1234 ÄÖÜ"
	for s := -60; s <= 60; s++ {
		got := caesar.DecryptText(caesar.EncryptText(text, s), s)
		require.Equal(t, text, got, "shift %d", s)
	}
}

func TestRun_Decrypt(t *testing.T) {
	env, _ := testutil.NewEnv(t, "")
	cfg := caesar.Config{Text: "Khoor", Shift: 29, Mode: caesar.Decrypt}
	require.NoError(t, store.Save(env.Results.Path("caesar_config.json"), cfg))

	require.NoError(t, caesar.New().Run(t.Context(), env))

	res, ok, err := store.Load[caesar.Result](env.Results.Path("caesar_result.json"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hello", res.Output)
	assert.Equal(t, 3, res.Shift)
}

func TestRun_BadMode(t *testing.T) {
	env, _ := testutil.NewEnv(t, "")
	require.NoError(t, store.Save(env.Results.Path("caesar_config.json"), caesar.Config{Text: "x", Mode: "rot"}))
	err := caesar.New().Run(t.Context(), env)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
