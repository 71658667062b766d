package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/app"
	"toolbox/internal/domain"
)

func TestLoadConfig_Precedence(t *testing.T) {
	home := t.TempDir()
	yaml := "log_level: debug\nlocale: de\npretty: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, app.ConfigFileName), []byte(yaml), 0o600))

	t.Setenv("TOOLBOX_HOME", home)
	t.Setenv("TOOLBOX_LOCALE", "fr")

	cfg, err := app.LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fr", cfg.Locale)
	assert.False(t, cfg.Pretty)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("TOOLBOX_HOME", t.TempDir())
	cfg, err := app.LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Locale)
	assert.True(t, cfg.Pretty)
}

func TestLoadConfig_Rejects(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOOLBOX_HOME", home)

	t.Setenv("TOOLBOX_LOG_LEVEL", "chatty")
	_, err := app.LoadConfig(viper.New())
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	t.Setenv("TOOLBOX_LOG_LEVEL", "info")
	require.NoError(t, os.WriteFile(filepath.Join(home, app.ConfigFileName), []byte("locale: [oops"), 0o600))
	_, err = app.LoadConfig(viper.New())
	assert.True(t, domain.IsKind(err, domain.KindMalformed))
}
