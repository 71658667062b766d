package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"toolbox/internal/domain"
)

// ConfigFileName is read from Home when present.
const ConfigFileName = "toolbox.yaml"

// Config holds runtime options for building the app.
type Config struct {
	Home       string // root of per-module data folders, e.g. $HOME/.toolbox
	DataDir    string // optional; overrides <Home>/<module>
	LogLevel   string
	Pretty     bool // indent JSON written to data folders
	Locale     string
	Passphrase string
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	home := ".toolbox"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".toolbox")
	}
	return Config{Home: home, LogLevel: "info", Pretty: true, Locale: "en"}
}

// LoadConfig resolves Config from v. Precedence is flags bound to v, then
// TOOLBOX_* environment variables, then <home>/toolbox.yaml, then defaults.
func LoadConfig(v *viper.Viper) (Config, error) {
	d := DefaultConfig()
	v.SetDefault("home", d.Home)
	v.SetDefault("data", d.DataDir)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("pretty", d.Pretty)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("passphrase", d.Passphrase)

	v.SetEnvPrefix("TOOLBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(v.GetString("home"), ConfigFileName)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, &domain.OpError{Op: "config.read", Kind: domain.KindMalformed, Path: path, Err: err}
		}
	}

	cfg := Config{
		Home:       v.GetString("home"),
		DataDir:    v.GetString("data"),
		LogLevel:   v.GetString("log_level"),
		Pretty:     v.GetBool("pretty"),
		Locale:     v.GetString("locale"),
		Passphrase: v.GetString("passphrase"),
	}
	return cfg, cfg.Validate()
}

// Validate checks the log level and locale.
func (c Config) Validate() error {
	if c.Home == "" && c.DataDir == "" {
		return domain.Invalid("config", "home directory is empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return domain.Invalid("config", "unknown log level %q", c.LogLevel)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return domain.Invalid("config", "unknown locale %q", c.Locale)
	}
	return nil
}
