package commands

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"toolbox/internal/app"
)

// Version is overridden at build time.
var Version = "dev"

// errModuleFailed is returned after the app has already logged the cause.
var errModuleFailed = errors.New("module failed")

// cli carries state shared by subcommands of one root.
type cli struct {
	v   *viper.Viper
	cfg app.Config
	app *app.App
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	c := &cli{v: viper.New()}
	root := &cobra.Command{
		Use:           "toolbox",
		Short:         "A box of small calculators, generators, and trackers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(c.v)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			c.cfg = cfg
			c.app = app.NewApp(cfg, app.Wire{
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "root of module data folders (default ~/.toolbox)")
	pf.String("data", "", "data folder override for the module being run")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.Bool("pretty", true, "indent JSON written to data folders")
	pf.String("locale", "", "locale for number formatting, e.g. en or de")
	pf.StringP("passphrase", "p", "", "passphrase for encrypted modules")
	for key, flag := range map[string]string{
		"home":       "home",
		"data":       "data",
		"log_level":  "log-level",
		"pretty":     "pretty",
		"locale":     "locale",
		"passphrase": "passphrase",
	} {
		_ = c.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(listCmd(c), runCmd(c), exportCmd())
	root.AddCommand(moduleCmds(c)...)
	return root
}

// Execute runs the CLI with fang styling, version and interrupt handling.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, NewRoot(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}
