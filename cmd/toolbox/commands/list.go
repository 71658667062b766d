package commands

import (
	"github.com/spf13/cobra"

	"toolbox/internal/console"
)

func listCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := console.New(cmd.OutOrStdout(), c.cfg.Locale)
			ui.Title("Modules")
			for _, m := range c.app.Modules() {
				ui.Field(m.Name().String(), m.Summary())
			}
			return nil
		},
	}
}
