package commands

import (
	"github.com/spf13/cobra"

	"toolbox/internal/app"
)

func (c *cli) run(cmd *cobra.Command, name string) error {
	if !c.app.Run(cmd.Context(), name, c.cfg.DataDir) {
		return errModuleFailed
	}
	return nil
}

func runCmd(c *cli) *cobra.Command {
	var names []string
	for _, m := range app.Catalogue() {
		names = append(names, m.Name().String())
	}
	return &cobra.Command{
		Use:       "run <module>",
		Short:     "Run a module by name",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}
}

// moduleCmds returns one shorthand subcommand per module.
func moduleCmds(c *cli) []*cobra.Command {
	var cmds []*cobra.Command
	for _, m := range app.Catalogue() {
		name := m.Name().String()
		cmds = append(cmds, &cobra.Command{
			Use:   name,
			Short: m.Summary(),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.run(cmd, name)
			},
		})
	}
	return cmds
}
