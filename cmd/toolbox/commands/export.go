package commands

import (
	"os"

	"github.com/spf13/cobra"

	"toolbox/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export <file.json>",
		Short: "Convert a JSON result or history file to YAML or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == "" {
				return export.File(args[0], f, cmd.OutOrStdout())
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			return export.File(args[0], f, file)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or toml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}
