package cmd

import (
	"github.com/mouse-blink/modus/internal/config"
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available scale types",
		Long:  "List every scale type with its note count, whole/half step pattern and description.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Decode(settings)
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd, cfg)
			if err != nil {
				return err
			}

			return wf.List(cmd.Context())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
