package cmd

import (
	"github.com/mouse-blink/modus/internal/config"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command.
var describeCmd = newDescribeCmd()

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <scale>",
		Short: "Show the definition of one scale type",
		Long: `Show the intervals, step pattern, degrees and description of one scale type.
Quote names that contain spaces, e.g. modus describe "Harmonic Minor".`,
		Args:    cobra.ExactArgs(1),
		Example: `  modus describe Dorian`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Decode(settings)
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd, cfg)
			if err != nil {
				return err
			}

			return explain(wf.Describe(cmd.Context(), args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
