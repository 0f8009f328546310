package cmd

import (
	"github.com/mouse-blink/modus/internal/config"
	"github.com/mouse-blink/modus/internal/domain"
	"github.com/spf13/cobra"
)

var catalogRootFlags []string
var catalogScaleFlags []string

// catalogCmd represents the catalog command.
var catalogCmd = newCatalogCmd()

const catalogLongDescription = `Realize scales across roots and print their notes and step patterns.

By default every scale type is realized from all twelve roots. Narrow the
catalog with repeated --root and --scale flags:
  modus catalog -s Dorian                 Dorian from every root
  modus catalog -r C -r G                 every scale from C and from G`

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Realize scales across roots",
		Long:  catalogLongDescription,
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

			return explain(wf.Catalog(cmd.Context(), domain.CatalogArgs{
				Roots:    catalogRootFlags,
				Scales:   catalogScaleFlags,
				Parallel: cfg.Parallel,
			}))
		},
	}
	cmd.Flags().StringArrayVarP(&catalogRootFlags, "root", "r", nil, "root note to include (can be repeated)")
	cmd.Flags().StringArrayVarP(&catalogScaleFlags, "scale", "s", nil, "scale type to include (can be repeated)")
	cmd.Flags().IntP(config.KeyParallel, "p", 4, "number of parallel workers")

	bindFlags(cmd, config.KeyParallel)

	return cmd
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
