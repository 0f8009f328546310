// Package cmd provides the root command and CLI setup for modus.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mouse-blink/modus/internal/adapter"
	"github.com/mouse-blink/modus/internal/config"
	"github.com/mouse-blink/modus/internal/controller"
	"github.com/mouse-blink/modus/internal/domain"
	m "github.com/mouse-blink/modus/internal/model"
	"github.com/spf13/cobra"
)

// workflow is built on first use; tests replace it with a mock.
var workflow domain.Workflow

var settings = config.New()

var cfgFile string
var verboseFlag bool
var rootNoteFlag string
var scaleTypeFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Modus realizes musical scales from a root note. For the chosen root and
scale type it prints the scale notes, a short description, the whole/half
step pattern and the seven-chord diatonic harmonization with inversions.

Without --root and --scale both choices are asked for interactively.

Examples:
  modus                                   pick root and scale from lists
  modus -r C -s "Ionian (Major)"          no prompts
  modus -r A -s "Pentatonic Minor" -f yaml
  modus --selector form --accessible      numbered prompts for screen readers`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "modus",
		Short:        "Scale and chord reference for musicians",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), verboseFlag)

			return config.Load(settings, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Decode(settings)
			if err != nil {
				return err
			}

			format, err := adapter.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd, cfg)
			if err != nil {
				return err
			}

			return explain(wf.Show(cmd.Context(), domain.ShowArgs{
				Inversions:   cfg.Inversions,
				Extended:     cfg.Extended,
				Progressions: cfg.Progressions,
				Format:       format,
			}))
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.modus.yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().Bool(config.KeyPlain, false, "plain text output even on a terminal")

	cmd.Flags().StringVarP(&rootNoteFlag, "root", "r", "", "root note, one of "+fmt.Sprint(m.NoteNames()))
	cmd.Flags().StringVarP(&scaleTypeFlag, "scale", "s", "", "scale type, see 'modus list'")
	cmd.Flags().Bool(config.KeyInversions, true, "show 1st, 2nd and 3rd inversions")
	cmd.Flags().BoolP(config.KeyExtended, "e", false, "show extended harmony for seven-note scales")
	cmd.Flags().BoolP(config.KeyProgressions, "p", false, "show common progressions built from the chord scale")
	cmd.Flags().StringP(config.KeyFormat, "f", "text", "output format: text, yaml or json")
	cmd.Flags().String(config.KeySelector, "list", "interactive selector: list or form")
	cmd.Flags().Bool(config.KeyAccessible, false, "accessible prompts (form selector only)")
	cmd.Flags().String(config.KeyPolicy, "strict", "harmonization of non seven-note scales: strict or partial")

	bindFlags(cmd, config.KeyPlain, config.KeyInversions, config.KeyExtended, config.KeyProgressions, config.KeyFormat,
		config.KeySelector, config.KeyAccessible, config.KeyPolicy)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// bindFlags binds each named flag of cmd to the config key of the same name.
func bindFlags(cmd *cobra.Command, keys ...string) {
	for _, key := range keys {
		flag := cmd.Flags().Lookup(key)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(key)
		}

		if flag == nil {
			continue
		}

		if err := settings.BindPFlag(key, flag); err != nil {
			slog.Debug("flag binding failed", "flag", key, "error", err)
		}
	}
}

// resolveWorkflow returns the package workflow, building it from cfg on first use.
func resolveWorkflow(cmd *cobra.Command, cfg config.Config) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	policy, err := domain.ParseHarmonyPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	kind, err := adapter.ParseSelectorKind(cfg.Selector)
	if err != nil {
		return nil, err
	}

	interactive, err := adapter.NewSelector(adapter.SelectorOptions{
		Kind: kind,
		Choices: adapter.Choices{
			Roots:  m.NoteNames(),
			Scales: domain.ScaleNames(),
		},
		Input:      cmd.InOrStdin(),
		Output:     cmd.ErrOrStderr(),
		Accessible: cfg.Accessible,
	})
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	ui := controller.NewUI(cmd, !cfg.Plain && controller.IsTTY(out))
	engine := domain.NewEngine(domain.WithPolicy(policy), domain.WithLogger(slog.Default()))

	workflow = domain.NewWorkflow(
		adapter.NewPresetSelector(rootNoteFlag, scaleTypeFlag, interactive),
		adapter.NewExporter(out),
		ui,
		engine,
		slog.Default(),
	)

	return workflow, nil
}

// explain adds a hint to input errors so the message names what to fix.
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnknownScale):
		return fmt.Errorf("%w (run 'modus list' to see available scales)", err)
	case errors.Is(err, domain.ErrInvalidRoot):
		return fmt.Errorf("%w (use --root with a sharp-spelled pitch class)", err)
	case errors.Is(err, adapter.ErrNoSelection):
		return fmt.Errorf("%w (pass --root and --scale when not on a terminal)", err)
	default:
		return err
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
