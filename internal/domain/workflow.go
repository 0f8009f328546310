package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/modus/internal/adapter"
	"github.com/mouse-blink/modus/internal/controller"
	m "github.com/mouse-blink/modus/internal/model"
)

// ShowArgs configures Workflow.Show.
type ShowArgs struct {
	Inversions   bool
	Extended     bool
	Progressions bool
	Format       adapter.Format
}

// CatalogArgs configures Workflow.Catalog. Empty Roots means all twelve notes,
// empty Scales means every scale in the table.
type CatalogArgs struct {
	Roots    []string
	Scales   []string
	Parallel int
}

// Workflow defines the user-facing operations of the tool.
type Workflow interface {
	Show(ctx context.Context, args ShowArgs) error
	List(ctx context.Context) error
	Describe(ctx context.Context, name string) error
	Catalog(ctx context.Context, args CatalogArgs) error
}

type workflow struct {
	selector adapter.Selector
	exporter adapter.Exporter
	ui       controller.UI
	engine   Engine
	logger   *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	selector adapter.Selector,
	exporter adapter.Exporter,
	ui controller.UI,
	engine Engine,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		selector: selector,
		exporter: exporter,
		ui:       ui,
		engine:   engine,
		logger:   logger,
	}
}

// Show asks for a root and a scale, realizes the scale and displays or exports it.
func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	root, err := w.selector.ChooseRoot(ctx)
	if err != nil {
		return fmt.Errorf("choose root note: %w", err)
	}

	scaleName, err := w.selector.ChooseScale(ctx)
	if err != nil {
		return fmt.Errorf("choose scale type: %w", err)
	}

	w.logger.Debug("selection", "root", root, "scale", scaleName)

	report, err := w.engine.Realize(root, scaleName, RealizeOptions{
		Inversions:   args.Inversions,
		Extended:     args.Extended,
		Progressions: args.Progressions,
	})
	if err != nil {
		return err
	}

	if args.Format == "" || args.Format == adapter.FormatText {
		return w.ui.DisplayScale(report)
	}

	return w.exporter.Export(report, args.Format)
}

// List displays every scale with its step pattern.
func (w *workflow) List(_ context.Context) error {
	defs := Scales()

	summaries := make([]m.ScaleSummary, 0, len(defs))
	for _, def := range defs {
		summaries = append(summaries, m.ScaleSummary{
			Definition:  def,
			StepPattern: w.engine.StepPattern(def.Intervals),
		})
	}

	return w.ui.DisplayScaleList(summaries)
}

// Describe displays a single scale definition.
func (w *workflow) Describe(_ context.Context, name string) error {
	def, err := LookupScale(name)
	if err != nil {
		return err
	}

	return w.ui.DisplayDefinition(m.ScaleSummary{
		Definition:  def,
		StepPattern: w.engine.StepPattern(def.Intervals),
	})
}

// Catalog realizes the requested scales from the requested roots and displays them.
func (w *workflow) Catalog(ctx context.Context, args CatalogArgs) error {
	roots := make([]m.Note, 0, m.NoteCount)
	if len(args.Roots) == 0 {
		roots = append(roots, m.NoteCycle[:]...)
	} else {
		for _, r := range args.Roots {
			roots = append(roots, m.Note(r))
		}
	}

	scales := args.Scales
	if len(scales) == 0 {
		scales = ScaleNames()
	}

	w.logger.Debug("building catalog", "roots", len(roots), "scales", len(scales), "parallel", args.Parallel)

	entries, err := BuildCatalog(ctx, w.engine, roots, scales, args.Parallel)
	if err != nil {
		return err
	}

	return w.ui.DisplayCatalog(entries)
}
