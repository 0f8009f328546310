package domain

import (
	"context"
	"fmt"

	m "github.com/mouse-blink/modus/internal/model"
	"golang.org/x/sync/errgroup"
)

// BuildCatalog realizes every (root, scale) pair. Work is spread over at most
// parallel goroutines; entries come back ordered by scale, then root.
func BuildCatalog(ctx context.Context, eng Engine, roots []m.Note, scaleNames []string, parallel int) ([]m.CatalogEntry, error) {
	if parallel <= 0 {
		parallel = 1
	}

	defs := make([]m.ScaleDefinition, 0, len(scaleNames))
	for _, name := range scaleNames {
		def, err := LookupScale(name)
		if err != nil {
			return nil, err
		}

		defs = append(defs, def)
	}

	for _, root := range roots {
		if _, ok := m.NoteIndex(root); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, root)
		}
	}

	entries := make([]m.CatalogEntry, len(defs)*len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for si, def := range defs {
		for ri, root := range roots {
			slot := si*len(roots) + ri

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				scale, err := eng.RealizeScale(root, def.Intervals)
				if err != nil {
					return fmt.Errorf("realize %s %s: %w", root, def.Name, err)
				}

				entries[slot] = m.CatalogEntry{
					Root:        root,
					ScaleName:   def.Name,
					Scale:       scale,
					StepPattern: eng.StepPattern(def.Intervals),
				}

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}
