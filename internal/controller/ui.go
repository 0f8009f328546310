// Package controller provides output adapters for displaying scale reports.
package controller

import (
	m "github.com/mouse-blink/modus/internal/model"
)

// UI defines the interface for displaying scale data.
// Implementations can use different output methods (simple text, styled TTY).
type UI interface {
	DisplayScale(report m.ScaleReport) error
	DisplayScaleList(scales []m.ScaleSummary) error
	DisplayDefinition(scale m.ScaleSummary) error
	DisplayCatalog(entries []m.CatalogEntry) error
}
