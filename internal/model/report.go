package model

import "strings"

// ExtendedChord is a named chord built from scale tones beyond the seventh.
type ExtendedChord struct {
	Name  string
	Notes []Note
}

// ExtendedGroup collects extended chords of one family, e.g. "Suspended Chords".
type ExtendedGroup struct {
	Name   string
	Chords []ExtendedChord
}

// Progression is a common chord progression picked from a chord scale.
type Progression struct {
	Name        string
	Description string
	Degrees     []int // 0-indexed scale degrees
	Chords      []string
}

// String joins the chord symbols, e.g. "CMaj7 - FMaj7 - G7".
func (p Progression) String() string {
	return strings.Join(p.Chords, " - ")
}

// ScaleReport is the full result of realizing a scale from a root.
// Field order follows the rendered output: scale, description, step pattern, chords.
type ScaleReport struct {
	Root        Note
	ScaleName   string
	Scale       RealizedScale
	Description string
	StepPattern StepPattern
	Chords      []ChordEntry

	Degrees []string
	// HarmonyNote explains why Chords is empty or partial, if it is.
	HarmonyNote string
	Extended    []ExtendedGroup
	// ExtendedNote explains why Extended is empty when it was asked for.
	ExtendedNote string
	Progressions []Progression
}

// CatalogEntry is one row of a catalog: a scale realized from one root.
type CatalogEntry struct {
	Root        Note
	ScaleName   string
	Scale       RealizedScale
	StepPattern StepPattern
}
