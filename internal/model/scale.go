package model

import "strings"

// ScaleDefinition describes a named scale by its semitone steps.
type ScaleDefinition struct {
	Name        string
	Intervals   []int
	Description string
	// Degrees holds the degree labels relative to the major scale ("1", "♭3", ...).
	Degrees []string
}

// DegreeCount is the number of notes the scale yields.
func (d ScaleDefinition) DegreeCount() int {
	return len(d.Intervals)
}

// Span is the sum of all intervals. A well-formed definition spans 12 semitones.
func (d ScaleDefinition) Span() int {
	total := 0
	for _, step := range d.Intervals {
		total += step
	}

	return total
}

// RealizedScale is the ordered list of notes of a scale built from a root.
type RealizedScale []Note

// Strings returns the notes as plain strings.
func (s RealizedScale) Strings() []string {
	out := make([]string, 0, len(s))
	for _, n := range s {
		out = append(out, string(n))
	}

	return out
}

// String joins the notes with ", ".
func (s RealizedScale) String() string {
	return strings.Join(s.Strings(), ", ")
}

// Step tokens.
const (
	WholeStep = "W"
	HalfStep  = "H"
)

// StepPattern is the whole/half projection of a scale's intervals.
// Intervals other than 2 render as H, so 1 and 3 are indistinguishable.
type StepPattern []string

// String joins the tokens with "-".
func (p StepPattern) String() string {
	return strings.Join(p, "-")
}

// ScaleSummary pairs a definition with its derived step pattern for listing.
type ScaleSummary struct {
	Definition  ScaleDefinition
	StepPattern StepPattern
}
