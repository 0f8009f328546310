package domain

import (
	"fmt"

	m "github.com/mouse-blink/modus/internal/model"
)

// scaleTable lists every known scale in presentation order.
var scaleTable = []m.ScaleDefinition{
	{
		Name:        "Ionian (Major)",
		Intervals:   []int{2, 2, 1, 2, 2, 2, 1},
		Description: "Bright, happy, and consonant; the basis of the major scale.",
		Degrees:     []string{"1", "2", "3", "4", "5", "6", "7"},
	},
	{
		Name:        "Dorian",
		Intervals:   []int{2, 1, 2, 2, 2, 1, 2},
		Description: "Minor sound with a raised 6th, often used in jazz and folk.",
		Degrees:     []string{"1", "2", "♭3", "4", "5", "6", "♭7"},
	},
	{
		Name:        "Phrygian",
		Intervals:   []int{1, 2, 2, 2, 1, 2, 2},
		Description: "Dark, minor sound with a lowered 2nd, common in Spanish and Middle Eastern music.",
		Degrees:     []string{"1", "♭2", "♭3", "4", "5", "♭6", "♭7"},
	},
	{
		Name:        "Lydian",
		Intervals:   []int{2, 2, 2, 1, 2, 2, 1},
		Description: "Bright and dreamy, with a raised 4th giving a sense of openness.",
		Degrees:     []string{"1", "2", "3", "♯4", "5", "6", "7"},
	},
	{
		Name:        "Mixolydian",
		Intervals:   []int{2, 2, 1, 2, 2, 1, 2},
		Description: "Major sound with a lowered 7th, often used in rock and blues.",
		Degrees:     []string{"1", "2", "3", "4", "5", "6", "♭7"},
	},
	{
		Name:        "Aeolian (Natural Minor)",
		Intervals:   []int{2, 1, 2, 2, 1, 2, 2},
		Description: "Sad and dark; the natural minor scale.",
		Degrees:     []string{"1", "2", "♭3", "4", "5", "♭6", "♭7"},
	},
	{
		Name:        "Locrian",
		Intervals:   []int{1, 2, 2, 1, 2, 2, 2},
		Description: "Unstable with a diminished 5th; rarely used as a tonal center.",
		Degrees:     []string{"1", "♭2", "♭3", "4", "♭5", "♭6", "♭7"},
	},

	// Harmonic minor and its modes
	{
		Name:        "Harmonic Minor",
		Intervals:   []int{2, 1, 2, 2, 1, 3, 1},
		Description: "Dramatic and exotic with a raised 7th; common in classical music.",
		Degrees:     []string{"1", "2", "♭3", "4", "5", "♭6", "7"},
	},
	{
		Name:        "Locrian ♮6",
		Intervals:   []int{1, 2, 2, 1, 3, 1, 2},
		Description: "Dark and tense with a minor 2nd and raised 6th.",
		Degrees:     []string{"1", "♭2", "♭3", "4", "♭5", "6", "♭7"},
	},
	{
		Name:        "Ionian #5",
		Intervals:   []int{2, 2, 1, 3, 1, 2, 1},
		Description: "Bright with a unique raised 5th.",
		Degrees:     []string{"1", "2", "3", "4", "♯5", "6", "7"},
	},
	{
		Name:        "Dorian #4",
		Intervals:   []int{2, 1, 3, 1, 2, 1, 2},
		Description: "Minor sound with an exotic raised 4th.",
		Degrees:     []string{"1", "2", "♭3", "♯4", "5", "6", "♭7"},
	},
	{
		Name:        "Phrygian Dominant",
		Intervals:   []int{1, 3, 1, 2, 1, 2, 2},
		Description: "Flamenco-like with a major 3rd and minor 2nd.",
		Degrees:     []string{"1", "♭2", "3", "4", "5", "♭6", "♭7"},
	},
	{
		Name:        "Lydian #2",
		Intervals:   []int{3, 1, 2, 1, 2, 2, 1},
		Description: "Bright and exotic with a raised 2nd.",
		Degrees:     []string{"1", "♯2", "3", "♯4", "5", "6", "7"},
	},
	{
		Name:        "UltraLocrian",
		Intervals:   []int{1, 2, 1, 2, 2, 1, 3},
		Description: "Dissonant with a diminished 4th and diminished 5th.",
		Degrees:     []string{"1", "♭2", "♭3", "♭4", "♭5", "♭6", "♭♭7"},
	},

	// Melodic minor and its modes
	{
		Name:        "Melodic Minor (Ascending)",
		Intervals:   []int{2, 1, 2, 2, 2, 2, 1},
		Description: "Hybrid of minor and major; raises the 6th and 7th in minor.",
		Degrees:     []string{"1", "2", "♭3", "4", "5", "6", "7"},
	},
	{
		Name:        "Dorian ♭2",
		Intervals:   []int{1, 2, 2, 2, 2, 1, 2},
		Description: "Minor feel with a lowered 2nd.",
		Degrees:     []string{"1", "♭2", "♭3", "4", "5", "6", "♭7"},
	},
	{
		Name:        "Lydian Augmented",
		Intervals:   []int{2, 2, 2, 2, 1, 2, 1},
		Description: "Bright and powerful with raised 4th and 5th.",
		Degrees:     []string{"1", "2", "3", "♯4", "♯5", "6", "7"},
	},
	{
		Name:        "Lydian Dominant",
		Intervals:   []int{2, 2, 2, 1, 2, 1, 2},
		Description: "A dominant feel with a raised 4th, often used in jazz.",
		Degrees:     []string{"1", "2", "3", "♯4", "5", "6", "♭7"},
	},
	{
		Name:        "Mixolydian ♭6",
		Intervals:   []int{2, 2, 1, 2, 1, 2, 2},
		Description: "Major but with a lowered 6th.",
		Degrees:     []string{"1", "2", "3", "4", "5", "♭6", "♭7"},
	},
	{
		Name:        "Aeolian ♭5",
		Intervals:   []int{2, 1, 2, 1, 2, 2, 2},
		Description: "Diminished feel with a flat 5th.",
		Degrees:     []string{"1", "2", "♭3", "4", "♭5", "♭6", "♭7"},
	},
	{
		Name:        "Altered Scale (Super Locrian)",
		Intervals:   []int{1, 2, 1, 2, 2, 2, 2},
		Description: "Complex with lots of tension; often used over altered chords.",
		Degrees:     []string{"1", "♭2", "♭3", "♭4", "♭5", "♭6", "♭7"},
	},

	// Other exotic scales
	{
		Name:        "Hungarian Minor",
		Intervals:   []int{2, 1, 3, 1, 1, 3, 1},
		Description: "Exotic with an augmented second; common in Eastern European music.",
		Degrees:     []string{"1", "2", "♭3", "♯4", "5", "♭6", "7"},
	},
	{
		Name:        "Hungarian Major",
		Intervals:   []int{3, 1, 2, 1, 2, 1, 2},
		Description: "Bright yet exotic, with an augmented 2nd and flat 6th.",
		Degrees:     []string{"1", "♯2", "3", "♯4", "5", "6", "♭7"},
	},
	{
		Name:        "Gypsy Scale",
		Intervals:   []int{1, 3, 1, 2, 1, 3, 1},
		Description: "Exotic minor sound with a minor 2nd and raised 4th.",
		Degrees:     []string{"1", "♭2", "3", "4", "5", "♭6", "7"},
	},
	{
		Name:        "Flamenco Scale",
		Intervals:   []int{1, 3, 1, 2, 1, 2, 2},
		Description: "Used in flamenco, with a Spanish flavor.",
		Degrees:     []string{"1", "♭2", "3", "4", "5", "♭6", "♭7"},
	},
	{
		Name:        "Neapolitan Major",
		Intervals:   []int{1, 2, 2, 2, 2, 2, 1},
		Description: "Bright and unique, often used in classical music.",
		Degrees:     []string{"1", "♭2", "♭3", "4", "5", "6", "7"},
	},
	{
		Name:        "Neapolitan Minor",
		Intervals:   []int{1, 2, 2, 2, 1, 3, 1},
		Description: "Dramatic minor sound with a flat 2nd and raised 7th.",
		Degrees:     []string{"1", "♭2", "♭3", "4", "5", "♭6", "7"},
	},
	{
		Name:        "Pentatonic Major",
		Intervals:   []int{2, 2, 3, 2, 3},
		Description: "Simple and open; used in folk and rock music.",
		Degrees:     []string{"1", "2", "3", "5", "6"},
	},
	{
		Name:        "Pentatonic Minor",
		Intervals:   []int{3, 2, 2, 3, 2},
		Description: "Minor version of the pentatonic; widely used across genres.",
		Degrees:     []string{"1", "♭3", "4", "5", "♭7"},
	},
	{
		Name:        "Blues Scale",
		Intervals:   []int{3, 2, 1, 1, 3, 2},
		Description: "Minor sound with a flat 5th, essential in blues music.",
		Degrees:     []string{"1", "♭3", "4", "♭5", "5", "♭7"},
	},
}

var scaleIndex = func() map[string]int {
	idx := make(map[string]int, len(scaleTable))
	for i, def := range scaleTable {
		idx[def.Name] = i
	}

	return idx
}()

// Scales returns every scale definition in presentation order.
// The returned slice is a copy; the definitions share their interval slices.
func Scales() []m.ScaleDefinition {
	out := make([]m.ScaleDefinition, len(scaleTable))
	copy(out, scaleTable)

	return out
}

// ScaleNames returns the names of every scale in presentation order.
func ScaleNames() []string {
	names := make([]string, 0, len(scaleTable))
	for _, def := range scaleTable {
		names = append(names, def.Name)
	}

	return names
}

// LookupScale finds a scale definition by its exact name.
func LookupScale(name string) (m.ScaleDefinition, error) {
	i, ok := scaleIndex[name]
	if !ok {
		return m.ScaleDefinition{}, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}

	return scaleTable[i], nil
}
