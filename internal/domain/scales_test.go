package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// semitones maps a degree label to its distance from the root.
var semitones = map[string]int{
	"1": 0, "♭2": 1, "2": 2, "♯2": 3, "♭3": 3, "3": 4, "♭4": 4, "4": 5,
	"♯4": 6, "♭5": 6, "5": 7, "♯5": 8, "♭6": 8, "6": 9, "♭♭7": 9, "♭7": 10, "7": 11,
}

func TestScales_IntervalsSpanAnOctave(t *testing.T) {
	for _, def := range Scales() {
		if def.Span() != 12 {
			t.Errorf("%s: intervals sum to %d, want 12", def.Name, def.Span())
		}

		for _, step := range def.Intervals {
			if step <= 0 {
				t.Errorf("%s: non-positive interval %d", def.Name, step)
			}
		}
	}
}

func TestScales_DegreesMatchIntervals(t *testing.T) {
	for _, def := range Scales() {
		require.Len(t, def.Degrees, len(def.Intervals), def.Name)

		offset := 0
		for i, label := range def.Degrees {
			want, ok := semitones[label]
			require.True(t, ok, "%s: unknown degree label %q", def.Name, label)
			assert.Equal(t, want, offset, "%s degree %d (%s)", def.Name, i, label)

			offset += def.Intervals[i]
		}
	}
}

func TestScales_NamesAreUniqueAndDescribed(t *testing.T) {
	seen := make(map[string]bool)

	for _, def := range Scales() {
		assert.False(t, seen[def.Name], "duplicate scale %s", def.Name)
		seen[def.Name] = true

		assert.NotEmpty(t, def.Description, def.Name)
	}

	assert.Len(t, ScaleNames(), len(seen))
	assert.Equal(t, "Ionian (Major)", ScaleNames()[0])
}

func TestLookupScale(t *testing.T) {
	def, err := LookupScale("Pentatonic Minor")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2, 3, 2}, def.Intervals)

	def, err = LookupScale("Ionian (Major)")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1, 2, 2, 2, 1}, def.Intervals)

	_, err = LookupScale("Nonexistent")
	if !errors.Is(err, ErrUnknownScale) {
		t.Fatalf("LookupScale(Nonexistent) error = %v, want ErrUnknownScale", err)
	}
}

func TestScales_ReturnsCopy(t *testing.T) {
	defs := Scales()
	defs[0].Name = "changed"

	assert.Equal(t, "Ionian (Major)", Scales()[0].Name)
}

func TestScales_CorrectedModesFromC(t *testing.T) {
	e := NewEngine()

	tests := map[string]string{
		"Dorian":    "C, D, D#, F, G, A, A#",
		"Phrygian":  "C, C#, D#, F, G, G#, A#",
		"Dorian #4": "C, D, D#, F#, G, A, A#",
	}

	for name, want := range tests {
		report, err := e.Realize("C", name, RealizeOptions{})
		require.NoError(t, err, name)
		assert.Equal(t, want, report.Scale.String(), name)
	}
}
