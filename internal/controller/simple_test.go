package controller

import (
	"bytes"
	"testing"

	m "github.com/mouse-blink/modus/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chord(numeral, quality string, tones m.ChordTones, inversions bool) m.ChordEntry {
	c := m.ChordEntry{Numeral: numeral, Quality: quality, Tones: tones}
	if inversions {
		for k := 1; k < len(tones); k++ {
			c.Inversions = append(c.Inversions, m.Inversion{Ordinal: k, Tones: tones.Rotate(k)})
		}
	}

	return c
}

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd), &out
}

func TestSimpleUI_DisplayScale_ReferenceLayout(t *testing.T) {
	ui, out := newTestSimpleUI()

	report := m.ScaleReport{
		Root:        "C",
		ScaleName:   "Ionian (Major)",
		Scale:       m.RealizedScale{"C", "D", "E", "F", "G", "A", "B"},
		Description: "Bright, happy, and consonant; the basis of the major scale.",
		StepPattern: m.StepPattern{"W", "W", "H", "W", "W", "W", "H"},
		Chords: []m.ChordEntry{
			chord("I", "Maj7", m.ChordTones{"C", "E", "G", "B"}, true),
			chord("ii", "m7", m.ChordTones{"D", "F", "A", "C"}, true),
		},
	}

	require.NoError(t, ui.DisplayScale(report))

	want := "\nScale Notes for C Ionian (Major): C, D, E, F, G, A, B\n" +
		"Description: Bright, happy, and consonant; the basis of the major scale.\n" +
		"\nWhole/Half Tone Pattern: W-W-H-W-W-W-H\n" +
		"\nChord Scale:\n" +
		"CMaj7 / IMaj7:\n" +
		"  C-E-G-B (Root)\n" +
		"  E-G-B-C (1st Inv)\n" +
		"  G-B-C-E (2nd Inv)\n" +
		"  B-C-E-G (3rd Inv)\n" +
		"Dm7 / iim7:\n" +
		"  D-F-A-C (Root)\n" +
		"  F-A-C-D (1st Inv)\n" +
		"  A-C-D-F (2nd Inv)\n" +
		"  C-D-F-A (3rd Inv)\n"

	assert.Equal(t, want, out.String())
}

func TestSimpleUI_DisplayScale_WithoutInversions(t *testing.T) {
	ui, out := newTestSimpleUI()

	report := m.ScaleReport{
		Root:      "G",
		ScaleName: "Mixolydian",
		Scale:     m.RealizedScale{"G", "A", "B", "C", "D", "E", "F"},
		Chords:    []m.ChordEntry{chord("I", "Maj7", m.ChordTones{"G", "B", "D", "F"}, false)},
	}

	require.NoError(t, ui.DisplayScale(report))

	assert.Contains(t, out.String(), "GMaj7 / IMaj7:\n  G-B-D-F (Root)\n")
	assert.NotContains(t, out.String(), "Inv)")
}

func TestSimpleUI_DisplayScale_HarmonyNoteAndExtended(t *testing.T) {
	ui, out := newTestSimpleUI()

	report := m.ScaleReport{
		Root:        "A",
		ScaleName:   "Pentatonic Minor",
		Scale:       m.RealizedScale{"A", "C", "D", "E", "G"},
		StepPattern: m.StepPattern{"H", "W", "W", "H", "W"},
		HarmonyNote: "chord scale not available for 5-note scales",
		Extended: []m.ExtendedGroup{
			{Name: "Empty"},
			{Name: "Suspended Chords", Chords: []m.ExtendedChord{{Name: "Asus4", Notes: []m.Note{"A", "D", "E"}}}},
		},
	}

	require.NoError(t, ui.DisplayScale(report))

	got := out.String()
	assert.Contains(t, got, "\nChord Scale:\n  (chord scale not available for 5-note scales)\n")
	assert.Contains(t, got, "\nExtended Harmony:\nSuspended Chords:\n  Asus4: A-D-E\n")
	assert.NotContains(t, got, "Empty:")
}

func TestSimpleUI_DisplayScaleList(t *testing.T) {
	ui, out := newTestSimpleUI()

	scales := []m.ScaleSummary{
		{
			Definition:  m.ScaleDefinition{Name: "Ionian (Major)", Intervals: []int{2, 2, 1, 2, 2, 2, 1}, Description: "Bright"},
			StepPattern: m.StepPattern{"W", "W", "H", "W", "W", "W", "H"},
		},
		{
			Definition:  m.ScaleDefinition{Name: "Blues Scale", Intervals: []int{3, 2, 1, 1, 3, 2}, Description: "Bluesy"},
			StepPattern: m.StepPattern{"H", "W", "H", "H", "H", "W"},
		},
	}

	require.NoError(t, ui.DisplayScaleList(scales))

	got := out.String()
	assert.Contains(t, got, "SCALE")
	assert.Contains(t, got, "Ionian (Major)")
	assert.Contains(t, got, "W-W-H-W-W-W-H")
	assert.Contains(t, got, "Blues Scale")
	assert.Contains(t, got, "Bluesy")
	assert.Contains(t, got, "TOTAL SCALES 2")
}

func TestSimpleUI_DisplayDefinition(t *testing.T) {
	ui, out := newTestSimpleUI()

	summary := m.ScaleSummary{
		Definition: m.ScaleDefinition{
			Name:        "Dorian",
			Intervals:   []int{2, 1, 2, 2, 2, 1, 2},
			Description: "Minor with a raised 6th.",
			Degrees:     []string{"1", "2", "♭3", "4", "5", "6", "♭7"},
		},
		StepPattern: m.StepPattern{"W", "H", "W", "W", "W", "H", "W"},
	}

	require.NoError(t, ui.DisplayDefinition(summary))

	want := "\nDorian\n" +
		"Intervals: 2 1 2 2 2 1 2\n" +
		"Whole/Half Tone Pattern: W-H-W-W-W-H-W\n" +
		"Degrees: 1 2 ♭3 4 5 6 ♭7\n" +
		"Description: Minor with a raised 6th.\n"

	assert.Equal(t, want, out.String())
}

func TestSimpleUI_DisplayCatalog(t *testing.T) {
	ui, out := newTestSimpleUI()

	entries := []m.CatalogEntry{
		{Root: "C", ScaleName: "Pentatonic Major", Scale: m.RealizedScale{"C", "D", "E", "G", "A"}, StepPattern: m.StepPattern{"W", "W", "H", "W", "H"}},
		{Root: "C#", ScaleName: "Pentatonic Major", Scale: m.RealizedScale{"C#", "D#", "F", "G#", "A#"}, StepPattern: m.StepPattern{"W", "W", "H", "W", "H"}},
	}

	require.NoError(t, ui.DisplayCatalog(entries))

	got := out.String()
	assert.Contains(t, got, "ROOT")
	assert.Contains(t, got, "C D E G A")
	assert.Contains(t, got, "C# D# F G# A#")
	assert.Contains(t, got, "W-W-H-W-H")
}

func TestSimpleUI_DisplayScale_Progressions(t *testing.T) {
	ui, out := newTestSimpleUI()

	report := m.ScaleReport{
		Root:      "C",
		ScaleName: "Ionian (Major)",
		Scale:     m.RealizedScale{"C", "D", "E", "F", "G", "A", "B"},
		Chords:    []m.ChordEntry{chord("I", "Maj7", m.ChordTones{"C", "E", "G", "B"}, false)},
		Progressions: []m.Progression{
			{Name: "Basic I-IV-V", Degrees: []int{0, 3, 4}, Chords: []string{"CMaj7", "FMaj7", "G7"}},
			{Name: "II-V-I", Degrees: []int{1, 4, 0}, Chords: []string{"Dm7", "G7", "CMaj7"}},
		},
	}

	require.NoError(t, ui.DisplayScale(report))

	assert.Contains(t, out.String(),
		"  C-E-G-B (Root)\n"+
			"\nCommon Progressions:\n"+
			"Basic I-IV-V: CMaj7 - FMaj7 - G7\n"+
			"II-V-I: Dm7 - G7 - CMaj7\n")
}

func TestSimpleUI_DisplayScale_ExtendedNote(t *testing.T) {
	ui, out := newTestSimpleUI()

	report := m.ScaleReport{
		Root:         "C",
		ScaleName:    "Pentatonic Major",
		Scale:        m.RealizedScale{"C", "D", "E", "G", "A"},
		ExtendedNote: "extended harmony needs a seven-note scale, Pentatonic Major has 5",
	}

	require.NoError(t, ui.DisplayScale(report))

	assert.Contains(t, out.String(), "\nExtended Harmony:\n  (extended harmony needs a seven-note scale, Pentatonic Major has 5)\n")
	assert.NotContains(t, out.String(), "Common Progressions")
}
