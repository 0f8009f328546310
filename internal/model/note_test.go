package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteAt_Wraps(t *testing.T) {
	assert.Equal(t, Note("C"), NoteAt(0))
	assert.Equal(t, Note("B"), NoteAt(11))
	assert.Equal(t, Note("C"), NoteAt(12))
	assert.Equal(t, Note("D"), NoteAt(26))
	assert.Equal(t, Note("B"), NoteAt(-1))
	assert.Equal(t, Note("C"), NoteAt(-12))
}

func TestNoteIndex(t *testing.T) {
	for i, n := range NoteCycle {
		got, ok := NoteIndex(n)
		assert.True(t, ok, n)
		assert.Equal(t, i, got, n)
	}

	for _, bad := range []Note{"H", "Bb", "c", ""} {
		_, ok := NoteIndex(bad)
		assert.False(t, ok, bad)
	}
}

func TestScaleRendering(t *testing.T) {
	scale := RealizedScale{"A", "C", "D", "E", "G"}
	pattern := StepPattern{HalfStep, WholeStep, WholeStep, HalfStep, WholeStep}

	assert.Equal(t, "A, C, D, E, G", scale.String())
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, scale.Strings())
	assert.Equal(t, "H-W-W-H-W", pattern.String())
}

func TestScaleDefinition(t *testing.T) {
	def := ScaleDefinition{Name: "Pentatonic Minor", Intervals: []int{3, 2, 2, 3, 2}}

	assert.Equal(t, 5, def.DegreeCount())
	assert.Equal(t, 12, def.Span())
	assert.Len(t, NoteNames(), NoteCount)
}
