package domain

import (
	"context"
	"testing"

	m "github.com/mouse-blink/modus/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog_OrderedByScaleThenRoot(t *testing.T) {
	roots := []m.Note{"C", "A"}
	scales := []string{"Ionian (Major)", "Pentatonic Minor"}

	entries, err := BuildCatalog(context.Background(), NewEngine(), roots, scales, 3)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, m.Note("C"), entries[0].Root)
	assert.Equal(t, "Ionian (Major)", entries[0].ScaleName)
	assert.Equal(t, m.Note("A"), entries[1].Root)
	assert.Equal(t, "A, B, C#, D, E, F#, G#", entries[1].Scale.String())
	assert.Equal(t, "Pentatonic Minor", entries[2].ScaleName)
	assert.Equal(t, "A, C, D, E, G", entries[3].Scale.String())
	assert.Equal(t, "H-W-W-H-W", entries[3].StepPattern.String())
}

func TestBuildCatalog_AllRootsAllScales(t *testing.T) {
	names := ScaleNames()

	sequential, err := BuildCatalog(context.Background(), NewEngine(), m.NoteCycle[:], names, 1)
	require.NoError(t, err)

	parallel, err := BuildCatalog(context.Background(), NewEngine(), m.NoteCycle[:], names, 8)
	require.NoError(t, err)

	assert.Len(t, parallel, len(names)*m.NoteCount)
	assert.Equal(t, sequential, parallel, "worker count must not change the result")
}

func TestBuildCatalog_InvalidInputs(t *testing.T) {
	_, err := BuildCatalog(context.Background(), NewEngine(), []m.Note{"H"}, []string{"Dorian"}, 1)
	assert.ErrorIs(t, err, ErrInvalidRoot)

	_, err = BuildCatalog(context.Background(), NewEngine(), []m.Note{"C"}, []string{"Nonexistent"}, 1)
	assert.ErrorIs(t, err, ErrUnknownScale)
}

func TestBuildCatalog_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildCatalog(ctx, NewEngine(), []m.Note{"C"}, []string{"Dorian"}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
