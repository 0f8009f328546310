package domain

import (
	"fmt"

	m "github.com/mouse-blink/modus/internal/model"
)

// Extended chord families, in presentation order.
const (
	GroupSecondaryDominants = "Secondary Dominants"
	GroupExtendedTriads     = "Extended Triads"
	GroupSuspended          = "Suspended Chords"
	GroupAddedTone          = "Added Tone Chords"
	GroupExtendedSevenths   = "Extended 7th Chords"
	GroupAlteredDominants   = "Altered Dominants"
)

// dominantDegree is the scale degree the altered dominants are built on.
const dominantDegree = 4

// ExtendedHarmony builds chords beyond the diatonic sevenths for a seven-degree
// scale. Scale tones are picked by offset along the scale; secondary dominants and
// alterations are chromatic, counted in semitones on the note cycle.
func ExtendedHarmony(scale m.RealizedScale) ([]m.ExtendedGroup, error) {
	size := len(scale)
	if size != diatonicDegrees {
		return nil, fmt.Errorf("%w: got %d degrees", ErrDegreeMismatch, size)
	}

	at := func(i int) m.Note {
		return scale[i%size]
	}

	groups := []m.ExtendedGroup{
		{Name: GroupSecondaryDominants},
		{Name: GroupExtendedTriads},
		{Name: GroupSuspended},
		{Name: GroupAddedTone},
		{Name: GroupExtendedSevenths},
		{Name: GroupAlteredDominants},
	}

	for i := range size {
		root, third, fifth, seventh := at(i), at(i+2), at(i+4), at(i+6)
		ninth, eleventh, thirteenth := at(i+1), at(i+3), at(i+5)
		name := string(root)

		// the leading-tone chord has no secondary dominant
		if i != size-1 {
			dominant := transpose(root, 7)
			groups[0].Chords = append(groups[0].Chords, m.ExtendedChord{
				Name:  fmt.Sprintf("%s7 → %s", dominant, root),
				Notes: []m.Note{dominant, transpose(dominant, 4), transpose(dominant, 7), transpose(dominant, 10)},
			})
		}

		groups[1].Chords = append(groups[1].Chords,
			m.ExtendedChord{Name: name + "add9", Notes: []m.Note{root, third, fifth, ninth}},
		)

		groups[2].Chords = append(groups[2].Chords,
			m.ExtendedChord{Name: name + "sus4", Notes: []m.Note{root, eleventh, fifth}},
			m.ExtendedChord{Name: name + "sus2", Notes: []m.Note{root, ninth, fifth}},
		)

		groups[3].Chords = append(groups[3].Chords,
			m.ExtendedChord{Name: name + "6", Notes: []m.Note{root, third, fifth, thirteenth}},
			m.ExtendedChord{Name: name + "add11", Notes: []m.Note{root, third, fifth, eleventh}},
		)

		groups[4].Chords = append(groups[4].Chords,
			m.ExtendedChord{Name: name + "9", Notes: []m.Note{root, third, fifth, seventh, ninth}},
			m.ExtendedChord{Name: name + "11", Notes: []m.Note{root, third, fifth, seventh, ninth, eleventh}},
			m.ExtendedChord{Name: name + "13", Notes: []m.Note{root, third, fifth, seventh, ninth, eleventh, thirteenth}},
		)

		if i == dominantDegree {
			groups[5].Chords = append(groups[5].Chords,
				m.ExtendedChord{Name: name + "7♭9", Notes: []m.Note{root, third, fifth, seventh, transpose(root, 1)}},
				m.ExtendedChord{Name: name + "7♯9", Notes: []m.Note{root, third, fifth, seventh, transpose(root, 3)}},
				m.ExtendedChord{Name: name + "7♭5", Notes: []m.Note{root, third, transpose(root, 6), seventh}},
			)
		}
	}

	return groups, nil
}

// transpose moves n by the given number of semitones around the note cycle.
func transpose(n m.Note, semitones int) m.Note {
	i, ok := m.NoteIndex(n)
	if !ok {
		return n
	}

	return m.NoteAt(i + semitones)
}
