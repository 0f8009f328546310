// Package model defines the data structures for scale realization and harmonization.
package model

// Note is a pitch-class name such as "C" or "F#".
type Note string

// NoteCount is the size of the chromatic cycle.
const NoteCount = 12

// NoteCycle lists the twelve pitch classes in chromatic order, sharps only.
var NoteCycle = [NoteCount]Note{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteAt returns the note at index i, wrapping modulo 12 in both directions.
func NoteAt(i int) Note {
	i %= NoteCount
	if i < 0 {
		i += NoteCount
	}

	return NoteCycle[i]
}

// NoteIndex returns the chromatic index of n and whether n is a known pitch class.
func NoteIndex(n Note) (int, bool) {
	for i, candidate := range NoteCycle {
		if candidate == n {
			return i, true
		}
	}

	return -1, false
}

// NoteNames returns the cycle as plain strings, in order.
func NoteNames() []string {
	names := make([]string, 0, NoteCount)
	for _, n := range NoteCycle {
		names = append(names, string(n))
	}

	return names
}
