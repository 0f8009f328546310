package model

import (
	"fmt"
	"strings"
)

// ChordTones is a four-note seventh chord stacked in thirds: root, third, fifth, seventh.
type ChordTones [4]Note

// String joins the tones with "-".
func (c ChordTones) String() string {
	parts := make([]string, 0, len(c))
	for _, n := range c {
		parts = append(parts, string(n))
	}

	return strings.Join(parts, "-")
}

// Rotate returns the tones rotated left by n positions.
func (c ChordTones) Rotate(n int) ChordTones {
	var out ChordTones
	for i := range c {
		out[i] = c[(i+n)%len(c)]
	}

	return out
}

// Inversion is a rotation of a chord's root position.
type Inversion struct {
	Ordinal int // 1, 2 or 3
	Tones   ChordTones
}

// String renders the inversion as "E-G-B-C (1st Inv)".
func (i Inversion) String() string {
	return fmt.Sprintf("%s (%s Inv)", i.Tones, Ordinal(i.Ordinal))
}

// Ordinal renders 1, 2, 3 as "1st", "2nd", "3rd".
func Ordinal(n int) string {
	suffix := "th"

	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}

	return fmt.Sprintf("%d%s", n, suffix)
}

// ChordEntry is the seventh chord built on one scale degree.
type ChordEntry struct {
	Degree     int // 0-indexed scale degree
	Numeral    string
	Quality    string
	Tones      ChordTones
	Inversions []Inversion
}

// Root is the chord's root note.
func (c ChordEntry) Root() Note {
	return c.Tones[0]
}

// Symbol is the chord symbol, e.g. "CMaj7".
func (c ChordEntry) Symbol() string {
	return string(c.Root()) + c.Quality
}

// Name combines symbol and roman numeral, e.g. "CMaj7 / IMaj7".
func (c ChordEntry) Name() string {
	return fmt.Sprintf("%s / %s%s", c.Symbol(), c.Numeral, c.Quality)
}

// RootPosition renders the tones in root position, e.g. "C-E-G-B".
func (c ChordEntry) RootPosition() string {
	return c.Tones.String()
}

// InversionStrings renders each inversion.
func (c ChordEntry) InversionStrings() []string {
	out := make([]string, 0, len(c.Inversions))
	for _, inv := range c.Inversions {
		out = append(out, inv.String())
	}

	return out
}
