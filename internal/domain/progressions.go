package domain

import (
	"strings"

	m "github.com/mouse-blink/modus/internal/model"
)

type progressionTemplate struct {
	name        string
	description string
	degrees     []int
	minorOnly   bool
}

var progressionTable = []progressionTemplate{
	{name: "Basic I-IV-V", description: "The most fundamental progression in music", degrees: []int{0, 3, 4}},
	{name: "II-V-I", description: "Essential jazz progression", degrees: []int{1, 4, 0}},
	{name: "50s Progression", description: "I-vi-IV-V progression, popular in doo-wop", degrees: []int{0, 5, 3, 4}},
	{name: "Circle Progression", description: "I-IV-V-vi, widely used in pop music", degrees: []int{0, 3, 4, 5}},
	{name: "Andalusian Cadence", description: "Common in Flamenco and rock music", degrees: []int{3, 2, 1, 0}, minorOnly: true},
}

// Progressions picks the common progressions out of a chord scale. Scales whose
// name contains "minor" also get the Andalusian cadence. A progression is left
// out when one of its degrees has no chord.
func Progressions(chords []m.ChordEntry, scaleName string) []m.Progression {
	minor := strings.Contains(strings.ToLower(scaleName), "minor")

	var out []m.Progression

	for _, tmpl := range progressionTable {
		if tmpl.minorOnly && !minor {
			continue
		}

		symbols := make([]string, 0, len(tmpl.degrees))
		for _, degree := range tmpl.degrees {
			if degree >= len(chords) {
				break
			}

			symbols = append(symbols, chords[degree].Symbol())
		}

		if len(symbols) != len(tmpl.degrees) {
			continue
		}

		out = append(out, m.Progression{
			Name:        tmpl.name,
			Description: tmpl.description,
			Degrees:     append([]int(nil), tmpl.degrees...),
			Chords:      symbols,
		})
	}

	return out
}
