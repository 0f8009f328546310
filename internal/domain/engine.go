// Package domain contains the scale engine and the workflow that drives it.
package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "github.com/mouse-blink/modus/internal/model"
)

// HarmonyPolicy decides how harmonization treats scales without seven degrees.
type HarmonyPolicy string

const (
	// PolicyStrict rejects non-heptatonic scales with ErrDegreeMismatch.
	PolicyStrict HarmonyPolicy = "strict"
	// PolicyPartial harmonizes the first min(len, 7) degrees.
	PolicyPartial HarmonyPolicy = "partial"
)

// ParseHarmonyPolicy converts a flag or config value to a HarmonyPolicy.
func ParseHarmonyPolicy(s string) (HarmonyPolicy, error) {
	switch HarmonyPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyStrict, "":
		return PolicyStrict, nil
	case PolicyPartial:
		return PolicyPartial, nil
	default:
		return "", fmt.Errorf("unsupported harmony policy: %q (want %s or %s)", s, PolicyStrict, PolicyPartial)
	}
}

// diatonicDegrees is the length the quality and numeral tables assume.
const diatonicDegrees = 7

// The quality and numeral tables describe the major scale. They are applied
// to every scale as is, so labels for other scales do not match their tones.
var (
	qualityTable = [diatonicDegrees]string{"Maj7", "m7", "m7", "Maj7", "7", "m7", "m7b5"}
	numeralTable = [diatonicDegrees]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
)

// RealizeOptions controls what Realize computes besides the scale itself.
type RealizeOptions struct {
	Inversions   bool
	Extended     bool
	Progressions bool
}

// Engine realizes scales and their harmonization from the static tables.
type Engine interface {
	RealizeScale(root m.Note, intervals []int) (m.RealizedScale, error)
	StepPattern(intervals []int) m.StepPattern
	Harmonize(scale m.RealizedScale, includeInversions bool) ([]m.ChordEntry, error)
	Realize(root string, scaleName string, opts RealizeOptions) (m.ScaleReport, error)
	Policy() HarmonyPolicy
}

// EngineOption is a functional option for NewEngine.
type EngineOption func(*engine)

// WithPolicy sets the harmonization policy.
func WithPolicy(policy HarmonyPolicy) EngineOption {
	return func(e *engine) {
		e.policy = policy
	}
}

// WithLogger sets the logger used for non-fatal fallbacks.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type engine struct {
	policy HarmonyPolicy
	logger *slog.Logger
}

// NewEngine creates a new Engine. The default policy is PolicyStrict.
func NewEngine(opts ...EngineOption) Engine {
	e := &engine{
		policy: PolicyStrict,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *engine) Policy() HarmonyPolicy {
	return e.policy
}

// RealizeScale walks the note cycle from root, emitting the current note and
// then advancing by each interval. The landing note of the final step is dropped.
func (e *engine) RealizeScale(root m.Note, intervals []int) (m.RealizedScale, error) {
	index, ok := m.NoteIndex(root)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, root)
	}

	scale := make(m.RealizedScale, 0, len(intervals))
	for _, step := range intervals {
		scale = append(scale, m.NoteAt(index))
		index += step
	}

	return scale, nil
}

func (e *engine) StepPattern(intervals []int) m.StepPattern {
	pattern := make(m.StepPattern, 0, len(intervals))
	for _, step := range intervals {
		if step == 2 {
			pattern = append(pattern, m.WholeStep)
		} else {
			pattern = append(pattern, m.HalfStep)
		}
	}

	return pattern
}

// Harmonize stacks thirds along the scale on each degree. Under PolicyStrict a
// scale without seven degrees is rejected; under PolicyPartial only the first
// min(len, 7) degrees are built, wrapping modulo the scale length.
func (e *engine) Harmonize(scale m.RealizedScale, includeInversions bool) ([]m.ChordEntry, error) {
	size := len(scale)

	if e.policy != PolicyPartial && size != diatonicDegrees {
		return nil, fmt.Errorf("%w: got %d degrees", ErrDegreeMismatch, size)
	}

	count := min(size, diatonicDegrees)
	chords := make([]m.ChordEntry, 0, count)

	for i := range count {
		tones := m.ChordTones{
			scale[i],
			scale[(i+2)%size],
			scale[(i+4)%size],
			scale[(i+6)%size],
		}

		chord := m.ChordEntry{
			Degree:  i,
			Numeral: numeralTable[i],
			Quality: qualityTable[i],
			Tones:   tones,
		}

		if includeInversions {
			chord.Inversions = make([]m.Inversion, 0, len(tones)-1)
			for k := 1; k < len(tones); k++ {
				chord.Inversions = append(chord.Inversions, m.Inversion{Ordinal: k, Tones: tones.Rotate(k)})
			}
		}

		chords = append(chords, chord)
	}

	return chords, nil
}

// Realize resolves root and scale name and builds the full report. A harmonization
// degree mismatch is not fatal: the report keeps its notes and explains the gap.
func (e *engine) Realize(root string, scaleName string, opts RealizeOptions) (m.ScaleReport, error) {
	note := m.Note(root)
	if _, ok := m.NoteIndex(note); !ok {
		return m.ScaleReport{}, fmt.Errorf("%w: %q is not one of %s", ErrInvalidRoot, root, strings.Join(m.NoteNames(), " "))
	}

	def, err := LookupScale(scaleName)
	if err != nil {
		return m.ScaleReport{}, err
	}

	scale, err := e.RealizeScale(note, def.Intervals)
	if err != nil {
		return m.ScaleReport{}, err
	}

	report := m.ScaleReport{
		Root:        note,
		ScaleName:   def.Name,
		Scale:       scale,
		Description: def.Description,
		StepPattern: e.StepPattern(def.Intervals),
		Degrees:     def.Degrees,
	}

	chords, err := e.Harmonize(scale, opts.Inversions)

	switch {
	case errors.Is(err, ErrDegreeMismatch):
		report.HarmonyNote = fmt.Sprintf("chord scale not available for %d-note scales", len(scale))
		e.logger.Warn("skipping harmonization", "scale", def.Name, "degrees", len(scale), "policy", e.policy)
	case err != nil:
		return m.ScaleReport{}, fmt.Errorf("harmonize %s: %w", def.Name, err)
	default:
		report.Chords = chords
		if len(scale) != diatonicDegrees {
			report.HarmonyNote = fmt.Sprintf("harmonized %d of %d degrees; chord qualities follow the major scale", len(chords), len(scale))
		}
	}

	if opts.Extended {
		groups, err := ExtendedHarmony(scale)
		if err != nil {
			report.ExtendedNote = fmt.Sprintf("extended harmony needs a seven-note scale, %s has %d", def.Name, len(scale))
			e.logger.Debug("skipping extended harmony", "scale", def.Name, "error", err)
		} else {
			report.Extended = groups
		}
	}

	if opts.Progressions {
		report.Progressions = Progressions(report.Chords, def.Name)
	}

	e.logger.Debug("realized scale", "root", root, "scale", def.Name, "notes", scale.String())

	return report, nil
}
