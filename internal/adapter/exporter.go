package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/modus/internal/model"
)

// Format names an output encoding.
type Format string

// Available Format values. FormatText is rendered by the UI, not the exporter.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %q (want text, yaml or json)", s)
	}
}

// Exporter writes scale reports as structured documents.
type Exporter interface {
	Export(report m.ScaleReport, format Format) error
}

type exporter struct {
	out io.Writer
}

// NewExporter creates an Exporter writing to out.
func NewExporter(out io.Writer) Exporter {
	return &exporter{out: out}
}

type chordDocument struct {
	Name         string   `yaml:"name" json:"name"`
	Symbol       string   `yaml:"symbol" json:"symbol"`
	RootPosition string   `yaml:"root_position" json:"root_position"`
	Inversions   []string `yaml:"inversions" json:"inversions"`
}

type extendedChordDocument struct {
	Name  string   `yaml:"name" json:"name"`
	Notes []string `yaml:"notes" json:"notes"`
}

type extendedGroupDocument struct {
	Name   string                  `yaml:"name" json:"name"`
	Chords []extendedChordDocument `yaml:"chords" json:"chords"`
}

type progressionDocument struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Degrees     []int    `yaml:"degrees" json:"degrees"`
	Chords      []string `yaml:"chords" json:"chords"`
}

// reportDocument is the serialized form of a ScaleReport.
type reportDocument struct {
	Root         string                  `yaml:"root" json:"root"`
	ScaleName    string                  `yaml:"scale_name" json:"scale_name"`
	Scale        []string                `yaml:"scale" json:"scale"`
	Description  string                  `yaml:"description" json:"description"`
	StepPattern  []string                `yaml:"step_pattern" json:"step_pattern"`
	Chords       []chordDocument         `yaml:"chords" json:"chords"`
	Degrees      []string                `yaml:"degrees,omitempty" json:"degrees,omitempty"`
	HarmonyNote  string                  `yaml:"harmony_note,omitempty" json:"harmony_note,omitempty"`
	Extended     []extendedGroupDocument `yaml:"extended,omitempty" json:"extended,omitempty"`
	ExtendedNote string                  `yaml:"extended_note,omitempty" json:"extended_note,omitempty"`
	Progressions []progressionDocument   `yaml:"progressions,omitempty" json:"progressions,omitempty"`
}

func newReportDocument(report m.ScaleReport) reportDocument {
	doc := reportDocument{
		Root:         string(report.Root),
		ScaleName:    report.ScaleName,
		Scale:        report.Scale.Strings(),
		Description:  report.Description,
		StepPattern:  append([]string{}, report.StepPattern...),
		Chords:       make([]chordDocument, 0, len(report.Chords)),
		Degrees:      report.Degrees,
		HarmonyNote:  report.HarmonyNote,
		ExtendedNote: report.ExtendedNote,
	}

	for _, chord := range report.Chords {
		doc.Chords = append(doc.Chords, chordDocument{
			Name:         chord.Name(),
			Symbol:       chord.Symbol(),
			RootPosition: chord.RootPosition(),
			Inversions:   chord.InversionStrings(),
		})
	}

	for _, group := range report.Extended {
		groupDoc := extendedGroupDocument{Name: group.Name}
		for _, chord := range group.Chords {
			notes := make([]string, 0, len(chord.Notes))
			for _, n := range chord.Notes {
				notes = append(notes, string(n))
			}

			groupDoc.Chords = append(groupDoc.Chords, extendedChordDocument{Name: chord.Name, Notes: notes})
		}

		doc.Extended = append(doc.Extended, groupDoc)
	}

	for _, progression := range report.Progressions {
		doc.Progressions = append(doc.Progressions, progressionDocument{
			Name:        progression.Name,
			Description: progression.Description,
			Degrees:     progression.Degrees,
			Chords:      progression.Chords,
		})
	}

	return doc
}

func (e *exporter) Export(report m.ScaleReport, format Format) error {
	doc := newReportDocument(report)

	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(e.out)
		encoder.SetIndent(2)

		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(e.out)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}
