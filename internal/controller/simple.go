package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/modus/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text written to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScale prints the report in the reference layout: notes, description,
// step pattern, then each chord with its root position and inversions.
func (s *SimpleUI) DisplayScale(report m.ScaleReport) error {
	s.printf("\nScale Notes for %s %s: %s\n", report.Root, report.ScaleName, report.Scale)
	s.printf("Description: %s\n", report.Description)
	s.printf("\nWhole/Half Tone Pattern: %s\n", report.StepPattern)
	s.printf("\nChord Scale:\n")

	if report.HarmonyNote != "" {
		s.printf("  (%s)\n", report.HarmonyNote)
	}

	for _, chord := range report.Chords {
		s.printf("%s:\n", chord.Name())
		s.printf("  %s (Root)\n", chord.RootPosition())

		for _, inversion := range chord.Inversions {
			s.printf("  %s\n", inversion)
		}
	}

	if len(report.Progressions) > 0 {
		s.printf("\nCommon Progressions:\n")

		for _, progression := range report.Progressions {
			s.printf("%s: %s\n", progression.Name, progression)
		}
	}

	if report.ExtendedNote != "" {
		s.printf("\nExtended Harmony:\n  (%s)\n", report.ExtendedNote)
	}

	if len(report.Extended) > 0 {
		s.printf("\nExtended Harmony:\n")

		for _, group := range report.Extended {
			if len(group.Chords) == 0 {
				continue
			}

			s.printf("%s:\n", group.Name)

			for _, chord := range group.Chords {
				s.printf("  %s: %s\n", chord.Name, joinNotes(chord.Notes, "-"))
			}
		}
	}

	return nil
}

// DisplayScaleList prints every scale as a table.
func (s *SimpleUI) DisplayScaleList(scales []m.ScaleSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scale", "Notes", "Pattern", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, summary := range scales {
		table.Append([]string{
			summary.Definition.Name,
			strconv.Itoa(summary.Definition.DegreeCount()),
			summary.StepPattern.String(),
			summary.Definition.Description,
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Scales %d", len(scales)), "", "", ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayDefinition prints a single scale definition.
func (s *SimpleUI) DisplayDefinition(scale m.ScaleSummary) error {
	def := scale.Definition

	s.printf("\n%s\n", def.Name)
	s.printf("Intervals: %s\n", joinInts(def.Intervals, " "))
	s.printf("Whole/Half Tone Pattern: %s\n", scale.StepPattern)
	s.printf("Degrees: %s\n", strings.Join(def.Degrees, " "))
	s.printf("Description: %s\n", def.Description)

	return nil
}

// DisplayCatalog prints catalog entries as a table.
func (s *SimpleUI) DisplayCatalog(entries []m.CatalogEntry) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Root", "Scale", "Notes", "Pattern"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, entry := range entries {
		table.Append([]string{
			string(entry.Root),
			entry.ScaleName,
			joinNotes(entry.Scale, " "),
			entry.StepPattern.String(),
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func joinNotes(notes []m.Note, sep string) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, string(n))
	}

	return strings.Join(parts, sep)
}

func joinInts(values []int, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}

	return strings.Join(parts, sep)
}
