package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	m "github.com/mouse-blink/modus/internal/model"
)

const noteCellWidth = 5

// TUI implements UI with lipgloss styling for interactive terminals.
type TUI struct {
	output io.Writer
	width  int
}

// NewTUI creates a new TUI rendering at most width columns.
func NewTUI(output io.Writer, width int) *TUI {
	if width <= 0 {
		width = defaultWidth
	}

	return &TUI{output: output, width: width}
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	noteStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true).
			Width(noteCellWidth)
	degreeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(noteCellWidth)
	chordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)

// DisplayScale renders the report as styled blocks.
func (t *TUI) DisplayScale(report m.ScaleReport) error {
	blocks := []string{
		titleStyle.Render(fmt.Sprintf("%s %s", report.Root, report.ScaleName)),
		t.renderNotes(report),
		lipgloss.NewStyle().Padding(0, 2).Width(t.width).Render(faintStyle.Render(report.Description)),
		lipgloss.NewStyle().Padding(0, 2).Render(
			labelStyle.Render("Whole/Half Tone Pattern: ") + accentStyle.Render(report.StepPattern.String()),
		),
		t.renderChords(report),
	}

	if len(report.Progressions) > 0 {
		blocks = append(blocks, t.renderProgressions(report.Progressions))
	}

	if len(report.Extended) > 0 || report.ExtendedNote != "" {
		blocks = append(blocks, t.renderExtended(report))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, blocks...))

	return err
}

func (t *TUI) renderNotes(report m.ScaleReport) string {
	notes := make([]string, 0, len(report.Scale))
	for _, n := range report.Scale {
		notes = append(notes, noteStyle.Render(string(n)))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, notes...)}

	if len(report.Degrees) == len(report.Scale) {
		degrees := make([]string, 0, len(report.Degrees))
		for _, d := range report.Degrees {
			degrees = append(degrees, degreeStyle.Render(d))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, degrees...))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (t *TUI) renderChords(report m.ScaleReport) string {
	lines := []string{labelStyle.Bold(true).Render("Chord Scale")}

	if report.HarmonyNote != "" {
		lines = append(lines, warnStyle.Render(report.HarmonyNote))
	}

	for _, chord := range report.Chords {
		lines = append(lines, chordStyle.Render(chord.Name()))
		lines = append(lines, "  "+chord.RootPosition()+labelStyle.Render(" (Root)"))

		for _, inversion := range chord.Inversions {
			lines = append(lines, faintStyle.Render("  "+inversion.String()))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (t *TUI) renderProgressions(progressions []m.Progression) string {
	lines := []string{labelStyle.Bold(true).Render("Common Progressions")}

	for _, progression := range progressions {
		lines = append(lines,
			chordStyle.Render(progression.Name)+"  "+accentStyle.Render(progression.String()),
			faintStyle.Render("  "+progression.Description),
		)
	}

	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (t *TUI) renderExtended(report m.ScaleReport) string {
	lines := []string{labelStyle.Bold(true).Render("Extended Harmony")}

	if report.ExtendedNote != "" {
		lines = append(lines, warnStyle.Render(report.ExtendedNote))
	}

	for _, group := range report.Extended {
		if len(group.Chords) == 0 {
			continue
		}

		lines = append(lines, chordStyle.Render(group.Name))
		for _, chord := range group.Chords {
			lines = append(lines, fmt.Sprintf("  %-10s %s", chord.Name, faintStyle.Render(joinNotes(chord.Notes, "-"))))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// DisplayScaleList renders every scale as a bordered table.
func (t *TUI) DisplayScaleList(scales []m.ScaleSummary) error {
	rows := make([][]string, 0, len(scales))
	for _, summary := range scales {
		rows = append(rows, []string{
			summary.Definition.Name,
			strconv.Itoa(summary.Definition.DegreeCount()),
			summary.StepPattern.String(),
		})
	}

	tbl := t.newTable().Headers("Scale", "Notes", "Pattern").Rows(rows...)

	_, err := fmt.Fprintf(t.output, "%s\n%s\n",
		titleStyle.Render("Scales"),
		lipgloss.NewStyle().Margin(0, 1).Render(tbl.Render()),
	)

	return err
}

// DisplayDefinition renders a single scale definition.
func (t *TUI) DisplayDefinition(scale m.ScaleSummary) error {
	def := scale.Definition

	ints := make([]string, 0, len(def.Intervals))
	for _, step := range def.Intervals {
		ints = append(ints, strconv.Itoa(step))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Intervals: ")+accentStyle.Render(strings.Join(ints, " ")),
		labelStyle.Render("Pattern:   ")+accentStyle.Render(scale.StepPattern.String()),
		labelStyle.Render("Degrees:   ")+accentStyle.Render(strings.Join(def.Degrees, " ")),
		"",
		lipgloss.NewStyle().Width(max(t.width-8, 20)).Render(faintStyle.Render(def.Description)),
	)

	_, err := fmt.Fprintf(t.output, "%s\n%s\n", titleStyle.Render(def.Name), boxStyle.Render(body))

	return err
}

// DisplayCatalog renders catalog entries as a bordered table.
func (t *TUI) DisplayCatalog(entries []m.CatalogEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			string(entry.Root),
			entry.ScaleName,
			joinNotes(entry.Scale, " "),
			entry.StepPattern.String(),
		})
	}

	tbl := t.newTable().Headers("Root", "Scale", "Notes", "Pattern").Rows(rows...)

	_, err := fmt.Fprintf(t.output, "%s\n%s\n",
		titleStyle.Render("Catalog"),
		lipgloss.NewStyle().Margin(0, 1).Render(tbl.Render()),
	)

	return err
}

func (t *TUI) newTable() *table.Table {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		})
}
