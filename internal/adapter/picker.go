package adapter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	pickerWidth     = 48
	pickerMaxHeight = 20
)

type choiceItem string

func (c choiceItem) FilterValue() string {
	return string(c)
}

// choiceDelegate renders one option per line.
type choiceDelegate struct{}

func (d choiceDelegate) Height() int  { return 1 }
func (d choiceDelegate) Spacing() int { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	choice, ok := item.(choiceItem)
	if !ok {
		return
	}

	if index == m.Index() {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		_, _ = fmt.Fprint(w, style.Render("› "+string(choice)))

		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	_, _ = fmt.Fprint(w, "  "+style.Render(string(choice)))
}

// pickerModel is a filterable single-choice list.
type pickerModel struct {
	list    list.Model
	choice  string
	aborted bool
}

func newPickerModel(title string, options []string) pickerModel {
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, choiceItem(option))
	}

	height := min(len(items)+6, pickerMaxHeight)

	choices := list.New(items, choiceDelegate{}, pickerWidth, height)
	choices.Title = title
	choices.SetShowStatusBar(false)
	choices.SetShowHelp(false)
	choices.SetFilteringEnabled(true)
	choices.FilterInput.Placeholder = "Filter…"
	choices.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	return pickerModel{list: choices}
}

func (p pickerModel) Init() tea.Cmd {
	return nil
}

func (p pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetWidth(msg.Width)
		p.list.SetHeight(min(msg.Height, pickerMaxHeight))

		return p, nil

	case tea.KeyMsg:
		// While filtering, every key belongs to the filter input.
		if p.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			p.aborted = true
			return p, tea.Quit
		case "enter":
			if item, ok := p.list.SelectedItem().(choiceItem); ok {
				p.choice = string(item)
			}

			return p, tea.Quit
		}
	}

	var cmd tea.Cmd

	p.list, cmd = p.list.Update(msg)

	return p, cmd
}

func (p pickerModel) View() string {
	if p.choice != "" || p.aborted {
		return ""
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render("↑/k up • ↓/j down • / filter • enter select • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, p.list.View(), footer) + "\n"
}

// ListSelector asks for each input with a Bubble Tea list.
type ListSelector struct {
	choices Choices
	input   io.Reader
	output  io.Writer
}

// NewListSelector creates a new ListSelector. Nil input or output fall back to
// the Bubble Tea defaults (stdin and stdout). The input must be a terminal.
func NewListSelector(choices Choices, input io.Reader, output io.Writer) *ListSelector {
	return &ListSelector{choices: choices, input: input, output: output}
}

// ChooseRoot asks for the root note.
func (s *ListSelector) ChooseRoot(ctx context.Context) (string, error) {
	return s.pick(ctx, rootPrompt, s.choices.Roots)
}

// ChooseScale asks for the scale type.
func (s *ListSelector) ChooseScale(ctx context.Context) (string, error) {
	return s.pick(ctx, scalePrompt, s.choices.Scales)
}

func (s *ListSelector) pick(ctx context.Context, title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s no options: %w", title, ErrNoSelection)
	}

	if !isTerminal(s.input) {
		return "", fmt.Errorf("%s input is not a terminal: %w", title, ErrNoSelection)
	}

	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.input != nil {
		programOptions = append(programOptions, tea.WithInput(s.input))
	}

	if s.output != nil {
		programOptions = append(programOptions, tea.WithOutput(s.output))
	}

	program := tea.NewProgram(newPickerModel(title, options), programOptions...)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(pickerModel)
	if !ok || result.aborted || result.choice == "" {
		return "", ErrNoSelection
	}

	return result.choice, nil
}

// isTerminal reports whether r is an interactive terminal. Nil means stdin.
func isTerminal(r io.Reader) bool {
	if r == nil {
		r = os.Stdin
	}

	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
