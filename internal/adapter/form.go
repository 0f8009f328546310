package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

const formHeight = 12

// FormSelector asks for each input with a huh select field. Accessible mode
// replaces the TUI with numbered plain-text prompts for screen readers.
type FormSelector struct {
	choices    Choices
	input      io.Reader
	output     io.Writer
	accessible bool
}

// NewFormSelector creates a new FormSelector.
func NewFormSelector(choices Choices, input io.Reader, output io.Writer, accessible bool) *FormSelector {
	return &FormSelector{
		choices:    choices,
		input:      input,
		output:     output,
		accessible: accessible,
	}
}

// ChooseRoot asks for the root note.
func (s *FormSelector) ChooseRoot(ctx context.Context) (string, error) {
	return s.run(ctx, rootPrompt, s.choices.Roots)
}

// ChooseScale asks for the scale type.
func (s *FormSelector) ChooseScale(ctx context.Context) (string, error) {
	return s.run(ctx, scalePrompt, s.choices.Scales)
}

func (s *FormSelector) run(ctx context.Context, title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s no options: %w", title, ErrNoSelection)
	}

	var value string

	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Height(min(len(options)+2, formHeight)).
		Value(&value)

	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(s.accessible)
	if s.input != nil {
		form = form.WithInput(s.input)
	}

	if s.output != nil {
		form = form.WithOutput(s.output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrNoSelection
		}

		return "", fmt.Errorf("run form: %w", err)
	}

	if value == "" {
		return "", ErrNoSelection
	}

	return value, nil
}
