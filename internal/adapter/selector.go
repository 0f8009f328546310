// Package adapter provides the input and export adapters around the scale engine.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoSelection is returned when the user leaves a prompt without choosing.
var ErrNoSelection = errors.New("no selection made")

// Selector supplies the two inputs the scale engine needs.
// Implementations can be interactive (list, form) or fixed.
type Selector interface {
	ChooseRoot(ctx context.Context) (string, error)
	ChooseScale(ctx context.Context) (string, error)
}

// SelectorKind names an interactive selector implementation.
type SelectorKind string

// Available SelectorKind values.
const (
	SelectorList SelectorKind = "list"
	SelectorForm SelectorKind = "form"
)

// ParseSelectorKind converts a flag or config value to a SelectorKind.
func ParseSelectorKind(s string) (SelectorKind, error) {
	switch SelectorKind(strings.ToLower(strings.TrimSpace(s))) {
	case SelectorList, "":
		return SelectorList, nil
	case SelectorForm:
		return SelectorForm, nil
	default:
		return "", fmt.Errorf("unsupported selector: %q (want %s or %s)", s, SelectorList, SelectorForm)
	}
}

// Choices are the options offered by interactive selectors.
type Choices struct {
	Roots  []string
	Scales []string
}

// Prompt titles.
const (
	rootPrompt  = "Select the Root Note:"
	scalePrompt = "Select the Scale Type:"
)

// SelectorOptions configures NewSelector.
type SelectorOptions struct {
	Kind       SelectorKind
	Choices    Choices
	Input      io.Reader
	Output     io.Writer
	Accessible bool
}

// NewSelector creates an interactive selector for the given kind.
func NewSelector(opts SelectorOptions) (Selector, error) {
	switch opts.Kind {
	case SelectorList, "":
		return NewListSelector(opts.Choices, opts.Input, opts.Output), nil
	case SelectorForm:
		return NewFormSelector(opts.Choices, opts.Input, opts.Output, opts.Accessible), nil
	default:
		return nil, fmt.Errorf("unsupported selector: %q", opts.Kind)
	}
}

// presetSelector answers from fixed values and defers to next for anything unset.
type presetSelector struct {
	root  string
	scale string
	next  Selector
}

// NewPresetSelector returns a Selector that yields root and scale when they are
// non-empty and asks next otherwise. With a nil next, unset values fail with
// ErrNoSelection.
func NewPresetSelector(root, scale string, next Selector) Selector {
	return &presetSelector{root: root, scale: scale, next: next}
}

func (p *presetSelector) ChooseRoot(ctx context.Context) (string, error) {
	if p.root != "" {
		return p.root, nil
	}

	if p.next == nil {
		return "", fmt.Errorf("root note: %w", ErrNoSelection)
	}

	return p.next.ChooseRoot(ctx)
}

func (p *presetSelector) ChooseScale(ctx context.Context) (string, error) {
	if p.scale != "" {
		return p.scale, nil
	}

	if p.next == nil {
		return "", fmt.Errorf("scale type: %w", ErrNoSelection)
	}

	return p.next.ChooseScale(ctx)
}
