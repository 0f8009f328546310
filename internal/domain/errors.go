package domain

import "errors"

// Sentinel errors returned by the scale engine. Callers match them with errors.Is.
var (
	// ErrInvalidRoot is returned when a root is not one of the twelve pitch classes.
	ErrInvalidRoot = errors.New("invalid root note")
	// ErrUnknownScale is returned when a scale name is not in the scale table.
	ErrUnknownScale = errors.New("unknown scale")
	// ErrDegreeMismatch is returned when strict harmonization meets a scale
	// that does not have seven degrees.
	ErrDegreeMismatch = errors.New("harmonization needs a seven-degree scale")
)
