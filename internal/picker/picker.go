package picker

import "errors"

// ErrCancelled is returned when the user dismisses the picker without
// choosing a line.
var ErrCancelled = errors.New("selection cancelled")

// Options configure one picker run.
type Options struct {
	Prompt string
	Width  int
	// Select preselects the entry with this exact label, when non-empty.
	Select string
	// Extra is passed to the picker process verbatim, after the flags the
	// core sets itself.
	Extra []string
}

// Picker shows a list of lines and returns the one the user chose.
type Picker interface {
	Pick(lines []string, opts Options) (string, error)
}
