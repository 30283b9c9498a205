package terminal

import "errors"

// Sentinel errors surfaced by the core. Callers use errors.Is to branch on
// them; none of them are fatal to a Pane — each has a defined recovery
// policy described alongside the function that returns it.
var (
	// ErrMalformedEscape is returned by ApplySGR when an SGR parameter
	// can't be parsed as a number. The offending parameter is skipped and
	// processing continues. Malformed cursor-movement parameters fall back
	// to their defaults without an error.
	ErrMalformedEscape = errors.New("terminal: malformed escape parameter")

	// ErrInvalidColourArg is returned when an extended color sub-sequence
	// (38/48;5;n or 38/48;2;r;g;b) is missing sub-parameters. The whole
	// SGR apply is aborted and the style is left unchanged.
	ErrInvalidColourArg = errors.New("terminal: invalid colour argument")

	// ErrWriteFailure is returned when the io.Writer fails while a line or
	// the cursor position is being rendered. Pass-through write failures
	// are logged, not returned.
	ErrWriteFailure = errors.New("terminal: write failure")
)
