package printfmt

import (
	"errors"
	"fmt"

	"printfmt/internal/diag"
)

// Sentinel error classes. Every failing entry point wraps its cause in
// exactly one of these, so callers can classify with errors.Is without
// reaching into the diagnostics.
var (
	// ErrTemplate marks a malformed template: unknown conversion,
	// illegal length/type pair, broken positional arithmetic, or an
	// unimplemented conversion.
	ErrTemplate = errors.New("template error")
	// ErrArgument marks a missing or unusable argument value.
	ErrArgument = errors.New("argument error")
	// ErrSink marks an output failure: stream or fd write error, or
	// the allocated buffer refusing to grow further.
	ErrSink = errors.New("sink error")
)

// classify wraps a driver failure with its sentinel class.
func classify(err error) error {
	var d diag.Diagnostic
	if !errors.As(err, &d) {
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	switch d.Code {
	case diag.CallArgMissing, diag.CallArgType, diag.CallNilTarget:
		return fmt.Errorf("%w: %w", ErrArgument, err)
	case diag.SinkWriteFailed, diag.SinkOverflow:
		return fmt.Errorf("%w: %w", ErrSink, err)
	}
	return fmt.Errorf("%w: %w", ErrTemplate, err)
}
