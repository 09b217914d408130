// Package printfmt is a C99/POSIX printf-family formatter: a format
// template plus a heterogeneous argument sequence produces a character
// stream on one of four destinations — an io.Writer, a raw file
// descriptor, a caller-supplied byte buffer, or a freshly allocated
// buffer handed to the caller.
//
// The template grammar is %[pos$][flags][width][.precision][length]type
// with POSIX numbered positional arguments ("%2$s %1$s") and '*'
// width/precision taken from preceding int arguments. Floating point
// conversions are recognised but unimplemented and fail cleanly, as do
// illegal length/type pairs and mixed positional/sequential templates.
//
// Every entry returns the C99 §7.19.6 character count on success and
// (-1, err) on failure. For the size-capped buffer entries the count is
// the number of characters the template produced, not the number
// stored.
package printfmt

import (
	"io"
	"os"

	"printfmt/internal/args"
	"printfmt/internal/diag"
	"printfmt/internal/driver"
	"printfmt/internal/sink"
)

// Args is a pre-captured argument sequence, the handle the V-variants
// take. A handle can be passed to several calls; each call works on its
// own copy of the read position, the way va_copy isolates a va_list.
type Args struct {
	vals []any
}

// NewArgs captures an argument sequence.
func NewArgs(a ...any) *Args {
	return &Args{vals: a}
}

func (a *Args) list() *args.List {
	if a == nil {
		return args.NewList(nil)
	}
	return args.NewList(a.vals)
}

func run(snk *sink.Sink, format string, h *Args) (int, error) {
	if err := driver.Format(snk, []byte(format), h.list(), driver.Options{}); err != nil {
		snk.Discard()
		return -1, classify(err)
	}
	return snk.Count()
}

// Printf formats to the process's standard output stream.
func Printf(format string, a ...any) (int, error) {
	return VPrintf(format, NewArgs(a...))
}

// VPrintf is Printf over a pre-captured argument handle.
func VPrintf(format string, a *Args) (int, error) {
	return run(sink.NewStream(os.Stdout), format, a)
}

// Fprintf formats to a byte stream.
func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return VFprintf(w, format, NewArgs(a...))
}

// VFprintf is Fprintf over a pre-captured argument handle.
func VFprintf(w io.Writer, format string, a *Args) (int, error) {
	return run(sink.NewStream(w), format, a)
}

// Sprintf formats into a caller buffer bounded by len(buf). A NUL is
// stored after the last written byte when room remains. The returned
// count is the number of characters the template produced.
func Sprintf(buf []byte, format string, a ...any) (int, error) {
	return VSprintf(buf, format, NewArgs(a...))
}

// VSprintf is Sprintf over a pre-captured argument handle.
func VSprintf(buf []byte, format string, a *Args) (int, error) {
	snk := sink.NewBuffer(buf, sink.NoLimit)
	n, err := run(snk, format, a)
	if err != nil {
		return -1, err
	}
	snk.Terminate()
	return n, nil
}

// Snprintf formats into a caller buffer storing at most size-1 bytes
// plus a terminating NUL. size 0 stores nothing and only counts, so a
// nil buf is valid; characters beyond the cap are counted but not
// stored.
func Snprintf(buf []byte, size int, format string, a ...any) (int, error) {
	return VSnprintf(buf, size, format, NewArgs(a...))
}

// VSnprintf is Snprintf over a pre-captured argument handle.
func VSnprintf(buf []byte, size int, format string, a *Args) (int, error) {
	if size < 0 {
		return -1, classify(diag.NewError(diag.SinkOverflow, diag.Span{},
			"negative buffer size"))
	}
	snk := sink.NewBuffer(buf, uint64(size))
	n, err := run(snk, format, a)
	if err != nil {
		return -1, err
	}
	snk.Terminate()
	return n, nil
}

// Asprintf formats into a buffer allocated here; on success *out
// receives it (length equal to the returned count, NUL one past the
// end inside capacity) and ownership transfers to the caller. On any
// failure *out is set to nil.
func Asprintf(out *[]byte, format string, a ...any) (int, error) {
	return VAsprintf(out, format, NewArgs(a...))
}

// VAsprintf is Asprintf over a pre-captured argument handle.
func VAsprintf(out *[]byte, format string, a *Args) (int, error) {
	if out == nil {
		return -1, classify(diag.NewError(diag.CallNilTemplate, diag.Span{},
			"nil output parameter"))
	}
	snk := sink.NewAllocated()
	n, err := run(snk, format, a)
	if err != nil {
		*out = nil
		return -1, err
	}
	buf, err := snk.TakeAllocated()
	if err != nil {
		*out = nil
		return -1, err
	}
	*out = buf
	return n, nil
}

// Dprintf formats to a raw file descriptor, one single-byte write per
// character. Interrupted or short writes fail the call; there is no
// retry.
func Dprintf(fd int, format string, a ...any) (int, error) {
	return VDprintf(fd, format, NewArgs(a...))
}

// VDprintf is Dprintf over a pre-captured argument handle.
func VDprintf(fd int, format string, a *Args) (int, error) {
	return run(sink.NewDescriptor(fd), format, a)
}
