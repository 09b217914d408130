package render

import (
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

// String renders %s. null marks a nil string argument: unless the
// precision is exactly zero it is substituted with "(null)"; with a
// zero precision nothing but padding is printed. The precision bounds
// how much of the text is consumed.
func String(s *sink.Sink, fs *spec.Specifier, text string, null bool) error {
	if fs.Precision != 0 && null {
		text = nilStringText
	} else if null {
		text = ""
	}

	length := len(text)
	if fs.Precision != spec.PrecisionUnset && fs.Precision < length {
		length = fs.Precision
	}

	padAmount := 0
	if fs.Width > length {
		padAmount = fs.Width - length
	}

	if fs.LeftJustify {
		if err := emitForwards(s, text[:length]); err != nil {
			return err
		}
		return pad(s, padAmount, ' ')
	}
	if err := pad(s, padAmount, ' '); err != nil {
		return err
	}
	return emitForwards(s, text[:length])
}

// Char renders %c: one byte inside its width.
func Char(s *sink.Sink, fs *spec.Specifier, b byte) error {
	buf := [1]byte{b}
	padAmount := 0
	if fs.Width > 1 {
		padAmount = fs.Width - 1
	}
	return emitPadded(s, buf[:], fs, 0, 0, padAmount, 0)
}
