package render

import (
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

// digitsBackwards writes v least-significant-first into buf in the
// given base and returns the digit count. Always writes at least one
// digit; callers handle the precision-zero/value-zero special case.
func digitsBackwards(buf []byte, v uint64, base uint64, upper bool) int {
	alphabet := digitsLower
	if upper {
		alphabet = digitsUpper
	}
	n := 0
	for v/base != 0 {
		buf[n] = alphabet[v%base]
		v /= base
		n++
	}
	buf[n] = alphabet[v%base]
	n++
	return n
}

// negativeDigitsBackwards is digitsBackwards for a negative decimal
// value, working on the negative magnitude so the most negative int64
// needs no unsafe negation.
func negativeDigitsBackwards(buf []byte, v int64) int {
	n := 0
	for v/10 != 0 {
		buf[n] = byte('0' - v%10)
		v /= 10
		n++
	}
	buf[n] = byte('0' - v%10)
	n++
	return n
}

// Signed renders %d and %i.
func Signed(s *sink.Sink, fs *spec.Specifier, v int64) error {
	if v >= 0 {
		return Unsigned(s, fs, uint64(v))
	}
	return decimalNegative(s, fs, v)
}

// Unsigned renders %u, %o, %x and %X, and the non-negative half of
// %d/%i, dispatching on the conversion.
func Unsigned(s *sink.Sink, fs *spec.Specifier, v uint64) error {
	switch fs.Type {
	case spec.TypeDec, spec.TypeInt, spec.TypeUnsigned:
		return decimalPositive(s, fs, v)
	case spec.TypeOctal:
		return octal(s, fs, v)
	case spec.TypeHex, spec.TypeHexUpper:
		return Hexadecimal(s, fs, v)
	}
	return errBadDispatch(fs)
}

func decimalPositive(s *sink.Sink, fs *spec.Specifier, v uint64) error {
	var buf [digitBufSize]byte
	length := 0
	// Precision zero with value zero prints nothing at all.
	if !(fs.Precision == 0 && v == 0) {
		length = digitsBackwards(buf[:], v, 10, false)
	}

	precLen, precPad := precisionSplit(fs, length)

	var sign byte
	switch {
	case fs.AlwaysSign:
		sign = '+'
	case fs.EmptySign:
		sign = ' '
	}

	widthPad := 0
	signLen := 0
	if sign != 0 {
		signLen = 1
	}
	if fs.Width > precLen+signLen {
		widthPad = fs.Width - precLen - signLen
	}

	return emitPadded(s, buf[:length], fs, sign, 0, widthPad, precPad)
}

func decimalNegative(s *sink.Sink, fs *spec.Specifier, v int64) error {
	var buf [digitBufSize]byte
	length := negativeDigitsBackwards(buf[:], v)

	precLen, precPad := precisionSplit(fs, length)

	widthPad := 0
	if fs.Width > precLen+1 {
		widthPad = fs.Width - precLen - 1
	}

	return emitPadded(s, buf[:length], fs, '-', 0, widthPad, precPad)
}

func octal(s *sink.Sink, fs *spec.Specifier, v uint64) error {
	var buf [digitBufSize]byte
	length := 0
	if !(fs.Precision == 0 && v == 0) {
		length = digitsBackwards(buf[:], v, 8, false)
	}

	precLen, precPad := precisionSplit(fs, length)

	// When precision already puts zeros in front, the '0' prefix of the
	// alternate form would be redundant.
	alt := fs.AltForm
	if precLen > length {
		alt = false
	}

	var zero byte
	widthPad := 0
	if alt {
		zero = '0'
		if fs.Width > precLen+1 {
			widthPad = fs.Width - precLen - 1
		}
	} else if fs.Width > precLen {
		widthPad = fs.Width - precLen
	}

	return emitPadded(s, buf[:length], fs, zero, 0, widthPad, precPad)
}

// Hexadecimal renders %x/%X; %p reuses it with a forced alternate form.
func Hexadecimal(s *sink.Sink, fs *spec.Specifier, v uint64) error {
	var buf [digitBufSize]byte
	length := 0
	if !(fs.Precision == 0 && v == 0) {
		length = digitsBackwards(buf[:], v, 16, fs.Type == spec.TypeHexUpper)
	}

	precLen, precPad := precisionSplit(fs, length)

	var zero, x byte
	widthPad := 0
	if fs.AltForm {
		zero = '0'
		x = 'x'
		if fs.Type == spec.TypeHexUpper {
			x = 'X'
		}
		if fs.Width > precLen+2 {
			widthPad = fs.Width - precLen - 2
		}
	} else if fs.Width > precLen {
		widthPad = fs.Width - precLen
	}

	return emitPadded(s, buf[:length], fs, zero, x, widthPad, precPad)
}
