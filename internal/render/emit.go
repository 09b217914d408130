package render

import (
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

const digitBufSize = 64

const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"
)

const (
	nilPointerText = "(nil)"
	nilStringText  = "(null)"
)

// pad emits the pad byte n times. n may be zero or negative.
func pad(s *sink.Sink, n int, b byte) error {
	for i := 0; i < n; i++ {
		if err := s.Emit(b); err != nil {
			return err
		}
	}
	return nil
}

// emitBackwards replays a least-significant-first digit buffer in
// display order.
func emitBackwards(s *sink.Sink, buf []byte) error {
	for i := len(buf) - 1; i >= 0; i-- {
		if err := s.Emit(buf[i]); err != nil {
			return err
		}
	}
	return nil
}

func emitForwards(s *sink.Sink, text string) error {
	for i := 0; i < len(text); i++ {
		if err := s.Emit(text[i]); err != nil {
			return err
		}
	}
	return nil
}

// emitPadded writes a backwards digit buffer surrounded by its sign or
// base prefix, precision zeros and width padding. prefix bytes are
// skipped when zero.
//
// Orderings:
//
//	zero padded:    prefix, '0'*widthPad, '0'*precPad, digits
//	left justified: prefix, '0'*precPad, digits, ' '*widthPad
//	default:        ' '*widthPad, prefix, '0'*precPad, digits
func emitPadded(s *sink.Sink, digits []byte, fs *spec.Specifier,
	prefix, prefix2 byte, widthPad, precPad int) error {

	emitPrefix := func() error {
		if prefix != 0 {
			if err := s.Emit(prefix); err != nil {
				return err
			}
		}
		if prefix2 != 0 {
			if err := s.Emit(prefix2); err != nil {
				return err
			}
		}
		return nil
	}

	switch {
	case fs.ZeroPad:
		if err := emitPrefix(); err != nil {
			return err
		}
		if err := pad(s, widthPad, '0'); err != nil {
			return err
		}
		if err := pad(s, precPad, '0'); err != nil {
			return err
		}
		return emitBackwards(s, digits)

	case fs.LeftJustify:
		if err := emitPrefix(); err != nil {
			return err
		}
		if err := pad(s, precPad, '0'); err != nil {
			return err
		}
		if err := emitBackwards(s, digits); err != nil {
			return err
		}
		return pad(s, widthPad, ' ')

	default:
		if err := pad(s, widthPad, ' '); err != nil {
			return err
		}
		if err := emitPrefix(); err != nil {
			return err
		}
		if err := pad(s, precPad, '0'); err != nil {
			return err
		}
		return emitBackwards(s, digits)
	}
}

// precisionSplit computes the printed digit-field length and how many
// leading zeros the precision adds in front of the digits.
func precisionSplit(fs *spec.Specifier, digits int) (precLen, precPad int) {
	if fs.Precision == spec.PrecisionUnset {
		return digits, 0
	}
	if fs.Precision > digits {
		return fs.Precision, fs.Precision - digits
	}
	return digits, 0
}
