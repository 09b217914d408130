package render

import (
	"fmt"

	"printfmt/internal/diag"
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

// CountStore services %n: it emits nothing and stores the running
// character count into the target, narrowed to the width the length
// modifier selects. Accepted targets per length:
//
//	none  *int
//	hh    *int8
//	h     *int16
//	l ll j t  *int64
//	z     *uint64
//
// A nil target (typed or untyped) fails the call.
func CountStore(s *sink.Sink, fs *spec.Specifier, target any) error {
	if target == nil {
		return diag.NewError(diag.CallNilTarget, diag.Span{}, "%n target is nil")
	}
	n := s.Written()

	switch fs.Length {
	case spec.LenNone:
		p, ok := target.(*int)
		if !ok {
			return countTypeError(fs, target, "*int")
		}
		if p == nil {
			return diag.NewError(diag.CallNilTarget, diag.Span{}, "%n target is nil")
		}
		*p = int(n)
	case spec.LenHH:
		p, ok := target.(*int8)
		if !ok {
			return countTypeError(fs, target, "*int8")
		}
		if p == nil {
			return diag.NewError(diag.CallNilTarget, diag.Span{}, "%n target is nil")
		}
		*p = int8(n)
	case spec.LenH:
		p, ok := target.(*int16)
		if !ok {
			return countTypeError(fs, target, "*int16")
		}
		if p == nil {
			return diag.NewError(diag.CallNilTarget, diag.Span{}, "%n target is nil")
		}
		*p = int16(n)
	case spec.LenL, spec.LenLL, spec.LenJ, spec.LenT:
		p, ok := target.(*int64)
		if !ok {
			return countTypeError(fs, target, "*int64")
		}
		if p == nil {
			return diag.NewError(diag.CallNilTarget, diag.Span{}, "%n target is nil")
		}
		*p = int64(n)
	case spec.LenZ:
		p, ok := target.(*uint64)
		if !ok {
			return countTypeError(fs, target, "*uint64")
		}
		if p == nil {
			return diag.NewError(diag.CallNilTarget, diag.Span{}, "%n target is nil")
		}
		*p = n
	default:
		return errBadDispatch(fs)
	}
	return nil
}

func countTypeError(fs *spec.Specifier, got any, want string) error {
	return diag.NewError(diag.CallArgType, diag.Span{},
		fmt.Sprintf("%%%sn needs a %s target, got %T", fs.Length, want, got))
}

// errBadDispatch flags a renderer invoked with a conversion it does not
// own; the driver's dispatch makes this unreachable.
func errBadDispatch(fs *spec.Specifier) error {
	return diag.NewError(diag.UnknownCode, diag.Span{},
		fmt.Sprintf("no renderer for conversion %q", fs.Type.String()))
}
