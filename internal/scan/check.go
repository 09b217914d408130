package scan

import (
	"fmt"

	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

// checkLengthType rejects length/type pairs the standard leaves
// undefined, so the call fails cleanly instead of rendering garbage.
//
//	d i n      none hh h l ll j z t
//	u o x X    none hh h l ll j z t
//	f..A       none L
//	c s        none l
//	p          none
func (sc *Scanner) checkLengthType(fs *spec.Specifier) *diag.Diagnostic {
	bad := false
	switch fs.Type {
	case spec.TypeDec, spec.TypeInt, spec.TypeCount,
		spec.TypeUnsigned, spec.TypeOctal, spec.TypeHex, spec.TypeHexUpper:
		bad = fs.Length == spec.LenBigL
	case spec.TypeFloat, spec.TypeFloatUpper, spec.TypeSci, spec.TypeSciUpper,
		spec.TypeGeneral, spec.TypeGeneralUpper, spec.TypeHexFloat, spec.TypeHexFloatUpper:
		bad = fs.Length != spec.LenNone && fs.Length != spec.LenBigL
	case spec.TypeChar, spec.TypeString:
		bad = fs.Length != spec.LenNone && fs.Length != spec.LenL
	case spec.TypePointer:
		bad = fs.Length != spec.LenNone
	default:
		d := diag.NewError(diag.FmtUnknownType, sc.cur.SpanFrom(sc.start),
			"directive has no conversion")
		return &d
	}
	if bad {
		d := diag.NewError(diag.FmtIncompatibleLengthType, sc.cur.SpanFrom(sc.start),
			fmt.Sprintf("length %q cannot qualify conversion %q",
				fs.Length.String(), fs.Type.String()))
		return &d
	}
	return nil
}
