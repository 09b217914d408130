package scan

import (
	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

// Normalize clears fields that have no effect for the directive's
// conversion, or that would otherwise invoke undefined behaviour, e.g.
// "% +d" drops the space and "%-010d" drops the zero padding. Each fix
// is reported as a warning through r; the code of the last fix applied
// is returned (UnknownCode when the specifier was already coherent).
//
// Preceding width/precision markers are deliberately left alone even
// for "%n": clearing them would desynchronise argument retrieval.
func Normalize(fs *spec.Specifier, sp diag.Span, r diag.Reporter) diag.Code {
	last := diag.UnknownCode
	fix := func(code diag.Code, msg string) {
		last = code
		if r != nil {
			r.Report(code, diag.SevWarning, sp, msg)
		}
	}

	if fs.AlwaysSign && fs.EmptySign {
		fs.EmptySign = false
		fix(diag.FmtFlagDoesNothing, "' ' flag ignored with '+'")
	}

	switch fs.Type {
	case spec.TypeDec, spec.TypeInt, spec.TypeUnsigned:
		if fs.AltForm {
			fs.AltForm = false
			fix(diag.FmtFlagDoesNothing, "'#' flag has no effect on decimal conversions")
		}
	case spec.TypeHex, spec.TypeHexUpper:
		if fs.AlwaysSign {
			fs.AlwaysSign = false
			fix(diag.FmtFlagDoesNothing, "'+' flag has no effect on hex conversions")
		}
		if fs.EmptySign {
			fs.EmptySign = false
			fix(diag.FmtFlagDoesNothing, "' ' flag has no effect on hex conversions")
		}
	case spec.TypeChar, spec.TypeString, spec.TypePointer:
		if fs.AlwaysSign {
			fs.AlwaysSign = false
			fix(diag.FmtFlagDoesNothing, "'+' flag has no effect here")
		}
		if fs.EmptySign {
			fs.EmptySign = false
			fix(diag.FmtFlagDoesNothing, "' ' flag has no effect here")
		}
		if fs.AltForm {
			fs.AltForm = false
			fix(diag.FmtFlagDoesNothing, "'#' flag has no effect here")
		}
		if fs.ZeroPad {
			fs.ZeroPad = false
			fix(diag.FmtFlagDoesNothing, "'0' flag has no effect here")
		}
	case spec.TypeCount:
		if fs.AlwaysSign {
			fs.AlwaysSign = false
			fix(diag.FmtDoesNotPrint, "%n produces no output; '+' ignored")
		}
		if fs.EmptySign {
			fs.EmptySign = false
			fix(diag.FmtDoesNotPrint, "%n produces no output; ' ' ignored")
		}
		if fs.AltForm {
			fs.AltForm = false
			fix(diag.FmtDoesNotPrint, "%n produces no output; '#' ignored")
		}
		if fs.ZeroPad {
			fs.ZeroPad = false
			fix(diag.FmtDoesNotPrint, "%n produces no output; '0' ignored")
		}
		if fs.LeftJustify {
			fs.LeftJustify = false
			fix(diag.FmtDoesNotPrint, "%n produces no output; '-' ignored")
		}
		if fs.Width != 0 {
			fs.Width = 0
			fix(diag.FmtDoesNotPrint, "%n produces no output; width ignored")
		}
		if fs.Precision != spec.PrecisionUnset {
			fs.Precision = spec.PrecisionUnset
			fix(diag.FmtDoesNotPrint, "%n produces no output; precision ignored")
		}
	}

	if fs.Type == spec.TypeChar || fs.Type == spec.TypePointer {
		if fs.Precision != spec.PrecisionUnset {
			fs.Precision = spec.PrecisionUnset
			fix(diag.FmtPrecisionDoesNothing, "precision has no effect here")
		}
	}

	if fs.ZeroPad && fs.LeftJustify {
		fs.ZeroPad = false
		fix(diag.FmtFlagDoesNothing, "'0' flag ignored with '-'")
	}

	if fs.Precision != spec.PrecisionUnset && fs.ZeroPad {
		fs.ZeroPad = false
		fix(diag.FmtFlagDoesNothing, "'0' flag ignored when a precision is given")
	}

	return last
}
