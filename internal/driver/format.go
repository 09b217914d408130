package driver

import (
	"math"

	"printfmt/internal/args"
	"printfmt/internal/diag"
	"printfmt/internal/render"
	"printfmt/internal/scan"
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

// Options adjusts a Format run. The zero value is what the public
// entry points use.
type Options struct {
	// Reporter receives warning diagnostics (normalisations, repeated
	// flags). The public API leaves it nil; check/explain collect them.
	Reporter diag.Reporter
}

// Format renders the template into the sink, pulling arguments from
// list. The sink's running count is the caller's return value; any
// returned error aborts the call as a whole.
func Format(snk *sink.Sink, format []byte, list *args.List, opts Options) error {
	seq := args.NewSequential(list)
	var src args.Source = seq

	usingPositions := false
	first := true

	for i := 0; i < len(format); {
		if format[i] != '%' {
			if err := snk.Emit(format[i]); err != nil {
				return err
			}
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			if err := snk.Emit('%'); err != nil {
				return err
			}
			i += 2
			continue
		}

		at := uint32(i + 1)
		fs, d := scan.ReadSpecifier(format, at, scan.Options{Reporter: opts.Reporter})
		if d != nil {
			return *d
		}
		span := diag.Span{Start: uint32(i), End: at + uint32(fs.InputLen)}

		// The first directive decides the mode; in positional mode the
		// whole argument list is captured up front, in declared order.
		if first && fs.Position != 0 {
			usingPositions = true
			plan, pd := args.BuildPlan(format)
			if pd != nil {
				return *pd
			}
			if err := plan.Capture(list); err != nil {
				return err
			}
			src = args.NewPositional(plan)
		}
		first = false

		if (fs.Position == 0) == usingPositions {
			return diag.NewError(diag.CallPositionMixed, span,
				"directives must either all carry positions or none")
		}

		if fs.PrecedingWidth != 0 {
			w, err := src.WidthPrecision(fs.PrecedingWidth)
			if err != nil {
				return err
			}
			if w >= 0 {
				fs.Width = w
			} else {
				// A negative width means left-justified with the
				// absolute value; the most negative int saturates.
				fs.LeftJustify = true
				aw := -w
				if aw > math.MaxInt32 || aw < 0 {
					aw = math.MaxInt32
				}
				fs.Width = aw
			}
		}

		if fs.PrecedingPrecision != 0 {
			p, err := src.WidthPrecision(fs.PrecedingPrecision)
			if err != nil {
				return err
			}
			// Negative preceding precisions mean "unspecified".
			if p >= 0 {
				fs.Precision = p
			}
		}

		scan.Normalize(&fs, span, opts.Reporter)

		if err := dispatch(snk, &fs, span, src); err != nil {
			return err
		}
		i = int(at) + fs.InputLen
	}
	return nil
}

func dispatch(snk *sink.Sink, fs *spec.Specifier, span diag.Span, src args.Source) error {
	switch fs.Type {
	case spec.TypeDec, spec.TypeInt:
		v, err := src.Int(fs)
		if err != nil {
			return err
		}
		return render.Signed(snk, fs, v)

	case spec.TypeUnsigned, spec.TypeOctal, spec.TypeHex, spec.TypeHexUpper:
		v, err := src.Uint(fs)
		if err != nil {
			return err
		}
		return render.Unsigned(snk, fs, v)

	case spec.TypeFloat, spec.TypeFloatUpper, spec.TypeSci, spec.TypeSciUpper,
		spec.TypeGeneral, spec.TypeGeneralUpper, spec.TypeHexFloat, spec.TypeHexFloatUpper:
		return diag.NewError(diag.CallNotImplemented, span,
			"floating point conversions are not implemented")

	case spec.TypeChar:
		b, err := src.Char(fs)
		if err != nil {
			return err
		}
		return render.Char(snk, fs, b)

	case spec.TypeString:
		text, null, err := src.Str(fs)
		if err != nil {
			return err
		}
		return render.String(snk, fs, text, null)

	case spec.TypePointer:
		addr, null, err := src.Pointer(fs)
		if err != nil {
			return err
		}
		return render.Pointer(snk, fs, addr, null)

	case spec.TypeCount:
		target, err := src.CountTarget(fs)
		if err != nil {
			return err
		}
		return render.CountStore(snk, fs, target)
	}
	return diag.NewError(diag.FmtUnknownType, span, "directive has no conversion")
}
