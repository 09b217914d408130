package driver

import (
	"printfmt/internal/args"
	"printfmt/internal/diag"
	"printfmt/internal/scan"
	"printfmt/internal/spec"
)

// Directive is one parsed "%..." of a template, with its span.
type Directive struct {
	Spec spec.Specifier
	Span diag.Span
}

// Inspection is the diagnostics-only view of a template: every
// directive parsed, every error and warning collected, and the
// positional plan when the template elects positional mode.
type Inspection struct {
	Template   string
	Directives []Directive
	Bag        *diag.Bag
	Positional bool
	// Plan is non-nil for a well-formed positional template.
	Plan *args.Plan
}

// Inspect parses the template without consuming arguments. Unlike
// Format it keeps going past a broken directive so one run surfaces
// everything wrong with the template, up to maxDiagnostics.
func Inspect(template string, maxDiagnostics int) *Inspection {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	format := []byte(template)

	res := &Inspection{
		Template: template,
		Bag:      bag,
	}

	first := true
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i += 2
			continue
		}
		at := uint32(i + 1)
		fs, d := scan.ReadSpecifier(format, at, scan.Options{Reporter: reporter})
		span := diag.Span{Start: uint32(i), End: at + uint32(fs.InputLen)}
		if d != nil {
			dd := *d
			dd.Primary = dd.Primary.Cover(span)
			bag.Add(dd)
			// Mode stays undecided: a broken directive says nothing
			// about positional vs sequential.
			i = int(at) + fs.InputLen
			if fs.InputLen == 0 {
				i++
			}
			continue
		}

		if first {
			res.Positional = fs.Position != 0
		} else if (fs.Position != 0) != res.Positional {
			bag.Add(diag.NewError(diag.CallPositionMixed, span,
				"directives must either all carry positions or none"))
		}
		first = false

		res.Directives = append(res.Directives, Directive{Spec: fs, Span: span})

		// Collect the normalisation warnings without disturbing the
		// reported (raw) specifier.
		cp := fs
		scan.Normalize(&cp, span, reporter)

		i = int(at) + fs.InputLen
	}

	if res.Positional && !bag.HasErrors() {
		plan, d := args.BuildPlan(format)
		if d != nil {
			bag.Add(*d)
		} else {
			res.Plan = plan
		}
	}

	bag.Sort()
	return res
}
