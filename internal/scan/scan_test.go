package scan_test

import (
	"testing"

	"printfmt/internal/diag"
	"printfmt/internal/scan"
	"printfmt/internal/spec"
)

// captureReporter собирает все диагностики, полученные от сканера
type captureReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *captureReporter) Report(code diag.Code, sev diag.Severity, primary diag.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
}

func (r *captureReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

// parse разбирает директиву, находящуюся сразу после '%' в template
func parse(t *testing.T, template string) (spec.Specifier, *captureReporter) {
	t.Helper()
	rep := &captureReporter{}
	fs, d := scan.ReadSpecifier([]byte(template), 1, scan.Options{Reporter: rep})
	if d != nil {
		t.Fatalf("ReadSpecifier(%q) failed: %v", template, d)
	}
	return fs, rep
}

func parseErr(t *testing.T, template string) diag.Code {
	t.Helper()
	_, d := scan.ReadSpecifier([]byte(template), 1, scan.Options{})
	if d == nil {
		t.Fatalf("ReadSpecifier(%q) unexpectedly succeeded", template)
	}
	return d.Code
}

func TestReadSpecifierBasic(t *testing.T) {
	cases := []struct {
		template string
		want     spec.Specifier
	}{
		{"%d", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypeDec}},
		{"%i", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypeInt}},
		{"%u", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypeUnsigned}},
		{"%5d", spec.Specifier{InputLen: 2, Width: 5, Precision: -1, Type: spec.TypeDec}},
		{"%-5d", spec.Specifier{InputLen: 3, LeftJustify: true, Width: 5, Precision: -1, Type: spec.TypeDec}},
		{"%05d", spec.Specifier{InputLen: 3, ZeroPad: true, Width: 5, Precision: -1, Type: spec.TypeDec}},
		{"%+ #0d", spec.Specifier{InputLen: 5, AlwaysSign: true, EmptySign: true, AltForm: true, ZeroPad: true, Precision: -1, Type: spec.TypeDec}},
		{"%.3s", spec.Specifier{InputLen: 3, Precision: 3, Type: spec.TypeString}},
		{"%.s", spec.Specifier{InputLen: 2, Precision: 0, Type: spec.TypeString}},
		{"%.0d", spec.Specifier{InputLen: 3, Precision: 0, Type: spec.TypeDec}},
		{"%lld", spec.Specifier{InputLen: 3, Precision: -1, Length: spec.LenLL, Type: spec.TypeDec}},
		{"%hhd", spec.Specifier{InputLen: 3, Precision: -1, Length: spec.LenHH, Type: spec.TypeDec}},
		{"%hd", spec.Specifier{InputLen: 2, Precision: -1, Length: spec.LenH, Type: spec.TypeDec}},
		{"%zu", spec.Specifier{InputLen: 2, Precision: -1, Length: spec.LenZ, Type: spec.TypeUnsigned}},
		{"%jd", spec.Specifier{InputLen: 2, Precision: -1, Length: spec.LenJ, Type: spec.TypeDec}},
		{"%td", spec.Specifier{InputLen: 2, Precision: -1, Length: spec.LenT, Type: spec.TypeDec}},
		{"%Lf", spec.Specifier{InputLen: 2, Precision: -1, Length: spec.LenBigL, Type: spec.TypeFloat}},
		{"%ls", spec.Specifier{InputLen: 2, Precision: -1, Length: spec.LenL, Type: spec.TypeString}},
		{"%*d", spec.Specifier{InputLen: 2, PrecedingWidth: 1, Precision: -1, Type: spec.TypeDec}},
		{"%.*d", spec.Specifier{InputLen: 3, PrecedingPrecision: 1, Precision: -1, Type: spec.TypeDec}},
		{"%*.*d", spec.Specifier{InputLen: 4, PrecedingWidth: 1, PrecedingPrecision: 1, Precision: -1, Type: spec.TypeDec}},
		{"%2$s", spec.Specifier{InputLen: 3, Position: 2, Precision: -1, Type: spec.TypeString}},
		{"%1$*2$.*3$d", spec.Specifier{InputLen: 10, Position: 1, PrecedingWidth: 2, PrecedingPrecision: 3, Precision: -1, Type: spec.TypeDec}},
		{"%#010x", spec.Specifier{InputLen: 5, AltForm: true, ZeroPad: true, Width: 10, Precision: -1, Type: spec.TypeHex}},
		{"%X", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypeHexUpper}},
		{"%p", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypePointer}},
		{"%n", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypeCount}},
		{"%c", spec.Specifier{InputLen: 1, Precision: -1, Type: spec.TypeChar}},
	}

	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			fs, _ := parse(t, tc.template)
			if fs != tc.want {
				t.Errorf("parsed %+v\nwant   %+v", fs, tc.want)
			}
		})
	}
}

// Ведущие цифры без '$' — это ширина, и стадия флагов после них не
// перезапускается: "%5-d" не должен получить флаг '-'.
func TestWidthDigitsDoNotReenterFlags(t *testing.T) {
	if code := parseErr(t, "%5-d"); code != diag.FmtUnknownType {
		t.Errorf("got %v, want FmtUnknownType", code)
	}
}

func TestRepeatedFlagWarns(t *testing.T) {
	fs, rep := parse(t, "%--5d")
	if !fs.LeftJustify {
		t.Error("left justify not set")
	}
	codes := rep.codes()
	if len(codes) != 1 || codes[0] != diag.FmtRepeatFlag {
		t.Errorf("warnings = %v, want one FmtRepeatFlag", codes)
	}
}

func TestUnknownType(t *testing.T) {
	for _, template := range []string{"%q", "%5.2y", "%", "%-"} {
		if code := parseErr(t, template); code != diag.FmtUnknownType {
			t.Errorf("%q: got %v, want FmtUnknownType", template, code)
		}
	}
}

func TestIncompatibleLengthType(t *testing.T) {
	cases := []string{"%Ld", "%Lu", "%Lx", "%Ln", "%hf", "%llf", "%hhc", "%Ls", "%hs", "%lp", "%zc"}
	for _, template := range cases {
		if code := parseErr(t, template); code != diag.FmtIncompatibleLengthType {
			t.Errorf("%q: got %v, want FmtIncompatibleLengthType", template, code)
		}
	}
}

func TestPositionalStarNeedsDollar(t *testing.T) {
	if code := parseErr(t, "%1$*d"); code != diag.FmtNoPositionalWidth {
		t.Errorf("width: got %v, want FmtNoPositionalWidth", code)
	}
	if code := parseErr(t, "%1$*2d"); code != diag.FmtNoPositionalWidth {
		t.Errorf("width without $: got %v, want FmtNoPositionalWidth", code)
	}
	if code := parseErr(t, "%1$5.*d"); code != diag.FmtNoPositionalPrecision {
		t.Errorf("precision: got %v, want FmtNoPositionalPrecision", code)
	}
	if code := parseErr(t, "%1$.*7d"); code != diag.FmtNoPositionalPrecision {
		t.Errorf("precision without $: got %v, want FmtNoPositionalPrecision", code)
	}
}

// Насыщение ширины на INT_MAX вместо переполнения.
func TestHugeWidthSaturates(t *testing.T) {
	fs, _ := parse(t, "%99999999999999999999d")
	if fs.Width != 1<<31-1 {
		t.Errorf("width = %d, want INT_MAX", fs.Width)
	}
}

func TestInputLenOffsets(t *testing.T) {
	// ReadSpecifier должен работать и в середине шаблона.
	template := "ab%7.2llxcd"
	fs, d := scan.ReadSpecifier([]byte(template), 3, scan.Options{})
	if d != nil {
		t.Fatalf("parse failed: %v", d)
	}
	if fs.InputLen != 7 {
		t.Errorf("InputLen = %d, want 7", fs.InputLen)
	}
	if fs.Width != 7 || fs.Precision != 2 || fs.Length != spec.LenLL || fs.Type != spec.TypeHex {
		t.Errorf("parsed %+v", fs)
	}
}
