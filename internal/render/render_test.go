package render_test

import (
	"bytes"
	"testing"

	"printfmt/internal/diag"
	"printfmt/internal/render"
	"printfmt/internal/scan"
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

// makeSpec parses and normalises one directive the way the driver does
// before it reaches a renderer.
func makeSpec(t *testing.T, template string) spec.Specifier {
	t.Helper()
	fs, d := scan.ReadSpecifier([]byte(template), 1, scan.Options{})
	if d != nil {
		t.Fatalf("parse %q failed: %v", template, d)
	}
	scan.Normalize(&fs, diag.Span{}, nil)
	return fs
}

func signed(t *testing.T, template string, v int64) string {
	t.Helper()
	var buf bytes.Buffer
	fs := makeSpec(t, template)
	if err := render.Signed(sink.NewStream(&buf), &fs, v); err != nil {
		t.Fatalf("render %q failed: %v", template, err)
	}
	return buf.String()
}

func unsigned(t *testing.T, template string, v uint64) string {
	t.Helper()
	var buf bytes.Buffer
	fs := makeSpec(t, template)
	if err := render.Unsigned(sink.NewStream(&buf), &fs, v); err != nil {
		t.Fatalf("render %q failed: %v", template, err)
	}
	return buf.String()
}

func TestSignedDecimal(t *testing.T) {
	cases := []struct {
		template string
		value    int64
		want     string
	}{
		{"%d", 0, "0"},
		{"%d", 42, "42"},
		{"%d", -5, "-5"},
		{"%5d", 42, "   42"},
		{"%-5d", 42, "42   "},
		{"%05d", 42, "00042"},
		{"%05d", -42, "-0042"},
		{"%+d", 42, "+42"},
		{"%+d", -42, "-42"},
		{"% d", 42, " 42"},
		{"%5.3d", 42, "  042"},
		{"%-5.3d", 42, "042  "},
		{"%.0d", 0, ""},
		{"%5.0d", 0, "     "},
		{"%.3d", -5, "-005"},
		{"%d", -9223372036854775808, "-9223372036854775808"},
		{"%d", 9223372036854775807, "9223372036854775807"},
		{"%+5d", 7, "   +7"},
		{"%-+5d", 7, "+7   "},
	}
	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			if got := signed(t, tc.template, tc.value); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnsignedBases(t *testing.T) {
	cases := []struct {
		template string
		value    uint64
		want     string
	}{
		{"%u", 42, "42"},
		{"%u", 18446744073709551615, "18446744073709551615"},
		{"%o", 8, "10"},
		{"%#o", 8, "010"},
		{"%#o", 0, "00"},
		{"%#.3o", 8, "010"},
		{"%x", 255, "ff"},
		{"%X", 255, "FF"},
		{"%#x", 255, "0xff"},
		{"%#X", 255, "0XFF"},
		{"%#010x", 255, "0x000000ff"},
		{"%10x", 255, "        ff"},
		{"%-10x|", 255, "ff        "},
		{"%.5x", 255, "000ff"},
		{"%.0x", 0, ""},
		{"%.0o", 0, ""},
		{"%.0u", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			if got := unsigned(t, tc.template, tc.value); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// Точность, дающая ведущие нули, выключает '0'-префикс восьмеричной
// альтернативной формы.
func TestOctalAltFormWithPrecisionPadding(t *testing.T) {
	if got := unsigned(t, "%#.5o", 8); got != "00010" {
		t.Errorf("got %q, want %q", got, "00010")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		template string
		value    string
		null     bool
		want     string
	}{
		{"%s", "hello", false, "hello"},
		{"%8s", "hi", false, "      hi"},
		{"%-8s|", "hi", false, "hi      "},
		{"%.3s", "abcdef", false, "abc"},
		{"%8.3s", "abcdef", false, "     abc"},
		{"%.0s", "abcdef", false, ""},
		{"%s", "", true, "(null)"},
		{"%.2s", "", true, "(n"},
		{"%.0s", "", true, ""},
		{"%3.0s", "", true, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.template+"/"+tc.value, func(t *testing.T) {
			var buf bytes.Buffer
			fs := makeSpec(t, tc.template)
			if err := render.String(sink.NewStream(&buf), &fs, tc.value, tc.null); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tc.want {
				t.Errorf("got %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestChar(t *testing.T) {
	cases := []struct {
		template string
		value    byte
		want     string
	}{
		{"%c", 'A', "A"},
		{"%3c", 'A', "  A"},
		{"%-3c|", 'A', "A  "},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		fs := makeSpec(t, tc.template)
		if err := render.Char(sink.NewStream(&buf), &fs, tc.value); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tc.want {
			t.Errorf("%q: got %q, want %q", tc.template, buf.String(), tc.want)
		}
	}
}

func TestPointer(t *testing.T) {
	var buf bytes.Buffer
	fs := makeSpec(t, "%p")
	if err := render.Pointer(sink.NewStream(&buf), &fs, 0, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(nil)" {
		t.Errorf("nil pointer: got %q", buf.String())
	}

	buf.Reset()
	if err := render.Pointer(sink.NewStream(&buf), &fs, 0xdeadbeef, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "0xdeadbeef" {
		t.Errorf("pointer: got %q", buf.String())
	}

	// Ширина и выравнивание сохраняются, точность сбрасывается.
	buf.Reset()
	fs = makeSpec(t, "%14p")
	if err := render.Pointer(sink.NewStream(&buf), &fs, 0xff, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "          0xff" {
		t.Errorf("wide pointer: got %q", buf.String())
	}
}

func TestCountStore(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewStream(&buf)
	for i := 0; i < 7; i++ {
		if err := s.Emit('x'); err != nil {
			t.Fatal(err)
		}
	}

	var n int
	fs := makeSpec(t, "%n")
	if err := render.CountStore(s, &fs, &n); err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("n = %d", n)
	}

	var n8 int8
	fs = makeSpec(t, "%hhn")
	if err := render.CountStore(s, &fs, &n8); err != nil {
		t.Fatal(err)
	}
	if n8 != 7 {
		t.Errorf("n8 = %d", n8)
	}

	var n64 int64
	fs = makeSpec(t, "%lln")
	if err := render.CountStore(s, &fs, &n64); err != nil {
		t.Fatal(err)
	}
	if n64 != 7 {
		t.Errorf("n64 = %d", n64)
	}

	var nz uint64
	fs = makeSpec(t, "%zn")
	if err := render.CountStore(s, &fs, &nz); err != nil {
		t.Fatal(err)
	}
	if nz != 7 {
		t.Errorf("nz = %d", nz)
	}
}

func TestCountStoreNilAndMistyped(t *testing.T) {
	s := sink.NewStream(&bytes.Buffer{})
	fs := makeSpec(t, "%n")
	if err := render.CountStore(s, &fs, nil); err == nil {
		t.Error("untyped nil must fail")
	}
	if err := render.CountStore(s, &fs, (*int)(nil)); err == nil {
		t.Error("typed nil must fail")
	}
	if err := render.CountStore(s, &fs, new(int64)); err == nil {
		t.Error("%n without length wants *int")
	}
}
