package args_test

import (
	"errors"
	"testing"

	"printfmt/internal/args"
	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

func seqFor(vals ...any) *args.Sequential {
	return args.NewSequential(args.NewList(vals))
}

func plainSpec(t spec.Type, l spec.Length) *spec.Specifier {
	return &spec.Specifier{Precision: spec.PrecisionUnset, Length: l, Type: t}
}

func TestSequentialOrder(t *testing.T) {
	src := seqFor(1, 2, 3)
	fs := plainSpec(spec.TypeDec, spec.LenNone)
	for want := int64(1); want <= 3; want++ {
		n, err := src.Int(fs)
		if err != nil {
			t.Fatal(err)
		}
		if n != want {
			t.Errorf("got %d, want %d", n, want)
		}
	}
	if _, err := src.Int(fs); err == nil {
		t.Error("exhausted list must fail")
	}
}

func TestIntCoercionWidths(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{int(5), 5},
		{int8(-5), -5},
		{int16(300), 300},
		{int32(-70000), -70000},
		{int64(1 << 40), 1 << 40},
		{uint8(200), 200},
		{uint64(7), 7},
		{uintptr(9), 9},
	}
	for _, tc := range cases {
		src := seqFor(tc.in)
		n, err := src.Int(plainSpec(spec.TypeDec, spec.LenNone))
		if err != nil {
			t.Errorf("%T: %v", tc.in, err)
			continue
		}
		if n != tc.want {
			t.Errorf("%T: got %d, want %d", tc.in, n, tc.want)
		}
	}
}

// Отрицательное знаковое значение для %u сохраняет битовую картину,
// как это сделал бы va_arg.
func TestUintReinterpretsNegative(t *testing.T) {
	src := seqFor(-1)
	n, err := src.Uint(plainSpec(spec.TypeUnsigned, spec.LenNone))
	if err != nil {
		t.Fatal(err)
	}
	if n != ^uint64(0) {
		t.Errorf("got %x", n)
	}
}

func TestNarrowing(t *testing.T) {
	src := seqFor(300)
	n, err := src.Int(plainSpec(spec.TypeDec, spec.LenHH))
	if err != nil {
		t.Fatal(err)
	}
	if n != 44 { // int8(300)
		t.Errorf("hh: got %d, want 44", n)
	}

	src = seqFor(65536 + 7)
	n, err = src.Int(plainSpec(spec.TypeDec, spec.LenH))
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 { // int16(65543)
		t.Errorf("h: got %d, want 7", n)
	}

	src = seqFor(256 + 3)
	u, err := src.Uint(plainSpec(spec.TypeUnsigned, spec.LenHH))
	if err != nil {
		t.Fatal(err)
	}
	if u != 3 { // uint8(259)
		t.Errorf("hhu: got %d, want 3", u)
	}
}

func TestCharNarrowsToByte(t *testing.T) {
	src := seqFor(0x141)
	b, err := src.Char(plainSpec(spec.TypeChar, spec.LenNone))
	if err != nil {
		t.Fatal(err)
	}
	if b != 0x41 {
		t.Errorf("got %#x", b)
	}
}

func TestStrShapes(t *testing.T) {
	fs := plainSpec(spec.TypeString, spec.LenNone)

	text, null, err := seqFor("go").Str(fs)
	if err != nil || null || text != "go" {
		t.Errorf("string: %q/%v/%v", text, null, err)
	}

	text, null, err = seqFor([]byte("bs")).Str(fs)
	if err != nil || null || text != "bs" {
		t.Errorf("[]byte: %q/%v/%v", text, null, err)
	}

	_, null, err = seqFor(nil).Str(fs)
	if err != nil || !null {
		t.Errorf("nil: null=%v err=%v", null, err)
	}

	_, null, err = seqFor((*string)(nil)).Str(fs)
	if err != nil || !null {
		t.Errorf("nil *string: null=%v err=%v", null, err)
	}

	_, _, err = seqFor(42).Str(fs)
	if err == nil {
		t.Error("int for Str must fail")
	}
}

func TestPointerShapes(t *testing.T) {
	fs := plainSpec(spec.TypePointer, spec.LenNone)

	_, null, err := seqFor(nil).Pointer(fs)
	if err != nil || !null {
		t.Errorf("nil: null=%v err=%v", null, err)
	}

	x := 5
	addr, null, err := seqFor(&x).Pointer(fs)
	if err != nil || null || addr == 0 {
		t.Errorf("*int: %x/%v/%v", addr, null, err)
	}

	addr, null, err = seqFor(uintptr(0x1000)).Pointer(fs)
	if err != nil || null || addr != 0x1000 {
		t.Errorf("uintptr: %x/%v/%v", addr, null, err)
	}

	var nilMap map[string]int
	_, null, err = seqFor(nilMap).Pointer(fs)
	if err != nil || !null {
		t.Errorf("nil map: null=%v err=%v", null, err)
	}

	_, _, err = seqFor("str").Pointer(fs)
	if err == nil {
		t.Error("string for Pointer must fail")
	}
}

func TestWidthPrecisionSequential(t *testing.T) {
	src := seqFor(6, 3, 42)
	w, err := src.WidthPrecision(0)
	if err != nil || w != 6 {
		t.Fatalf("w = %d/%v", w, err)
	}
	p, err := src.WidthPrecision(0)
	if err != nil || p != 3 {
		t.Fatalf("p = %d/%v", p, err)
	}
	n, err := src.Int(plainSpec(spec.TypeDec, spec.LenNone))
	if err != nil || n != 42 {
		t.Fatalf("value = %d/%v", n, err)
	}
}

func TestMissingArgumentCode(t *testing.T) {
	src := seqFor()
	_, err := src.Int(plainSpec(spec.TypeDec, spec.LenNone))
	var d diag.Diagnostic
	if !errors.As(err, &d) || d.Code != diag.CallArgMissing {
		t.Errorf("err = %v", err)
	}
}
