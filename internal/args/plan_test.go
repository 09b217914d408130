package args_test

import (
	"errors"
	"fmt"
	"testing"

	"printfmt/internal/args"
	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

func mustPlan(t *testing.T, template string) *args.Plan {
	t.Helper()
	p, d := args.BuildPlan([]byte(template))
	if d != nil {
		t.Fatalf("BuildPlan(%q) failed: %v", template, d)
	}
	return p
}

func planErr(t *testing.T, template string) diag.Code {
	t.Helper()
	_, d := args.BuildPlan([]byte(template))
	if d == nil {
		t.Fatalf("BuildPlan(%q) unexpectedly succeeded", template)
	}
	return d.Code
}

func TestBuildPlanTypes(t *testing.T) {
	p := mustPlan(t, "%2$s %1$d lit %3$08.2llx%%")
	slots := p.Slots()
	if len(slots) != 3 {
		t.Fatalf("count = %d", len(slots))
	}
	want := []struct {
		typ spec.Type
		len spec.Length
	}{
		{spec.TypeDec, spec.LenNone},
		{spec.TypeString, spec.LenNone},
		{spec.TypeHex, spec.LenLL},
	}
	for i, w := range want {
		if slots[i].Type != w.typ || slots[i].Length != w.len {
			t.Errorf("slot %d = %%%s%s, want %%%s%s",
				i+1, slots[i].Length, slots[i].Type, w.len, w.typ)
		}
	}
}

// Слоты ширины и точности объявляются как int без модификатора, и
// каждый проверяется по своему индексу.
func TestBuildPlanPrecedingSlots(t *testing.T) {
	p := mustPlan(t, "%1$*2$.*3$d")
	slots := p.Slots()
	if len(slots) != 3 {
		t.Fatalf("count = %d", len(slots))
	}
	for i := 1; i <= 2; i++ {
		if slots[i].Type != spec.TypeInt || slots[i].Length != spec.LenNone {
			t.Errorf("slot %d = %%%s%s, want plain int", i+1, slots[i].Length, slots[i].Type)
		}
	}
}

func TestBuildPlanGrowth(t *testing.T) {
	// Позиция 20 заставляет массив слотов вырасти с базовых 8.
	template := ""
	for i := 1; i <= 20; i++ {
		template += fmt.Sprintf("%%%d$d ", i)
	}
	p := mustPlan(t, template)
	if len(p.Slots()) != 20 {
		t.Errorf("count = %d", len(p.Slots()))
	}
}

func TestBuildPlanConflict(t *testing.T) {
	if code := planErr(t, "%1$d %1$s"); code != diag.CallSlotConflict {
		t.Errorf("type conflict: got %v", code)
	}
	if code := planErr(t, "%1$d %1$lld"); code != diag.CallSlotConflict {
		t.Errorf("length conflict: got %v", code)
	}
	// Повторное согласованное использование допустимо.
	mustPlan(t, "%1$d %1$d")
}

func TestBuildPlanGaps(t *testing.T) {
	if code := planErr(t, "%1$d %3$d"); code != diag.CallSlotUnassigned {
		t.Errorf("gap: got %v", code)
	}
}

func TestBuildPlanMixedMode(t *testing.T) {
	if code := planErr(t, "%1$d %d"); code != diag.CallPositionMixed {
		t.Errorf("mixed: got %v", code)
	}
}

func TestCaptureOrderAndServe(t *testing.T) {
	p := mustPlan(t, "%2$s %1$d")
	list := args.NewList([]any{7, "seven"})
	if err := p.Capture(list); err != nil {
		t.Fatal(err)
	}

	src := args.NewPositional(p)
	fs := spec.Specifier{Position: 2, Precision: spec.PrecisionUnset, Type: spec.TypeString}
	text, null, err := src.Str(&fs)
	if err != nil || null || text != "seven" {
		t.Errorf("Str = %q/%v/%v", text, null, err)
	}
	fs = spec.Specifier{Position: 1, Precision: spec.PrecisionUnset, Type: spec.TypeDec}
	n, err := src.Int(&fs)
	if err != nil || n != 7 {
		t.Errorf("Int = %d/%v", n, err)
	}
}

func TestCaptureMissingArgument(t *testing.T) {
	p := mustPlan(t, "%1$d %2$d")
	err := p.Capture(args.NewList([]any{1}))
	if err == nil {
		t.Fatal("expected failure")
	}
	var d diag.Diagnostic
	if !errors.As(err, &d) || d.Code != diag.CallArgMissing {
		t.Errorf("err = %v", err)
	}
}

func TestCaptureNarrowsByDeclaredLength(t *testing.T) {
	p := mustPlan(t, "%1$hhd")
	if err := p.Capture(args.NewList([]any{int64(300)})); err != nil {
		t.Fatal(err)
	}
	src := args.NewPositional(p)
	fs := spec.Specifier{Position: 1, Precision: spec.PrecisionUnset, Length: spec.LenHH, Type: spec.TypeDec}
	n, err := src.Int(&fs)
	if err != nil {
		t.Fatal(err)
	}
	if n != 44 { // int8(300)
		t.Errorf("n = %d, want 44", n)
	}
}

func TestWidthPrecisionServing(t *testing.T) {
	p := mustPlan(t, "%1$*2$d")
	if err := p.Capture(args.NewList([]any{5, -9})); err != nil {
		t.Fatal(err)
	}
	src := args.NewPositional(p)
	w, err := src.WidthPrecision(2)
	if err != nil || w != -9 {
		t.Errorf("WidthPrecision = %d/%v", w, err)
	}
}
