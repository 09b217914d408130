package args

import (
	"fmt"

	"printfmt/internal/diag"
	"printfmt/internal/scan"
	"printfmt/internal/spec"
)

// defaultPlanSize is the slot count a plan starts with; the array grows
// by doubling when a higher position shows up.
const defaultPlanSize = 8

// strVal and ptrVal are the captured shapes of %s and %p arguments.
type strVal struct {
	text string
	null bool
}

type ptrVal struct {
	addr uint64
	null bool
}

// Slot is one entry of the positional cache: the declared type and
// length, and after Capture the value popped for it.
type Slot struct {
	Type   spec.Type
	Length spec.Length

	value any
	set   bool
}

// Plan is the result of the full-template pre-scan: slot i describes
// the argument declared at position i+1.
type Plan struct {
	slots []Slot
	// Count is the highest position the template references.
	Count int
}

// Slots exposes the assigned slots for tooling (the plan section of
// explain).
func (p *Plan) Slots() []Slot {
	return p.slots[:p.Count]
}

func newPlan() *Plan {
	p := &Plan{slots: make([]Slot, defaultPlanSize)}
	p.reset(0, defaultPlanSize)
	return p
}

func (p *Plan) reset(from, to int) {
	for i := from; i < to; i++ {
		p.slots[i] = Slot{Type: spec.TypeBad, Length: spec.LenNone}
	}
}

// ensure grows the slot array to hold at least size entries.
func (p *Plan) ensure(size int) {
	if size <= len(p.slots) {
		return
	}
	cur := len(p.slots)
	for cur < size {
		cur *= 2
	}
	next := make([]Slot, cur)
	copy(next, p.slots)
	old := len(p.slots)
	p.slots = next
	p.reset(old, cur)
}

// assign records a (type, length) declaration for the 1-based position.
// A slot referenced twice must agree both times.
func (p *Plan) assign(pos int, t spec.Type, l spec.Length) *diag.Diagnostic {
	p.ensure(pos)
	slot := &p.slots[pos-1]
	if slot.set && (slot.Type != t || slot.Length != l) {
		d := diag.NewError(diag.CallSlotConflict, diag.Span{},
			fmt.Sprintf("argument %d declared both as %%%s%s and %%%s%s",
				pos, slot.Length, slot.Type, l, t))
		return &d
	}
	slot.Type = t
	slot.Length = l
	slot.set = true
	if pos > p.Count {
		p.Count = pos
	}
	return nil
}

// BuildPlan sweeps the whole template and types every numbered
// position. Rendering-only fields of each directive are discarded; so
// are warnings, which the driver's own parse will report again.
func BuildPlan(format []byte) (*Plan, *diag.Diagnostic) {
	p := newPlan()

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
		fs, d := scan.ReadSpecifier(format, at, scan.Options{})
		if d != nil {
			return nil, d
		}
		if fs.Position == 0 {
			d := diag.NewError(diag.CallPositionMixed,
				diag.Span{Start: uint32(i), End: at + uint32(fs.InputLen)},
				"positional call contains a directive without a position")
			return nil, &d
		}
		if fs.PrecedingWidth != 0 {
			if d := p.assign(fs.PrecedingWidth, spec.TypeInt, spec.LenNone); d != nil {
				return nil, d
			}
		}
		if fs.PrecedingPrecision != 0 {
			if d := p.assign(fs.PrecedingPrecision, spec.TypeInt, spec.LenNone); d != nil {
				return nil, d
			}
		}
		if d := p.assign(fs.Position, fs.Type, fs.Length); d != nil {
			return nil, d
		}
		i = int(at) + fs.InputLen
	}

	// Every slot below the maximum must have been declared somewhere.
	for i := 0; i < p.Count; i++ {
		if !p.slots[i].set {
			d := diag.NewError(diag.CallSlotUnassigned, diag.Span{},
				fmt.Sprintf("argument %d is never used by the template", i+1))
			return nil, &d
		}
	}
	return p, nil
}

// Capture pops one argument per slot, in slot order, coercing each to
// its declared shape. Must run before any directive renders.
func (p *Plan) Capture(list *List) error {
	for i := 0; i < p.Count; i++ {
		slot := &p.slots[i]
		v, ok := list.next()
		if !ok {
			return diag.NewError(diag.CallArgMissing, diag.Span{},
				fmt.Sprintf("no argument supplied for position %d", i+1))
		}
		switch {
		case slot.Type.IsSigned():
			n, okc := toInt64(v)
			if !okc {
				return captureTypeError(i+1, slot, v, "integer")
			}
			slot.value = narrowSigned(n, slot.Length)
		case slot.Type.IsUnsigned():
			n, okc := toUint64(v)
			if !okc {
				return captureTypeError(i+1, slot, v, "integer")
			}
			slot.value = narrowUnsigned(n, slot.Length)
		case slot.Type.IsFloat():
			f, okc := toFloat64(v)
			if !okc {
				return captureTypeError(i+1, slot, v, "float")
			}
			slot.value = f
		case slot.Type == spec.TypeChar:
			n, okc := toInt64(v)
			if !okc {
				return captureTypeError(i+1, slot, v, "integer")
			}
			slot.value = byte(n)
		case slot.Type == spec.TypeString:
			text, null, okc := toString(v)
			if !okc {
				return captureTypeError(i+1, slot, v, "string")
			}
			slot.value = strVal{text: text, null: null}
		case slot.Type == spec.TypePointer:
			addr, null, okc := toPointer(v)
			if !okc {
				return captureTypeError(i+1, slot, v, "pointer")
			}
			slot.value = ptrVal{addr: addr, null: null}
		case slot.Type == spec.TypeCount:
			// Validated when the writeback runs.
			slot.value = v
		default:
			return diag.NewError(diag.CallSlotUnassigned, diag.Span{},
				fmt.Sprintf("position %d has no declared conversion", i+1))
		}
	}
	return nil
}

func captureTypeError(pos int, slot *Slot, v any, want string) error {
	return diag.NewError(diag.CallArgType, diag.Span{},
		fmt.Sprintf("position %d is declared %%%s%s and needs a %s argument, got %T",
			pos, slot.Length, slot.Type, want, v))
}
