package args

import (
	"fmt"

	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

// Positional serves directives from a captured plan. Values were
// narrowed at capture time, so serving is a lookup plus a shape check.
type Positional struct {
	plan *Plan
}

func NewPositional(plan *Plan) *Positional {
	return &Positional{plan: plan}
}

func (s *Positional) slot(pos int) (*Slot, error) {
	if pos < 1 || pos > s.plan.Count {
		return nil, diag.NewError(diag.CallSlotUnassigned, diag.Span{},
			fmt.Sprintf("position %d was never planned", pos))
	}
	return &s.plan.slots[pos-1], nil
}

func (s *Positional) Int(fs *spec.Specifier) (int64, error) {
	slot, err := s.slot(fs.Position)
	if err != nil {
		return 0, err
	}
	n, ok := slot.value.(int64)
	if !ok {
		return 0, servedTypeError(fs.Position, slot, "integer")
	}
	return narrowSigned(n, fs.Length), nil
}

func (s *Positional) Uint(fs *spec.Specifier) (uint64, error) {
	slot, err := s.slot(fs.Position)
	if err != nil {
		return 0, err
	}
	n, ok := slot.value.(uint64)
	if !ok {
		return 0, servedTypeError(fs.Position, slot, "integer")
	}
	return narrowUnsigned(n, fs.Length), nil
}

func (s *Positional) Char(fs *spec.Specifier) (byte, error) {
	slot, err := s.slot(fs.Position)
	if err != nil {
		return 0, err
	}
	b, ok := slot.value.(byte)
	if !ok {
		return 0, servedTypeError(fs.Position, slot, "character")
	}
	return b, nil
}

func (s *Positional) Str(fs *spec.Specifier) (string, bool, error) {
	slot, err := s.slot(fs.Position)
	if err != nil {
		return "", false, err
	}
	v, ok := slot.value.(strVal)
	if !ok {
		return "", false, servedTypeError(fs.Position, slot, "string")
	}
	return v.text, v.null, nil
}

func (s *Positional) Pointer(fs *spec.Specifier) (uint64, bool, error) {
	slot, err := s.slot(fs.Position)
	if err != nil {
		return 0, false, err
	}
	v, ok := slot.value.(ptrVal)
	if !ok {
		return 0, false, servedTypeError(fs.Position, slot, "pointer")
	}
	return v.addr, v.null, nil
}

func (s *Positional) CountTarget(fs *spec.Specifier) (any, error) {
	slot, err := s.slot(fs.Position)
	if err != nil {
		return nil, err
	}
	return slot.value, nil
}

func (s *Positional) WidthPrecision(pos int) (int, error) {
	slot, err := s.slot(pos)
	if err != nil {
		return 0, err
	}
	n, ok := slot.value.(int64)
	if !ok {
		return 0, servedTypeError(pos, slot, "integer")
	}
	return clampInt(n), nil
}

func servedTypeError(pos int, slot *Slot, want string) error {
	return diag.NewError(diag.CallArgType, diag.Span{},
		fmt.Sprintf("position %d does not hold a %s (declared %%%s%s)",
			pos, want, slot.Length, slot.Type))
}
