package args

import (
	"fmt"

	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

// Source serves one directive's argument needs. The sequential
// implementation pops the list directly; the positional one reads the
// pre-captured slot array.
type Source interface {
	// Int serves %d/%i.
	Int(fs *spec.Specifier) (int64, error)
	// Uint serves %u/%o/%x/%X.
	Uint(fs *spec.Specifier) (uint64, error)
	// Char serves %c, already narrowed to an unsigned byte.
	Char(fs *spec.Specifier) (byte, error)
	// Str serves %s; null marks a nil string argument.
	Str(fs *spec.Specifier) (text string, null bool, err error)
	// Pointer serves %p as a numeric address.
	Pointer(fs *spec.Specifier) (addr uint64, null bool, err error)
	// CountTarget serves the %n writeback target.
	CountTarget(fs *spec.Specifier) (any, error)
	// WidthPrecision serves a preceding '*' int. pos is the 1-based
	// slot index in positional mode and ignored sequentially.
	WidthPrecision(pos int) (int, error)
}

// Sequential retrieves arguments in encounter order.
type Sequential struct {
	list *List
}

func NewSequential(list *List) *Sequential {
	return &Sequential{list: list}
}

func (s *Sequential) pop(fs *spec.Specifier) (any, error) {
	v, ok := s.list.next()
	if !ok {
		return nil, missingArg(fs)
	}
	return v, nil
}

func (s *Sequential) Int(fs *spec.Specifier) (int64, error) {
	v, err := s.pop(fs)
	if err != nil {
		return 0, err
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, badArg(fs, v, "integer")
	}
	return narrowSigned(n, fs.Length), nil
}

func (s *Sequential) Uint(fs *spec.Specifier) (uint64, error) {
	v, err := s.pop(fs)
	if err != nil {
		return 0, err
	}
	n, ok := toUint64(v)
	if !ok {
		return 0, badArg(fs, v, "integer")
	}
	return narrowUnsigned(n, fs.Length), nil
}

func (s *Sequential) Char(fs *spec.Specifier) (byte, error) {
	v, err := s.pop(fs)
	if err != nil {
		return 0, err
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, badArg(fs, v, "integer")
	}
	return byte(n), nil
}

func (s *Sequential) Str(fs *spec.Specifier) (string, bool, error) {
	v, err := s.pop(fs)
	if err != nil {
		return "", false, err
	}
	text, null, ok := toString(v)
	if !ok {
		return "", false, badArg(fs, v, "string")
	}
	return text, null, nil
}

func (s *Sequential) Pointer(fs *spec.Specifier) (uint64, bool, error) {
	v, err := s.pop(fs)
	if err != nil {
		return 0, false, err
	}
	addr, null, ok := toPointer(v)
	if !ok {
		return 0, false, badArg(fs, v, "pointer")
	}
	return addr, null, nil
}

func (s *Sequential) CountTarget(fs *spec.Specifier) (any, error) {
	return s.pop(fs)
}

func (s *Sequential) WidthPrecision(int) (int, error) {
	v, ok := s.list.next()
	if !ok {
		return 0, diag.NewError(diag.CallArgMissing, diag.Span{},
			"no argument left for a '*' width or precision")
	}
	n, okInt := toInt64(v)
	if !okInt {
		return 0, diag.NewError(diag.CallArgType, diag.Span{},
			fmt.Sprintf("'*' width or precision needs an int, got %T", v))
	}
	return clampInt(n), nil
}

func missingArg(fs *spec.Specifier) error {
	return diag.NewError(diag.CallArgMissing, diag.Span{},
		fmt.Sprintf("no argument left for %s", fs.String()))
}

func badArg(fs *spec.Specifier, v any, want string) error {
	return diag.NewError(diag.CallArgType, diag.Span{},
		fmt.Sprintf("%s needs a %s argument, got %T", fs.String(), want, v))
}

// clampInt bounds a popped width/precision into the C int range the
// grammar promises.
func clampInt(n int64) int {
	const maxInt32 = 1<<31 - 1
	const minInt32 = -1 << 31
	if n > maxInt32 {
		return maxInt32
	}
	if n < minInt32 {
		return minInt32
	}
	return int(n)
}
