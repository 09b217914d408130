package args

import (
	"reflect"

	"printfmt/internal/spec"
)

// List is the captured variadic argument sequence. Values can only
// leave it in declaration order, the same obligation a va_list imposes.
type List struct {
	vals []any
	idx  int
}

func NewList(vals []any) *List {
	return &List{vals: vals}
}

// next pops the next argument in declaration order.
func (l *List) next() (any, bool) {
	if l.idx >= len(l.vals) {
		return nil, false
	}
	v := l.vals[l.idx]
	l.idx++
	return v, true
}

// Remaining reports how many arguments have not been consumed yet.
func (l *List) Remaining() int {
	return len(l.vals) - l.idx
}

// toInt64 reinterprets any integer value as signed 64-bit.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(uint64(x)), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case uintptr:
		return int64(uint64(x)), true
	}
	return 0, false
}

// toUint64 reinterprets any integer value as unsigned 64-bit; negative
// signed inputs keep their bit pattern, as a va_arg retrieval would.
func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), true
	case int8:
		return uint64(x), true
	case int16:
		return uint64(x), true
	case int32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case uintptr:
		return uint64(x), true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// toString unwraps a %s argument. The second result marks a nil input.
func toString(v any) (text string, null, ok bool) {
	switch x := v.(type) {
	case nil:
		return "", true, true
	case string:
		return x, false, true
	case []byte:
		if x == nil {
			return "", true, true
		}
		return string(x), false, true
	case *string:
		if x == nil {
			return "", true, true
		}
		return *x, false, true
	}
	return "", false, false
}

// toPointer unwraps a %p argument into its numeric address.
func toPointer(v any) (addr uint64, null, ok bool) {
	switch x := v.(type) {
	case nil:
		return 0, true, true
	case uintptr:
		return uint64(x), x == 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice,
		reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return 0, true, true
		}
		return uint64(rv.Pointer()), false, true
	}
	return 0, false, false
}

// narrowSigned applies the declared-width assignment the standard
// requires for short arguments. The unqualified case keeps Go's native
// int width.
func narrowSigned(v int64, l spec.Length) int64 {
	switch l {
	case spec.LenHH:
		return int64(int8(v))
	case spec.LenH:
		return int64(int16(v))
	}
	return v
}

func narrowUnsigned(v uint64, l spec.Length) uint64 {
	switch l {
	case spec.LenHH:
		return uint64(uint8(v))
	case spec.LenH:
		return uint64(uint16(v))
	}
	return v
}
