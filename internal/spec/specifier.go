package spec

import (
	"fmt"
	"strings"
)

// PrecisionUnset is the Precision value of a directive that carried no
// '.' at all. Distinct from an explicit ".0", which parses to 0.
const PrecisionUnset = -1

// Specifier is the parsed description of a single "%..." directive:
// %[pos$][flags][width][.precision][length]type
//
// PrecedingWidth/PrecedingPrecision encode a '*': 0 means absent; in
// sequential mode the value 1 means "consume the next int"; in
// positional mode the value is the 1-based index of the int argument
// supplying the field.
type Specifier struct {
	// InputLen is the number of template bytes the directive consumed,
	// not counting the leading '%'.
	InputLen int

	LeftJustify bool // '-'
	AlwaysSign  bool // '+'
	EmptySign   bool // ' '
	AltForm     bool // '#'
	ZeroPad     bool // '0'

	PrecedingWidth int
	Width          int

	PrecedingPrecision int
	Precision          int

	Length Length
	Type   Type

	// Position is the 1-based argument index from a "pos$" prefix,
	// 0 when the directive is not positional.
	Position int
}

// Default returns a specifier with every field at its pre-parse value.
func Default() Specifier {
	return Specifier{Precision: PrecisionUnset, Type: TypeBad}
}

// Positional reports whether the directive carried a "pos$" prefix.
func (fs *Specifier) Positional() bool { return fs.Position > 0 }

// String reconstructs a canonical directive from the parsed fields.
// Lossy (flag order and redundant repeats are gone); for diagnostics
// and debug output only.
func (fs *Specifier) String() string {
	var b strings.Builder
	b.WriteByte('%')
	if fs.Position > 0 {
		fmt.Fprintf(&b, "%d$", fs.Position)
	}
	if fs.LeftJustify {
		b.WriteByte('-')
	}
	if fs.AlwaysSign {
		b.WriteByte('+')
	}
	if fs.EmptySign {
		b.WriteByte(' ')
	}
	if fs.AltForm {
		b.WriteByte('#')
	}
	if fs.ZeroPad {
		b.WriteByte('0')
	}
	switch {
	case fs.PrecedingWidth > 0 && fs.Position > 0:
		fmt.Fprintf(&b, "*%d$", fs.PrecedingWidth)
	case fs.PrecedingWidth > 0:
		b.WriteByte('*')
	case fs.Width > 0:
		fmt.Fprintf(&b, "%d", fs.Width)
	}
	switch {
	case fs.PrecedingPrecision > 0 && fs.Position > 0:
		fmt.Fprintf(&b, ".*%d$", fs.PrecedingPrecision)
	case fs.PrecedingPrecision > 0:
		b.WriteString(".*")
	case fs.Precision != PrecisionUnset:
		fmt.Fprintf(&b, ".%d", fs.Precision)
	}
	b.WriteString(fs.Length.String())
	b.WriteString(fs.Type.String())
	return b.String()
}
