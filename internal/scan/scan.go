package scan

import (
	"fmt"

	"printfmt/internal/diag"
	"printfmt/internal/spec"
)

// Scanner parses a single directive. The cursor covers the whole
// template so that diagnostic spans point into it; start marks the
// byte just past the directive's '%'.
type Scanner struct {
	cur   Cursor
	opts  Options
	start Mark
}

// ReadSpecifier parses one directive from format, starting just past
// the '%' at byte offset start. On success the specifier's InputLen
// holds the number of bytes consumed after the '%'. On failure the
// returned diagnostic is fatal for the whole call. An unrecognised or
// missing conversion letter leaves the type poisoned (TypeBad); an
// illegal length/type pair keeps the parsed type.
func ReadSpecifier(format []byte, start uint32, opts Options) (spec.Specifier, *diag.Diagnostic) {
	sc := &Scanner{
		cur:  NewCursor(format, start),
		opts: opts,
	}
	sc.start = sc.cur.Mark()

	fs := spec.Default()
	if d := sc.scanPosition(&fs); d != nil {
		sc.finish(&fs)
		return fs, d
	}
	if d := sc.checkLengthType(&fs); d != nil {
		sc.finish(&fs)
		return fs, d
	}
	sc.finish(&fs)
	return fs, nil
}

func (sc *Scanner) finish(fs *spec.Specifier) {
	fs.InputLen = int(sc.cur.Off() - uint32(sc.start))
}

// scanPosition reads the optional "pos$" prefix. A digit run that turns
// out not to end in '$' is the width instead, and parsing resumes at
// the precision stage: flag bytes cannot legally follow inline width
// digits.
func (sc *Scanner) scanPosition(fs *spec.Specifier) *diag.Diagnostic {
	b := sc.cur.Peek()
	if b < '1' || b > '9' {
		sc.scanFlags(fs)
		if d := sc.scanWidth(fs); d != nil {
			return d
		}
		return sc.scanTail(fs)
	}

	n := sc.scanNumber()
	if sc.cur.Eat('$') {
		fs.Position = n
		sc.scanFlags(fs)
		if d := sc.scanWidth(fs); d != nil {
			return d
		}
		return sc.scanTail(fs)
	}
	// Это была ширина, а не позиция.
	fs.Width = n
	return sc.scanTail(fs)
}

// scanTail handles the stages common to every path: precision, length
// modifier, conversion letter.
func (sc *Scanner) scanTail(fs *spec.Specifier) *diag.Diagnostic {
	if d := sc.scanPrecision(fs); d != nil {
		return d
	}
	sc.scanLength(fs)
	return sc.scanType(fs)
}

func (sc *Scanner) scanFlags(fs *spec.Specifier) {
	for {
		m := sc.cur.Mark()
		var seen *bool
		switch sc.cur.Peek() {
		case '-':
			seen = &fs.LeftJustify
		case '+':
			seen = &fs.AlwaysSign
		case ' ':
			seen = &fs.EmptySign
		case '#':
			seen = &fs.AltForm
		case '0':
			seen = &fs.ZeroPad
		default:
			return
		}
		b := sc.cur.Bump()
		if *seen {
			sc.warn(diag.FmtRepeatFlag, sc.cur.SpanFrom(m),
				fmt.Sprintf("flag %q repeated", b))
		}
		*seen = true
	}
}

func (sc *Scanner) scanWidth(fs *spec.Specifier) *diag.Diagnostic {
	if !sc.cur.Eat('*') {
		fs.Width = sc.scanNumber()
		return nil
	}
	if fs.Position == 0 {
		// Не позиционный режим: просто предшествующая ширина.
		fs.PrecedingWidth = 1
		return nil
	}
	// Позиционный режим требует "*digits$".
	m := Mark(sc.cur.Off() - 1)
	n := sc.scanNumber()
	fs.PrecedingWidth = n
	if n == 0 || !sc.cur.Eat('$') {
		d := diag.NewError(diag.FmtNoPositionalWidth, sc.cur.SpanFrom(m),
			"positional directive takes width as \"*pos$\"")
		return &d
	}
	return nil
}

func (sc *Scanner) scanPrecision(fs *spec.Specifier) *diag.Diagnostic {
	if !sc.cur.Eat('.') {
		return nil
	}
	if !sc.cur.Eat('*') {
		// ".": без цифр это явный ноль.
		fs.Precision = sc.scanNumber()
		return nil
	}
	if fs.Position == 0 {
		fs.PrecedingPrecision = 1
		return nil
	}
	m := Mark(sc.cur.Off() - 2)
	n := sc.scanNumber()
	fs.PrecedingPrecision = n
	if n == 0 || !sc.cur.Eat('$') {
		d := diag.NewError(diag.FmtNoPositionalPrecision, sc.cur.SpanFrom(m),
			"positional directive takes precision as \".*pos$\"")
		return &d
	}
	return nil
}

// scanLength reads the length modifier; "hh" and "ll" are greedy.
func (sc *Scanner) scanLength(fs *spec.Specifier) {
	switch {
	case sc.try2('h', 'h'):
		fs.Length = spec.LenHH
	case sc.cur.Eat('h'):
		fs.Length = spec.LenH
	case sc.try2('l', 'l'):
		fs.Length = spec.LenLL
	case sc.cur.Eat('l'):
		fs.Length = spec.LenL
	case sc.cur.Eat('j'):
		fs.Length = spec.LenJ
	case sc.cur.Eat('z'):
		fs.Length = spec.LenZ
	case sc.cur.Eat('t'):
		fs.Length = spec.LenT
	case sc.cur.Eat('L'):
		fs.Length = spec.LenBigL
	default:
		fs.Length = spec.LenNone
	}
}

func (sc *Scanner) scanType(fs *spec.Specifier) *diag.Diagnostic {
	m := sc.cur.Mark()
	var t spec.Type
	switch sc.cur.Peek() {
	case 'd':
		t = spec.TypeDec
	case 'i':
		t = spec.TypeInt
	case 'u':
		t = spec.TypeUnsigned
	case 'o':
		t = spec.TypeOctal
	case 'x':
		t = spec.TypeHex
	case 'X':
		t = spec.TypeHexUpper
	case 'f':
		t = spec.TypeFloat
	case 'F':
		t = spec.TypeFloatUpper
	case 'e':
		t = spec.TypeSci
	case 'E':
		t = spec.TypeSciUpper
	case 'g':
		t = spec.TypeGeneral
	case 'G':
		t = spec.TypeGeneralUpper
	case 'a':
		t = spec.TypeHexFloat
	case 'A':
		t = spec.TypeHexFloatUpper
	case 'c':
		t = spec.TypeChar
	case 's':
		t = spec.TypeString
	case 'p':
		t = spec.TypePointer
	case 'n':
		t = spec.TypeCount
	default:
		fs.Type = spec.TypeBad
		b := sc.cur.Peek()
		sc.cur.Bump()
		msg := "directive ends without a conversion letter"
		if b != 0 {
			msg = fmt.Sprintf("unknown conversion letter %q", b)
		}
		d := diag.NewError(diag.FmtUnknownType, sc.cur.SpanFrom(m), msg)
		return &d
	}
	sc.cur.Bump()
	fs.Type = t
	return nil
}

func (sc *Scanner) try2(a, b byte) bool {
	b0, b1, ok := sc.cur.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	sc.cur.Bump()
	sc.cur.Bump()
	return true
}
