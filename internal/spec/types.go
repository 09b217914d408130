package spec

// Type is the conversion letter of a directive, e.g. the 'd' in "%05d".
type Type uint8

const (
	TypeDec          Type = iota // d
	TypeInt                      // i
	TypeUnsigned                 // u
	TypeOctal                    // o
	TypeHex                      // x
	TypeHexUpper                 // X
	TypeFloat                    // f
	TypeFloatUpper               // F
	TypeSci                      // e
	TypeSciUpper                 // E
	TypeGeneral                  // g
	TypeGeneralUpper             // G
	TypeHexFloat                 // a
	TypeHexFloatUpper            // A
	TypeChar                     // c
	TypeString                   // s
	TypePointer                  // p
	TypeCount                    // n
	// TypeBad poisons a specifier whose conversion letter was not
	// recognised. Such a specifier must never reach a renderer.
	TypeBad
)

func (t Type) String() string {
	switch t {
	case TypeDec:
		return "d"
	case TypeInt:
		return "i"
	case TypeUnsigned:
		return "u"
	case TypeOctal:
		return "o"
	case TypeHex:
		return "x"
	case TypeHexUpper:
		return "X"
	case TypeFloat:
		return "f"
	case TypeFloatUpper:
		return "F"
	case TypeSci:
		return "e"
	case TypeSciUpper:
		return "E"
	case TypeGeneral:
		return "g"
	case TypeGeneralUpper:
		return "G"
	case TypeHexFloat:
		return "a"
	case TypeHexFloatUpper:
		return "A"
	case TypeChar:
		return "c"
	case TypeString:
		return "s"
	case TypePointer:
		return "p"
	case TypeCount:
		return "n"
	}
	return "?"
}

// IsSigned reports whether the conversion consumes a signed integer.
func (t Type) IsSigned() bool {
	return t == TypeDec || t == TypeInt
}

// IsUnsigned reports whether the conversion consumes an unsigned integer.
func (t Type) IsUnsigned() bool {
	switch t {
	case TypeUnsigned, TypeOctal, TypeHex, TypeHexUpper:
		return true
	}
	return false
}

// IsFloat reports whether the conversion consumes a floating point
// argument. These are recognised by the parser but unimplemented in the
// renderers.
func (t Type) IsFloat() bool {
	switch t {
	case TypeFloat, TypeFloatUpper, TypeSci, TypeSciUpper,
		TypeGeneral, TypeGeneralUpper, TypeHexFloat, TypeHexFloatUpper:
		return true
	}
	return false
}

// Length is the argument-width modifier of a directive, e.g. the "ll"
// in "%lld".
type Length uint8

const (
	LenNone Length = iota
	LenHH
	LenH
	LenL
	LenLL
	LenJ
	LenZ
	LenT
	LenBigL
)

func (l Length) String() string {
	switch l {
	case LenNone:
		return ""
	case LenHH:
		return "hh"
	case LenH:
		return "h"
	case LenL:
		return "l"
	case LenLL:
		return "ll"
	case LenJ:
		return "j"
	case LenZ:
		return "z"
	case LenT:
		return "t"
	case LenBigL:
		return "L"
	}
	return "?"
}
