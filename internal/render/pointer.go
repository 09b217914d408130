package render

import (
	"printfmt/internal/sink"
	"printfmt/internal/spec"
)

// Pointer renders %p: "(nil)" for a nil pointer, otherwise the address
// as "%#x". Width and justification carry over; precision does not.
func Pointer(s *sink.Sink, fs *spec.Specifier, addr uint64, null bool) error {
	pfs := spec.Specifier{
		LeftJustify: fs.LeftJustify,
		Width:       fs.Width,
		Precision:   spec.PrecisionUnset,
		Length:      spec.LenNone,
		Type:        spec.TypeHex,
	}
	if null {
		return String(s, &pfs, nilPointerText, false)
	}
	pfs.AltForm = true
	return Hexadecimal(s, &pfs, addr)
}
