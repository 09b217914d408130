// Package render turns one argument value into bytes on a sink,
// honouring the flag, width, precision, sign and prefix machinery of a
// normalised specifier. Digits are produced least-significant-first
// into a small local buffer and replayed backwards; padding is emitted
// in the order the flag combination dictates (zero-padded, left
// justified, or the right-justified space default).
//
// Renderers expect a specifier the scanner has normalised: for example
// zero padding with an explicit precision has already been cleared, so
// the zero-padded branch never sees precision padding.
package render
