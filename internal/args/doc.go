// Package args retrieves directive arguments from the captured
// variadic sequence. Two modes exist per call and never mix:
//
// Sequential mode pops one value per directive in encounter order,
// with preceding '*' width/precision ints popped ahead of the value.
//
// Positional mode first sweeps the whole template (BuildPlan) to give
// every numbered position a declared type and length, then pops every
// argument once, in declaration order, into the slot array (Capture).
// Directives are then served by slot index, so "%2$s %1$s" consumes
// its arguments 1, 2 regardless of print order.
//
// Values are coerced with closed type switches over Go's integer
// widths — the Go rendition of C variadic promotion — and narrowed to
// the width the length modifier declares.
package args
