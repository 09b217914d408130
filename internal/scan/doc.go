// Package scan parses one "%..." directive of a format template into a
// spec.Specifier. The grammar is
//
//	%[pos$][flags][width][.precision][length]type
//
// processed as a fixed stage pipeline. One deliberate wrinkle: a
// leading decimal run that is not followed by '$' is reinterpreted as
// the width and the flags stage is skipped entirely, so "%5-d" does not
// parse a '-' flag.
//
// Errors (unknown type, illegal length/type pair, malformed positional
// width/precision) come back as a diagnostic; warnings (repeated flags,
// no-effect flags) flow through Options.Reporter and never stop the
// parse. The pass B normaliser lives here too, run by the driver just
// before rendering.
package scan
