// Package driver walks a format template once, sending literal bytes
// to the sink and dispatching each directive through the scanner, the
// argument source and the renderers. The first directive elects
// positional or sequential mode for the whole call; in positional mode
// the planner sweeps the template and every argument is captured before
// anything renders.
//
// Inspect is the tooling entry: it parses a template without arguments
// and collects every diagnostic, powering the check and explain
// commands.
package driver
