// Package diag defines the diagnostics produced while parsing and
// rendering a format template: error and warning codes, severities,
// template-relative spans, and the Bag/Reporter plumbing used by the
// scanner, the driver and the CLI.
//
// Errors abort the whole call. Warnings are normalisations the scanner
// applies silently; they are collected for tooling (check/explain) but
// never surface through the public entry points.
package diag
