package version

import "github.com/fatih/color"

// Version information for the printfmt CLI.
// GitCommit and BuildDate can be set at build time via -ldflags -X;
// Version is computed at package initialisation, so -X does not set it.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the version without ANSI escapes, for --format json
// style consumers.
func Plain() string {
	return "0.1.0-dev"
}
