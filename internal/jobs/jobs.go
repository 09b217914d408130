// Package jobs loads and runs TOML render manifests: a list of named
// templates with their argument values, rendered in parallel for the
// "run" command.
//
//	[[job]]
//	name = "greeting"
//	template = "%s, %s!\n"
//	args = ["hello", "world"]
//	output = "greeting.txt"   # optional; stdout when absent
package jobs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Job is one manifest entry.
type Job struct {
	Name     string `toml:"name"`
	Template string `toml:"template"`
	Args     []any  `toml:"args"`
	// Output is a file path; empty means the caller's stdout.
	Output string `toml:"output"`
}

// File is a parsed manifest.
type File struct {
	Job []Job `toml:"job"`
}

// Load reads and validates a manifest.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(f.Job) == 0 {
		return nil, fmt.Errorf("manifest %s declares no jobs", path)
	}
	for i := range f.Job {
		j := &f.Job[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i+1)
		}
		if j.Template == "" {
			return nil, fmt.Errorf("job %q has no template", j.Name)
		}
		j.Args = normalizeArgs(j.Args)
	}
	return &f, nil
}

// normalizeArgs converts TOML's decoded value shapes into what the
// formatter consumes. TOML integers arrive as int64, which the
// formatter accepts directly; booleans become the strings "true" and
// "false"; everything else passes through and lets the per-directive
// coercion report a mismatch.
func normalizeArgs(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		switch x := v.(type) {
		case bool:
			// The C-style formatter has no %t; make bools readable.
			if x {
				out[i] = "true"
			} else {
				out[i] = "false"
			}
		default:
			out[i] = v
		}
	}
	return out
}

// ParseValue interprets one command-line argument value: decimal and
// 0x/0o/0b integers become int64, "nil" becomes the nil argument, and
// everything else stays a string. A "str:" prefix forces a literal
// ("str:42" is the string "42").
func ParseValue(s string) any {
	if rest, ok := strings.CutPrefix(s, "str:"); ok {
		return rest
	}
	if s == "nil" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u
	}
	return s
}
