package jobs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"printfmt/internal/jobs"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleManifest = `
[[job]]
name = "greeting"
template = "%s, %s!"
args = ["hello", "world"]

[[job]]
name = "hex"
template = "%#010x"
args = [255]

[[job]]
template = "%2$s %1$s"
args = ["b", "a"]
`

func TestLoad(t *testing.T) {
	f, err := jobs.Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Job) != 3 {
		t.Fatalf("jobs = %d", len(f.Job))
	}
	if f.Job[0].Name != "greeting" {
		t.Errorf("name = %q", f.Job[0].Name)
	}
	// Безымянное задание получает имя по индексу.
	if f.Job[2].Name != "job-3" {
		t.Errorf("default name = %q", f.Job[2].Name)
	}
}

func TestLoadRejectsEmptyTemplate(t *testing.T) {
	_, err := jobs.Load(writeManifest(t, "[[job]]\nname = \"x\"\n"))
	if err == nil {
		t.Fatal("expected failure")
	}
}

func TestRun(t *testing.T) {
	f, err := jobs.Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatal(err)
	}
	results, err := jobs.Run(context.Background(), f, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hello, world!", "0x000000ff", "a b"}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("job %d failed: %v", i, r.Err)
			continue
		}
		if string(r.Output) != want[i] {
			t.Errorf("job %d = %q, want %q", i, r.Output, want[i])
		}
		if r.Count != len(want[i]) {
			t.Errorf("job %d count = %d", i, r.Count)
		}
	}
}

func TestRunKeepsPerJobFailures(t *testing.T) {
	f, err := jobs.Load(writeManifest(t, "[[job]]\ntemplate = \"%q\"\nargs = [1]\n"))
	if err != nil {
		t.Fatal(err)
	}
	results, err := jobs.Run(context.Background(), f, 1)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Error("broken template must fail its job")
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0x2a", int64(42)},
		{"0o10", int64(8)},
		{"18446744073709551615", uint64(1<<64 - 1)},
		{"nil", nil},
		{"str:42", "42"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := jobs.ParseValue(tc.in); got != tc.want {
			t.Errorf("ParseValue(%q) = %#v (%T), want %#v", tc.in, got, got, tc.want)
		}
	}
}
