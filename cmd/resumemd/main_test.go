package main

// Notes:
// - main() itself only wires DefaultEnv into runMain; runMain is tested here.
// - configureMaxProcs changes process-wide GOMAXPROCS and is not called by
//   these tests (testEnv leaves SetMaxProcs nil).

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no command prints usage",
			args:       []string{"resumemd"},
			wantCode:   ExitUsage,
			wantStderr: "Usage: resumemd <command>",
		},
		{
			name:       "version",
			args:       []string{"resumemd", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "resumemd dev",
		},
		{
			name:       "help",
			args:       []string{"resumemd", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Commands:",
		},
		{
			name:       "help for a command",
			args:       []string{"resumemd", "help", "paginate"},
			wantCode:   ExitSuccess,
			wantStdout: "--capacity",
		},
		{
			name:       "help for an unknown command",
			args:       []string{"resumemd", "help", "frobnicate"},
			wantCode:   ExitUsage,
			wantStderr: "Unknown command: frobnicate",
		},
		{
			name:       "unknown command",
			args:       []string{"resumemd", "frobnicate"},
			wantCode:   ExitUsage,
			wantStderr: "Unknown command: frobnicate",
		},
		{
			name:     "command help flag succeeds",
			args:     []string{"resumemd", "parse", "--help"},
			wantCode: ExitSuccess,
		},
		{
			name:       "unknown flag is a usage error",
			args:       []string{"resumemd", "fmt", "--nope", "cv.md"},
			wantCode:   ExitUsage,
			wantStderr: "unknown flag",
		},
		{
			name:       "missing file is an I/O error",
			args:       []string{"resumemd", "parse", "/nonexistent/cv.md"},
			wantCode:   ExitIO,
			wantStderr: "failed to read markdown file",
		},
		{
			name:       "markdown path implies convert",
			args:       []string{"resumemd", "/nonexistent/cv.md"},
			wantCode:   ExitIO,
			wantStderr: "discovering files",
		},
		{
			name:       "convert without input shows a hint",
			args:       []string{"resumemd", "convert"},
			wantCode:   ExitIO,
			wantStderr: "hint:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stdout, stderr := testEnv(t, nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_ImplicitConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTestFile(t, dir, "cv.md", sampleResume)
	env, pool, stdout, stderr := testEnv(t, nil)

	code := runMain([]string{"resumemd", input, "--html-only"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	want := filepath.Join(dir, "cv.html")
	if !strings.Contains(stdout.String(), "Created "+want) {
		t.Errorf("stdout = %q, want Created %s", stdout, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output not written: %v", err)
	}
	if pool.closed != 1 {
		t.Errorf("pool closed %d times, want 1", pool.closed)
	}
}

// ---------------------------------------------------------------------------
// TestLooksLikeMarkdown - Implicit convert detection
// ---------------------------------------------------------------------------

func TestLooksLikeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"cv.md", true},
		{"docs/cv.MARKDOWN", true},
		{"cv.txt", false},
		{"convert", false},
		{"-v", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := looksLikeMarkdown(tt.input); got != tt.want {
			t.Errorf("looksLikeMarkdown(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
