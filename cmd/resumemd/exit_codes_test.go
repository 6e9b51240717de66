package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	resumemd "github.com/alnah/go-resumemd"
	"github.com/alnah/go-resumemd/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error classification
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown", errors.New("boom"), ExitGeneral},
		{"browser connect", fmt.Errorf("starting converter: %w", resumemd.ErrBrowserConnect), ExitBrowser},
		{"page load", resumemd.ErrPageLoad, ExitBrowser},
		{"measure", resumemd.ErrMeasure, ExitBrowser},
		{"pdf", resumemd.ErrPDFGeneration, ExitBrowser},
		{"not exist", fmt.Errorf("discovering files: %w", fs.ErrNotExist), ExitIO},
		{"permission", fs.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"typography", resumemd.ErrInvalidTypography, ExitUsage},
		{"style", resumemd.ErrStyleNotFound, ExitUsage},
		{"usage", fmt.Errorf("%w: parse takes exactly one file", ErrUsage), ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"timeout", ErrInvalidTimeout, ExitUsage},
		{"block", ErrInvalidBlock, ExitUsage},
		{"not canonical", ErrNotCanonical, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	noEnv := func(string) string { return "" }

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"browser", fmt.Errorf("starting converter: %w", resumemd.ErrBrowserConnect), "ROD_BROWSER_BIN"},
		{"timeout", fmt.Errorf("converting: %w", context.DeadlineExceeded), "--timeout"},
		{"measure", resumemd.ErrMeasure, "built-in style"},
		{"style", resumemd.ErrStyleNotFound, "compact"},
		{"output dir", ErrCreateOutputDir, "hint:"},
		{"no input", ErrNoInput, ".markdown"},
		{"config", fmt.Errorf("%w: tried work.yaml, /home/u/.config/go-resumemd/work.yaml", config.ErrConfigNotFound), "create /home/u/.config/go-resumemd/work.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, noEnv)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor(%v) = %q, want it to contain %q", tt.err, got, tt.contains)
			}
		})
	}

	if got := hintFor(errors.New("boom"), noEnv); got != "" {
		t.Errorf("hintFor(unknown) = %q, want empty", got)
	}
}

func TestSearchedPaths(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: tried a.yaml, a.yml, /home/u/.config/go-resumemd/a.yaml", config.ErrConfigNotFound)
	want := []string{"a.yaml", "a.yml", "/home/u/.config/go-resumemd/a.yaml"}
	if diff := cmp.Diff(want, searchedPaths(err)); diff != "" {
		t.Errorf("searchedPaths() mismatch (-want +got):\n%s", diff)
	}

	if got := searchedPaths(config.ErrConfigNotFound); got != nil {
		t.Errorf("searchedPaths() = %v, want nil", got)
	}
}
