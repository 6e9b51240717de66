package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	resumemd "github.com/alnah/go-resumemd"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Single file and recursive directory discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "cv.md", "# A")
	writeTestFile(t, root, "en/cv.markdown", "# B")
	writeTestFile(t, root, "en/photo.png", "")
	writeTestFile(t, root, "README.txt", "")

	t.Run("single file next to source", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(root, "cv.md")
		got, err := discoverFiles(in, "", extPDF)
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		want := []FileToConvert{{InputPath: in, OutputPath: filepath.Join(root, "cv.pdf")}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("directory mirrored into output", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "dist")
		got, err := discoverFiles(root, out, extHTML)
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		sort.Slice(got, func(i, j int) bool { return got[i].InputPath < got[j].InputPath })
		want := []FileToConvert{
			{InputPath: filepath.Join(root, "cv.md"), OutputPath: filepath.Join(out, "cv.html")},
			{InputPath: filepath.Join(root, "en", "cv.markdown"), OutputPath: filepath.Join(out, "en", "cv.html")},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(root, "nope.md"), "", extPDF)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("discoverFiles() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("not markdown", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(root, "README.txt"), "", extPDF)
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("discoverFiles() error = %v, want ErrInvalidExtension", err)
		}
	})
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		ext       string
		want      string
	}{
		{"next to source", "docs/cv.md", "", "", extPDF, filepath.Join("docs", "cv.pdf")},
		{"into directory", "docs/cv.md", "out", "", extPDF, filepath.Join("out", "cv.pdf")},
		{"explicit file", "docs/cv.md", "out/final.PDF", "", extPDF, "out/final.PDF"},
		{"explicit html file", "docs/cv.md", "site/index.html", "", extHTML, "site/index.html"},
		{"pdf name with html output is a directory", "cv.md", "out.pdf", "", extHTML, filepath.Join("out.pdf", "cv.html")},
		{"mirrors subdirectories", "src/zh/cv.markdown", "out", "src", extPDF, filepath.Join("out", "zh", "cv.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir, tt.ext)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{resumemd.MaxPoolSize, false},
		{resumemd.MaxPoolSize + 1, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	t.Parallel()

	if got := outputExt(true); got != extHTML {
		t.Errorf("outputExt(true) = %q", got)
	}
	if got := outputExt(false); got != extPDF {
		t.Errorf("outputExt(false) = %q", got)
	}
	if got := htmlOutputPath(filepath.Join("out", "cv.pdf")); got != filepath.Join("out", "cv.html") {
		t.Errorf("htmlOutputPath() = %q", got)
	}
}
