// Package hints builds the "hint:" suffix the CLI appends to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-resumemd/internal/fileutil"
)

const prefix = "\n  hint: "

// inContainer reports whether the process runs under Docker.
var inContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVariables are set by the common CI runners.
var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// ForBrowserConnect suggests the go-rod variables that are not yet set.
// The sandbox switch is only suggested under CI or in a container.
func ForBrowserConnect(getenv func(string) string) string {
	var tips []string

	sandboxed := inContainer()
	for _, name := range ciVariables {
		if getenv(name) != "" {
			sandboxed = true
			break
		}
	}
	if sandboxed && getenv("ROD_NO_SANDBOX") != "1" {
		tips = append(tips, "set ROD_NO_SANDBOX=1 inside Docker or CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		tips = append(tips, "set ROD_BROWSER_BIN to an installed Chrome or Chromium")
	}
	return join(tips)
}

// ForTimeout suggests a longer browser timeout.
func ForTimeout() string {
	return join([]string{"raise --timeout or RESUMEMD_TIMEOUT for long résumés or slow machines"})
}

// ForConfigNotFound suggests --config, and creating the file in the user
// config directory when that location was searched.
func ForConfigNotFound(searched []string) string {
	tip := "pass --config /path/to/file.yaml or set RESUMEMD_CONFIG"
	for _, p := range searched {
		if strings.Contains(filepath.ToSlash(p), "/go-resumemd/") {
			tip += ", or create " + p
			break
		}
	}
	return join([]string{tip})
}

// ForOutputDirectory is shown when an output directory cannot be created.
func ForOutputDirectory() string {
	return join([]string{"check that the parent directory exists and is writable"})
}

// ForStyleNotFound lists the built-in styles. It returns "" when none are given.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return join([]string{"built-in styles: " + strings.Join(available, ", ")})
}

// ForLayoutMismatch is shown when the browser measured a different number of
// blocks than the preview rendered.
func ForLayoutMismatch() string {
	return join([]string{"a custom stylesheet may hide blocks; retry with the built-in style"})
}

// ForEmptyInput is shown when nothing was found to convert.
func ForEmptyInput() string {
	return join([]string{"pass a .md file or a directory containing .md or .markdown files"})
}

func join(tips []string) string {
	if len(tips) == 0 {
		return ""
	}
	return prefix + strings.Join(tips, "; ")
}
