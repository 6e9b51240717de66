package main

import (
	"context"
	"errors"
	"os"
	"strings"

	resumemd "github.com/alnah/go-resumemd"
	"github.com/alnah/go-resumemd/internal/config"
	"github.com/alnah/go-resumemd/internal/hints"
)

// Exit codes for the resumemd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// builtinStyles lists the embedded stylesheets, for hints.
var builtinStyles = []string{"resume", "standard", "compact", "impact"}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, resumemd.ErrBrowserConnect) ||
		errors.Is(err, resumemd.ErrPageCreate) ||
		errors.Is(err, resumemd.ErrPageLoad) ||
		errors.Is(err, resumemd.ErrMeasure) ||
		errors.Is(err, resumemd.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, resumemd.ErrInvalidTypography) ||
		errors.Is(err, resumemd.ErrStyleNotFound) ||
		errors.Is(err, resumemd.ErrTemplateNotFound) ||
		errors.Is(err, resumemd.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidBlock) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, getenv func(string) string) string {
	switch {
	case errors.Is(err, resumemd.ErrBrowserConnect):
		return hints.ForBrowserConnect(getenv)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, resumemd.ErrMeasure):
		return hints.ForLayoutMismatch()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(searchedPaths(err))
	case errors.Is(err, resumemd.ErrStyleNotFound):
		return hints.ForStyleNotFound(builtinStyles)
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrNoInput):
		return hints.ForEmptyInput()
	}
	return ""
}

// searchedPaths recovers the candidate paths listed by config.LoadConfig.
func searchedPaths(err error) []string {
	_, tried, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(tried, ", ")
}
