package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	resumemd "github.com/alnah/go-resumemd"
	"github.com/alnah/go-resumemd/internal/logger"
)

// Sentinel errors shared by the commands.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// stdinPath reads the document from standard input.
const stdinPath = "-"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// readMarkdown reads path, or standard input for "-".
func readMarkdown(path string, env *Environment) (string, error) {
	if path != stdinPath {
		return readFile(path)
	}
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// readFile reads a Markdown file.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided or discovered path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// writeOutput writes data to path, or to env.Stdout when path is empty.
func writeOutput(path string, data []byte, env *Environment) error {
	if path != "" {
		return writeFile(path, data)
	}
	if _, err := env.Stdout.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
	}
	// #nosec G306 -- output documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// newLogger builds the command logger on env.Stderr. Flags win over the
// level and format coming from config or environment.
func newLogger(f logFlags, level, format string, env *Environment) zerolog.Logger {
	if f.logFormat != "" {
		format = f.logFormat
	}
	return logger.New(logger.Config{
		Level:  logger.LevelFor(f.verbose, f.quiet, level),
		Format: format,
	}, env.Stderr)
}

// logWarnings reports parse warnings for one document.
func logWarnings(log zerolog.Logger, path string, warnings []resumemd.Warning) {
	for _, w := range warnings {
		log.Warn().Str("file", path).Msg(w.String())
	}
}
