package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	resumemd "github.com/alnah/go-resumemd"
	"github.com/alnah/go-resumemd/internal/yamlutil"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatText = "text"
)

// runParse prints the structured résumé of one document.
func runParse(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parseParseFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: parse takes exactly one file (got %d)", ErrUsage, len(positional))
	}
	path := positional[0]
	log := newLogger(flags.log, env.Getenv("RESUMEMD_LOG_LEVEL"), env.Getenv("RESUMEMD_LOG_FORMAT"), env)

	markdown, err := readMarkdown(path, env)
	if err != nil {
		return err
	}

	resume, warnings, err := resumemd.ParseWithWarnings(markdown)
	if err != nil {
		return err
	}
	logWarnings(log, path, warnings)

	out, err := encodeResume(resume, flags.format)
	if err != nil {
		return err
	}
	if err := writeOutput(flags.output, out, env); err != nil {
		return err
	}
	log.Debug().
		Str("file", path).
		Int("experiences", len(resume.Experiences)).
		Int("education", len(resume.Education)).
		Msg("parsed")
	return nil
}

// encodeResume renders r as YAML or JSON.
func encodeResume(r *resumemd.Resume, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case formatYAML:
		return yamlutil.Marshal(r)
	case formatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (must be yaml or json)", ErrUsage, format)
	}
}
