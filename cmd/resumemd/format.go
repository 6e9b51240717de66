package main

import (
	"context"
	"errors"
	"fmt"

	resumemd "github.com/alnah/go-resumemd"
)

// ErrNotCanonical is returned by fmt --check when a file would change.
var ErrNotCanonical = errors.New("not in canonical form")

// runFmt serializes each document back to canonical Markdown. Without -w or
// --check the result is printed.
func runFmt(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFmtFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: fmt needs at least one file", ErrUsage)
	}
	log := newLogger(flags.log, env.Getenv("RESUMEMD_LOG_LEVEL"), env.Getenv("RESUMEMD_LOG_FORMAT"), env)

	var unformatted []string
	for _, path := range positional {
		if err := ctx.Err(); err != nil {
			return err
		}
		if flags.write && path == stdinPath {
			return fmt.Errorf("%w: cannot rewrite standard input", ErrUsage)
		}

		markdown, err := readMarkdown(path, env)
		if err != nil {
			return err
		}
		canonical, warnings, err := canonicalize(markdown)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logWarnings(log, path, warnings)

		changed := canonical != markdown
		switch {
		case flags.check:
			if changed {
				unformatted = append(unformatted, path)
				log.Info().Str("file", path).Msg("would reformat")
			}
		case flags.write:
			if !changed {
				log.Debug().Str("file", path).Msg("already canonical")
				continue
			}
			if err := writeOutput(path, []byte(canonical), env); err != nil {
				return err
			}
			log.Info().Str("file", path).Msg("reformatted")
		default:
			if err := writeOutput("", []byte(canonical), env); err != nil {
				return err
			}
		}
	}

	if len(unformatted) > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrNotCanonical, len(unformatted))
	}
	return nil
}

// canonicalize returns Serialize(Parse(markdown)).
func canonicalize(markdown string) (string, []resumemd.Warning, error) {
	resume, warnings, err := resumemd.ParseWithWarnings(markdown)
	if err != nil {
		return "", nil, err
	}
	out, err := resumemd.Serialize(resume)
	if err != nil {
		return "", nil, err
	}
	return out, warnings, nil
}
