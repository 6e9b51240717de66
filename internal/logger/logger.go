// Package logger builds the CLI's zerolog logger. Library packages never log;
// only cmd/resumemd does.
package logger

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config describes how the logger writes.
type Config struct {
	Level      string // debug, info, warn, error (default info)
	Format     string // pretty or json (default pretty)
	TimeFormat string // pretty output has no timestamp unless this is set
	NoColor    bool
}

// New returns a logger writing to w. An unknown level falls back to info and
// an unknown format to pretty.
func New(cfg Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	isJSON := strings.EqualFold(cfg.Format, FormatJSON)
	stamped := isJSON || cfg.TimeFormat != ""

	output := w
	if !isJSON {
		console := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    cfg.NoColor,
		}
		if !stamped {
			console.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		output = console
	}

	ctx := zerolog.New(output).Level(level).With()
	if stamped {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// LevelFor maps the CLI verbosity switches onto a level name. Verbose wins
// over quiet; with neither set, fallback is returned.
func LevelFor(verbose, quiet bool, fallback string) string {
	switch {
	case verbose:
		return zerolog.LevelDebugValue
	case quiet:
		return zerolog.LevelErrorValue
	case fallback != "":
		return fallback
	default:
		return zerolog.LevelInfoValue
	}
}

// Ctx returns the logger stored in ctx, or a disabled logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}
