package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// logFlags holds the logging flags shared by every command.
type logFlags struct {
	quiet     bool
	verbose   bool
	logFormat string
}

// parseFlags holds flags for the parse command.
type parseFlags struct {
	log    logFlags
	format string
	output string
}

// fmtFlags holds flags for the fmt command.
type fmtFlags struct {
	log   logFlags
	write bool
	check bool
}

// paginateFlags holds flags for the paginate command.
type paginateFlags struct {
	log      logFlags
	capacity float64
	format   string
}

// typographyFlags holds typography overrides. Pointers are nil unless the
// flag was given, since zero is a valid gap or padding.
type typographyFlags struct {
	experienceStyle string
	bodySize        float64
	headingSize     float64
	nameSize        float64
	lineHeight      float64
	fontFamily      string
	contentGap      *float64
	paddingTop      *float64
	paddingBottom   *float64
	paddingLeft     *float64
	paddingRight    *float64
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	log        logFlags
	config     string
	output     string
	workers    int
	timeout    string
	style      string
	css        string
	assetPath  string
	html       bool
	htmlOnly   bool
	typography typographyFlags
}

// addLogFlags adds logging flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output and timings")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: pretty, json")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseArgs parses args, marking failures as usage errors. A help request
// still matches flag.ErrHelp.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// parseParseFlags parses parse command flags and returns positional args.
func parseParseFlags(args []string, stderr io.Writer) (*parseFlags, []string, error) {
	f := &parseFlags{}
	fs := newFlagSet("parse", stderr, printParseUsage)
	addLogFlags(fs, &f.log)
	fs.StringVarP(&f.format, "format", "f", formatYAML, "output format: yaml, json")
	fs.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFmtFlags parses fmt command flags and returns positional args.
func parseFmtFlags(args []string, stderr io.Writer) (*fmtFlags, []string, error) {
	f := &fmtFlags{}
	fs := newFlagSet("fmt", stderr, printFmtUsage)
	addLogFlags(fs, &f.log)
	fs.BoolVarP(&f.write, "write", "w", false, "rewrite files in place")
	fs.BoolVar(&f.check, "check", false, "fail if a file is not canonical")

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePaginateFlags parses paginate command flags and returns positional args.
func parsePaginateFlags(args []string, stderr io.Writer) (*paginateFlags, []string, error) {
	f := &paginateFlags{}
	fs := newFlagSet("paginate", stderr, printPaginateUsage)
	addLogFlags(fs, &f.log)
	fs.Float64Var(&f.capacity, "capacity", 0, "usable page height in px (0 = A4 default)")
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, json")

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// addTypographyFlags adds typography flags to a FlagSet. Gap and paddings
// land in gap and pad; parseConvertFlags copies the ones actually given.
func addTypographyFlags(fs *flag.FlagSet, f *typographyFlags, gap *float64, pad *[4]float64) {
	fs.StringVar(&f.experienceStyle, "style-variant", "", "experience layout: standard, compact, impact")
	fs.Float64Var(&f.bodySize, "body-size", 0, "body font size in px (10-14)")
	fs.Float64Var(&f.headingSize, "heading-size", 0, "section heading size in px (14-18)")
	fs.Float64Var(&f.nameSize, "name-size", 0, "name size in px (24-32)")
	fs.Float64Var(&f.lineHeight, "line-height", 0, "line height (1.2-1.6)")
	fs.StringVar(&f.fontFamily, "font-family", "", "CSS font stack")
	fs.Float64Var(gap, "content-gap", 0, "gap between blocks in px (0-40)")
	fs.Float64Var(&pad[0], "padding-top", 0, "top page padding in mm (0-40)")
	fs.Float64Var(&pad[1], "padding-bottom", 0, "bottom page padding in mm (0-40)")
	fs.Float64Var(&pad[2], "padding-left", 0, "left page padding in mm (0-40)")
	fs.Float64Var(&pad[3], "padding-right", 0, "right page padding in mm (0-40)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", stderr, printConvertUsage)

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page browser timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.style, "style", "", "base CSS: style name, .css path, or inline CSS")
	fs.StringVar(&f.css, "css", "", "extra CSS file applied last")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.html, "html", false, "write paged HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write paged HTML only, skip PDF")
	addLogFlags(fs, &f.log)

	var gap float64
	var pad [4]float64
	addTypographyFlags(fs, &f.typography, &gap, &pad)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}

	optional := []struct {
		name string
		v    float64
		dst  **float64
	}{
		{"content-gap", gap, &f.typography.contentGap},
		{"padding-top", pad[0], &f.typography.paddingTop},
		{"padding-bottom", pad[1], &f.typography.paddingBottom},
		{"padding-left", pad[2], &f.typography.paddingLeft},
		{"padding-right", pad[3], &f.typography.paddingRight},
	}
	for _, o := range optional {
		if fs.Changed(o.name) {
			v := o.v
			*o.dst = &v
		}
	}

	return f, fs.Args(), nil
}
