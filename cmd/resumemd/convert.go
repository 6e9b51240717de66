package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	resumemd "github.com/alnah/go-resumemd"
	"github.com/alnah/go-resumemd/internal/config"
	"github.com/alnah/go-resumemd/internal/logger"
)

// Sentinel errors for convert.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadCSS        = errors.New("failed to read CSS file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	envCfg := loadEnvConfig(env.Getenv)

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)

	log := newLogger(flags.log, cfg.Log.Level, cfg.Log.Format, env)
	if env.Environ != nil {
		warnUnknownEnvVars(env.Environ(), log)
	}

	mergeFlags(flags, cfg)

	typography, err := buildTypography(cfg.Typography)
	if err != nil {
		return err
	}
	timeout, err := resolveTimeout(cfg.Browser.Timeout)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional)
	if err != nil {
		return err
	}
	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir, outputExt(cfg.Output.HTMLOnly))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	userCSS, err := readCSS(flags.css)
	if err != nil {
		return err
	}

	if env.SetMaxProcs != nil {
		env.SetMaxProcs(func(format string, args ...any) {
			log.Debug().Msgf(format, args...)
		})
	}
	poolSize := min(resumemd.ResolvePoolSize(workers), len(files))
	log.Debug().Int("files", len(files)).Int("pool", poolSize).Msg("starting conversion")

	pool := env.NewPool(poolSize, converterOptions(cfg, typography, timeout)...)
	defer func() {
		if err := pool.Close(); err != nil {
			log.Warn().Err(err).Msg("closing browsers")
		}
	}()

	params := &conversionParams{
		css:      userCSS,
		html:     cfg.Output.HTML,
		htmlOnly: cfg.Output.HTMLOnly,
	}
	results := convertBatch(logger.WithContext(ctx, log), pool, files, params)

	return reportResults(results, flags.log.quiet, log, env)
}

// loadConfig loads the config named by the flag, then by RESUMEMD_CONFIG.
// With neither set, an empty config is returned.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.html {
		cfg.Output.HTML = true
	}
	if flags.htmlOnly {
		cfg.Output.HTMLOnly = true
	}
	if flags.timeout != "" {
		cfg.Browser.Timeout = flags.timeout
	}
	if flags.style != "" {
		cfg.CSS.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	t := flags.typography
	tc := &cfg.Typography
	if t.experienceStyle != "" {
		tc.ExperienceStyle = t.experienceStyle
	}
	if t.bodySize != 0 {
		tc.BodySize = t.bodySize
	}
	if t.headingSize != 0 {
		tc.HeadingSize = t.headingSize
	}
	if t.nameSize != 0 {
		tc.NameSize = t.nameSize
	}
	if t.lineHeight != 0 {
		tc.LineHeight = t.lineHeight
	}
	if t.fontFamily != "" {
		tc.FontFamily = t.fontFamily
	}
	if t.contentGap != nil {
		tc.ContentGap = t.contentGap
	}
	if t.paddingTop != nil {
		tc.PagePadding.Top = t.paddingTop
	}
	if t.paddingBottom != nil {
		tc.PagePadding.Bottom = t.paddingBottom
	}
	if t.paddingLeft != nil {
		tc.PagePadding.Left = t.paddingLeft
	}
	if t.paddingRight != nil {
		tc.PagePadding.Right = t.paddingRight
	}
}

// buildTypography applies the set config fields over the default typography
// and validates the result.
func buildTypography(tc config.TypographyConfig) (resumemd.TypographySettings, error) {
	t := resumemd.DefaultTypography()

	sizes := []struct {
		v   float64
		dst *float64
	}{
		{tc.BodySize, &t.BodySize},
		{tc.HeadingSize, &t.HeadingSize},
		{tc.NameSize, &t.NameSize},
		{tc.LineHeight, &t.LineHeight},
	}
	for _, s := range sizes {
		if s.v != 0 {
			*s.dst = s.v
		}
	}

	optional := []struct {
		v   *float64
		dst *float64
	}{
		{tc.ContentGap, &t.ContentGapPx},
		{tc.PagePadding.Top, &t.PagePaddingTopMm},
		{tc.PagePadding.Bottom, &t.PagePaddingBottomMm},
		{tc.PagePadding.Left, &t.PagePaddingLeftMm},
		{tc.PagePadding.Right, &t.PagePaddingRightMm},
	}
	for _, o := range optional {
		if o.v != nil {
			*o.dst = *o.v
		}
	}

	if tc.FontFamily != "" {
		t.FontFamily = tc.FontFamily
	}
	if tc.ExperienceStyle != "" {
		t.ExperienceStyle = resumemd.ExperienceStyle(strings.ToLower(tc.ExperienceStyle))
	}

	if err := t.Validate(); err != nil {
		return resumemd.TypographySettings{}, err
	}
	return t, nil
}

// resolveTimeout parses the merged timeout. Empty means the library default.
func resolveTimeout(value string) (time.Duration, error) {
	d, err := config.BrowserConfig{Timeout: value}.TimeoutDuration()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
	}
	return d, nil
}

// converterOptions builds the options every pooled Converter is created with.
func converterOptions(cfg *config.Config, typography resumemd.TypographySettings, timeout time.Duration) []resumemd.Option {
	opts := []resumemd.Option{resumemd.WithTypography(typography)}
	if timeout > 0 {
		opts = append(opts, resumemd.WithTimeout(timeout))
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, resumemd.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, resumemd.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// resolveInputPath returns the single positional input.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: convert takes one file or directory (got %d)", ErrUsage, len(args))
	}
}

// readCSS reads the extra stylesheet, if any.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(content), nil
}

// reportResults prints one line per created file, logs failures and parse
// warnings, and returns an error wrapping the first failure.
func reportResults(results []ConversionResult, quiet bool, log zerolog.Logger, env *Environment) error {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			log.Error().Err(r.Err).Str("file", r.InputPath).Msg("conversion failed")
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		logWarnings(log, r.InputPath, r.Warnings)
		log.Debug().
			Str("file", r.InputPath).
			Str("output", r.OutputPath).
			Int("pages", r.Pages).
			Dur("duration", r.Duration.Round(time.Millisecond)).
			Msg("converted")
		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d conversion(s) failed: %w", summary.Failed, len(results), firstErr)
	}
	return nil
}
