package resumemd

import (
	"time"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings options write before NewConverter
// resolves them.
type converterConfig struct {
	timeout       time.Duration
	assetPath     string
	styleInput    string
	resolvedStyle string
	typography    TypographySettings
}

// defaultTimeout bounds each browser page load when the context has no deadline.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-page browser timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumemd: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithAssetPath reads styles and templates from dir first, falling back to
// the embedded ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader replaces asset loading entirely. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithStyle sets the base stylesheet: a style name, a path to a .css file, or
// inline CSS. The default is the embedded "resume" style.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithTypography sets the default typography. Input.Typography overrides it
// per conversion.
func WithTypography(t TypographySettings) Option {
	return func(c *Converter) {
		c.cfg.typography = t
	}
}

// withLayoutEngine injects the browser backend. Used by tests.
func withLayoutEngine(e layoutEngine) Option {
	return func(c *Converter) {
		c.engine = e
	}
}
