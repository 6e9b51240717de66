package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-resumemd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under the user config dir.
const AppDirName = "go-resumemd"

// Field length limits.
const (
	MaxFontFamilyLength = 300  // CSS font stack
	MaxStyleLength      = 4096 // style name, path or short inline CSS
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxDurationLength   = 20   // "1m30s"
)

// Config holds the CLI defaults for résumé conversion. Zero values mean
// "not set"; CLI flags override whatever is set here.
type Config struct {
	Typography TypographyConfig `yaml:"typography"`
	Output     OutputConfig     `yaml:"output"`
	CSS        CSSConfig        `yaml:"css"`
	Browser    BrowserConfig    `yaml:"browser"`
	Assets     AssetsConfig     `yaml:"assets"`
	Log        LogConfig        `yaml:"log"`
}

// TypographyConfig overrides the default typography. Sizes are CSS pixels,
// paddings millimetres. Fields where zero is a meaningful value are pointers.
type TypographyConfig struct {
	BodySize        float64       `yaml:"bodySize"`
	HeadingSize     float64       `yaml:"headingSize"`
	NameSize        float64       `yaml:"nameSize"`
	LineHeight      float64       `yaml:"lineHeight"`
	FontFamily      string        `yaml:"fontFamily"`
	ExperienceStyle string        `yaml:"experienceStyle"` // "standard", "compact" or "impact"
	ContentGap      *float64      `yaml:"contentGap"`
	PagePadding     PaddingConfig `yaml:"pagePadding"`
}

// PaddingConfig sets the page padding per side.
type PaddingConfig struct {
	Top    *float64 `yaml:"top"`
	Bottom *float64 `yaml:"bottom"`
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source
	HTML       bool   `yaml:"html"`       // Also write the paged HTML
	HTMLOnly   bool   `yaml:"htmlOnly"`   // Write HTML instead of PDF
}

// CSSConfig defines styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, .css path or inline CSS (empty = built-in)
}

// BrowserConfig defines headless browser options.
type BrowserConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s" (empty = library default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LogConfig defines CLI logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // pretty or json
}

// TimeoutDuration parses the browser timeout. An empty value returns zero.
func (b BrowserConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: browser.timeout %q: %v", ErrInvalidValue, b.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: browser.timeout must be positive, got %s", ErrInvalidValue, b.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and enumerated values. Numeric bounds of the
// typography are checked by the converter once merged with the flags.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("typography.fontFamily", c.Typography.FontFamily, MaxFontFamilyLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("browser.timeout", c.Browser.Timeout, MaxDurationLength); err != nil {
		return err
	}

	if err := validateOneOf("typography.experienceStyle", c.Typography.ExperienceStyle, "standard", "compact", "impact"); err != nil {
		return err
	}
	if err := validateOneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := validateOneOf("log.format", c.Log.Format, "pretty", "json"); err != nil {
		return err
	}

	t := c.Typography
	sizes := []struct {
		field string
		v     float64
	}{
		{"typography.bodySize", t.BodySize},
		{"typography.headingSize", t.HeadingSize},
		{"typography.nameSize", t.NameSize},
		{"typography.lineHeight", t.LineHeight},
	}
	for _, s := range sizes {
		if s.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %.2f", ErrInvalidValue, s.field, s.v)
		}
	}
	optional := []struct {
		field string
		v     *float64
	}{
		{"typography.contentGap", t.ContentGap},
		{"typography.pagePadding.top", t.PagePadding.Top},
		{"typography.pagePadding.bottom", t.PagePadding.Bottom},
		{"typography.pagePadding.left", t.PagePadding.Left},
		{"typography.pagePadding.right", t.PagePadding.Right},
	}
	for _, o := range optional {
		if o.v != nil && *o.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %.2f", ErrInvalidValue, o.field, *o.v)
		}
	}

	if _, err := c.Browser.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts an empty value or one of allowed, case-insensitively.
func validateOneOf(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns a configuration with nothing set.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
