package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-resumemd/internal/config"
)

// envPrefix starts every variable the CLI reads.
const envPrefix = "RESUMEMD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // RESUMEMD_CONFIG: config file name or path
	Style      string // RESUMEMD_STYLE: base style name, path, or CSS
	Timeout    string // RESUMEMD_TIMEOUT: browser timeout
	OutputDir  string // RESUMEMD_OUTPUT_DIR: default output directory
	Workers    int    // RESUMEMD_WORKERS: parallel workers
	LogLevel   string // RESUMEMD_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // RESUMEMD_LOG_FORMAT: pretty, json
}

// knownEnvVars lists valid RESUMEMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RESUMEMD_CONFIG":     true,
	"RESUMEMD_STYLE":      true,
	"RESUMEMD_TIMEOUT":    true,
	"RESUMEMD_OUTPUT_DIR": true,
	"RESUMEMD_WORKERS":    true,
	"RESUMEMD_LOG_LEVEL":  true,
	"RESUMEMD_LOG_FORMAT": true,
}

// loadEnvConfig reads the RESUMEMD_* variables through getenv.
// An unparsable or non-positive worker count is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("RESUMEMD_CONFIG"),
		Style:      getenv("RESUMEMD_STYLE"),
		Timeout:    getenv("RESUMEMD_TIMEOUT"),
		OutputDir:  getenv("RESUMEMD_OUTPUT_DIR"),
		LogLevel:   getenv("RESUMEMD_LOG_LEVEL"),
		LogFormat:  getenv("RESUMEMD_LOG_FORMAT"),
	}

	if workers := getenv("RESUMEMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized RESUMEMD_* variable.
func warnUnknownEnvVars(environ []string, log zerolog.Logger) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overrides config fields with the variables that are set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.CSS.Style = env.Style
	}
	if env.Timeout != "" {
		cfg.Browser.Timeout = env.Timeout
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
