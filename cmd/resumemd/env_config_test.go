package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/alnah/go-resumemd/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{"nothing set", nil, envConfig{}},
		{
			name: "everything set",
			vars: map[string]string{
				"RESUMEMD_CONFIG":     "work",
				"RESUMEMD_STYLE":      "compact",
				"RESUMEMD_TIMEOUT":    "1m",
				"RESUMEMD_OUTPUT_DIR": "dist",
				"RESUMEMD_WORKERS":    "3",
				"RESUMEMD_LOG_LEVEL":  "debug",
				"RESUMEMD_LOG_FORMAT": "json",
			},
			want: envConfig{
				ConfigPath: "work",
				Style:      "compact",
				Timeout:    "1m",
				OutputDir:  "dist",
				Workers:    3,
				LogLevel:   "debug",
				LogFormat:  "json",
			},
		},
		{"non-numeric workers ignored", map[string]string{"RESUMEMD_WORKERS": "many"}, envConfig{}},
		{"zero workers ignored", map[string]string{"RESUMEMD_WORKERS": "0"}, envConfig{}},
		{"negative workers ignored", map[string]string{"RESUMEMD_WORKERS": "-2"}, envConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(func(k string) string { return tt.vars[k] })
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyEnvConfig_KeepsUnsetFields(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		CSS:     config.CSSConfig{Style: "standard"},
		Browser: config.BrowserConfig{Timeout: "5s"},
		Log:     config.LogConfig{Level: "warn", Format: "json"},
	}
	applyEnvConfig(&envConfig{Timeout: "8s", LogFormat: "pretty"}, cfg)

	if cfg.CSS.Style != "standard" {
		t.Errorf("Style = %q, want config value kept", cfg.CSS.Style)
	}
	if cfg.Browser.Timeout != "8s" {
		t.Errorf("Timeout = %q, want 8s", cfg.Browser.Timeout)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "pretty" {
		t.Errorf("Log = %+v, want level kept and format overridden", cfg.Log)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	log := zerolog.New(&buf)

	warnUnknownEnvVars([]string{
		"HOME=/root",
		"RESUMEMD_STYLE=compact",
		"RESUMEMD_WORKRES=2",
		"RESUMEMD_THEME",
	}, log)

	out := buf.String()
	for _, want := range []string{"RESUMEMD_WORKRES", "RESUMEMD_THEME"} {
		if !strings.Contains(out, want) {
			t.Errorf("log = %q, want a warning for %s", out, want)
		}
	}
	if strings.Contains(out, "RESUMEMD_STYLE") || strings.Contains(out, "HOME") {
		t.Errorf("log = %q, want known and foreign variables left alone", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d warnings, want 2", n)
	}
}
