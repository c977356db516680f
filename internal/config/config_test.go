package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"problemspec/internal/codegen"
	"problemspec/internal/serializer"
)

var envKeys = []string{
	"PROBLEM_FILE", "LEETCODE_SLUG", "OUTPUT_FORMAT", "INDENT_WIDTH", "OUTPUT_DIR",
	"DISCORD_WEBHOOK_URL", "BOILERPLATE_LANGUAGES", "SCHEDULE_CRON", "REQUEST_TIMEOUT", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, serializer.FormatJSON, cfg.OutputFormat)
	assert.Equal(t, 4, cfg.IndentWidth)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.ProblemFile)
	assert.Empty(t, cfg.LeetCodeSlug)
	assert.Empty(t, cfg.ScheduleCron)
	assert.Empty(t, cfg.BoilerplateLanguages)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROBLEM_FILE", "problems/two_sum.yaml")
	t.Setenv("OUTPUT_FORMAT", "yml")
	t.Setenv("INDENT_WIDTH", "2")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("BOILERPLATE_LANGUAGES", "python, c++ ,js,python")
	t.Setenv("SCHEDULE_CRON", "*/5 * * * *")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "problems/two_sum.yaml", cfg.ProblemFile)
	assert.Equal(t, serializer.FormatYAML, cfg.OutputFormat)
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, []codegen.Language{codegen.LanguagePython, codegen.LanguageCPP, codegen.LanguageJavaScript}, cfg.BoilerplateLanguages)
	assert.Equal(t, "*/5 * * * *", cfg.ScheduleCron)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "both sources", env: map[string]string{"PROBLEM_FILE": "a.json", "LEETCODE_SLUG": "two-sum"}},
		{name: "negative indent", env: map[string]string{"INDENT_WIDTH": "-1"}},
		{name: "non numeric indent", env: map[string]string{"INDENT_WIDTH": "four"}},
		{name: "yaml indent out of range", env: map[string]string{"OUTPUT_FORMAT": "yaml", "INDENT_WIDTH": "0"}},
		{name: "unknown format", env: map[string]string{"OUTPUT_FORMAT": "xml"}},
		{name: "unknown language", env: map[string]string{"BOILERPLATE_LANGUAGES": "python,cobol"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "-3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
