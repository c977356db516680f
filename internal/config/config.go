package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"problemspec/internal/adapter/logging"
	"problemspec/internal/codegen"
	"problemspec/internal/serializer"
)

// Config contains runtime configuration values.
type Config struct {
	ProblemFile          string
	LeetCodeSlug         string
	OutputFormat         serializer.Format
	IndentWidth          int
	OutputDir            string
	DiscordWebhookURL    string
	BoilerplateLanguages []codegen.Language
	ScheduleCron         string
	RequestTimeout       time.Duration
	LogLevel             slog.Level
}

const (
	defaultFormat  = "json"
	defaultIndent  = 4
	defaultTimeout = 30 * time.Second
	defaultLevel   = "info"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ProblemFile:       getenvDefault("PROBLEM_FILE", ""),
		LeetCodeSlug:      getenvDefault("LEETCODE_SLUG", ""),
		OutputDir:         getenvDefault("OUTPUT_DIR", ""),
		DiscordWebhookURL: getenvDefault("DISCORD_WEBHOOK_URL", ""),
		ScheduleCron:      getenvDefault("SCHEDULE_CRON", ""),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
	}

	if cfg.ProblemFile != "" && cfg.LeetCodeSlug != "" {
		return nil, fmt.Errorf("PROBLEM_FILE and LEETCODE_SLUG are mutually exclusive")
	}

	format, err := serializer.ParseFormat(getenvDefault("OUTPUT_FORMAT", defaultFormat))
	if err != nil {
		return nil, fmt.Errorf("OUTPUT_FORMAT: %w", err)
	}
	cfg.OutputFormat = format

	indent, err := parseIntDefault("INDENT_WIDTH", defaultIndent)
	if err != nil {
		return nil, err
	}
	if indent < 0 {
		return nil, fmt.Errorf("INDENT_WIDTH must not be negative, got %d", indent)
	}
	cfg.IndentWidth = indent

	if err := (serializer.Options{Format: cfg.OutputFormat, Indent: indent}).Validate(); err != nil {
		return nil, fmt.Errorf("INDENT_WIDTH: %w", err)
	}

	languages, err := parseLanguages(os.Getenv("BOILERPLATE_LANGUAGES"))
	if err != nil {
		return nil, fmt.Errorf("BOILERPLATE_LANGUAGES: %w", err)
	}
	cfg.BoilerplateLanguages = languages

	level, err := logging.ParseLevel(getenvDefault("LOG_LEVEL", defaultLevel))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, val)
	}
	return n, nil
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

// parseLanguages reads a comma separated list, dropping blanks and repeats.
func parseLanguages(raw string) ([]codegen.Language, error) {
	var out []codegen.Language
	seen := map[codegen.Language]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		lang, err := codegen.ParseLanguage(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	return out, nil
}
