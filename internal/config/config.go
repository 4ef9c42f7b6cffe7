package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/on-the-ground/fnkit/internal/document"
	"github.com/on-the-ground/fnkit/internal/log"
)

var (
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Config holds the settings shared by every fnkit command. Flags take
// precedence over the FNKIT_* environment variables.
type Config struct {
	Output    string `help:"Output format (json, yaml)." short:"o" default:"json" env:"FNKIT_OUTPUT"`
	Debug     bool   `help:"Enable debug logging." short:"d" env:"FNKIT_DEBUG"`
	LogFormat string `help:"Log encoding on stderr (console, json)." default:"console" env:"FNKIT_LOG_FORMAT"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Output:    document.FormatJSON,
		LogFormat: log.FormatConsole,
	}
}

// Validate lower-cases the format fields and rejects unknown values.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	switch c.Output {
	case document.FormatJSON, document.FormatYAML:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidOutput, c.Output, document.FormatJSON, document.FormatYAML)
	}

	switch c.LogFormat {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidLogFormat, c.LogFormat, log.FormatConsole, log.FormatJSON)
	}
	return nil
}

// LogOptions maps the configuration onto logger options.
func (c Config) LogOptions() log.Options {
	return log.Options{Debug: c.Debug, Format: c.LogFormat}
}
