package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	AdventuresDir    string
	StartRoom        string // exactly one byte
	InitialAdventure string // loaded before the first prompt when set

	Border     string // exactly one byte
	Timestamps bool
	Color      bool

	LogFormat string
	LogLevel  string
	LogFile   string // empty discards diagnostic logs
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.AdventuresDir == "" {
		errs = append(errs, errors.New("AdventuresDir is a required configuration field and cannot be empty"))
	}
	if len(cfg.StartRoom) != 1 {
		errs = append(errs, fmt.Errorf("start room must be a single character, got %q", cfg.StartRoom))
	}
	if len(cfg.Border) != 1 {
		errs = append(errs, fmt.Errorf("border must be a single character, got %q", cfg.Border))
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat))
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
