package cmd

import (
	"errors"
	"strings"
)

// Config is the inspect CLI's own run-time configuration: ambient
// concerns only (logging, metrics), never a consensus parameter — those
// are compiled into the sidechain package and cannot be overridden.
// LogLevel is checked by ValidateConfig but not applied to the logger:
// telemetry.New logs at debug level when SCDB_DEBUG is set and at info
// level otherwise.
type Config struct {
	LogLevel       string
	MetricsEnabled bool
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		MetricsEnabled: true,
	}
}

func ValidateConfig(cfg Config) error {
	if _, ok := allowedLogLevels[strings.ToLower(strings.TrimSpace(cfg.LogLevel))]; !ok {
		return errors.New("log_level must be one of debug, info, warn, error")
	}
	return nil
}
