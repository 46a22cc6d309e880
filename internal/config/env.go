// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"strings"

	"github.com/ManuGH/displbe/internal/log"
	"github.com/rs/zerolog"
)

const (
	// DefaultConfigName is used when neither the caller nor the environment supply a path.
	DefaultConfigName = "displ_be.cfg"

	// EnvConfigPath overrides DefaultConfigName.
	EnvConfigPath = "DISPL_BE_CONFIG"
)

// DefaultConfigPath returns $DISPL_BE_CONFIG, or DefaultConfigName when unset or blank.
func DefaultConfigPath() string {
	return ParseString(EnvConfigPath, DefaultConfigName)
}

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		logger.Debug().
			Str("key", key).
			Str("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}

	value = strings.TrimSpace(value)
	if value == "" {
		logger.Debug().
			Str("key", key).
			Str("default", defaultValue).
			Str("source", "default").
			Msg("using default value (environment variable is empty)")
		return defaultValue
	}

	logger.Debug().
		Str("key", key).
		Str("value", value).
		Str("source", "environment").
		Msg("using environment variable")
	return value
}
