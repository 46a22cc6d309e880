// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig classifies load-time failures: missing or unreadable file,
	// malformed document, or a value of the wrong type.
	ErrConfig = errors.New("config error")

	// ErrUnknownConfigField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrIndex is returned when a caller asks for an index outside a counted section.
	ErrIndex = errors.New("index out of range")

	// ErrNotFound is returned when a domain connector slot is not configured.
	ErrNotFound = errors.New("not found")
)

// ConfigError describes a failure to construct a Store.
type ConfigError struct {
	// Source is the file path, or "<memory>" for Parse.
	Source string
	// Message is a human-readable description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Source, e.Message)
}

// Unwrap exposes both ErrConfig and the underlying cause to errors.Is.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfig}
	}
	return []error{ErrConfig, e.Err}
}

func newConfigError(source, msg string, err error) *ConfigError {
	return &ConfigError{Source: source, Message: msg, Err: err}
}

// IndexError reports an out-of-range index into a counted section.
type IndexError struct {
	Section string
	Index   int
	Count   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Section, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndex }
