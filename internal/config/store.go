// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"path/filepath"

	xglog "github.com/ManuGH/displbe/internal/log"
	"github.com/ManuGH/displbe/internal/metrics"
	"github.com/rs/zerolog"
)

// memorySource names documents built by Parse in errors and logs.
const memorySource = "<memory>"

// Store is the loaded settings document for the display backend.
//
// Everything a Store reports is computed once by Load or Parse. A Store is
// never mutated afterwards, so a single instance may be shared by any number
// of goroutines without locking.
type Store struct {
	path   string
	doc    FileConfig
	opts   options
	logger zerolog.Logger

	mode       DisplayMode
	connectors int
	keyboards  int
	pointers   int
	touches    int
}

type options struct {
	logger *zerolog.Logger
	strict bool
	format Format
}

// Option configures Load and Parse.
type Option func(*options)

// WithLogger replaces the default "config" component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithStrict rejects unknown keys and enables the semantic checks of Validate.
func WithStrict(enabled bool) Option {
	return func(o *options) { o.strict = enabled }
}

// WithFormat forces a grammar instead of detecting it from the file extension.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) log() zerolog.Logger {
	if o.logger != nil {
		return *o.logger
	}
	return xglog.WithComponent("config")
}

// Load reads and parses the settings file at path. An empty path selects
// DefaultConfigPath. Any read, parse or structural failure returns a
// *ConfigError and no Store.
func Load(path string, opts ...Option) (*Store, error) {
	o := buildOptions(opts)
	if path == "" {
		path = DefaultConfigPath()
	}
	path = filepath.Clean(path)

	// #nosec G304 -- configuration file paths are provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadFailed(o, newConfigError(path, "read file", err))
	}
	return build(path, data, o)
}

// Parse builds a Store from an in-memory document. FormatAuto selects YAML.
func Parse(data []byte, format Format, opts ...Option) (*Store, error) {
	o := buildOptions(opts)
	o.format = format
	return build(memorySource, data, o)
}

func build(source string, data []byte, o options) (*Store, error) {
	format := o.format
	if format == FormatAuto {
		format = DetectFormat(source)
	}

	doc, err := decodeDocument(data, format, o.strict)
	if err != nil {
		return nil, loadFailed(o, newConfigError(source, "parse "+string(format), err))
	}
	if err := Validate(doc, o.strict); err != nil {
		return nil, loadFailed(o, newConfigError(source, "invalid document", err))
	}

	s := &Store{
		path:   source,
		doc:    doc,
		opts:   o,
		logger: o.log(),
	}
	s.initCachedValues()

	metrics.IncConfigLoad(metrics.ResultOK)
	s.logger.Info().
		Str(xglog.FieldEvent, "config.loaded").
		Str(xglog.FieldPath, source).
		Str(xglog.FieldMode, s.mode.String()).
		Int("connectors", s.connectors).
		Int("keyboards", s.keyboards).
		Int("pointers", s.pointers).
		Int("touches", s.touches).
		Msg("display backend configuration loaded")

	return s, nil
}

func loadFailed(o options, err *ConfigError) error {
	metrics.IncConfigLoad(metrics.ResultError)
	logger := o.log()
	logger.Error().
		Err(err).
		Str(xglog.FieldEvent, "config.load_failed").
		Str(xglog.FieldPath, err.Source).
		Msg("failed to load display backend configuration")
	return err
}

func (s *Store) initCachedValues() {
	if s.doc.Display != nil {
		// Validate already rejected unknown modes.
		s.mode, _ = ParseDisplayMode(s.doc.Display.Mode)
	}
	s.connectors = len(s.doc.Input.connectors())
	s.keyboards = len(s.doc.Input.section(KindKeyboard))
	s.pointers = len(s.doc.Input.section(KindPointer))
	s.touches = len(s.doc.Input.section(KindTouch))
}

// Path returns the file the store was loaded from, or "<memory>".
func (s *Store) Path() string { return s.path }

// DisplayMode returns the configured display mode. DRM unless display.mode is Wayland.
func (s *Store) DisplayMode() DisplayMode { return s.mode }

// ConnectorsCount returns the number of virtual Wayland connectors.
func (s *Store) ConnectorsCount() int { return s.connectors }

// KeyboardsCount returns the number of configured keyboards.
func (s *Store) KeyboardsCount() int { return s.keyboards }

// PointersCount returns the number of configured pointers.
func (s *Store) PointersCount() int { return s.pointers }

// TouchesCount returns the number of configured touch devices.
func (s *Store) TouchesCount() int { return s.touches }

// Summary returns the cached topology.
func (s *Store) Summary() Summary {
	return Summary{
		Mode:       s.mode,
		Connectors: s.connectors,
		Keyboards:  s.keyboards,
		Pointers:   s.pointers,
		Touches:    s.touches,
	}
}

// Document returns a deep copy of the parsed document.
func (s *Store) Document() FileConfig {
	return Clone(s.doc)
}

// Connector returns the name of the idx-th virtual connector.
func (s *Store) Connector(idx int) (string, error) {
	if idx < 0 || idx >= s.connectors {
		return "", &IndexError{Section: "input.wayland.connectors", Index: idx, Count: s.connectors}
	}
	return s.doc.Input.connectors()[idx].Name, nil
}

// Keyboard returns the idx-th keyboard.
func (s *Store) Keyboard(idx int) (InputDevice, error) {
	return s.inputDevice(KindKeyboard, idx)
}

// Pointer returns the idx-th pointer.
func (s *Store) Pointer(idx int) (InputDevice, error) {
	return s.inputDevice(KindPointer, idx)
}

// Touch returns the idx-th touch device.
func (s *Store) Touch(idx int) (InputDevice, error) {
	return s.inputDevice(KindTouch, idx)
}

func (s *Store) inputDevice(kind InputKind, idx int) (InputDevice, error) {
	entries := s.doc.Input.section(kind)
	if idx < 0 || idx >= len(entries) {
		return InputDevice{}, &IndexError{Section: kind.Section(), Index: idx, Count: len(entries)}
	}
	e := entries[idx]
	return InputDevice{ID: e.ID, Wayland: e.Wayland, Name: e.Name}, nil
}
