// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// SampleDocument returns a small but complete Wayland configuration: two
// connectors, one virtual and one physical device per input kind, each with a
// wildcard and a guest-specific override.
func SampleDocument() FileConfig {
	return FileConfig{
		Display: &DisplayConfig{Mode: DisplayModeWayland.String()},
		Input: &InputConfig{
			Wayland: &WaylandConfig{
				Connectors: []ConnectorEntry{
					{Name: "HDMI-A-1"},
					{Name: "HDMI-A-2"},
				},
			},
			Keyboards: []InputEntry{
				{ID: 0, Wayland: true, Name: "HDMI-A-1", Domains: []DomainEntry{
					{DomName: "DomU", DevID: intPtr(0)},
				}},
				{ID: 1, Wayland: false, Name: "/dev/input/event1", Domains: []DomainEntry{
					{DevID: intPtr(1)},
				}},
			},
			Pointers: []InputEntry{
				{ID: 0, Wayland: true, Name: "HDMI-A-1", Domains: []DomainEntry{
					{DomName: "DomU", DevID: intPtr(0)},
				}},
				{ID: 1, Wayland: false, Name: "/dev/input/event2", Domains: []DomainEntry{
					{DevID: intPtr(1)},
				}},
			},
			Touches: []InputEntry{
				{ID: 0, Wayland: true, Name: "HDMI-A-2", Domains: []DomainEntry{
					{DomName: "DomU", DevID: intPtr(1), ID: intPtr(2)},
				}},
				{ID: 1, Wayland: false, Name: "/dev/input/event3", Domains: []DomainEntry{
					{DevID: intPtr(0)},
				}},
			},
		},
	}
}

// WriteSample writes SampleDocument to path. An existing file is replaced
// only when overwrite is set. The write is atomic: readers see either the old
// file or the complete new one.
func WriteSample(path string, format Format, overwrite bool) error {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("write sample %s: %w", path, fs.ErrExist)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	data, err := Encode(SampleDocument(), format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sample %s: %w", path, err)
	}
	return nil
}

func intPtr(i int) *int { return &i }
