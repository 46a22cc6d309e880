// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"strings"
)

// FileConfig is the settings document as it appears on disk.
// Both YAML and TOML renditions share the same key names.
type FileConfig struct {
	Display *DisplayConfig `yaml:"display,omitempty" toml:"display,omitempty" json:"display,omitempty"`
	Input   *InputConfig   `yaml:"input,omitempty" toml:"input,omitempty" json:"input,omitempty"`
}

// DisplayConfig holds the display section.
type DisplayConfig struct {
	Mode string `yaml:"mode,omitempty" toml:"mode,omitempty" json:"mode,omitempty"`
}

// InputConfig holds the input section.
type InputConfig struct {
	Wayland   *WaylandConfig `yaml:"wayland,omitempty" toml:"wayland,omitempty" json:"wayland,omitempty"`
	Keyboards []InputEntry   `yaml:"keyboards,omitempty" toml:"keyboards,omitempty" json:"keyboards,omitempty"`
	Pointers  []InputEntry   `yaml:"pointers,omitempty" toml:"pointers,omitempty" json:"pointers,omitempty"`
	Touches   []InputEntry   `yaml:"touches,omitempty" toml:"touches,omitempty" json:"touches,omitempty"`
}

// WaylandConfig lists the virtual compositor connectors.
type WaylandConfig struct {
	Connectors []ConnectorEntry `yaml:"connectors,omitempty" toml:"connectors,omitempty" json:"connectors,omitempty"`
}

// ConnectorEntry is a single virtual connector.
type ConnectorEntry struct {
	Name string `yaml:"name" toml:"name" json:"name"`
}

// InputEntry is a keyboard, pointer or touch device.
// When Wayland is true Name is a connector name, otherwise a /dev/input/event* path.
type InputEntry struct {
	ID      int           `yaml:"id" toml:"id" json:"id"`
	Wayland bool          `yaml:"wayland" toml:"wayland" json:"wayland"`
	Name    string        `yaml:"name" toml:"name" json:"name"`
	Domains []DomainEntry `yaml:"domains,omitempty" toml:"domains,omitempty" json:"domains,omitempty"`
}

// DomainEntry assigns its parent device to a guest device.
// An empty DomName matches any guest. A nil ID resolves to the parent entry's ID.
type DomainEntry struct {
	DomName string `yaml:"domName,omitempty" toml:"domName,omitempty" json:"domName,omitempty"`
	DevID   *int   `yaml:"devId" toml:"devId" json:"devId"`
	ID      *int   `yaml:"id,omitempty" toml:"id,omitempty" json:"id,omitempty"`
}

// DisplayMode selects the display backend.
type DisplayMode int

const (
	// DisplayModeDRM renders through the direct rendering manager.
	DisplayModeDRM DisplayMode = iota
	// DisplayModeWayland renders into a Wayland compositor.
	DisplayModeWayland
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayModeDRM:
		return "DRM"
	case DisplayModeWayland:
		return "Wayland"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ParseDisplayMode maps a display.mode value to a DisplayMode.
// The empty string selects DRM.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drm":
		return DisplayModeDRM, nil
	case "wayland":
		return DisplayModeWayland, nil
	default:
		return DisplayModeDRM, fmt.Errorf("unsupported display mode %q (want DRM or Wayland)", s)
	}
}

// InputDevice is the value returned by the indexed input accessors.
type InputDevice struct {
	ID      int
	Wayland bool
	Name    string
}

// InputKind names one of the input device sections.
type InputKind string

const (
	KindKeyboard InputKind = "keyboard"
	KindPointer  InputKind = "pointer"
	KindTouch    InputKind = "touch"
)

// Section returns the document key of the kind's section.
func (k InputKind) Section() string {
	switch k {
	case KindKeyboard:
		return "input.keyboards"
	case KindPointer:
		return "input.pointers"
	case KindTouch:
		return "input.touches"
	default:
		return "input." + string(k)
	}
}

// Summary is the cached topology of a Store.
type Summary struct {
	Mode       DisplayMode
	Connectors int
	Keyboards  int
	Pointers   int
	Touches    int
}
