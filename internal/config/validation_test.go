// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/ManuGH/displbe/internal/validate"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		doc        FileConfig
		strict     bool
		wantFields []string
	}{
		{
			name: "empty document",
			doc:  FileConfig{},
		},
		{
			name:       "unknown mode",
			doc:        FileConfig{Display: &DisplayConfig{Mode: "x11"}},
			wantFields: []string{"display.mode"},
		},
		{
			name: "devId out of range and negative ids",
			doc: FileConfig{Input: &InputConfig{
				Pointers: []InputEntry{{
					ID:   -1,
					Name: "/dev/input/event0",
					Domains: []DomainEntry{
						{DevID: intPtr(70000)},
						{DevID: intPtr(0), ID: intPtr(-3)},
						{DomName: "vm1"},
					},
				}},
			}},
			wantFields: []string{
				"input.pointers[0].id",
				"input.pointers[0].domains[0].devId",
				"input.pointers[0].domains[1].id",
				"input.pointers[0].domains[2].devId",
			},
		},
		{
			name: "lenient ignores names",
			doc: FileConfig{Input: &InputConfig{
				Wayland:   &WaylandConfig{Connectors: []ConnectorEntry{{Name: ""}}},
				Keyboards: []InputEntry{{Name: "kbd"}, {Wayland: true, Name: "DP-9"}},
			}},
		},
		{
			name:   "strict checks names",
			strict: true,
			doc: FileConfig{Input: &InputConfig{
				Wayland:   &WaylandConfig{Connectors: []ConnectorEntry{{Name: ""}, {Name: "HDMI-A-1"}}},
				Keyboards: []InputEntry{{Name: "kbd"}, {Wayland: true, Name: "DP-9"}, {Wayland: true, Name: "HDMI-A-1"}},
				Touches:   []InputEntry{{Name: "/dev/input/../mem"}},
			}},
			wantFields: []string{
				"input.wayland.connectors[0].name",
				"input.keyboards[0].name",
				"input.keyboards[1].name",
				"input.touches[0].name",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc, tt.strict)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("expected valid document, got: %v", err)
				}
				return
			}

			var verr validate.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validate.ValidationError, got %T: %v", err, err)
			}
			var got []string
			for _, e := range verr.Errors() {
				got = append(got, e.Field)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("fields = %v, want %v", got, tt.wantFields)
			}
		})
	}
}
