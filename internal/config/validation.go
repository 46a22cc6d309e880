// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"math"

	"github.com/ManuGH/displbe/internal/validate"
)

// Validate checks the structural rules resolution depends on: a known display
// mode, non-negative ids, and a present 16-bit devId on every domain override.
// With strict set it also checks names, device paths and connector references.
func Validate(doc FileConfig, strict bool) error {
	v := validate.New()

	if doc.Display != nil {
		v.Custom("display.mode", doc.Display.Mode, func(value any) error {
			_, err := ParseDisplayMode(value.(string))
			return err
		})
	}

	if doc.Input == nil {
		return v.Err()
	}

	connectors := make(map[string]struct{})
	if doc.Input.Wayland != nil {
		for i, c := range doc.Input.Wayland.Connectors {
			if strict {
				v.NotEmpty(fmt.Sprintf("input.wayland.connectors[%d].name", i), c.Name)
			}
			connectors[c.Name] = struct{}{}
		}
	}

	for _, kind := range []InputKind{KindKeyboard, KindPointer, KindTouch} {
		validateInputSection(v, kind.Section(), doc.Input.section(kind), connectors, strict)
	}

	return v.Err()
}

func validateInputSection(v *validate.Validator, section string, entries []InputEntry, connectors map[string]struct{}, strict bool) {
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", section, i)
		v.NonNegative(field+".id", e.ID)

		if strict {
			switch {
			case e.Wayland:
				if _, ok := connectors[e.Name]; !ok {
					v.AddError(field+".name", fmt.Sprintf("connector %q is not configured in input.wayland.connectors", e.Name), e.Name)
				}
			default:
				v.DevicePath(field+".name", e.Name)
			}
		}

		for j, d := range e.Domains {
			dfield := fmt.Sprintf("%s.domains[%d]", field, j)
			if v.Required(dfield+".devId", d.DevID) {
				v.Range(dfield+".devId", *d.DevID, 0, math.MaxUint16)
			}
			if d.ID != nil {
				v.NonNegative(dfield+".id", *d.ID)
			}
		}
	}
}

// section returns the entries of the given kind; nil-safe.
func (in *InputConfig) section(kind InputKind) []InputEntry {
	if in == nil {
		return nil
	}
	switch kind {
	case KindKeyboard:
		return in.Keyboards
	case KindPointer:
		return in.Pointers
	case KindTouch:
		return in.Touches
	default:
		return nil
	}
}

func (in *InputConfig) connectors() []ConnectorEntry {
	if in == nil || in.Wayland == nil {
		return nil
	}
	return in.Wayland.Connectors
}
