// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// Clone returns an alias-free deep copy of a FileConfig.
// Nil sections and nil slices stay nil.
func Clone(in FileConfig) FileConfig {
	out := FileConfig{}

	if in.Display != nil {
		d := *in.Display
		out.Display = &d
	}

	if in.Input != nil {
		input := InputConfig{
			Keyboards: cloneInputEntries(in.Input.Keyboards),
			Pointers:  cloneInputEntries(in.Input.Pointers),
			Touches:   cloneInputEntries(in.Input.Touches),
		}
		if in.Input.Wayland != nil {
			input.Wayland = &WaylandConfig{
				Connectors: cloneConnectors(in.Input.Wayland.Connectors),
			}
		}
		out.Input = &input
	}

	return out
}

func cloneConnectors(in []ConnectorEntry) []ConnectorEntry {
	if in == nil {
		return nil
	}
	out := make([]ConnectorEntry, len(in))
	copy(out, in)
	return out
}

func cloneInputEntries(in []InputEntry) []InputEntry {
	if in == nil {
		return nil
	}
	out := make([]InputEntry, len(in))
	for i := range in {
		out[i] = in[i]
		out[i].Domains = cloneDomainEntries(in[i].Domains)
	}
	return out
}

func cloneDomainEntries(in []DomainEntry) []DomainEntry {
	if in == nil {
		return nil
	}
	out := make([]DomainEntry, len(in))
	for i := range in {
		out[i] = DomainEntry{
			DomName: in[i].DomName,
			DevID:   cloneIntPtr(in[i].DevID),
			ID:      cloneIntPtr(in[i].ID),
		}
	}
	return out
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
