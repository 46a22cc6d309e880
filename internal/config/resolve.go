// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"

	xglog "github.com/ManuGH/displbe/internal/log"
	"github.com/ManuGH/displbe/internal/metrics"
)

// DomConnectorName returns the connector that monitor idx of device devID in
// guest domName renders to. A guest device owns consecutive connector slots
// starting at devID, so the slot is devID+idx.
//
// A slot past the configured connectors returns an error wrapping ErrNotFound;
// a negative idx returns an *IndexError.
func (s *Store) DomConnectorName(domName string, devID uint16, idx int) (string, error) {
	if idx < 0 {
		return "", &IndexError{Section: "input.wayland.connectors", Index: idx, Count: s.connectors}
	}

	// Compare before adding: devID+idx may overflow for large idx.
	if idx >= s.connectors-int(devID) {
		metrics.IncResolution(metrics.KindConnector, metrics.ResultMiss)
		s.logger.Warn().
			Str(xglog.FieldEvent, "config.connector_miss").
			Str(xglog.FieldDomain, domName).
			Uint16(xglog.FieldDevID, devID).
			Int(xglog.FieldIndex, idx).
			Uint64("slot", uint64(devID)+uint64(idx)).
			Int("connectors", s.connectors).
			Msg("no connector configured for guest display")
		return "", fmt.Errorf("connector for dom %q dev %d idx %d (%d configured): %w",
			domName, devID, idx, s.connectors, ErrNotFound)
	}

	metrics.IncResolution(metrics.KindConnector, metrics.ResultHit)
	return s.doc.Input.connectors()[int(devID)+idx].Name, nil
}

// DomKeyboardID returns the keyboard id assigned to device devID of guest domName.
func (s *Store) DomKeyboardID(domName string, devID uint16) (int, bool) {
	return s.domInputID(KindKeyboard, domName, devID)
}

// DomPointerID returns the pointer id assigned to device devID of guest domName.
func (s *Store) DomPointerID(domName string, devID uint16) (int, bool) {
	return s.domInputID(KindPointer, domName, devID)
}

// DomTouchID returns the touch id assigned to device devID of guest domName.
func (s *Store) DomTouchID(domName string, devID uint16) (int, bool) {
	return s.domInputID(KindTouch, domName, devID)
}

// domInputID scans the section's entries and their domain overrides in
// document order. The first override whose devId matches and whose domName is
// equal or empty wins, regardless of how specific later overrides are.
func (s *Store) domInputID(kind InputKind, domName string, devID uint16) (int, bool) {
	for _, e := range s.doc.Input.section(kind) {
		for _, d := range e.Domains {
			if !d.matches(domName, devID) {
				continue
			}
			metrics.IncResolution(string(kind), metrics.ResultHit)
			if d.ID != nil {
				return *d.ID, true
			}
			return e.ID, true
		}
	}

	metrics.IncResolution(string(kind), metrics.ResultMiss)
	s.logger.Debug().
		Str(xglog.FieldEvent, "config.resolve_miss").
		Str(xglog.FieldKind, string(kind)).
		Str(xglog.FieldDomain, domName).
		Uint16(xglog.FieldDevID, devID).
		Msg("no input device assigned to guest device")
	return 0, false
}

func (d DomainEntry) matches(domName string, devID uint16) bool {
	if d.DevID == nil || *d.DevID != int(devID) {
		return false
	}
	return d.DomName == "" || d.DomName == domName
}
