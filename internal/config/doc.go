// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads the display backend settings file and resolves which
// connector or input device a guest device is assigned to.
//
// A Store is built once by Load or Parse and is read-only afterwards:
//
//	store, err := config.Load("displ_be.cfg")
//	if err != nil {
//		return err // *ConfigError
//	}
//	name, err := store.DomConnectorName("DomU", 0, 0)
//	id, ok := store.DomKeyboardID("DomU", 0)
//
// Domain overrides are matched in document order; the first override whose
// devId matches and whose domName is equal or empty wins. An exact domName
// appearing after a wildcard for the same devId is never reached.
//
// Holder swaps complete stores when the file changes on disk.
package config
