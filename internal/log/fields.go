// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldService   = "service"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Document fields
	FieldPath = "path"
	FieldMode = "mode"

	// Resolution fields
	FieldDomain = "dom_name"
	FieldDevID  = "dev_id"
	FieldIndex  = "idx"
	FieldKind   = "kind"
)
