// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a settings-file grammar.
type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unsupported format %q (want yaml, toml or json)", s)
	}
}

// DetectFormat picks the grammar for path by extension.
// Only .toml selects TOML; everything else, including the default .cfg, is YAML.
// JSON documents are valid YAML and decode through the YAML path.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// decodeDocument parses data into a FileConfig. Unknown keys are rejected
// only when strict is set.
func decodeDocument(data []byte, format Format, strict bool) (FileConfig, error) {
	var doc FileConfig

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&doc); err != nil {
			var missing *toml.StrictMissingError
			if errors.As(err, &missing) {
				return doc, fmt.Errorf("%w: %s", ErrUnknownConfigField, missing.String())
			}
			return doc, err
		}
		return doc, nil

	case FormatYAML, FormatJSON, FormatAuto:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(&doc); err != nil {
			if err == io.EOF {
				return FileConfig{}, nil
			}
			if strict && strings.Contains(err.Error(), "not found in type") {
				return doc, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
			}
			return doc, err
		}
		// Trailing documents would be silently ignored otherwise.
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return doc, fmt.Errorf("file contains multiple documents or trailing content")
		}
		if err := checkScalarTags(data); err != nil {
			return doc, err
		}
		return doc, nil

	default:
		return doc, fmt.Errorf("unsupported format %q", format)
	}
}

// nodeSchema describes the scalar tags allowed at each position of the
// document. Mappings list their known keys, sequences their element shape.
type nodeSchema struct {
	tag    string
	fields map[string]*nodeSchema
	items  *nodeSchema
}

var (
	intNode  = &nodeSchema{tag: "!!int"}
	strNode  = &nodeSchema{tag: "!!str"}
	boolNode = &nodeSchema{tag: "!!bool"}

	entrySchema = &nodeSchema{fields: map[string]*nodeSchema{
		"id":      intNode,
		"wayland": boolNode,
		"name":    strNode,
		"domains": {items: &nodeSchema{fields: map[string]*nodeSchema{
			"domName": strNode,
			"devId":   intNode,
			"id":      intNode,
		}}},
	}}

	documentSchema = &nodeSchema{fields: map[string]*nodeSchema{
		"display": {fields: map[string]*nodeSchema{"mode": strNode}},
		"input": {fields: map[string]*nodeSchema{
			"wayland": {fields: map[string]*nodeSchema{
				"connectors": {items: &nodeSchema{fields: map[string]*nodeSchema{"name": strNode}}},
			}},
			"keyboards": {items: entrySchema},
			"pointers":  {items: entrySchema},
			"touches":   {items: entrySchema},
		}},
	}}
)

// checkScalarTags rejects scalars whose resolved YAML type differs from the
// field type. yaml.v3 truncates 1.5 into an int and stringifies 123 into a
// string field; TOML refuses both.
func checkScalarTags(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	return checkNode(root.Content[0], documentSchema, "")
}

func checkNode(n *yaml.Node, schema *nodeSchema, path string) error {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch {
	case schema.tag != "":
		// Non-scalars fail in the decoder; null decodes to the zero value.
		if n.Kind != yaml.ScalarNode {
			return nil
		}
		if tag := n.ShortTag(); tag != schema.tag && tag != "!!null" {
			return fmt.Errorf("%s: cannot use %s %q as %s",
				path, strings.TrimPrefix(tag, "!!"), n.Value, strings.TrimPrefix(schema.tag, "!!"))
		}

	case schema.items != nil && n.Kind == yaml.SequenceNode:
		for i, item := range n.Content {
			if err := checkNode(item, schema.items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}

	case schema.fields != nil && n.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			child, ok := schema.fields[key]
			if !ok {
				continue
			}
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			if err := checkNode(n.Content[i+1], child, childPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// Encode renders doc in the given grammar.
func Encode(doc FileConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML, FormatAuto:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("close encoder: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return buf.Bytes(), nil
}
