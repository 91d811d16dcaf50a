// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Format selects the rendering of a command's output. Every read
// command accepts an --output flag with one of these values.
type Format string

const (
	// FormatText is the default human-readable rendering.
	FormatText Format = "text"
	// FormatJSON renders indented JSON, matching the service's own
	// wire format.
	FormatJSON Format = "json"
	// FormatYAML renders YAML for consumption by config tooling.
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output flag value.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(value), nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", value)
}

// Emit writes value to stdout in the requested format. Returns
// (true, nil) on success, (true, err) on write failure, or
// (false, nil) for [FormatText], where the caller should proceed
// with its own text rendering.
//
// Nil slices are normalized to empty slices before serialization, so
// callers never need to guard against null JSON output.
func Emit(format Format, value any) (bool, error) {
	switch format {
	case FormatJSON:
		return true, WriteJSON(normalizeNilSlice(value))
	case FormatYAML:
		return true, WriteYAML(normalizeNilSlice(value))
	default:
		return false, nil
	}
}

// WriteJSON marshals value as indented JSON and writes it to stdout.
// This is the low-level output function. Most commands should use
// [Emit] instead, which dispatches on the --output flag and handles
// nil-slice normalization automatically.
func WriteJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// WriteYAML marshals value as YAML and writes it to stdout.
func WriteYAML(value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that serialization produces [] instead of null.
// Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
