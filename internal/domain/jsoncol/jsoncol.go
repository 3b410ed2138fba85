// Package jsoncol handles columns that hold JSON documents as plain text.
//
// Reads never fail on bad historical data: anything that does not decode into
// the requested shape is replaced by a caller-supplied fallback.
package jsoncol

import (
	"bytes"
	"encoding/json"
)

const (
	EmptyList = "[]"
	EmptyMap  = "{}"
)

// ParseOrDefault decodes raw into a T. Blank, null or malformed text, or text
// of the wrong shape, yields fallback.
func ParseOrDefault[T any](raw string, fallback T) T {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fallback
	}
	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return fallback
	}
	return out
}

// Stringify returns the JSON text to store for a request field. Absent and
// null values store fallback.
func Stringify(value json.RawMessage, fallback string) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fallback
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return fallback
	}
	return compact.String()
}

// List parses a JSON array of arbitrary values.
func List(raw string) []any {
	return ParseOrDefault(raw, []any{})
}

// Map parses a JSON object.
func Map(raw string) map[string]any {
	return ParseOrDefault(raw, map[string]any{})
}
