package jsoncol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

func TestParseOrDefault(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		got := ParseOrDefault(`[{"role":"Director","name":"Luka"}]`, []pair{})
		assert.Equal(t, []pair{{Role: "Director", Name: "Luka"}}, got)
	})

	t.Run("malformed text falls back", func(t *testing.T) {
		got := ParseOrDefault(`[{"role":`, []pair{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("wrong shape falls back", func(t *testing.T) {
		assert.Equal(t, map[string]any{}, ParseOrDefault(`["a"]`, map[string]any{}))
		assert.Equal(t, []any{}, ParseOrDefault(`{"a":1}`, []any{}))
	})

	t.Run("blank and null fall back", func(t *testing.T) {
		assert.Equal(t, []any{}, List(""))
		assert.Equal(t, []any{}, List("  null "))
		assert.Equal(t, map[string]any{}, Map("null"))
	})

	t.Run("map", func(t *testing.T) {
		assert.Equal(t, map[string]any{"runtime": "00:30:00", "iso": float64(100)}, Map(`{"runtime":"00:30:00","iso":100}`))
	})
}

func TestStringify(t *testing.T) {
	assert.Equal(t, EmptyList, Stringify(nil, EmptyList))
	assert.Equal(t, EmptyMap, Stringify(json.RawMessage("null"), EmptyMap))
	assert.Equal(t, `{"a":[1,2]}`, Stringify(json.RawMessage("{ \"a\" : [1, 2] }"), EmptyMap))
	assert.Equal(t, EmptyList, Stringify(json.RawMessage("[1,"), EmptyList))
}
