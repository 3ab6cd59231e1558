//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// Field returns a mutation that sets (or, with nil, removes) one key of a
// request map. Used to probe required-field validation.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// DtoMap round-trips a DTO through JSON into a map so tests can mutate
// individual fields without depending on struct shape.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}
