package testutil

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch applies an RFC 6902 JSON Patch to a copy of doc and returns the
// result. doc is left untouched. Numbers in the result decode as float64.
func Patch(t testing.TB, doc map[string]any, ops string) map[string]any {
	t.Helper()

	original, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	patch, err := jsonpatch.DecodePatch([]byte(ops))
	if err != nil {
		t.Fatalf("decode patch %s: %v", ops, err)
	}
	patched, err := patch.Apply(original)
	if err != nil {
		t.Fatalf("apply patch %s: %v", ops, err)
	}

	var out map[string]any
	if err := json.Unmarshal(patched, &out); err != nil {
		t.Fatalf("unmarshal patched document: %v", err)
	}
	return out
}

// Clone returns a deep copy of doc through a JSON round trip.
func Clone(t testing.TB, doc map[string]any) map[string]any {
	t.Helper()
	return Patch(t, doc, `[]`)
}
