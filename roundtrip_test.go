package docmatch_test

import (
	"testing"

	"github.com/reoring/docmatch/match"
)

var roundTripSchemas = []string{
	`{}`,
	`{"type": "object"}`,
	`{"type": "string"}`,
	`{"properties": {"a": {"type": "string"}}}`,
	`{"properties": {"a": {"type": "string", "minLength": 1, "maxLength": 10, "pattern": "^a"}}}`,
	`{"properties": {"n": {"type": "number", "minimum": 0, "maximum": 100, "exclusiveMaximum": true}}}`,
	`{"properties": {"n": {"maximum": 5}}}`,
	`{"properties": {"obj": {"type": "object", "properties": {"x": {"minimum": 0}}}}}`,
	`{"allOf": [{"type": "object"}, {"properties": {"a": {"type": "string"}}}]}`,
	`{"anyOf": [{"type": "string"}, {"type": "number"}]}`,
	`{"oneOf": [{"properties": {"a": {"minimum": 1}}}]}`,
	`{"not": {"type": "string"}}`,
	`{"maximum": 5}`,
	`{"minLength": 2}`,
}

// Serialized trees re-parse to equivalent trees.
func TestRoundTrip_SerializeParseEquivalent(t *testing.T) {
	for _, schema := range roundTripSchemas {
		tree := compileSchema(t, schema)
		again, err := match.Parse(tree.Serialize())
		if err != nil {
			t.Errorf("schema %s: re-parse failed: %v", schema, err)
			continue
		}
		if !tree.Equivalent(again) {
			t.Errorf("schema %s: round trip is not equivalent", schema)
		}
	}
}

// Clones are equivalent and evaluate identically.
func TestRoundTrip_CloneFidelity(t *testing.T) {
	docs := []string{
		`{}`,
		`{"a": "abc"}`,
		`{"a": 5}`,
		`{"n": 50}`,
		`{"n": 100}`,
		`{"obj": {"x": 1}}`,
		`{"obj": {"x": -1}}`,
		`{"0": true, "1": "s"}`,
		`{"not": 1}`,
	}
	for _, schema := range roundTripSchemas {
		tree := compileSchema(t, schema)
		clone := tree.Clone()
		if !tree.Equivalent(clone) {
			t.Errorf("schema %s: clone is not equivalent", schema)
			continue
		}
		for _, doc := range docs {
			d := mustDoc(t, doc)
			if tree.Matches(d) != clone.Matches(d) {
				t.Errorf("schema %s: clone diverges on %s", schema, doc)
			}
		}
	}
}

// Re-parsed trees evaluate identically to their originals.
func TestRoundTrip_ReparsedTreeEvaluatesIdentically(t *testing.T) {
	docs := []string{
		`{}`, `{"a": "abc"}`, `{"a": 5}`, `{"n": 50}`, `{"n": 101}`,
		`{"obj": {"x": 1}}`, `{"not": 1}`, `{"0": "s"}`,
	}
	for _, schema := range roundTripSchemas {
		tree := compileSchema(t, schema)
		again, err := match.Parse(tree.Serialize())
		if err != nil {
			t.Errorf("schema %s: re-parse failed: %v", schema, err)
			continue
		}
		for _, doc := range docs {
			d := mustDoc(t, doc)
			if tree.Matches(d) != again.Matches(d) {
				t.Errorf("schema %s: re-parsed tree diverges on %s", schema, doc)
			}
		}
	}
}
