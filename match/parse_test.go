package match_test

import (
	"testing"

	derr "github.com/reoring/docmatch/errors"
	"github.com/reoring/docmatch/match"
)

func TestParse_LogicalOperators(t *testing.T) {
	m := parseMatcher(t, `{"$and": [
		{"a": {"$exists": true}},
		{"$or": [{"b": {"$type": "string"}}, {"b": {"$type": "number"}}]}
	]}`)

	assertMatches(t, m, `{"a": 1, "b": "s"}`, true)
	assertMatches(t, m, `{"a": 1, "b": 2}`, true)
	assertMatches(t, m, `{"a": 1, "b": null}`, false)
	assertMatches(t, m, `{"b": "s"}`, false)
}

func TestParse_Xor(t *testing.T) {
	m := parseMatcher(t, `{"$_internalSchemaXor": [
		{"a": {"$exists": true}},
		{"b": {"$exists": true}}
	]}`)

	assertMatches(t, m, `{"a": 1}`, true)
	assertMatches(t, m, `{"b": 1}`, true)
	assertMatches(t, m, `{"a": 1, "b": 1}`, false)
	assertMatches(t, m, `{"c": 1}`, false)
}

func TestParse_NotAndExistsFalse(t *testing.T) {
	m := parseMatcher(t, `{"$not": {"a": {"$exists": true}}}`)
	assertMatches(t, m, `{"a": 1}`, false)
	assertMatches(t, m, `{"b": 1}`, true)

	viaFalse := parseMatcher(t, `{"a": {"$exists": false}}`)
	if !m.Equivalent(viaFalse) {
		t.Errorf("expected {$exists: false} to parse as a negated exists")
	}
}

func TestParse_Comparisons(t *testing.T) {
	m := parseMatcher(t, `{"a": {"$gte": 1, "$lt": 10}}`)

	assertMatches(t, m, `{"a": 1}`, true)
	assertMatches(t, m, `{"a": 9.5}`, true)
	assertMatches(t, m, `{"a": 10}`, false)
	assertMatches(t, m, `{"a": 0}`, false)
	assertMatches(t, m, `{"a": "s"}`, false)
	assertMatches(t, m, `{}`, false)
}

func TestParse_RegexValue(t *testing.T) {
	m := parseMatcher(t, `{"name": {"$regex": "^ab", "$options": ""}}`)

	assertMatches(t, m, `{"name": "abc"}`, true)
	assertMatches(t, m, `{"name": "xabc"}`, false)
	assertMatches(t, m, `{"name": 5}`, false)

	caseless := parseMatcher(t, `{"name": {"$regex": "^ab", "$options": "i"}}`)
	assertMatches(t, caseless, `{"name": "ABC"}`, true)
}

func TestParse_StrLengthAndObjectMatch(t *testing.T) {
	m := parseMatcher(t, `{"sub": {"$_internalSchemaObjectMatch": {
		"name": {"$_internalSchemaMaxLength": 3}
	}}}`)

	assertMatches(t, m, `{"sub": {"name": "abc"}}`, true)
	assertMatches(t, m, `{"sub": {"name": "abcd"}}`, false)
	assertMatches(t, m, `{"sub": 5}`, false)
	assertMatches(t, m, `{}`, false)
}

func TestParse_AlwaysNodes(t *testing.T) {
	always := parseMatcher(t, `{"$alwaysTrue": 1}`)
	never := parseMatcher(t, `{"$alwaysFalse": 1}`)

	assertMatches(t, always, `{}`, true)
	assertMatches(t, always, `{"a": 1}`, true)
	assertMatches(t, never, `{}`, false)
	assertMatches(t, never, `{"a": 1}`, false)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		filter string
		kind   derr.Kind
	}{
		{`{"$bogus": 1}`, derr.KindFailedToParse},
		{`{"a": {"$bogus": 1}}`, derr.KindFailedToParse},
		{`{"a": 5}`, derr.KindFailedToParse},
		{`{"a": {}}`, derr.KindFailedToParse},
		{`{"$and": 5}`, derr.KindTypeMismatch},
		{`{"$and": [5]}`, derr.KindFailedToParse},
		{`{"$not": 5}`, derr.KindTypeMismatch},
		{`{"a": {"$exists": 1}}`, derr.KindTypeMismatch},
		{`{"a": {"$type": 5}}`, derr.KindTypeMismatch},
		{`{"a": {"$type": "frobnicate"}}`, derr.KindBadValue},
		{`{"a": {"$lt": "s"}}`, derr.KindTypeMismatch},
		{`{"a": {"$_internalSchemaMaxLength": -1}}`, derr.KindBadValue},
		{`{"a": {"$_internalSchemaMaxLength": 1.5}}`, derr.KindBadValue},
		{`{"a": {"$_internalSchemaObjectMatch": 5}}`, derr.KindTypeMismatch},
	}
	for _, tc := range cases {
		doc := mustDoc(t, tc.filter)
		_, err := match.Parse(doc)
		if err == nil {
			t.Errorf("expected error for %s", tc.filter)
			continue
		}
		if !derr.IsKind(err, tc.kind) {
			t.Errorf("filter %s: expected kind %s, got %v", tc.filter, tc.kind, err)
		}
	}
}

func TestParse_SerializeRoundTrips(t *testing.T) {
	filters := []string{
		`{"$alwaysTrue": 1}`,
		`{"$alwaysFalse": 1}`,
		`{"$and": []}`,
		`{"$and": [{"a": {"$exists": true}}, {"b": {"$type": "string"}}]}`,
		`{"$or": [{"a": {"$lt": 5}}, {"a": {"$gt": 10}}]}`,
		`{"$_internalSchemaXor": [{"a": {"$exists": true}}, {"b": {"$exists": true}}]}`,
		`{"$not": {"a": {"$type": "number"}}}`,
		`{"a": {"$exists": false}}`,
		`{"name": {"$regex": "^ab", "$options": "i"}}`,
		`{"a": {"$_internalSchemaMinLength": 2}}`,
		`{"sub": {"$_internalSchemaObjectMatch": {"x": {"$gte": 0}}}}`,
	}
	for _, filter := range filters {
		m := parseMatcher(t, filter)
		again, err := match.Parse(m.Serialize())
		if err != nil {
			t.Fatalf("re-parse of %s: %v", filter, err)
		}
		if !m.Equivalent(again) {
			t.Errorf("round trip of %s is not equivalent", filter)
		}
	}
}

func TestClone_MatchesIdentically(t *testing.T) {
	filters := []string{
		`{"$and": [{"a": {"$gte": 1}}, {"$not": {"b": {"$type": "string"}}}]}`,
		`{"name": {"$regex": "^ab", "$options": ""}}`,
		`{"sub": {"$_internalSchemaObjectMatch": {"x": {"$_internalSchemaMaxLength": 2}}}}`,
	}
	docs := []string{
		`{}`, `{"a": 1}`, `{"a": 1, "b": "s"}`, `{"name": "abx"}`,
		`{"sub": {"x": "ab"}}`, `{"sub": {"x": "abc"}}`,
	}
	for _, filter := range filters {
		m := parseMatcher(t, filter)
		clone := m.Clone()
		if !m.Equivalent(clone) {
			t.Fatalf("clone of %s is not equivalent", filter)
		}
		for _, doc := range docs {
			if m.Matches(mustDoc(t, doc)) != clone.Matches(mustDoc(t, doc)) {
				t.Errorf("clone of %s diverges on %s", filter, doc)
			}
		}
	}
}

func TestEquivalent_DistinguishesNodes(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{`{"a": {"$exists": true}}`, `{"a": {"$exists": true}}`, true},
		{`{"a": {"$exists": true}}`, `{"b": {"$exists": true}}`, false},
		{`{"a": {"$lt": 5}}`, `{"a": {"$lt": 5.0}}`, true},
		{`{"a": {"$lt": 5}}`, `{"a": {"$lte": 5}}`, false},
		{`{"a": {"$type": "number"}}`, `{"a": {"$type": "number"}}`, true},
		{`{"a": {"$type": "number"}}`, `{"a": {"$type": "int"}}`, false},
		{`{"$and": [{"a": {"$exists": true}}]}`, `{"$or": [{"a": {"$exists": true}}]}`, false},
		{`{"a": {"$regex": "x", "$options": ""}}`, `{"a": {"$regex": "x", "$options": "i"}}`, false},
	}
	for _, tc := range cases {
		a := parseMatcher(t, tc.a)
		b := parseMatcher(t, tc.b)
		if got := a.Equivalent(b); got != tc.want {
			t.Errorf("Equivalent(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestTypeOf_NumericSpec(t *testing.T) {
	m := parseMatcher(t, `{"a": {"$type": "number"}}`)

	assertMatches(t, m, `{"a": 5}`, true)
	assertMatches(t, m, `{"a": 5.5}`, true)
	assertMatches(t, m, `{"a": "5"}`, false)
	assertMatches(t, m, `{}`, false)
}

func TestStrLength_CountsRunes(t *testing.T) {
	m := parseMatcher(t, `{"a": {"$_internalSchemaMaxLength": 3}}`)

	assertMatches(t, m, `{"a": "abc"}`, true)
	assertMatches(t, m, `{"a": "日本語"}`, true)
	assertMatches(t, m, `{"a": "日本語四"}`, false)
}
