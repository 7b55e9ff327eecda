// Package match implements the boolean match-node tree that compiled schemas
// evaluate against documents, together with the canonical serialized dialect
// and its parser.
//
// Trees are immutable once built and safe for concurrent evaluation. Matching
// is total: it never errors, only answers true or false.
package match

import "github.com/reoring/docmatch/document"

// Matcher is a node of the compiled expression tree.
//
// Matches evaluates the node against a whole document; path-anchored leaves
// resolve their dotted path first. MatchesSingle evaluates against one tagged
// value, ignoring any path, as used for per-property sub-expressions.
type Matcher interface {
	Matches(doc document.Document) bool
	MatchesSingle(v document.Value) bool

	// Clone returns an independent deep copy.
	Clone() Matcher

	// Serialize emits the canonical wire form. Parse of the result yields an
	// equivalent tree.
	Serialize() document.Document

	// Equivalent reports structural equivalence with another tree.
	Equivalent(other Matcher) bool
}

// pathOp wraps one operator under one path, the shape shared by every
// path-anchored leaf's serialization.
func pathOp(path, op string, v document.Value) document.Document {
	return document.Document{{
		Name: path,
		Value: document.Object(document.Document{
			{Name: op, Value: v},
		}),
	}}
}
