package match

import "github.com/reoring/docmatch/document"

// ObjectMatch applies an inner tree to the sub-document at a non-empty path.
// It fails when the path is absent or does not hold an object.
type ObjectMatch struct {
	Path  string
	Inner Matcher
}

func NewObjectMatch(path string, inner Matcher) *ObjectMatch {
	if path == "" {
		panic("match: ObjectMatch requires a non-empty path")
	}
	return &ObjectMatch{Path: path, Inner: inner}
}

func (m *ObjectMatch) Matches(doc document.Document) bool {
	v, ok := doc.Lookup(m.Path)
	if !ok {
		return false
	}
	sub, ok := v.AsDocument()
	return ok && m.Inner.Matches(sub)
}

func (m *ObjectMatch) MatchesSingle(v document.Value) bool {
	sub, ok := v.AsDocument()
	return ok && m.Inner.Matches(sub)
}

func (m *ObjectMatch) Clone() Matcher {
	return &ObjectMatch{Path: m.Path, Inner: m.Inner.Clone()}
}

func (m *ObjectMatch) Serialize() document.Document {
	return pathOp(m.Path, opObjectMatch, document.Object(m.Inner.Serialize()))
}

func (m *ObjectMatch) Equivalent(other Matcher) bool {
	o, ok := other.(*ObjectMatch)
	return ok && m.Path == o.Path && m.Inner.Equivalent(o.Inner)
}
