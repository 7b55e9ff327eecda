package match

import (
	"strings"

	"github.com/reoring/docmatch/document"
)

// PlaceholderExpr is a sub-expression bound to a placeholder name. The
// filter's leaves use the name as their path; evaluation feeds them a single
// value instead.
type PlaceholderExpr struct {
	Name   string
	Filter Matcher
}

func NewPlaceholderExpr(name string, filter Matcher) *PlaceholderExpr {
	return &PlaceholderExpr{Name: name, Filter: filter}
}

// MatchesValue evaluates the filter against one tagged value.
func (p *PlaceholderExpr) MatchesValue(v document.Value) bool {
	return p.Filter.MatchesSingle(v)
}

func (p *PlaceholderExpr) Clone() *PlaceholderExpr {
	return &PlaceholderExpr{Name: p.Name, Filter: p.Filter.Clone()}
}

func (p *PlaceholderExpr) Serialize() document.Document {
	return p.Filter.Serialize()
}

func (p *PlaceholderExpr) Equivalent(o *PlaceholderExpr) bool {
	return p.Name == o.Name && p.Filter.Equivalent(o.Filter)
}

// boundToPlaceholder checks that every path the filter anchors is the
// placeholder name or a dotted descendant of it.
func boundToPlaceholder(m Matcher, name string) bool {
	switch t := m.(type) {
	case *And:
		return allBound(t.Children, name)
	case *Or:
		return allBound(t.Children, name)
	case *Xor:
		return allBound(t.Children, name)
	case *Not:
		return boundToPlaceholder(t.Child, name)
	case *Exists:
		return pathBound(t.Path, name)
	case *TypeOf:
		return pathBound(t.Path, name)
	case *Comparison:
		return pathBound(t.Path, name)
	case *StrLength:
		return pathBound(t.Path, name)
	case *RegexMatch:
		return pathBound(t.Path, name)
	case *ObjectMatch:
		return pathBound(t.Path, name)
	}
	// Path-free nodes bind trivially.
	return true
}

func allBound(children []Matcher, name string) bool {
	for _, c := range children {
		if !boundToPlaceholder(c, name) {
			return false
		}
	}
	return true
}

func pathBound(path, name string) bool {
	return path == name || strings.HasPrefix(path, name+".")
}
