package match

import "github.com/reoring/docmatch/document"

// And matches when every child matches. An empty And matches everything.
type And struct {
	Children []Matcher
}

func NewAnd(children ...Matcher) *And { return &And{Children: children} }

// Add appends a child during tree construction.
func (a *And) Add(m Matcher) { a.Children = append(a.Children, m) }

func (a *And) Matches(doc document.Document) bool {
	for _, c := range a.Children {
		if !c.Matches(doc) {
			return false
		}
	}
	return true
}

func (a *And) MatchesSingle(v document.Value) bool {
	for _, c := range a.Children {
		if !c.MatchesSingle(v) {
			return false
		}
	}
	return true
}

func (a *And) Clone() Matcher { return &And{Children: cloneChildren(a.Children)} }

func (a *And) Serialize() document.Document { return serializeChildren(opAnd, a.Children) }

func (a *And) Equivalent(other Matcher) bool {
	o, ok := other.(*And)
	return ok && childrenEquivalent(a.Children, o.Children)
}

// Or matches when at least one child matches. An empty Or matches nothing.
type Or struct {
	Children []Matcher
}

func NewOr(children ...Matcher) *Or { return &Or{Children: children} }

func (o *Or) Add(m Matcher) { o.Children = append(o.Children, m) }

func (o *Or) Matches(doc document.Document) bool {
	for _, c := range o.Children {
		if c.Matches(doc) {
			return true
		}
	}
	return false
}

func (o *Or) MatchesSingle(v document.Value) bool {
	for _, c := range o.Children {
		if c.MatchesSingle(v) {
			return true
		}
	}
	return false
}

func (o *Or) Clone() Matcher { return &Or{Children: cloneChildren(o.Children)} }

func (o *Or) Serialize() document.Document { return serializeChildren(opOr, o.Children) }

func (o *Or) Equivalent(other Matcher) bool {
	oo, ok := other.(*Or)
	return ok && childrenEquivalent(o.Children, oo.Children)
}

// Not inverts its child.
type Not struct {
	Child Matcher
}

func NewNot(child Matcher) *Not { return &Not{Child: child} }

func (n *Not) Matches(doc document.Document) bool  { return !n.Child.Matches(doc) }
func (n *Not) MatchesSingle(v document.Value) bool { return !n.Child.MatchesSingle(v) }
func (n *Not) Clone() Matcher                      { return &Not{Child: n.Child.Clone()} }

func (n *Not) Serialize() document.Document {
	return document.Document{{Name: opNot, Value: document.Object(n.Child.Serialize())}}
}

func (n *Not) Equivalent(other Matcher) bool {
	o, ok := other.(*Not)
	return ok && n.Child.Equivalent(o.Child)
}

// Xor matches when exactly one child matches.
type Xor struct {
	Children []Matcher
}

func NewXor(children ...Matcher) *Xor { return &Xor{Children: children} }

func (x *Xor) Add(m Matcher) { x.Children = append(x.Children, m) }

func (x *Xor) Matches(doc document.Document) bool {
	matched := false
	for _, c := range x.Children {
		if c.Matches(doc) {
			if matched {
				return false
			}
			matched = true
		}
	}
	return matched
}

func (x *Xor) MatchesSingle(v document.Value) bool {
	matched := false
	for _, c := range x.Children {
		if c.MatchesSingle(v) {
			if matched {
				return false
			}
			matched = true
		}
	}
	return matched
}

func (x *Xor) Clone() Matcher { return &Xor{Children: cloneChildren(x.Children)} }

func (x *Xor) Serialize() document.Document { return serializeChildren(opXor, x.Children) }

func (x *Xor) Equivalent(other Matcher) bool {
	o, ok := other.(*Xor)
	return ok && childrenEquivalent(x.Children, o.Children)
}

func cloneChildren(children []Matcher) []Matcher {
	out := make([]Matcher, len(children))
	for i, c := range children {
		out[i] = c.Clone()
	}
	return out
}

func serializeChildren(op string, children []Matcher) document.Document {
	arr := make([]document.Value, len(children))
	for i, c := range children {
		arr[i] = document.Object(c.Serialize())
	}
	return document.Document{{Name: op, Value: document.Array(arr)}}
}

func childrenEquivalent(a, b []Matcher) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equivalent(b[i]) {
			return false
		}
	}
	return true
}
