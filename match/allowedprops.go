package match

import (
	"errors"
	"sort"

	"github.com/reoring/docmatch/document"
)

// Pattern pairs a property-name regex with the sub-expression every matching
// property's value must satisfy.
type Pattern struct {
	Regex *Regex
	Expr  *PlaceholderExpr
}

// Otherwise is the fallback clause of AllowedProperties: either a
// sub-expression or a boolean verdict.
type Otherwise struct {
	expr *PlaceholderExpr
	b    bool
}

func OtherwiseExpr(e *PlaceholderExpr) Otherwise { return Otherwise{expr: e} }
func OtherwiseBool(b bool) Otherwise             { return Otherwise{b: b} }

// Expr returns the sub-expression, if that is the clause's kind.
func (o Otherwise) Expr() (*PlaceholderExpr, bool) { return o.expr, o.expr != nil }

// Bool returns the boolean verdict; meaningful only when Expr reports false.
func (o Otherwise) Bool() bool { return o.b }

func (o Otherwise) clone() Otherwise {
	if o.expr != nil {
		return Otherwise{expr: o.expr.Clone()}
	}
	return o
}

func (o Otherwise) equivalent(other Otherwise) bool {
	if (o.expr != nil) != (other.expr != nil) {
		return false
	}
	if o.expr != nil {
		return o.expr.Equivalent(other.expr)
	}
	return o.b == other.b
}

// AllowedProperties validates every property of an object against a literal
// allow-list, an ordered list of pattern clauses, and a fallback.
//
// A property named in the literal list is still subject to every pattern
// clause whose regex matches its name; the literal entry only suppresses the
// fallback. Matching anything other than an object fails outright.
type AllowedProperties struct {
	properties      map[string]struct{}
	patterns        []Pattern
	otherwise       Otherwise
	namePlaceholder string
}

// ErrPlaceholderRequired reports construction with pattern clauses or an
// expression fallback but no placeholder name.
var ErrPlaceholderRequired = errors.New("match: allowed properties requires a name placeholder")

func NewAllowedProperties(properties []string, patterns []Pattern, otherwise Otherwise, namePlaceholder string) (*AllowedProperties, error) {
	if namePlaceholder == "" {
		if _, isExpr := otherwise.Expr(); isExpr || len(patterns) > 0 {
			return nil, ErrPlaceholderRequired
		}
	}
	set := make(map[string]struct{}, len(properties))
	for _, p := range properties {
		set[p] = struct{}{}
	}
	return &AllowedProperties{
		properties:      set,
		patterns:        patterns,
		otherwise:       otherwise,
		namePlaceholder: namePlaceholder,
	}, nil
}

func (a *AllowedProperties) Matches(doc document.Document) bool {
	return a.matchesObject(doc)
}

func (a *AllowedProperties) MatchesSingle(v document.Value) bool {
	sub, ok := v.AsDocument()
	if !ok {
		return false
	}
	return a.matchesObject(sub)
}

func (a *AllowedProperties) matchesObject(doc document.Document) bool {
	for _, el := range doc {
		checkOtherwise := true

		if _, ok := a.properties[el.Name]; ok {
			checkOtherwise = false
		}

		for _, pat := range a.patterns {
			if pat.Regex.MatchString(el.Name) {
				checkOtherwise = false
				if !pat.Expr.MatchesValue(el.Value) {
					return false
				}
			}
		}

		if checkOtherwise {
			if expr, ok := a.otherwise.Expr(); ok {
				if !expr.MatchesValue(el.Value) {
					return false
				}
			} else if !a.otherwise.Bool() {
				return false
			}
		}
	}
	return true
}

func (a *AllowedProperties) Clone() Matcher {
	props := make(map[string]struct{}, len(a.properties))
	for p := range a.properties {
		props[p] = struct{}{}
	}
	patterns := make([]Pattern, len(a.patterns))
	for i, pat := range a.patterns {
		patterns[i] = Pattern{Regex: pat.Regex.Clone(), Expr: pat.Expr.Clone()}
	}
	return &AllowedProperties{
		properties:      props,
		patterns:        patterns,
		otherwise:       a.otherwise.clone(),
		namePlaceholder: a.namePlaceholder,
	}
}

func (a *AllowedProperties) Serialize() document.Document {
	names := make([]string, 0, len(a.properties))
	for p := range a.properties {
		names = append(names, p)
	}
	sort.Strings(names)
	props := make([]document.Value, len(names))
	for i, n := range names {
		props[i] = document.String(n)
	}

	pats := make([]document.Value, len(a.patterns))
	for i, pat := range a.patterns {
		pats[i] = document.Object(document.Document{
			{Name: fieldRegex, Value: pat.Regex.Value()},
			{Name: fieldExpression, Value: document.Object(pat.Expr.Serialize())},
		})
	}

	var otherwise document.Value
	if expr, ok := a.otherwise.Expr(); ok {
		otherwise = document.Object(expr.Serialize())
	} else {
		otherwise = document.Bool(a.otherwise.Bool())
	}

	body := document.Document{
		{Name: fieldProperties, Value: document.Array(props)},
		{Name: fieldPlaceholder, Value: document.String(a.namePlaceholder)},
		{Name: fieldPatternProps, Value: document.Array(pats)},
		{Name: fieldOtherwise, Value: otherwise},
	}
	return document.Document{{Name: opAllowedProperties, Value: document.Object(body)}}
}

func (a *AllowedProperties) Equivalent(other Matcher) bool {
	o, ok := other.(*AllowedProperties)
	if !ok {
		return false
	}
	if len(a.properties) != len(o.properties) {
		return false
	}
	for p := range a.properties {
		if _, ok := o.properties[p]; !ok {
			return false
		}
	}
	if a.namePlaceholder != o.namePlaceholder {
		return false
	}
	if !a.otherwise.equivalent(o.otherwise) {
		return false
	}
	return patternsArePermutation(a.patterns, o.patterns)
}

// patternsArePermutation matches pattern lists modulo order, pairing entries
// whose serialized regex and sub-expression both agree. Storage stays in
// declared order; only the comparison is commutative.
func patternsArePermutation(a, b []Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, pa := range a {
		for j, pb := range b {
			if used[j] {
				continue
			}
			if pa.Regex.Source == pb.Regex.Source && pa.Regex.Flags == pb.Regex.Flags &&
				pa.Expr.Filter.Equivalent(pb.Expr.Filter) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
