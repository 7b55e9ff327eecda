package match

import (
	"unicode/utf8"

	"github.com/reoring/docmatch/document"
)

// Exists matches documents where the path resolves to any value, null
// included. Against a single value it is vacuously true.
type Exists struct {
	Path string
}

func NewExists(path string) *Exists { return &Exists{Path: path} }

func (e *Exists) Matches(doc document.Document) bool {
	_, ok := doc.Lookup(e.Path)
	return ok
}

func (e *Exists) MatchesSingle(document.Value) bool { return true }

func (e *Exists) Clone() Matcher { return &Exists{Path: e.Path} }

func (e *Exists) Serialize() document.Document {
	return pathOp(e.Path, opExists, document.Bool(true))
}

func (e *Exists) Equivalent(other Matcher) bool {
	o, ok := other.(*Exists)
	return ok && e.Path == o.Path
}

// TypeOf matches values whose tag satisfies a TypeSpec. A missing path does
// not match.
type TypeOf struct {
	Path string
	Spec TypeSpec
}

func NewTypeOf(path string, spec TypeSpec) *TypeOf { return &TypeOf{Path: path, Spec: spec} }

func (t *TypeOf) Matches(doc document.Document) bool {
	v, ok := doc.Lookup(t.Path)
	return ok && t.Spec.Matches(v.Type())
}

func (t *TypeOf) MatchesSingle(v document.Value) bool { return t.Spec.Matches(v.Type()) }

func (t *TypeOf) Clone() Matcher { return &TypeOf{Path: t.Path, Spec: t.Spec} }

func (t *TypeOf) Serialize() document.Document {
	return pathOp(t.Path, opType, document.String(t.Spec.Alias()))
}

func (t *TypeOf) Equivalent(other Matcher) bool {
	o, ok := other.(*TypeOf)
	return ok && t.Path == o.Path && t.Spec.Equal(o.Spec)
}

// CompareOp is one of the four order comparisons.
type CompareOp int

const (
	LT CompareOp = iota
	LTE
	GT
	GTE
)

func (op CompareOp) name() string {
	switch op {
	case LT:
		return opLT
	case LTE:
		return opLTE
	case GT:
		return opGT
	}
	return opGTE
}

// Comparison orders a numeric field against a numeric bound. Values of any
// other tag do not match; schema restrictions regain their permissive
// semantics through the restriction wrapper.
type Comparison struct {
	Path  string
	Op    CompareOp
	Value document.Value
}

func NewComparison(path string, op CompareOp, v document.Value) *Comparison {
	return &Comparison{Path: path, Op: op, Value: v}
}

func (c *Comparison) Matches(doc document.Document) bool {
	v, ok := doc.Lookup(c.Path)
	return ok && c.MatchesSingle(v)
}

func (c *Comparison) MatchesSingle(v document.Value) bool {
	vf, ok := v.Float()
	if !ok {
		return false
	}
	bound, ok := c.Value.Float()
	if !ok {
		return false
	}
	// Exact compare when both sides are ints, avoiding float rounding at the
	// extremes of the int64 range.
	if vi, ok := v.AsInt(); ok {
		if bi, ok := c.Value.AsInt(); ok {
			return compareInt(vi, bi, c.Op)
		}
	}
	return compareFloat(vf, bound, c.Op)
}

func compareInt(v, bound int64, op CompareOp) bool {
	switch op {
	case LT:
		return v < bound
	case LTE:
		return v <= bound
	case GT:
		return v > bound
	}
	return v >= bound
}

func compareFloat(v, bound float64, op CompareOp) bool {
	switch op {
	case LT:
		return v < bound
	case LTE:
		return v <= bound
	case GT:
		return v > bound
	}
	return v >= bound
}

func (c *Comparison) Clone() Matcher {
	return &Comparison{Path: c.Path, Op: c.Op, Value: c.Value.Clone()}
}

func (c *Comparison) Serialize() document.Document {
	return pathOp(c.Path, c.Op.name(), c.Value)
}

func (c *Comparison) Equivalent(other Matcher) bool {
	o, ok := other.(*Comparison)
	return ok && c.Path == o.Path && c.Op == o.Op && c.Value.Equal(o.Value)
}

// LengthOp selects which bound a StrLength enforces.
type LengthOp int

const (
	MinLength LengthOp = iota
	MaxLength
)

func (op LengthOp) name() string {
	if op == MinLength {
		return opMinLength
	}
	return opMaxLength
}

// StrLength bounds the length of a string field, counted in runes. Values of
// any other tag do not match.
type StrLength struct {
	Path string
	Op   LengthOp
	N    int64
}

func NewStrLength(path string, op LengthOp, n int64) *StrLength {
	return &StrLength{Path: path, Op: op, N: n}
}

func (s *StrLength) Matches(doc document.Document) bool {
	v, ok := doc.Lookup(s.Path)
	return ok && s.MatchesSingle(v)
}

func (s *StrLength) MatchesSingle(v document.Value) bool {
	str, ok := v.AsString()
	if !ok {
		return false
	}
	n := int64(utf8.RuneCountInString(str))
	if s.Op == MinLength {
		return n >= s.N
	}
	return n <= s.N
}

func (s *StrLength) Clone() Matcher { return &StrLength{Path: s.Path, Op: s.Op, N: s.N} }

func (s *StrLength) Serialize() document.Document {
	return pathOp(s.Path, s.Op.name(), document.Int(s.N))
}

func (s *StrLength) Equivalent(other Matcher) bool {
	o, ok := other.(*StrLength)
	return ok && s.Path == o.Path && s.Op == o.Op && s.N == o.N
}

// RegexMatch applies a pattern to a string field. A regex-typed value matches
// when its source and options are identical to the pattern's.
type RegexMatch struct {
	Path  string
	Regex *Regex
}

func NewRegexMatch(path, source, flags string) (*RegexMatch, error) {
	re, err := CompileRegex(source, flags)
	if err != nil {
		return nil, err
	}
	return &RegexMatch{Path: path, Regex: re}, nil
}

func (r *RegexMatch) Matches(doc document.Document) bool {
	v, ok := doc.Lookup(r.Path)
	return ok && r.MatchesSingle(v)
}

func (r *RegexMatch) MatchesSingle(v document.Value) bool {
	if s, ok := v.AsString(); ok {
		return r.Regex.MatchString(s)
	}
	if src, opts, ok := v.AsRegex(); ok {
		return src == r.Regex.Source && opts == r.Regex.Flags
	}
	return false
}

func (r *RegexMatch) Clone() Matcher {
	return &RegexMatch{Path: r.Path, Regex: r.Regex.Clone()}
}

func (r *RegexMatch) Serialize() document.Document {
	return document.Document{{Name: r.Path, Value: r.Regex.Value()}}
}

func (r *RegexMatch) Equivalent(other Matcher) bool {
	o, ok := other.(*RegexMatch)
	return ok && r.Path == o.Path &&
		r.Regex.Source == o.Regex.Source && r.Regex.Flags == o.Regex.Flags
}
