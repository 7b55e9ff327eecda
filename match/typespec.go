package match

import "github.com/reoring/docmatch/document"

// TypeSpec is either one concrete tag or the "any numeric" predicate.
type TypeSpec struct {
	AllNumbers bool
	Tag        document.Type
}

// AnyNumber is the TypeSpec matching every numeric subtype.
func AnyNumber() TypeSpec { return TypeSpec{AllNumbers: true} }

// SpecOf pins a single concrete tag.
func SpecOf(t document.Type) TypeSpec { return TypeSpec{Tag: t} }

// Matches reports whether the tag satisfies the spec.
func (s TypeSpec) Matches(t document.Type) bool {
	if s.AllNumbers {
		return t.Numeric()
	}
	return s.Tag == t
}

// Equal compares two specs structurally.
func (s TypeSpec) Equal(o TypeSpec) bool {
	return s.AllNumbers == o.AllNumbers && s.Tag == o.Tag
}

// Alias renders the spec as its schema alias.
func (s TypeSpec) Alias() string {
	if s.AllNumbers {
		return aliasNumber
	}
	return s.Tag.String()
}

const aliasNumber = "number"

var aliasTable = map[string]document.Type{
	"object": document.TypeObject,
	"array":  document.TypeArray,
	"string": document.TypeString,
	"int":    document.TypeInt,
	"double": document.TypeDouble,
	"bool":   document.TypeBool,
	"null":   document.TypeNull,
	"regex":  document.TypeRegex,
}

// SpecFromAlias resolves a schema type alias. "number" resolves to the
// any-numeric spec; the remaining aliases name concrete tags.
func SpecFromAlias(alias string) (TypeSpec, bool) {
	if alias == aliasNumber {
		return AnyNumber(), true
	}
	t, ok := aliasTable[alias]
	if !ok {
		return TypeSpec{}, false
	}
	return SpecOf(t), true
}
