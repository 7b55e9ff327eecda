package docmatch

import (
	"github.com/reoring/docmatch/document"
	derr "github.com/reoring/docmatch/errors"
	"github.com/reoring/docmatch/match"
)

// Schema keywords recognized by the compiler. Anything else fails.
const (
	keywordType             = "type"
	keywordProperties       = "properties"
	keywordMaximum          = "maximum"
	keywordMinimum          = "minimum"
	keywordExclusiveMaximum = "exclusiveMaximum"
	keywordExclusiveMinimum = "exclusiveMinimum"
	keywordMaxLength        = "maxLength"
	keywordMinLength        = "minLength"
	keywordPattern          = "pattern"
	keywordAllOf            = "allOf"
	keywordAnyOf            = "anyOf"
	keywordOneOf            = "oneOf"
	keywordNot              = "not"
)

var recognizedKeywords = map[string]struct{}{
	keywordType:             {},
	keywordProperties:       {},
	keywordMaximum:          {},
	keywordMinimum:          {},
	keywordExclusiveMaximum: {},
	keywordExclusiveMinimum: {},
	keywordMaxLength:        {},
	keywordMinLength:        {},
	keywordPattern:          {},
	keywordAllOf:            {},
	keywordAnyOf:            {},
	keywordOneOf:            {},
	keywordNot:              {},
}

// Compile translates a schema document into a match tree. The first failing
// keyword aborts the compilation; no partial trees are returned.
func Compile(schema document.Document) (match.Matcher, error) {
	return parseSchema("", schema)
}

// CompileJSON decodes a JSON schema and compiles it.
func CompileJSON(data []byte) (match.Matcher, error) {
	schema, err := document.DecodeJSON(data)
	if err != nil {
		return nil, derr.FailedToParsef("", "%v", err)
	}
	return Compile(schema)
}

// CompileYAML decodes a YAML schema and compiles it.
func CompileYAML(data []byte) (match.Matcher, error) {
	schema, err := document.DecodeYAML(data)
	if err != nil {
		return nil, derr.FailedToParsef("", "%v", err)
	}
	return Compile(schema)
}

// parseSchema compiles one schema level. The path is empty at the top level
// and names the enclosing field below it; several keyword parsers specialize
// on that distinction to fold away restrictions that are vacuous at the root.
func parseSchema(path string, schema document.Document) (match.Matcher, error) {
	keywords := make(map[string]document.Value, len(schema))
	for _, el := range schema {
		if _, known := recognizedKeywords[el.Name]; !known {
			return nil, derr.FailedToParsef(el.Name, "unknown schema keyword")
		}
		if _, dup := keywords[el.Name]; dup {
			return nil, derr.FailedToParsef(el.Name, "duplicate schema keyword")
		}
		keywords[el.Name] = el.Value
	}

	statedType, err := parseStatedType(path, keywords)
	if err != nil {
		return nil, err
	}

	and := match.NewAnd()

	if v, ok := keywords[keywordProperties]; ok {
		expr, err := parseProperties(path, v, statedType)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	if v, ok := keywords[keywordMaximum]; ok {
		exclusive, err := parseExclusiveCompanion(keywords, keywordExclusiveMaximum)
		if err != nil {
			return nil, err
		}
		expr, err := parseMaximum(path, v, statedType, exclusive)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	} else if _, ok := keywords[keywordExclusiveMaximum]; ok {
		return nil, derr.FailedToParsef(keywordMaximum,
			"must be present if %s is present", keywordExclusiveMaximum)
	}

	if v, ok := keywords[keywordMinimum]; ok {
		exclusive, err := parseExclusiveCompanion(keywords, keywordExclusiveMinimum)
		if err != nil {
			return nil, err
		}
		expr, err := parseMinimum(path, v, statedType, exclusive)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	} else if _, ok := keywords[keywordExclusiveMinimum]; ok {
		return nil, derr.FailedToParsef(keywordMinimum,
			"must be present if %s is present", keywordExclusiveMinimum)
	}

	if v, ok := keywords[keywordMaxLength]; ok {
		expr, err := parseStrLength(path, v, statedType, keywordMaxLength, match.MaxLength)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	if v, ok := keywords[keywordMinLength]; ok {
		expr, err := parseStrLength(path, v, statedType, keywordMinLength, match.MinLength)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	if v, ok := keywords[keywordPattern]; ok {
		expr, err := parsePattern(path, v, statedType)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	for _, kw := range []string{keywordAllOf, keywordAnyOf, keywordOneOf} {
		v, ok := keywords[kw]
		if !ok {
			continue
		}
		expr, err := parseLogical(path, kw, v, statedType)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	if v, ok := keywords[keywordNot]; ok {
		expr, err := parseNot(path, v, statedType)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	if path == "" && statedType != nil &&
		(statedType.Spec.AllNumbers || statedType.Spec.Tag != document.TypeObject) {
		// Only objects are ever stored at the top level; a schema pinning any
		// other type matches nothing.
		return match.NewAlwaysFalse(), nil
	}

	if path != "" && statedType != nil {
		and.Add(makeTypeRestriction(statedType))
	}

	return and, nil
}

// parseStatedType resolves the type keyword. The result is not added to the
// conjunction directly; it is threaded to the sibling keyword parsers so they
// can elide restriction wrappers the stated type makes redundant.
func parseStatedType(path string, keywords map[string]document.Value) (*match.TypeOf, error) {
	v, ok := keywords[keywordType]
	if !ok {
		return nil, nil
	}
	alias, ok := v.AsString()
	if !ok {
		return nil, derr.TypeMismatchf(keywordType, "must be a string, got %s", v.Type())
	}
	spec, ok := match.SpecFromAlias(alias)
	if !ok {
		return nil, derr.BadValuef(keywordType, "unknown type name %q", alias)
	}
	return match.NewTypeOf(path, spec), nil
}

func parseExclusiveCompanion(keywords map[string]document.Value, keyword string) (bool, error) {
	v, ok := keywords[keyword]
	if !ok {
		return false, nil
	}
	b, ok := v.AsBool()
	if !ok {
		return false, derr.TypeMismatchf(keyword, "must be a boolean, got %s", v.Type())
	}
	return b, nil
}
