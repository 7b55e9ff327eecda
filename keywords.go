package docmatch

import (
	"strconv"

	"github.com/reoring/docmatch/document"
	derr "github.com/reoring/docmatch/errors"
	"github.com/reoring/docmatch/match"
)

func parseMaximum(path string, v document.Value, statedType *match.TypeOf, exclusive bool) (match.Matcher, error) {
	if !v.IsNumber() {
		return nil, derr.TypeMismatchf(keywordMaximum, "must be a number, got %s", v.Type())
	}
	if path == "" {
		// No effect in a top-level schema; only objects are stored.
		return match.NewAlwaysTrue(), nil
	}
	op := match.LTE
	if exclusive {
		op = match.LT
	}
	expr := match.NewComparison(path, op, v)
	return makeRestriction(match.AnyNumber(), path, expr, statedType), nil
}

func parseMinimum(path string, v document.Value, statedType *match.TypeOf, exclusive bool) (match.Matcher, error) {
	if !v.IsNumber() {
		return nil, derr.TypeMismatchf(keywordMinimum, "must be a number, got %s", v.Type())
	}
	if path == "" {
		return match.NewAlwaysTrue(), nil
	}
	op := match.GTE
	if exclusive {
		op = match.GT
	}
	expr := match.NewComparison(path, op, v)
	return makeRestriction(match.AnyNumber(), path, expr, statedType), nil
}

func parseStrLength(path string, v document.Value, statedType *match.TypeOf, keyword string, op match.LengthOp) (match.Matcher, error) {
	if !v.IsNumber() {
		return nil, derr.TypeMismatchf(keyword, "must be a number, got %s", v.Type())
	}
	n, err := document.ParseNonNegativeIntegerElement(v)
	if err != nil {
		return nil, derr.BadValuef(keyword, "%v", err)
	}
	if path == "" {
		return match.NewAlwaysTrue(), nil
	}
	expr := match.NewStrLength(path, op, n)
	return makeRestriction(match.SpecOf(document.TypeString), path, expr, statedType), nil
}

func parsePattern(path string, v document.Value, statedType *match.TypeOf) (match.Matcher, error) {
	source, ok := v.AsString()
	if !ok {
		return nil, derr.TypeMismatchf(keywordPattern, "must be a string, got %s", v.Type())
	}
	if path == "" {
		return match.NewAlwaysTrue(), nil
	}
	// The dialect does not allow per-pattern flags.
	expr, err := match.NewRegexMatch(path, source, "")
	if err != nil {
		return nil, derr.BadValuef(keywordPattern, "%v", err)
	}
	return makeRestriction(match.SpecOf(document.TypeString), path, expr, statedType), nil
}

func parseProperties(path string, v document.Value, statedType *match.TypeOf) (match.Matcher, error) {
	props, ok := v.AsDocument()
	if !ok {
		return nil, derr.TypeMismatchf(keywordProperties, "must be an object, got %s", v.Type())
	}

	and := match.NewAnd()
	for _, prop := range props {
		sub, ok := prop.Value.AsDocument()
		if !ok {
			return nil, derr.TypeMismatchf(keywordProperties,
				"nested schema for property %q must be an object, got %s", prop.Name, prop.Value.Type())
		}
		expr, err := parseSchema(prop.Name, sub)
		if err != nil {
			return nil, err
		}
		and.Add(expr)
	}

	// A top-level schema has no path and needs no object match node.
	if path == "" {
		return and, nil
	}
	objectMatch := match.NewObjectMatch(path, and)
	return makeRestriction(match.SpecOf(document.TypeObject), path, objectMatch, statedType), nil
}

// parseLogical handles allOf, anyOf, and oneOf, which all carry a non-empty
// array of sub-schemas. Elements compile with their positional field name as
// path, the way array iteration yields them.
func parseLogical(path, keyword string, v document.Value, statedType *match.TypeOf) (match.Matcher, error) {
	arr, ok := v.AsArray()
	if !ok {
		return nil, derr.TypeMismatchf(keyword, "must be an array, got %s", v.Type())
	}
	if len(arr) == 0 {
		return nil, derr.BadValuef(keyword, "must be a nonempty array")
	}

	children := make([]match.Matcher, 0, len(arr))
	for i, item := range arr {
		sub, ok := item.AsDocument()
		if !ok {
			return nil, derr.FailedToParsef(keyword,
				"must be an array of objects, but found an element of type %s", item.Type())
		}
		expr, err := parseSchema(strconv.Itoa(i), sub)
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}

	var combined match.Matcher
	switch keyword {
	case keywordAllOf:
		combined = match.NewAnd(children...)
	case keywordAnyOf:
		combined = match.NewOr(children...)
	default:
		combined = match.NewXor(children...)
	}

	if path == "" {
		return combined, nil
	}
	objectMatch := match.NewObjectMatch(path, combined)
	return makeRestriction(match.SpecOf(document.TypeObject), path, objectMatch, statedType), nil
}

func parseNot(path string, v document.Value, statedType *match.TypeOf) (match.Matcher, error) {
	sub, ok := v.AsDocument()
	if !ok {
		return nil, derr.FailedToParsef(keywordNot,
			"must be an object, but found an element of type %s", v.Type())
	}

	inner, err := parseSchema(keywordNot, sub)
	if err != nil {
		return nil, err
	}
	notExpr := match.NewNot(inner)

	if path == "" {
		return notExpr, nil
	}
	objectMatch := match.NewObjectMatch(path, notExpr)
	return makeRestriction(match.SpecOf(document.TypeObject), path, objectMatch, statedType), nil
}
