package match

import (
	"strings"

	"github.com/reoring/docmatch/document"
	derr "github.com/reoring/docmatch/errors"
)

// Parse reads the canonical serialized dialect back into a tree. A document
// with several top-level elements is an implicit conjunction; an empty one
// matches everything.
func Parse(doc document.Document) (Matcher, error) {
	if len(doc) == 1 {
		return parseElement(doc[0])
	}
	and := NewAnd()
	for _, el := range doc {
		m, err := parseElement(el)
		if err != nil {
			return nil, err
		}
		and.Add(m)
	}
	return and, nil
}

func parseElement(el document.Element) (Matcher, error) {
	if strings.HasPrefix(el.Name, "$") {
		return parseOperator(el.Name, el.Value)
	}
	return parsePathElement(el.Name, el.Value)
}

func parseOperator(op string, v document.Value) (Matcher, error) {
	switch op {
	case opAlwaysTrue, opAlwaysFalse:
		if !v.IsNumber() {
			return nil, derr.TypeMismatchf(op, "must be a number")
		}
		if op == opAlwaysTrue {
			return NewAlwaysTrue(), nil
		}
		return NewAlwaysFalse(), nil
	case opAnd, opOr, opXor:
		children, err := parseExpressionArray(op, v)
		if err != nil {
			return nil, err
		}
		switch op {
		case opAnd:
			return NewAnd(children...), nil
		case opOr:
			return NewOr(children...), nil
		}
		return NewXor(children...), nil
	case opNot:
		sub, ok := v.AsDocument()
		if !ok {
			return nil, derr.TypeMismatchf(op, "must be an object, got %s", v.Type())
		}
		inner, err := Parse(sub)
		if err != nil {
			return nil, err
		}
		return NewNot(inner), nil
	case opAllowedProperties:
		body, ok := v.AsDocument()
		if !ok {
			return nil, derr.TypeMismatchf(op, "must be an object, got %s", v.Type())
		}
		return parseAllowedProperties(body)
	}
	return nil, derr.FailedToParsef(op, "unknown operator")
}

func parseExpressionArray(op string, v document.Value) ([]Matcher, error) {
	arr, ok := v.AsArray()
	if !ok {
		return nil, derr.TypeMismatchf(op, "must be an array, got %s", v.Type())
	}
	children := make([]Matcher, 0, len(arr))
	for _, item := range arr {
		sub, ok := item.AsDocument()
		if !ok {
			return nil, derr.FailedToParsef(op, "array elements must be objects, got %s", item.Type())
		}
		m, err := Parse(sub)
		if err != nil {
			return nil, err
		}
		children = append(children, m)
	}
	return children, nil
}

func parsePathElement(path string, v document.Value) (Matcher, error) {
	if path == "" {
		return nil, derr.FailedToParsef("", "empty field path")
	}
	if src, opts, ok := v.AsRegex(); ok {
		rm, err := NewRegexMatch(path, src, opts)
		if err != nil {
			return nil, derr.BadValuef("$regex", "%v", err)
		}
		return rm, nil
	}
	ops, ok := v.AsDocument()
	if !ok {
		return nil, derr.FailedToParsef(path, "expected an operator object, got %s", v.Type())
	}
	if len(ops) == 0 {
		return nil, derr.FailedToParsef(path, "empty operator object")
	}
	if len(ops) == 1 {
		return parsePathOp(path, ops[0].Name, ops[0].Value)
	}
	and := NewAnd()
	for _, el := range ops {
		m, err := parsePathOp(path, el.Name, el.Value)
		if err != nil {
			return nil, err
		}
		and.Add(m)
	}
	return and, nil
}

func parsePathOp(path, op string, v document.Value) (Matcher, error) {
	switch op {
	case opExists:
		b, ok := v.AsBool()
		if !ok {
			return nil, derr.TypeMismatchf(op, "must be a boolean, got %s", v.Type())
		}
		if b {
			return NewExists(path), nil
		}
		return NewNot(NewExists(path)), nil
	case opType:
		alias, ok := v.AsString()
		if !ok {
			return nil, derr.TypeMismatchf(op, "must be a string, got %s", v.Type())
		}
		spec, ok := SpecFromAlias(alias)
		if !ok {
			return nil, derr.BadValuef(op, "unknown type alias %q", alias)
		}
		return NewTypeOf(path, spec), nil
	case opLT, opLTE, opGT, opGTE:
		if !v.IsNumber() {
			return nil, derr.TypeMismatchf(op, "must be a number, got %s", v.Type())
		}
		var cmp CompareOp
		switch op {
		case opLT:
			cmp = LT
		case opLTE:
			cmp = LTE
		case opGT:
			cmp = GT
		default:
			cmp = GTE
		}
		return NewComparison(path, cmp, v), nil
	case opMinLength, opMaxLength:
		n, err := document.ParseNonNegativeIntegerElement(v)
		if err != nil {
			return nil, derr.BadValuef(op, "%v", err)
		}
		if op == opMinLength {
			return NewStrLength(path, MinLength, n), nil
		}
		return NewStrLength(path, MaxLength, n), nil
	case opObjectMatch:
		sub, ok := v.AsDocument()
		if !ok {
			return nil, derr.TypeMismatchf(op, "must be an object, got %s", v.Type())
		}
		inner, err := Parse(sub)
		if err != nil {
			return nil, err
		}
		return NewObjectMatch(path, inner), nil
	}
	return nil, derr.FailedToParsef(op, "unknown operator for path %q", path)
}

func parseAllowedProperties(body document.Document) (Matcher, error) {
	const kw = opAllowedProperties

	fields := make(map[string]document.Value, len(body))
	for _, el := range body {
		switch el.Name {
		case fieldProperties, fieldPatternProps, fieldOtherwise, fieldPlaceholder:
		default:
			return nil, derr.FailedToParsef(kw, "unknown field %q", el.Name)
		}
		if _, dup := fields[el.Name]; dup {
			return nil, derr.FailedToParsef(kw, "duplicate field %q", el.Name)
		}
		fields[el.Name] = el.Value
	}

	placeholder := ""
	if v, ok := fields[fieldPlaceholder]; ok {
		s, ok := v.AsString()
		if !ok {
			return nil, derr.TypeMismatchf(kw, "%s must be a string, got %s", fieldPlaceholder, v.Type())
		}
		placeholder = s
	}

	var properties []string
	if v, ok := fields[fieldProperties]; ok {
		arr, ok := v.AsArray()
		if !ok {
			return nil, derr.TypeMismatchf(kw, "%s must be an array, got %s", fieldProperties, v.Type())
		}
		for _, item := range arr {
			s, ok := item.AsString()
			if !ok {
				return nil, derr.TypeMismatchf(kw, "%s entries must be strings, got %s", fieldProperties, item.Type())
			}
			properties = append(properties, s)
		}
	}

	var patterns []Pattern
	if v, ok := fields[fieldPatternProps]; ok {
		arr, ok := v.AsArray()
		if !ok {
			return nil, derr.TypeMismatchf(kw, "%s must be an array, got %s", fieldPatternProps, v.Type())
		}
		if len(arr) > 0 && placeholder == "" {
			return nil, derr.FailedToParsef(kw, "%s requires %s", fieldPatternProps, fieldPlaceholder)
		}
		for _, item := range arr {
			pat, err := parsePatternClause(item, placeholder)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, pat)
		}
	}

	otherwise := OtherwiseBool(true)
	if v, ok := fields[fieldOtherwise]; ok {
		if b, ok := v.AsBool(); ok {
			otherwise = OtherwiseBool(b)
		} else if sub, ok := v.AsDocument(); ok {
			if placeholder == "" {
				return nil, derr.FailedToParsef(kw, "%s expression requires %s", fieldOtherwise, fieldPlaceholder)
			}
			expr, err := parsePlaceholderExpr(sub, placeholder)
			if err != nil {
				return nil, err
			}
			otherwise = OtherwiseExpr(expr)
		} else {
			return nil, derr.TypeMismatchf(kw, "%s must be a boolean or an object, got %s", fieldOtherwise, v.Type())
		}
	}

	node, err := NewAllowedProperties(properties, patterns, otherwise, placeholder)
	if err != nil {
		return nil, derr.FailedToParsef(kw, "%v", err)
	}
	return node, nil
}

func parsePatternClause(v document.Value, placeholder string) (Pattern, error) {
	const kw = opAllowedProperties

	clause, ok := v.AsDocument()
	if !ok {
		return Pattern{}, derr.TypeMismatchf(kw, "%s entries must be objects, got %s", fieldPatternProps, v.Type())
	}
	var regex *Regex
	var expr *PlaceholderExpr
	for _, el := range clause {
		switch el.Name {
		case fieldRegex:
			src, opts, ok := el.Value.AsRegex()
			if !ok {
				return Pattern{}, derr.TypeMismatchf(kw, "%s must be a regex, got %s", fieldRegex, el.Value.Type())
			}
			re, err := CompileRegex(src, opts)
			if err != nil {
				return Pattern{}, derr.BadValuef(kw, "%v", err)
			}
			regex = re
		case fieldExpression:
			sub, ok := el.Value.AsDocument()
			if !ok {
				return Pattern{}, derr.TypeMismatchf(kw, "%s must be an object, got %s", fieldExpression, el.Value.Type())
			}
			e, err := parsePlaceholderExpr(sub, placeholder)
			if err != nil {
				return Pattern{}, err
			}
			expr = e
		default:
			return Pattern{}, derr.FailedToParsef(kw, "unknown field %q in %s entry", el.Name, fieldPatternProps)
		}
	}
	if regex == nil || expr == nil {
		return Pattern{}, derr.FailedToParsef(kw, "%s entries require %s and %s", fieldPatternProps, fieldRegex, fieldExpression)
	}
	return Pattern{Regex: regex, Expr: expr}, nil
}

func parsePlaceholderExpr(sub document.Document, placeholder string) (*PlaceholderExpr, error) {
	filter, err := Parse(sub)
	if err != nil {
		return nil, err
	}
	if !boundToPlaceholder(filter, placeholder) {
		return nil, derr.FailedToParsef(opAllowedProperties,
			"expression paths must use the placeholder %q", placeholder)
	}
	return NewPlaceholderExpr(placeholder, filter), nil
}
