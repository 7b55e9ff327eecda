package docmatch

import "github.com/reoring/docmatch/match"

// makeRestriction lifts a type-anchored match node into the schema's
// permissive semantics: a field of a different type passes the restriction
// instead of failing it.
//
//	Or( Not(Type(path, restrictionType)), restrictionExpr )
//
// When the schema's stated type is incompatible with the restriction's type,
// the restriction can never apply and collapses to AlwaysTrue.
func makeRestriction(restrictionType match.TypeSpec, path string, restrictionExpr match.Matcher, statedType *match.TypeOf) match.Matcher {
	if statedType != nil {
		bothNumeric := restrictionType.AllNumbers &&
			(statedType.Spec.AllNumbers || statedType.Spec.Tag.Numeric())
		tagsMatch := !restrictionType.AllNumbers && !statedType.Spec.AllNumbers &&
			restrictionType.Tag == statedType.Spec.Tag

		if !bothNumeric && !tagsMatch {
			return match.NewAlwaysTrue()
		}
	}

	return match.NewOr(
		match.NewNot(match.NewTypeOf(path, restrictionType)),
		restrictionExpr,
	)
}

// makeTypeRestriction encodes the stated type of a nested schema: the field
// is either absent or carries the stated type.
//
//	Or( Not(Exists(path)), Type(path, spec) )
func makeTypeRestriction(typeExpr *match.TypeOf) match.Matcher {
	if typeExpr.Path == "" {
		panic("docmatch: type restriction requires a non-empty path")
	}
	return match.NewOr(
		match.NewNot(match.NewExists(typeExpr.Path)),
		typeExpr,
	)
}
