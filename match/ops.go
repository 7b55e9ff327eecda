package match

// Operator names of the canonical serialized dialect.
const (
	opAlwaysTrue  = "$alwaysTrue"
	opAlwaysFalse = "$alwaysFalse"
	opAnd         = "$and"
	opOr          = "$or"
	opNot         = "$not"
	opXor         = "$_internalSchemaXor"
	opExists      = "$exists"
	opType        = "$type"
	opLT          = "$lt"
	opLTE         = "$lte"
	opGT          = "$gt"
	opGTE         = "$gte"
	opMinLength   = "$_internalSchemaMinLength"
	opMaxLength   = "$_internalSchemaMaxLength"
	opObjectMatch = "$_internalSchemaObjectMatch"

	opAllowedProperties = "$_internalSchemaAllowedProperties"
	fieldProperties     = "properties"
	fieldPatternProps   = "patternProperties"
	fieldOtherwise      = "otherwise"
	fieldPlaceholder    = "namePlaceholder"
	fieldRegex          = "regex"
	fieldExpression     = "expression"
)
