package match

import "github.com/reoring/docmatch/document"

// AlwaysTrue matches every document and every value.
type AlwaysTrue struct{}

func NewAlwaysTrue() *AlwaysTrue { return &AlwaysTrue{} }

func (*AlwaysTrue) Matches(document.Document) bool    { return true }
func (*AlwaysTrue) MatchesSingle(document.Value) bool { return true }
func (*AlwaysTrue) Clone() Matcher                    { return &AlwaysTrue{} }

func (*AlwaysTrue) Serialize() document.Document {
	return document.Document{{Name: opAlwaysTrue, Value: document.Int(1)}}
}

func (*AlwaysTrue) Equivalent(other Matcher) bool {
	_, ok := other.(*AlwaysTrue)
	return ok
}

// AlwaysFalse matches nothing.
type AlwaysFalse struct{}

func NewAlwaysFalse() *AlwaysFalse { return &AlwaysFalse{} }

func (*AlwaysFalse) Matches(document.Document) bool    { return false }
func (*AlwaysFalse) MatchesSingle(document.Value) bool { return false }
func (*AlwaysFalse) Clone() Matcher                    { return &AlwaysFalse{} }

func (*AlwaysFalse) Serialize() document.Document {
	return document.Document{{Name: opAlwaysFalse, Value: document.Int(1)}}
}

func (*AlwaysFalse) Equivalent(other Matcher) bool {
	_, ok := other.(*AlwaysFalse)
	return ok
}
