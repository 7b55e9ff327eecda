// Package errors defines the typed error values surfaced by schema
// compilation and match-language parsing.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a compilation error.
type Kind string

const (
	// KindTypeMismatch reports a keyword element of the wrong tagged type.
	KindTypeMismatch Kind = "type_mismatch"
	// KindBadValue reports a well-typed but out-of-range element, such as an
	// empty logical array or a negative length.
	KindBadValue Kind = "bad_value"
	// KindFailedToParse reports a structural problem: unknown or duplicate
	// keyword, missing companion keyword, or a malformed element shape.
	KindFailedToParse Kind = "failed_to_parse"
)

// Error is a single compilation failure. Compilation stops at the first one.
type Error struct {
	Kind    Kind
	Keyword string // offending keyword or operator name
	Message string
}

func (e *Error) Error() string {
	if e.Keyword == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: keyword '%s': %s", e.Kind, e.Keyword, e.Message)
}

// TypeMismatchf builds a KindTypeMismatch error.
func TypeMismatchf(keyword, format string, args ...any) *Error {
	return &Error{Kind: KindTypeMismatch, Keyword: keyword, Message: fmt.Sprintf(format, args...)}
}

// BadValuef builds a KindBadValue error.
func BadValuef(keyword, format string, args ...any) *Error {
	return &Error{Kind: KindBadValue, Keyword: keyword, Message: fmt.Sprintf(format, args...)}
}

// FailedToParsef builds a KindFailedToParse error.
func FailedToParsef(keyword, format string, args ...any) *Error {
	return &Error{Kind: KindFailedToParse, Keyword: keyword, Message: fmt.Sprintf(format, args...)}
}

// As extracts an *Error from err using errors.As.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
