package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reoring/docmatch/document"
)

// Regex pairs a compiled pattern with the source it was compiled from.
// Equivalence and serialization work on the source; only matching uses the
// compiled form.
type Regex struct {
	Source string
	Flags  string
	re     *regexp.Regexp
}

// CompileRegex compiles a pattern with optional flags drawn from "ims".
// Matching is partial: the pattern anchors itself if it needs to.
func CompileRegex(source, flags string) (*Regex, error) {
	expanded := source
	if flags != "" {
		for _, f := range flags {
			if !strings.ContainsRune("ims", f) {
				return nil, fmt.Errorf("match: unsupported regex flag %q", f)
			}
		}
		expanded = "(?" + flags + ")" + source
	}
	re, err := regexp.Compile(expanded)
	if err != nil {
		return nil, fmt.Errorf("match: bad regex %q: %w", source, err)
	}
	return &Regex{Source: source, Flags: flags, re: re}, nil
}

// MatchString reports a partial match against s.
func (r *Regex) MatchString(s string) bool {
	return r.re.MatchString(s)
}

// Clone recompiles from the serialized form.
func (r *Regex) Clone() *Regex {
	c, err := CompileRegex(r.Source, r.Flags)
	if err != nil {
		// The source compiled once already.
		panic(err)
	}
	return c
}

// Value renders the regex as a document value.
func (r *Regex) Value() document.Value {
	return document.Regex(r.Source, r.Flags)
}
