package docmatch

// Package docmatch compiles a declarative, JSON-Schema-like dialect into an
// immutable tree of match nodes evaluated against ordered documents.
//
// - Compile / CompileJSON / CompileYAML turn a schema into a match.Matcher
// - match.Parse reads the canonical serialized form of a tree back in
// - A stable error model via errors.Error (kind, keyword, message)
// - FilterJSON evaluates one compiled tree over many wire documents
//
// Design policy:
// - Keep the public compile surface in the root package.
// - Place the document model under document/, the match-node language under
//   match/, typed errors under errors/, and the CLI under cmd/docmatch.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	tree, err := docmatch.CompileJSON(schemaBytes)
//	doc, err := document.DecodeJSON(docBytes)
//	ok := tree.Matches(doc)
