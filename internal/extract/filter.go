package extract

import "strings"

// minNameLength rejects one-character captures; no PHP builtin is that short.
const minNameLength = 2

// phpKeywords are PHP reserved words and control constructs. The function
// and method patterns match anything shaped like a declaration, which
// includes control flow that merely looks like one, so these must be
// filtered out of the candidate names.
var phpKeywords = map[string]struct{}{
	"if": {}, "else": {}, "elseif": {}, "while": {}, "do": {}, "for": {}, "foreach": {},
	"switch": {}, "case": {}, "default": {}, "break": {}, "continue": {}, "return": {},
	"try": {}, "catch": {}, "finally": {}, "throw": {}, "class": {}, "interface": {},
	"trait": {}, "extends": {}, "implements": {}, "public": {}, "protected": {},
	"private": {}, "static": {}, "abstract": {}, "final": {}, "const": {}, "function": {},
	"new": {}, "clone": {}, "instanceof": {}, "use": {}, "namespace": {}, "echo": {},
	"print": {}, "die": {}, "exit": {}, "include": {}, "include_once": {}, "require": {},
	"require_once": {}, "global": {}, "var": {}, "list": {}, "array": {}, "callable": {},
	"self": {}, "parent": {}, "true": {}, "false": {}, "null": {}, "and": {}, "or": {},
	"xor": {}, "as": {}, "yield": {}, "match": {}, "fn": {}, "readonly": {}, "enum": {},
}

// NameFilter validates candidate function and method names.
type NameFilter struct {
	reserved map[string]struct{}
}

// NewNameFilter creates a filter backed by the PHP reserved-word set.
func NewNameFilter() *NameFilter {
	return &NameFilter{reserved: phpKeywords}
}

// Accept reports whether name is a plausible function or method name.
// Reserved words are rejected case-insensitively.
func (f *NameFilter) Accept(name string) bool {
	if len(name) < minNameLength {
		return false
	}
	_, reserved := f.reserved[strings.ToLower(name)]
	return !reserved
}
