// Package literal extracts literal byte sequences from parsed patterns for
// prefilter optimization.
//
// A pattern built only from unstarred literal atoms is itself a complete
// literal: matching the literal is matching the pattern, no backtracking
// needed. Patterns that merely begin or end with unstarred literal atoms
// still yield a required prefix or suffix, usable to reject candidate
// positions cheaply before running the full evaluator.
package literal

import "github.com/coregx/miniregex/syntax"

// Literal is a literal byte sequence extracted from a pattern.
//
// Complete indicates the literal covers the entire pattern: matching it is
// sufficient and no verification by the evaluator is needed. Incomplete
// literals are merely necessary prefixes of any match.
type Literal struct {
	// Bytes is the UTF-8 encoding of the literal runes.
	Bytes []byte

	// Complete reports whether the literal is the whole pattern.
	Complete bool
}

// Len returns the literal's length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// IsEmpty reports whether the literal carries no bytes.
func (l Literal) IsEmpty() bool {
	return len(l.Bytes) == 0
}

// ExtractPrefix returns the longest run of unstarred literal atoms at the
// start of the pattern. Every match of the pattern must begin with these
// exact runes. Complete is true when the run covers the whole pattern.
//
// Examples:
//
//	"abc"   → {"abc", Complete: true}
//	"ab*c"  → {"a", Complete: false}
//	".bc"   → {"", Complete: false}
//	""      → {"", Complete: true}
func ExtractPrefix(atoms []syntax.Atom) Literal {
	var b []byte
	for _, a := range atoms {
		if a.Wildcard || a.Starred {
			return Literal{Bytes: b, Complete: false}
		}
		b = append(b, string(a.Rune)...)
	}
	return Literal{Bytes: b, Complete: true}
}

// ExtractSuffix returns the runes every match must end with: the longest
// run of unstarred literal atoms at the end of the pattern.
//
// Examples:
//
//	"a*bc" → "bc"
//	"ab*"  → ""
//	"ab."  → ""
func ExtractSuffix(atoms []syntax.Atom) []byte {
	end := len(atoms)
	start := end
	for start > 0 && !atoms[start-1].Wildcard && !atoms[start-1].Starred {
		start--
	}
	var b []byte
	for _, a := range atoms[start:end] {
		b = append(b, string(a.Rune)...)
	}
	return b
}
