// Package syntax parses the three-token pattern grammar used by miniregex.
//
// A pattern is a sequence of atoms. An atom is either a literal rune or the
// '.' wildcard, optionally modified by a trailing '*' meaning "zero or more
// of the preceding atom". There is no escaping: '.' is always the wildcard
// and '*' is always the repetition operator.
//
// Example:
//
//	atoms, err := syntax.Parse("a.c*")
//	// atoms = [literal 'a', wildcard, starred literal 'c']
package syntax

import (
	"errors"
	"fmt"
)

// Wildcard is the rune that matches any single input rune.
const Wildcard = '.'

// Star is the zero-or-more repetition operator.
const Star = '*'

// ErrDanglingStar indicates a '*' with no atom to modify: either the pattern
// begins with '*' or a '*' immediately follows another '*'.
var ErrDanglingStar = errors.New("star operator with no preceding atom")

// ParseError wraps pattern parse failures with position context.
//
// Pos is the rune offset of the offending token within Pattern.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing pattern %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Atom is a single pattern token after '*' attachment.
//
// The four shapes of the grammar map onto the two flags:
//
//	literal          {Rune: r}
//	wildcard         {Wildcard: true}
//	starred literal  {Rune: r, Starred: true}
//	starred wildcard {Wildcard: true, Starred: true}
//
// When Wildcard is true, Rune is zero and must be ignored.
type Atom struct {
	// Rune is the literal rune this atom matches. Meaningless for wildcards.
	Rune rune

	// Wildcard marks the atom as matching any single rune.
	Wildcard bool

	// Starred marks the atom as repeatable zero or more times.
	Starred bool
}

// Matches reports whether the atom accepts the rune r as one occurrence.
// The Starred flag does not participate: repetition is the matcher's job.
func (a Atom) Matches(r rune) bool {
	return a.Wildcard || a.Rune == r
}

// String returns a debug representation of the atom.
func (a Atom) String() string {
	var s string
	if a.Wildcard {
		s = "."
	} else {
		s = string(a.Rune)
	}
	if a.Starred {
		s += "*"
	}
	return s
}

// Parse converts a pattern string into its atom sequence.
//
// Parse is the only place malformed patterns are rejected: a dangling '*'
// (leading, or doubled as in "a**") yields a *ParseError wrapping
// ErrDanglingStar. Every well-formed pattern, including the empty one,
// parses successfully.
//
// The returned slice is freshly allocated and safe to retain.
func Parse(pattern string) ([]Atom, error) {
	var atoms []Atom
	pos := 0
	for _, r := range pattern {
		switch r {
		case Star:
			if len(atoms) == 0 || atoms[len(atoms)-1].Starred {
				return nil, &ParseError{Pattern: pattern, Pos: pos, Err: ErrDanglingStar}
			}
			atoms[len(atoms)-1].Starred = true
		case Wildcard:
			atoms = append(atoms, Atom{Wildcard: true})
		default:
			atoms = append(atoms, Atom{Rune: r})
		}
		pos++
	}
	return atoms, nil
}

// MinLen returns the minimum number of runes any text matching atoms must
// have: one per unstarred atom.
func MinLen(atoms []Atom) int {
	n := 0
	for _, a := range atoms {
		if !a.Starred {
			n++
		}
	}
	return n
}

// HasStar reports whether any atom carries the '*' modifier. Star-free
// patterns match only texts of exactly len(atoms) runes.
func HasStar(atoms []Atom) bool {
	for _, a := range atoms {
		if a.Starred {
			return true
		}
	}
	return false
}
