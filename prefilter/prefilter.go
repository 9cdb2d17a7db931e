// Package prefilter provides fast candidate-position finding for pattern
// scanning using literals extracted from the pattern.
//
// A prefilter scans the raw UTF-8 bytes of the text for a literal every
// match must start with. Positions the prefilter skips cannot match, so the
// scanner only runs the backtracking evaluator at reported candidates. When
// the literal covers the whole pattern the prefilter is complete: a
// candidate is a match with no verification needed.
package prefilter

import (
	"errors"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/miniregex/literal"
)

// ErrEmptyLiteral indicates a prefilter was requested for a literal with no
// bytes; such a literal rejects nothing and a prefilter would be pure
// overhead.
var ErrEmptyLiteral = errors.New("prefilter literal is empty")

// Prefilter finds candidate match start positions in a haystack.
type Prefilter interface {
	// Find returns the byte index of the first candidate at or after
	// start, or -1 if none exists. Reported indices are strictly
	// increasing across successive calls with start = previous+1, so a
	// scanner visiting candidates this way sees them in text order.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is a whole-pattern match by
	// itself, with no evaluator verification required.
	IsComplete() bool

	// LiteralLen returns the byte length of the underlying literal.
	LiteralLen() int
}

// AhoCorasick is a Prefilter backed by an Aho-Corasick automaton.
type AhoCorasick struct {
	auto     *ahocorasick.Automaton
	litLen   int
	complete bool
}

// NewAhoCorasick builds a prefilter for the given extracted literal.
// Returns ErrEmptyLiteral when the literal has no bytes.
func NewAhoCorasick(lit literal.Literal) (*AhoCorasick, error) {
	if lit.IsEmpty() {
		return nil, ErrEmptyLiteral
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(lit.Bytes)
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &AhoCorasick{
		auto:     auto,
		litLen:   len(lit.Bytes),
		complete: lit.Complete,
	}, nil
}

// Find returns the byte index of the next literal occurrence at or after
// start, or -1. Overlapping occurrences are all reported when the caller
// advances by one byte between calls.
func (p *AhoCorasick) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete reports whether the literal covers the entire pattern.
func (p *AhoCorasick) IsComplete() bool {
	return p.complete
}

// LiteralLen returns the literal's byte length.
func (p *AhoCorasick) LiteralLen() int {
	return p.litLen
}
