package meta

import (
	"github.com/coregx/miniregex/backtrack"
	"github.com/coregx/miniregex/literal"
	"github.com/coregx/miniregex/prefilter"
	"github.com/coregx/miniregex/syntax"
)

// Engine coordinates matching and scanning for one compiled pattern.
//
// The Engine:
//  1. Parses the pattern into its atom sequence
//  2. Extracts the exact/prefix/suffix literals
//  3. Selects a strategy and builds the prefilter when one applies
//  4. Dispatches IsMatch and FindAll to the selected strategy
//
// Thread safety: everything reachable from an Engine is immutable after
// compilation except the per-search evaluator state, which is managed via
// sync.Pool. Concurrent IsMatch/FindAll calls on one Engine are safe.
type Engine struct {
	pattern string
	atoms   []syntax.Atom

	backtracker *backtrack.Backtracker
	pf          prefilter.Prefilter
	strategy    Strategy
	config      Config

	// prefix holds the bytes every match must start with; prefix.Complete
	// marks the whole-pattern case.
	prefix literal.Literal

	// suffix holds the bytes every match must end with.
	suffix []byte

	// minLen is the minimum rune count of any matching text.
	minLen int

	// fixedLen is true for star-free patterns, which match only texts of
	// exactly len(atoms) runes.
	fixedLen bool

	statePool *searchStatePool
}

// Pattern returns the source pattern text.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NumAtoms returns the number of atoms in the parsed pattern.
func (e *Engine) NumAtoms() int {
	return len(e.atoms)
}

// MinTextLen returns the minimum rune count a matching text can have.
func (e *Engine) MinTextLen() int {
	return e.minLen
}
