// Package backtrack implements the full-match evaluator for the miniregex
// three-token grammar.
//
// The evaluator is a recursive greedy backtracker: a starred atom first
// tries to consume one more occurrence, then falls back to the
// zero-occurrence branch. A visited bit vector over (atom index, text
// position) pairs prunes re-exploration, bounding the worst case at
// O(P*T) instead of exponential while preserving the greedy exploration
// order and the boolean result.
package backtrack

import "github.com/coregx/miniregex/syntax"

// defaultMaxVisitedSize is the default cap on the visited bit vector,
// in bits. 256KB = 2M bits.
const defaultMaxVisitedSize = 256 * 1024 * 8

// Backtracker evaluates whether an entire text matches an entire atom
// sequence. The Backtracker itself is immutable after New and safe for
// concurrent use; per-search mutable state lives in a State, which must
// not be shared between goroutines.
type Backtracker struct {
	atoms []syntax.Atom

	// numStates is len(atoms)+1: one state per atom plus the accepting
	// state at the end of the pattern.
	numStates int

	// maxVisitedSize limits visited bit vector memory (in bits). Inputs
	// past the limit are evaluated without pruning, which is still
	// correct but may take exponential time.
	maxVisitedSize int
}

// New creates a Backtracker for the given atom sequence. The slice is
// retained and must not be mutated by the caller.
func New(atoms []syntax.Atom) *Backtracker {
	return &Backtracker{
		atoms:          atoms,
		numStates:      len(atoms) + 1,
		maxVisitedSize: defaultMaxVisitedSize,
	}
}

// SetMaxVisitedSize overrides the visited bit vector cap, in bits.
// Values <= 0 disable pruning entirely.
func (b *Backtracker) SetMaxVisitedSize(bits int) {
	b.maxVisitedSize = bits
}

// CanHandle reports whether pruning is available for a text of textLen
// runes, i.e. whether the visited bit vector fits under the cap.
func (b *Backtracker) CanHandle(textLen int) bool {
	return b.numStates*(textLen+1) <= b.maxVisitedSize
}

// State holds the per-search visited bit vector. A zero State is ready to
// use; reusing one State across searches avoids reallocation.
type State struct {
	// visited is a bit vector over (atom index, text position) pairs.
	// Bit index: atom * (inputLen+1) + pos.
	visited []uint64

	inputLen int
}

// NewState creates an empty search state.
func NewState() *State {
	return &State{}
}

// reset prepares the state for a text of textLen runes against numStates
// pattern states, clearing all visited bits.
func (s *State) reset(numStates, textLen int) {
	s.inputLen = textLen
	words := (numStates*(textLen+1) + 63) / 64
	if cap(s.visited) >= words {
		s.visited = s.visited[:words]
		for i := range s.visited {
			s.visited[i] = 0
		}
	} else {
		s.visited = make([]uint64, words)
	}
}

// shouldVisit checks whether (atom, pos) was already explored and marks it.
// Returns false if the pair was seen before; every prior visit ended in
// failure (a success would have returned through the call stack), so a
// repeat visit cannot succeed either.
func (s *State) shouldVisit(atom, pos int) bool {
	idx := atom*(s.inputLen+1) + pos
	word := idx / 64
	bit := uint64(1) << (idx % 64)
	if s.visited[word]&bit != 0 {
		return false
	}
	s.visited[word] |= bit
	return true
}

// IsMatch reports whether text, in its entirety, matches the atom
// sequence. state may be nil, in which case (or when the text exceeds
// CanHandle) the search runs without pruning.
func (b *Backtracker) IsMatch(text []rune, state *State) bool {
	if state != nil && b.CanHandle(len(text)) {
		state.reset(b.numStates, len(text))
	} else {
		state = nil
	}
	return b.match(text, 0, 0, state)
}

// match evaluates atoms[ai:] against text[ti:].
func (b *Backtracker) match(text []rune, ai, ti int, state *State) bool {
	if state != nil && !state.shouldVisit(ai, ti) {
		return false
	}

	// Pattern exhausted: match only if the text is too.
	if ai == len(b.atoms) {
		return ti == len(text)
	}

	atom := b.atoms[ai]
	if atom.Starred {
		// Greedy: consume one more occurrence before trying the
		// zero-occurrence branch.
		if ti < len(text) && atom.Matches(text[ti]) {
			if b.match(text, ai, ti+1, state) {
				return true
			}
		}
		return b.match(text, ai+1, ti, state)
	}

	if ti >= len(text) {
		return false
	}
	if !atom.Matches(text[ti]) {
		return false
	}
	return b.match(text, ai+1, ti+1, state)
}
