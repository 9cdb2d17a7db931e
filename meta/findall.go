package meta

import (
	"github.com/coregx/miniregex/internal/conv"
)

// FindAll returns every substring span of text that fully matches the
// pattern, ordered by increasing start offset, then increasing end offset.
//
// Overlapping and nested spans are all reported; nothing is suppressed or
// merged. Offsets are rune offsets. The result is nil when no span
// matches.
//
// Example:
//
//	engine, _ := meta.Compile("a.c")
//	for _, m := range engine.FindAll("abc xyz abc") {
//	    println(m.Start(), m.End(), m.String())
//	}
//	// 0 3 abc
//	// 8 11 abc
func (e *Engine) FindAll(text string) []*Match {
	runes := []rune(text)

	if e.pf != nil {
		if e.pf.IsComplete() {
			return e.findAllExact(text, runes)
		}
		return e.findAllPrefiltered(text, runes)
	}
	return e.findAllScan(runes)
}

// findAllScan is the reference scan: every start offset, every end offset,
// one full-match check each.
func (e *Engine) findAllScan(runes []rune) []*Match {
	state := e.statePool.get()
	defer e.statePool.put(state)

	var matches []*Match
	for i := 0; i <= len(runes); i++ {
		matches = e.appendMatchesAt(matches, runes, i, state)
	}
	return matches
}

// findAllExact enumerates occurrences of the whole-pattern literal. Each
// candidate the prefilter reports is a match by itself.
func (e *Engine) findAllExact(text string, runes []rune) []*Match {
	haystack := []byte(text)
	offsets := conv.RuneOffsets(text)

	var matches []*Match
	for at := e.pf.Find(haystack, 0); at != -1; at = e.pf.Find(haystack, at+1) {
		start := conv.RuneIndex(offsets, at)
		end := conv.RuneIndex(offsets, at+e.pf.LiteralLen())
		matches = append(matches, NewMatch(start, end, runes))
	}
	return matches
}

// findAllPrefiltered runs the evaluator only at start offsets where the
// mandatory literal prefix occurs. Candidates arrive in increasing byte
// order, so span ordering matches the reference scan.
func (e *Engine) findAllPrefiltered(text string, runes []rune) []*Match {
	haystack := []byte(text)
	offsets := conv.RuneOffsets(text)

	state := e.statePool.get()
	defer e.statePool.put(state)

	var matches []*Match
	for at := e.pf.Find(haystack, 0); at != -1; at = e.pf.Find(haystack, at+1) {
		i := conv.RuneIndex(offsets, at)
		matches = e.appendMatchesAt(matches, runes, i, state)
	}
	return matches
}

// appendMatchesAt appends every span starting at rune offset i, in
// increasing end order. End offsets below i+minLen cannot match and are
// skipped; star-free patterns have exactly one candidate end.
func (e *Engine) appendMatchesAt(matches []*Match, runes []rune, i int, state *searchState) []*Match {
	if e.fixedLen {
		j := i + len(e.atoms)
		if j <= len(runes) && e.backtracker.IsMatch(runes[i:j], state.bt) {
			matches = append(matches, NewMatch(i, j, runes))
		}
		return matches
	}

	for j := i + e.minLen; j <= len(runes); j++ {
		if e.backtracker.IsMatch(runes[i:j], state.bt) {
			matches = append(matches, NewMatch(i, j, runes))
		}
	}
	return matches
}
