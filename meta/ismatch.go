package meta

import (
	"strings"
	"unicode/utf8"
)

// IsMatch reports whether the entire text matches the entire pattern.
//
// This is full-string matching: there is no implicit ".*" on either side,
// and no prefix or substring match is ever reported.
//
// Example:
//
//	engine, _ := meta.Compile("a*b")
//	engine.IsMatch("aab") // true
//	engine.IsMatch("aabx") // false
func (e *Engine) IsMatch(text string) bool {
	if e.strategy == UseExactLiteral {
		return text == string(e.prefix.Bytes)
	}

	// Cheap rejects before running the evaluator: every match needs at
	// least minLen runes (exactly len(atoms) for star-free patterns), and
	// must carry the mandatory literal prefix and suffix.
	n := utf8.RuneCountInString(text)
	if n < e.minLen {
		return false
	}
	if e.fixedLen && n != len(e.atoms) {
		return false
	}
	if !e.prefix.IsEmpty() && !strings.HasPrefix(text, string(e.prefix.Bytes)) {
		return false
	}
	if len(e.suffix) > 0 && !strings.HasSuffix(text, string(e.suffix)) {
		return false
	}

	state := e.statePool.get()
	defer e.statePool.put(state)
	return e.backtracker.IsMatch([]rune(text), state.bt)
}
