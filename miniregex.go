// Package miniregex provides a small pattern-matching engine over a
// three-token grammar: literal runes, the '.' wildcard (exactly one
// arbitrary rune), and the '*' operator (zero or more of the preceding
// atom).
//
// Matching is always full-string: a text matches only when the whole
// pattern accounts for the whole text. Substring search is provided by
// FindAll, which enumerates every matching span of the text, overlapping
// and nested spans included.
//
// Basic usage:
//
//	// Compile a pattern
//	re, err := miniregex.Compile("a*b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Full-string match
//	re.Match("aab") // true
//	re.Match("aabx") // false
//
//	// Enumerate all matching spans
//	for _, s := range re.FindAll("aab b ab") {
//	    fmt.Println(s.Start, s.End, s.Text)
//	}
//
// All positions are rune offsets, not byte offsets: the engine matches
// whole Unicode code points, so "caf." matches "café".
//
// Grammar notes:
//   - '*' always modifies the immediately preceding atom; a '*' with no
//     preceding atom is a compile error (syntax.ErrDanglingStar).
//   - There is no escaping, and no '+', '?', character classes, anchors,
//     alternation or capture groups.
//
// Worst-case matching time is bounded at O(P*T) per candidate by the
// evaluator's visited-set pruning; scanning checks O(L²) candidate spans.
package miniregex

import (
	"github.com/coregx/miniregex/meta"
)

// Regex represents a compiled pattern.
//
// A Regex is immutable and safe to use concurrently from multiple
// goroutines.
//
// Example:
//
//	re := miniregex.MustCompile("a.c")
//	if re.Match("abc") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Span is one matching substring of a scanned text.
//
// Start and End are rune offsets with Text == text[Start:End] in rune
// terms; the interval is half-open.
type Span struct {
	Start int
	End   int
	Text  string
}

// Compile compiles a pattern.
//
// Returns a *syntax.ParseError (wrapping syntax.ErrDanglingStar) if the
// pattern has a '*' with no preceding atom. Every other string, including
// the empty one, is a valid pattern.
//
// Example:
//
//	re, err := miniregex.Compile("ab*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var wordRe = miniregex.MustCompile("a*b")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("miniregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := miniregex.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := miniregex.CompileWithConfig("ab*c", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass it to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match reports whether the entire text matches the entire pattern.
//
// There is no partial or prefix matching: Match("a.c", "abcd") is false.
//
// Example:
//
//	re := miniregex.MustCompile(".*")
//	re.Match("anything at all") // true
//	re.Match("")                // true
func (r *Regex) Match(text string) bool {
	return r.engine.IsMatch(text)
}

// FindAll returns every span of text that fully matches the pattern,
// ordered by increasing start offset, then increasing end offset.
//
// Overlapping and nested spans are all reported. The result is nil when
// nothing matches.
//
// Example:
//
//	re := miniregex.MustCompile("a.c")
//	spans := re.FindAll("abc xyz abc")
//	// spans = [{0 3 abc} {8 11 abc}]
func (r *Regex) FindAll(text string) []Span {
	matches := r.engine.FindAll(text)
	if matches == nil {
		return nil
	}

	spans := make([]Span, len(matches))
	for i, m := range matches {
		spans[i] = Span{Start: m.Start(), End: m.End(), Text: m.String()}
	}
	return spans
}

// FindAllString returns the matched substrings of every span, in span
// order.
//
// Example:
//
//	re := miniregex.MustCompile("a*b")
//	re.FindAllString("aab b ab")
//	// ["aab", "ab", "b", "b", "ab", "b"]
func (r *Regex) FindAllString(text string) []string {
	matches := r.engine.FindAll(text)
	if matches == nil {
		return nil
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.String()
	}
	return result
}

// FindAllIndex returns the [start, end) rune-offset pair of every span, in
// span order.
//
// Example:
//
//	re := miniregex.MustCompile("a.c")
//	re.FindAllIndex("abc xyz abc")
//	// [[0 3] [8 11]]
func (r *Regex) FindAllIndex(text string) [][]int {
	matches := r.engine.FindAll(text)
	if matches == nil {
		return nil
	}

	indices := make([][]int, len(matches))
	for i, m := range matches {
		indices[i] = []int{m.Start(), m.End()}
	}
	return indices
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Match is a convenience wrapper that compiles pattern and reports whether
// the entire text matches it.
//
// For repeated use of one pattern, compile once and call Regex.Match.
//
// Example:
//
//	ok, err := miniregex.Match("a*b", "aab") // true, nil
func Match(pattern, text string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(text), nil
}

// FindAll is a convenience wrapper that compiles pattern and returns every
// matching span of text.
//
// Example:
//
//	spans, err := miniregex.FindAll("a.c", "abc xyz abc")
//	// [{0 3 abc} {8 11 abc}], nil
func FindAll(pattern, text string) ([]Span, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAll(text), nil
}
