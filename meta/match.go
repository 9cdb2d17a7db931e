package meta

// Match represents one matching span of the scanned text.
//
// Start and End are rune offsets, not byte offsets: the engine matches
// whole Unicode code points, and a span covers text runes [Start, End).
//
// Example:
//
//	matches := engine.FindAll("café café")
//	m := matches[0]
//	println(m.Start(), m.End(), m.String())
type Match struct {
	start    int
	end      int
	haystack []rune
}

// NewMatch creates a Match over the given rune slice. The slice is stored
// by reference; callers must not mutate it for the lifetime of the Match.
func NewMatch(start, end int, haystack []rune) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start rune offset of the span.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end rune offset of the span.
func (m *Match) End() int {
	return m.end
}

// Len returns the span length in runes.
func (m *Match) Len() int {
	return m.end - m.start
}

// String returns the matched substring.
func (m *Match) String() string {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return ""
	}
	return string(m.haystack[m.start:m.end])
}

// IsEmpty reports whether the span has zero length. Empty spans occur for
// the empty pattern and for patterns whose every atom is starred.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}
