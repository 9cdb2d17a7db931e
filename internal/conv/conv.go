// Package conv provides byte-offset to rune-offset conversion helpers.
//
// The public miniregex API reports match spans as rune offsets, while the
// prefilter layer searches raw UTF-8 bytes. These helpers map between the
// two index spaces.
package conv

import "sort"

// RuneOffsets returns the byte offset of every rune boundary in s.
//
// The result has len == rune count + 1; the last entry is len(s). For
// s = "café" the result is [0, 1, 2, 3, 5].
func RuneOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}

// RuneIndex converts the byte offset b into a rune index using an offsets
// table produced by RuneOffsets. b must lie on a rune boundary; this holds
// for any offset at which a valid UTF-8 needle occurs inside valid UTF-8
// text, since UTF-8 is self-synchronizing.
func RuneIndex(offsets []int, b int) int {
	return sort.SearchInts(offsets, b)
}
