// Command miniregex evaluates patterns from the command line and carries
// the engine's bundled self-test scenarios.
//
// With no -pattern flag the bundled scenarios run and the process exits 0
// only if every one passes:
//
//	miniregex
//
// With -pattern the given text is evaluated instead:
//
//	miniregex -pattern 'a*b' -text aab
//	miniregex -pattern 'a.c' -text 'abc xyz abc' -all
//
// Flags may also be supplied via environment variables (PATTERN, TEXT,
// ALL).
package main

import (
	"fmt"
	"os"

	"github.com/namsral/flag"

	miniregex "github.com/coregx/miniregex"
)

type matchCase struct {
	pattern string
	text    string
	want    bool
}

type findAllCase struct {
	pattern string
	text    string
	want    []miniregex.Span
}

// The bundled scenarios mirror the engine's documented behavior: literal
// equality, single-rune wildcard, greedy zero-or-more repetition,
// full-string semantics, and all-span scanning with overlaps.
var matchCases = []matchCase{
	{"abc", "abc", true},
	{"abc", "abd", false},
	{"abc", "ab", false},
	{"a.c", "axc", true},
	{"a.c", "ac", false},
	{"a*b", "b", true},
	{"a*b", "ab", true},
	{"a*b", "aab", true},
	{"a*b", "aac", false},
	{".*", "anything at all", true},
	{".*", "", true},
	{"", "", true},
	{"", "abc", false},
	{"a*b*c", "aabbc", true},
	{"a*b*c", "aabbcc", false},
	{"a*a*", "aaaa", true},
	{"café*", "caféé", true},
	{"café*", "cafécafé", false},
	{"caf.", "café", true},
}

var findAllCases = []findAllCase{
	{
		pattern: "a.c",
		text:    "abc xyz abc",
		want:    []miniregex.Span{{Start: 0, End: 3, Text: "abc"}, {Start: 8, End: 11, Text: "abc"}},
	},
	{
		pattern: "a*b",
		text:    "aab b ab",
		want: []miniregex.Span{
			{Start: 0, End: 3, Text: "aab"},
			{Start: 1, End: 3, Text: "ab"},
			{Start: 2, End: 3, Text: "b"},
			{Start: 4, End: 5, Text: "b"},
			{Start: 6, End: 8, Text: "ab"},
			{Start: 7, End: 8, Text: "b"},
		},
	},
	{
		pattern: "",
		text:    "abc",
		want: []miniregex.Span{
			{Start: 0, End: 0}, {Start: 1, End: 1}, {Start: 2, End: 2}, {Start: 3, End: 3},
		},
	},
}

func main() {
	var (
		pattern string
		text    string
		all     bool
	)
	flag.StringVar(&pattern, "pattern", "", "pattern to evaluate; omit to run the self-test suite")
	flag.StringVar(&text, "text", "", "text to match or scan")
	flag.BoolVar(&all, "all", false, "report every matching span instead of a full-match verdict")
	flag.Parse()

	passed := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { passed[f.Name] = true })

	if !passed["pattern"] {
		os.Exit(runSelfTest())
	}
	os.Exit(evaluate(pattern, text, all))
}

// evaluate runs one pattern against one text and prints the result.
func evaluate(pattern, text string, all bool) int {
	re, err := miniregex.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if !all {
		fmt.Println(re.Match(text))
		return 0
	}

	spans := re.FindAll(text)
	for _, s := range spans {
		fmt.Printf("%d\t%d\t%s\n", s.Start, s.End, s.Text)
	}
	fmt.Printf("%d span(s)\n", len(spans))
	return 0
}

// runSelfTest executes the bundled scenarios and reports pass/fail.
func runSelfTest() int {
	failures := 0
	total := 0

	for _, tc := range matchCases {
		total++
		got, err := miniregex.Match(tc.pattern, tc.text)
		if err != nil {
			failures++
			fmt.Printf("FAIL Match(%q, %q): %v\n", tc.pattern, tc.text, err)
			continue
		}
		if got != tc.want {
			failures++
			fmt.Printf("FAIL Match(%q, %q) = %v, want %v\n", tc.pattern, tc.text, got, tc.want)
		}
	}

	for _, tc := range findAllCases {
		total++
		got, err := miniregex.FindAll(tc.pattern, tc.text)
		if err != nil {
			failures++
			fmt.Printf("FAIL FindAll(%q, %q): %v\n", tc.pattern, tc.text, err)
			continue
		}
		if !spansEqual(got, tc.want) {
			failures++
			fmt.Printf("FAIL FindAll(%q, %q) = %v, want %v\n", tc.pattern, tc.text, got, tc.want)
		}
	}

	// Malformed patterns must be rejected, not silently accepted.
	for _, p := range []string{"*", "*a", "a**"} {
		total++
		if _, err := miniregex.Compile(p); err == nil {
			failures++
			fmt.Printf("FAIL Compile(%q): expected error, got none\n", p)
		}
	}

	if failures > 0 {
		fmt.Printf("miniregex self-test: %d/%d scenarios failed\n", failures, total)
		return 1
	}
	fmt.Printf("miniregex self-test: all %d scenarios passed\n", total)
	return 0
}

func spansEqual(a, b []miniregex.Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
