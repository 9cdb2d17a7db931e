// Cross-checks miniregex verdicts against stdlib regexp.
//
// The three-token grammar is a strict subset of stdlib syntax, so every
// miniregex pattern can be translated to an equivalent anchored stdlib
// pattern. Any disagreement over the grid below indicates a bug here.
package miniregex

import (
	"regexp"
	"strings"
	"testing"
)

// toStdlib translates a miniregex pattern into an equivalent stdlib
// pattern: literals are quoted, '.' is made to match newlines via (?s),
// and the whole pattern is anchored on both ends to force full-string
// semantics.
func toStdlib(pattern string) string {
	var sb strings.Builder
	sb.WriteString(`\A(?s:`)
	for _, r := range pattern {
		switch r {
		case '.', '*':
			sb.WriteRune(r)
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString(`)\z`)
	return sb.String()
}

var compatPatterns = []string{
	"",
	"a",
	".",
	"a*",
	".*",
	"abc",
	"a.c",
	"a*b",
	"ab*c",
	"a*b*c",
	"a*b*c*",
	"a*a*",
	".*.*",
	".a.",
	"café",
	"caf.",
	"café*",
	"a b",
	"a.b*",
	"..*",
}

var compatTexts = []string{
	"",
	"a",
	"b",
	"ab",
	"ac",
	"abc",
	"abd",
	"abcd",
	"aab",
	"aac",
	"aaab",
	"aabbc",
	"aabbcc",
	"aaaa",
	"xyz",
	"xay",
	"a b",
	"a\nb",
	"anything at all",
	"caf",
	"cafe",
	"café",
	"caféé",
	"cafécafé",
	"日本",
}

// TestMatchAgainstStdlib tests full-match verdicts over the whole grid.
func TestMatchAgainstStdlib(t *testing.T) {
	for _, pattern := range compatPatterns {
		re := MustCompile(pattern)
		std := regexp.MustCompile(toStdlib(pattern))

		for _, text := range compatTexts {
			got := re.Match(text)
			want := std.MatchString(text)
			if got != want {
				t.Errorf("Match(%q, %q) = %v, stdlib %q says %v",
					pattern, text, got, std.String(), want)
			}
		}
	}
}

// TestFindAllAgainstStdlib tests span enumeration against a brute-force
// scan that asks stdlib about every candidate substring.
func TestFindAllAgainstStdlib(t *testing.T) {
	for _, pattern := range compatPatterns {
		re := MustCompile(pattern)
		std := regexp.MustCompile(toStdlib(pattern))

		for _, text := range compatTexts {
			runes := []rune(text)

			var want []Span
			for i := 0; i <= len(runes); i++ {
				for j := i; j <= len(runes); j++ {
					sub := string(runes[i:j])
					if std.MatchString(sub) {
						want = append(want, Span{Start: i, End: j, Text: sub})
					}
				}
			}

			got := re.FindAll(text)
			if len(got) != len(want) {
				t.Errorf("FindAll(%q, %q) returned %d spans, want %d",
					pattern, text, len(got), len(want))
				continue
			}
			for k := range got {
				if got[k] != want[k] {
					t.Errorf("FindAll(%q, %q)[%d] = %+v, want %+v",
						pattern, text, k, got[k], want[k])
				}
			}
		}
	}
}
