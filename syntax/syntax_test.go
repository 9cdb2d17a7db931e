package syntax

import (
	"errors"
	"reflect"
	"testing"
)

// TestParse tests atom sequences for well-formed patterns.
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Atom
	}{
		{"empty", "", nil},
		{"single literal", "a", []Atom{{Rune: 'a'}}},
		{"literals", "abc", []Atom{{Rune: 'a'}, {Rune: 'b'}, {Rune: 'c'}}},
		{"wildcard", ".", []Atom{{Wildcard: true}}},
		{"mixed", "a.c", []Atom{{Rune: 'a'}, {Wildcard: true}, {Rune: 'c'}}},
		{"starred literal", "a*", []Atom{{Rune: 'a', Starred: true}}},
		{"starred wildcard", ".*", []Atom{{Wildcard: true, Starred: true}}},
		{"star attaches to previous atom", "a*b", []Atom{
			{Rune: 'a', Starred: true},
			{Rune: 'b'},
		}},
		{"multiple stars", "a*b*c", []Atom{
			{Rune: 'a', Starred: true},
			{Rune: 'b', Starred: true},
			{Rune: 'c'},
		}},
		{"non-ascii literal", "café*", []Atom{
			{Rune: 'c'}, {Rune: 'a'}, {Rune: 'f'},
			{Rune: 'é', Starred: true},
		}},
		{"whitespace literal", "a b", []Atom{{Rune: 'a'}, {Rune: ' '}, {Rune: 'b'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestParseDanglingStar tests rejection of '*' with no preceding atom.
func TestParseDanglingStar(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantPos int
	}{
		{"leading star", "*", 0},
		{"leading star with tail", "*a", 0},
		{"doubled star", "a**", 2},
		{"doubled star after wildcard", ".**b", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.pattern)
			}
			if !errors.Is(err, ErrDanglingStar) {
				t.Errorf("Parse(%q) error = %v, want ErrDanglingStar", tt.pattern, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.pattern, err)
			}
			if perr.Pos != tt.wantPos {
				t.Errorf("Parse(%q) error pos = %d, want %d", tt.pattern, perr.Pos, tt.wantPos)
			}
			if perr.Pattern != tt.pattern {
				t.Errorf("Parse(%q) error pattern = %q", tt.pattern, perr.Pattern)
			}
		})
	}
}

// TestAtomMatches tests single-rune acceptance.
func TestAtomMatches(t *testing.T) {
	tests := []struct {
		name string
		atom Atom
		r    rune
		want bool
	}{
		{"literal match", Atom{Rune: 'a'}, 'a', true},
		{"literal mismatch", Atom{Rune: 'a'}, 'b', false},
		{"wildcard matches anything", Atom{Wildcard: true}, 'x', true},
		{"wildcard matches space", Atom{Wildcard: true}, ' ', true},
		{"wildcard matches newline", Atom{Wildcard: true}, '\n', true},
		{"wildcard matches non-ascii", Atom{Wildcard: true}, 'é', true},
		{"starred flag is ignored", Atom{Rune: 'a', Starred: true}, 'a', true},
		{"non-ascii literal", Atom{Rune: 'é'}, 'é', true},
		{"non-ascii literal mismatch", Atom{Rune: 'é'}, 'e', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.atom.Matches(tt.r); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestMinLen(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"", 0},
		{"abc", 3},
		{"a*b", 1},
		{"a*b*c*", 0},
		{".*x.*", 1},
	}

	for _, tt := range tests {
		atoms, err := Parse(tt.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
		}
		if got := MinLen(atoms); got != tt.want {
			t.Errorf("MinLen(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}
}

func TestHasStar(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"", false},
		{"abc", false},
		{"a.c", false},
		{"a*", true},
		{"ab*c", true},
	}

	for _, tt := range tests {
		atoms, err := Parse(tt.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
		}
		if got := HasStar(atoms); got != tt.want {
			t.Errorf("HasStar(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestAtomString(t *testing.T) {
	tests := []struct {
		atom Atom
		want string
	}{
		{Atom{Rune: 'a'}, "a"},
		{Atom{Rune: 'a', Starred: true}, "a*"},
		{Atom{Wildcard: true}, "."},
		{Atom{Wildcard: true, Starred: true}, ".*"},
	}

	for _, tt := range tests {
		if got := tt.atom.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
