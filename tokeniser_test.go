package dirglob

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lit(r rune, off int) token { return token{kind: tokenLiteral, r: r, off: off} }

func TestTokeniser(t *testing.T) {
	tests := []struct {
		pattern string
		want    tokens
	}{
		{
			pattern: "ab/c",
			want: tokens{
				lit('a', 0),
				lit('b', 1),
				lit('/', 2),
				lit('c', 3),
			},
		},
		{
			pattern: `\ j\*`,
			want: tokens{
				lit(' ', 1),
				lit('j', 2),
				lit('*', 4),
			},
		},
		{
			pattern: "* or ** or ***?",
			want: tokens{
				{kind: tokenStar, off: 0},
				lit(' ', 1),
				lit('o', 2),
				lit('r', 3),
				lit(' ', 4),
				{kind: tokenDoubleStar, off: 5},
				lit(' ', 7),
				lit('o', 8),
				lit('r', 9),
				lit(' ', 10),
				{kind: tokenDoubleStar, off: 11},
				{kind: tokenQuestion, off: 14},
			},
		},
		{
			pattern: `[d*\]e]]`,
			want: tokens{
				{kind: tokenOpenClass, off: 0},
				lit('d', 1),
				lit('*', 2),
				lit(']', 4),
				lit('e', 5),
				{kind: tokenCloseClass, off: 6},
				lit(']', 7),
			},
		},
		{
			pattern: "[!]a-c-]",
			want: tokens{
				{kind: tokenOpenClass, neg: true, off: 0},
				lit(']', 2),
				lit('a', 3),
				{kind: tokenRange, off: 4},
				lit('c', 5),
				lit('-', 6),
				{kind: tokenCloseClass, off: 7},
			},
		},
		{
			pattern: "[^[:digit:]x]",
			want: tokens{
				{kind: tokenOpenClass, neg: true, off: 0},
				{kind: tokenNamedClass, name: "digit", off: 2},
				lit('x', 11),
				{kind: tokenCloseClass, off: 12},
			},
		},
		{
			pattern: "[-a]{b}",
			want: tokens{
				{kind: tokenOpenClass, off: 0},
				lit('-', 1),
				lit('a', 2),
				{kind: tokenCloseClass, off: 3},
				lit('{', 4),
				lit('b', 5),
				lit('}', 6),
			},
		},
	}

	cfg := defaultParseConfig
	for _, test := range tests {
		got, err := tokenise(test.pattern, &cfg)
		if err != nil {
			t.Errorf("tokenise(%q) error = %v", test.pattern, err)
			continue
		}
		if diff := cmp.Diff(got, test.want, cmp.AllowUnexported(token{})); diff != "" {
			t.Errorf("tokenise(%q) diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}

func TestTokeniser_Disabled(t *testing.T) {
	cfg := defaultParseConfig
	cfg.allowEscaping = false
	cfg.allowStar = false
	cfg.allowQuestion = false
	cfg.allowCharClass = false

	pattern := `\*?[a]`
	got, err := tokenise(pattern, &cfg)
	if err != nil {
		t.Fatalf("tokenise(%q) error = %v", pattern, err)
	}
	for i, tk := range got {
		if tk.kind != tokenLiteral {
			t.Errorf("tokenise(%q)[%d].kind = %d, want literal", pattern, i, tk.kind)
		}
	}
	if len(got) != 6 {
		t.Errorf("len(tokenise(%q)) = %d, want 6", pattern, len(got))
	}
}

func TestTokeniser_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		offset  int
		want    error
	}{
		{`abc\`, 3, ErrDanglingEscape},
		{`[abc\`, 4, ErrDanglingEscape},
		{"a/[bc", 2, ErrUnterminatedClass},
		{"[]", 0, ErrUnterminatedClass},
		{"[!]", 0, ErrUnterminatedClass},
	}

	cfg := defaultParseConfig
	for _, test := range tests {
		_, err := tokenise(test.pattern, &cfg)
		if !errors.Is(err, test.want) {
			t.Errorf("tokenise(%q) error = %v, want %v", test.pattern, err, test.want)
			continue
		}
		var ipe *InvalidPatternError
		if !errors.As(err, &ipe) {
			t.Errorf("tokenise(%q) error = %T, want *InvalidPatternError", test.pattern, err)
			continue
		}
		if ipe.Offset != test.offset {
			t.Errorf("tokenise(%q) error offset = %d, want %d", test.pattern, ipe.Offset, test.offset)
		}
	}
}
