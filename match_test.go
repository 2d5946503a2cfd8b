package dirglob

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, path string
		want          bool
	}{
		{"a/b", "a/b", true},
		{"a/b", "a/b/", true},
		{"a/b", "./a//b", true},
		{"a/./b", "a/b", true},
		{"a*b", "acccccb", true},
		{"a*b", "abc", false},
		{"a*b", "a/b", false},
		{"a/[bc]/d", "a/b/d", true},
		{"a/[bc]/d", "a/x/d", false},
		{"a/[bc]/d", "b/c/d", false},
		{"a/[^bc]/d", "a/b/d", false},
		{"a/[^bc]/d", "a/c/d", false},
		{"a/[^bc]/d", "a/x/d", true},
		{"a/[!bc]/d", "a/y/d", true},
		{"a?b", "acb", true},
		{"a?b", "accb", false},
		{"a**b", "acb", true},
		{"a**b", "acccb", true},
		{"a**b", "a/b", false},
		{"a/**/b", "a/b", true},
		{"a/**/b", "a/c/b", true},
		{"a/**/b", "a/b/c", false},
		{"a/**/b", "a/c/d/e/f/b", true},
		{"a/**/b/**/c", "a/x/b/y/z/c", true},
		{"a/**/b/**/c", "a/b/c", true},
		{"a/**/b/**/c", "a/c", false},
		{"*", "a", true},
		{"*", "abcde", true},
		{"*", "a/b", false},
		{"**", "a", true},
		{"**", "a/b/c", true},
		{"**", "", false},
		{"a/**", "a", false},
		{"a/**", "a/b", true},
		{"a/**", "a/b/c", true},
		{"*/", "a/", true},
		{"*/", "a", false},
		{"/a/*", "/a/b", true},
		{"/a/*", "a/b", false},
		{"a/*", "/a/b", false},

		// Hidden names.
		{"*", ".git", false},
		{"**/*.go", "a/.git/x.go", false},
		{"**/*.go", ".x.go", false},
		{"**/.git/*", "a/.git/HEAD", true},
		{"a/.*", "a/.x", true},
		{"a/**", "a/.x/y", false},
	}

	for _, test := range tests {
		p, err := Compile(test.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", test.pattern, err)
		}

		if got, want := p.Match(test.path, false), test.want; got != want {
			t.Errorf("(%q).Match(%q) = %v, want %v", test.pattern, test.path, got, want)
		}
	}
}

func TestMatch_Hidden(t *testing.T) {
	p := MustCompile("**/*.go")
	if !p.Match("a/.git/x.go", true) {
		t.Errorf("(%q).Match(%q, true) = false, want true", p, "a/.git/x.go")
	}
}

// Whole-path matching should agree with doublestar, except that a trailing
// ** here needs at least one component (so those are left out).
func TestMatch_AgreesWithDoublestar(t *testing.T) {
	patterns := []string{
		"a/**/b",
		"**/*.go",
		"*/*",
		"src/**/[a-m]*.c",
		"**/x/**/y",
		"a?/b*",
		"cmd/*/main.go",
		"*/[!a-c]*/*",
	}
	paths := []string{
		"a/b",
		"a/x/b",
		"a/b/c",
		"main.go",
		"cmd/main.go",
		"cmd/x/main.go",
		"src/lib/foo.c",
		"src/zed.c",
		"src/foo.c",
		"x/y",
		"x/1/y",
		"q/x/y",
		"a1/bcd",
		"a12/b",
	}

	for _, pattern := range patterns {
		p, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", pattern, err)
		}
		for _, path := range paths {
			want, err := doublestar.Match(pattern, path)
			if err != nil {
				t.Fatalf("doublestar.Match(%q, %q) error = %v", pattern, path, err)
			}
			if got := p.Match(path, true); got != want {
				t.Errorf("(%q).Match(%q) = %t, doublestar says %t", pattern, path, got, want)
			}
		}
	}
}
