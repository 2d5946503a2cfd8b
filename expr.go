package dirglob

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rawByte offsets bytes that are not valid UTF-8. Such bytes are decoded one
// at a time into chars above unicode.MaxRune, so that literals still compare
// byte for byte and never collide with U+FFFD.
const rawByte = unicode.MaxRune + 1

// decodeChar returns the first char of s and its width in bytes.
func decodeChar(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return rawByte + rune(s[0]), 1
	}
	return r, n
}

// charString is the inverse of decodeChar.
func charString(r rune) string {
	if r >= rawByte {
		return string([]byte{byte(r - rawByte)})
	}
	return string(r)
}

type expression interface {
	// match reports if the rune matches the expression.
	match(rune) bool
}

// Expressions
type (
	// Matches exactly this literal
	literalExp rune

	// Matches this literal under simple case folding
	foldExp rune

	// * matches like [^/]*, as a self-loop
	starExp struct{}

	// ? matches like [^/]
	questionExp struct{}

	// [...] matches one rune from a set, never /
	classExp struct {
		ranges  []RuneRange
		named   []string
		negated bool
		fold    bool
	}
)

func (e literalExp) match(r rune) bool { return rune(e) == r }
func (e foldExp) match(r rune) bool    { return equalFold(rune(e), r) }
func (starExp) match(r rune) bool      { return r != '/' }
func (questionExp) match(r rune) bool  { return r != '/' }

func (e classExp) match(r rune) bool {
	if r == '/' {
		return false
	}
	in := e.contains(r)
	if !in && e.fold {
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if e.contains(f) {
				in = true
				break
			}
		}
	}
	return in != e.negated
}

func (e classExp) contains(r rune) bool {
	for _, rr := range e.ranges {
		if rr.Lo <= r && r <= rr.Hi {
			return true
		}
	}
	for _, n := range e.named {
		if namedClasses[n](r) {
			return true
		}
	}
	return false
}

func (e literalExp) String() string { return charString(rune(e)) }
func (e foldExp) String() string    { return "~" + charString(rune(e)) }
func (starExp) String() string      { return "*" }
func (questionExp) String() string  { return "?" }

func (e classExp) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if e.negated {
		sb.WriteByte('!')
	}
	for _, rr := range e.ranges {
		sb.WriteString(rr.String())
	}
	for _, n := range e.named {
		fmt.Fprintf(&sb, "[:%s:]", n)
	}
	sb.WriteByte(']')
	return sb.String()
}

// equalFold reports whether a and b are equal under simple case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
