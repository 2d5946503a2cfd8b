package dirglob

import (
	"strings"
)

// Kind identifies what an Element of a segment matches.
type Kind int

// Element kinds.
const (
	Literal           Kind = iota // exact text
	Wildcard                      // *: any run of characters, possibly empty
	SingleChar                    // ?: exactly one character
	CharClass                     // [...]: one character from a set
	RecursiveWildcard             // **: zero or more whole path segments
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Wildcard:
		return "Wildcard"
	case SingleChar:
		return "SingleChar"
	case CharClass:
		return "CharClass"
	case RecursiveWildcard:
		return "RecursiveWildcard"
	}
	return "Kind(?)"
}

// Element is one piece of a segment.
type Element struct {
	Kind Kind

	// Text is the literal text (Literal only), byte for byte as written in
	// the pattern, even where it is not valid UTF-8.
	Text string

	// Ranges, Named and Negated describe a CharClass. Named holds POSIX class
	// names such as "alpha".
	Ranges  []RuneRange
	Named   []string
	Negated bool
}

// Segment is the compiled form of one path component of a pattern.
type Segment struct {
	Elems []Element

	fold    bool
	initial *state
}

// Recursive reports whether the segment is the recursive wildcard **.
func (s *Segment) Recursive() bool {
	return len(s.Elems) == 1 && s.Elems[0].Kind == RecursiveWildcard
}

// IsLiteral reports whether the segment is made of literal text only.
func (s *Segment) IsLiteral() bool {
	for _, e := range s.Elems {
		if e.Kind != Literal {
			return false
		}
	}
	return len(s.Elems) > 0
}

// Literal returns the literal text of the segment. It is only meaningful
// if IsLiteral is true.
func (s *Segment) Literal() string {
	var sb strings.Builder
	for _, e := range s.Elems {
		sb.WriteString(e.Text)
	}
	return sb.String()
}

// explicitDot reports whether the segment begins with a literal period, and
// so may match hidden names.
func (s *Segment) explicitDot() bool {
	return len(s.Elems) > 0 && s.Elems[0].Kind == Literal && strings.HasPrefix(s.Elems[0].Text, ".")
}

// Match reports whether a single path component matches the segment. Names
// beginning with a period only match if matchHidden is set or the segment
// itself starts with a literal period. Names containing / never match.
func (s *Segment) Match(name string, matchHidden bool) bool {
	if strings.ContainsRune(name, '/') {
		return false
	}
	if strings.HasPrefix(name, ".") && !matchHidden && !s.explicitDot() {
		return false
	}
	if s.Recursive() {
		return name != ""
	}
	return accepts(s.initial, name)
}

// String renders the segment back into pattern syntax.
func (s *Segment) String() string {
	var sb strings.Builder
	for _, e := range s.Elems {
		switch e.Kind {
		case Literal:
			for t := e.Text; len(t) > 0; {
				r, n := decodeChar(t)
				if strings.ContainsRune(`*?[]\`, r) {
					sb.WriteByte('\\')
				}
				sb.WriteString(t[:n])
				t = t[n:]
			}
		case Wildcard:
			sb.WriteByte('*')
		case SingleChar:
			sb.WriteByte('?')
		case CharClass:
			sb.WriteString(classExp{ranges: e.Ranges, named: e.Named, negated: e.Negated}.String())
		case RecursiveWildcard:
			sb.WriteString("**")
		}
	}
	return sb.String()
}

// build converts the elements into a small automaton, the same way
// patterns used to be converted as a whole: literals and single-rune
// expressions append a state, stars loop on the current state.
func (s *Segment) build() {
	start := &state{}
	end := start
	appendExp := func(e expression) {
		next := &state{}
		end.Out = append(end.Out, edge{
			Expr:  e,
			State: next,
		})
		end = next
	}

	for _, e := range s.Elems {
		switch e.Kind {
		case Literal:
			for t := e.Text; len(t) > 0; {
				r, n := decodeChar(t)
				t = t[n:]
				if s.fold {
					appendExp(foldExp(r))
				} else {
					appendExp(literalExp(r))
				}
			}

		case Wildcard:
			end.Out = append(end.Out, edge{
				Expr:  starExp{},
				State: end,
			})

		case SingleChar:
			appendExp(questionExp{})

		case CharClass:
			appendExp(classExp{
				ranges:  e.Ranges,
				named:   e.Named,
				negated: e.Negated,
				fold:    s.fold,
			})
		}
	}
	end.Accept = true
	s.initial = start
}
