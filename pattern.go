package dirglob

import (
	"slices"
	"strings"
)

// Pattern is a compiled glob pattern: one Segment per path component.
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	// Segments holds one entry per path component. There is always at
	// least one.
	Segments []Segment

	// Absolute is set for patterns starting with the separator.
	Absolute bool

	// DirOnly is set for patterns ending with the separator; such patterns
	// only match directories.
	DirOnly bool

	source string
}

// Compile converts a pattern into a sequence of segment matchers.
func Compile(pattern string, opts ...ParseOption) (*Pattern, error) {
	cfg := defaultParseConfig
	for _, o := range opts {
		o(&cfg)
	}

	if pattern == "" {
		return nil, invalidPattern(pattern, 0, ErrEmptyPattern)
	}

	// tokenise classifies each rune as literal or punctuation
	tks, err := tokenise(pattern, &cfg)
	if err != nil {
		return nil, err
	}
	tks = preprocess(tks, &cfg)

	p := &Pattern{source: pattern}
	raw := splitSegments(tks)
	if len(tks) > 0 {
		p.Absolute = tks[0].isSeparator()
		p.DirOnly = tks[len(tks)-1].isSeparator()
	}

	for _, rs := range raw {
		seg, err := parseSegment(pattern, rs, &cfg)
		if err != nil {
			return nil, err
		}
		if seg == nil {
			// "." - the current directory.
			continue
		}
		if seg.Recursive() && len(p.Segments) > 0 && p.Segments[len(p.Segments)-1].Recursive() {
			// **/** is the same as **.
			continue
		}
		p.Segments = append(p.Segments, *seg)
	}

	if len(p.Segments) == 0 {
		return nil, invalidPattern(pattern, 0, ErrEmptyPattern)
	}
	return p, nil
}

// MustCompile calls Compile, and panics if unable to compile the pattern.
func MustCompile(pattern string, opts ...ParseOption) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source text of the pattern.
func (p *Pattern) String() string { return p.source }

// Canonical renders the compiled segments back into a pattern, which may
// differ from the source (redundant separators, . and repeated ** removed).
func (p *Pattern) Canonical() string {
	parts := make([]string, len(p.Segments))
	for i := range p.Segments {
		parts[i] = p.Segments[i].String()
	}
	s := strings.Join(parts, "/")
	if p.Absolute {
		s = "/" + s
	}
	if p.DirOnly {
		s += "/"
	}
	return s
}

// closure adds the index following every recursive wildcard, since **
// may match zero segments. The result is sorted and free of duplicates.
func (p *Pattern) closure(active []int) []int {
	out := make([]int, 0, len(active)+1)
	seen := make(map[int]bool, len(active)+1)
	q := append([]int(nil), active...)
	for len(q) > 0 {
		i := q[0]
		q = q[1:]
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
		if p.Segments[i].Recursive() && i+1 < len(p.Segments) {
			q = append(q, i+1)
		}
	}
	slices.Sort(out)
	return out
}
