package dirglob

import "strings"

// Match reports if the slash-separated path matches the pattern, without
// touching the filesystem. A ** segment matches zero or more whole path
// components, except as the final segment where it needs at least one.
// Paths that should only match DirOnly patterns must end with a /.
func (p *Pattern) Match(path string, matchHidden bool) bool {
	if strings.HasPrefix(path, "/") != p.Absolute {
		return false
	}
	if p.DirOnly && !strings.HasSuffix(path, "/") {
		return false
	}

	var comps []string
	for _, c := range strings.Split(path, "/") {
		if c == "" || c == "." {
			continue
		}
		comps = append(comps, c)
	}
	return matchComponents(p.Segments, comps, matchHidden)
}

func matchComponents(segs []Segment, comps []string, matchHidden bool) bool {
	for len(segs) > 0 {
		s := &segs[0]
		if !s.Recursive() {
			if len(comps) == 0 || !s.Match(comps[0], matchHidden) {
				return false
			}
			segs, comps = segs[1:], comps[1:]
			continue
		}

		rest := segs[1:]
		if len(rest) == 0 {
			// Trailing ** needs at least one component, and all of them
			// must be visible to it.
			if len(comps) == 0 {
				return false
			}
			for _, c := range comps {
				if !s.Match(c, matchHidden) {
					return false
				}
			}
			return true
		}

		// Try ** matching zero, one, two... components.
		for k := 0; k <= len(comps); k++ {
			if matchComponents(rest, comps[k:], matchHidden) {
				return true
			}
			if k < len(comps) && !s.Match(comps[k], matchHidden) {
				return false
			}
		}
		return false
	}
	return len(comps) == 0
}
