package dirglob

import "strings"

type tokenKind int

// Lexer token kinds
const (
	tokenLiteral    tokenKind = iota // anything not below, including /
	tokenStar                        // *
	tokenDoubleStar                  // ** (or longer runs of *)
	tokenQuestion                    // ?
	tokenOpenClass                   // [, [! or [^
	tokenCloseClass                  // ] closing a class
	tokenRange                       // - between two class members
	tokenNamedClass                  // [:name:] within a class
)

type token struct {
	kind tokenKind
	r    rune   // tokenLiteral only, see decodeChar
	name string // tokenNamedClass only
	neg  bool   // tokenOpenClass only
	off  int    // byte offset into the pattern
}

type tokens []token

// char is a rune of the pattern together with its byte offset.
type char struct {
	r   rune
	off int
}

func tokenise(p string, cfg *parseConfig) (tokens, error) {
	cs := make([]char, 0, len(p))
	for i := 0; i < len(p); {
		r, n := decodeChar(p[i:])
		cs = append(cs, char{r, i})
		i += n
	}

	// Most tokens are single runes, so preallocate len(cs).
	tks := make(tokens, 0, len(cs))
	literal := func(c char) {
		tks = append(tks, token{kind: tokenLiteral, r: c.r, off: c.off})
	}

	for i := 0; i < len(cs); i++ {
		c := cs[i]
		switch {
		case c.r == '\\' && cfg.allowEscaping:
			if i+1 == len(cs) {
				return nil, invalidPattern(p, c.off, ErrDanglingEscape)
			}
			// The \ escapes the next char - it is a literal.
			i++
			literal(cs[i])

		case c.r == '*' && cfg.allowStar:
			// Wishing upon a *?
			j := i
			for j+1 < len(cs) && cs[j+1].r == '*' {
				j++
			}
			kind := tokenStar
			if j > i {
				kind = tokenDoubleStar
			}
			tks = append(tks, token{kind: kind, off: c.off})
			i = j

		case c.r == '?' && cfg.allowQuestion:
			tks = append(tks, token{kind: tokenQuestion, off: c.off})

		case c.r == '[' && cfg.allowCharClass:
			end, err := tokeniseClass(p, cs, i, cfg, &tks)
			if err != nil {
				return nil, err
			}
			i = end

		default:
			literal(c)
		}
	}
	return tks, nil
}

// tokeniseClass tokenises the char class opened at cs[start], appending to
// tks. It returns the index of the closing ].
func tokeniseClass(p string, cs []char, start int, cfg *parseConfig, tks *tokens) (int, error) {
	open := token{kind: tokenOpenClass, off: cs[start].off}
	i := start + 1
	if i < len(cs) && (cs[i].r == '!' || cs[i].r == '^') {
		open.neg = true
		i++
	}
	out := tokens{open}
	members := 0
	literal := func(c char) {
		out = append(out, token{kind: tokenLiteral, r: c.r, off: c.off})
		members++
	}

	for ; i < len(cs); i++ {
		c := cs[i]
		switch {
		case c.r == '\\' && cfg.allowEscaping:
			if i+1 == len(cs) {
				return 0, invalidPattern(p, c.off, ErrDanglingEscape)
			}
			i++
			literal(cs[i])

		case c.r == ']' && members > 0:
			// End of class. A ] straight after [ or [! is a member instead.
			out = append(out, token{kind: tokenCloseClass, off: c.off})
			*tks = append(*tks, out...)
			return i, nil

		case c.r == '[' && i+1 < len(cs) && cs[i+1].r == ':':
			end := -1
			for j := i + 2; j+1 < len(cs); j++ {
				if cs[j].r == ':' && cs[j+1].r == ']' {
					end = j
					break
				}
			}
			if end < 0 {
				literal(c)
				break
			}
			var name strings.Builder
			for _, nc := range cs[i+2 : end] {
				name.WriteString(charString(nc.r))
			}
			out = append(out, token{kind: tokenNamedClass, name: name.String(), off: c.off})
			members++
			i = end + 1

		case c.r == '-' && members > 0 && i+1 < len(cs) && cs[i+1].r != ']':
			// A - first or last is a member, otherwise it makes a range.
			out = append(out, token{kind: tokenRange, off: c.off})

		default:
			literal(c)
		}
	}
	return 0, invalidPattern(p, open.off, ErrUnterminatedClass)
}

// next uses a pointer to a slice as a consuming reader.
func (r *tokens) next() (token, bool) {
	if r == nil || len(*r) == 0 {
		return token{}, false
	}
	t := (*r)[0]
	*r = (*r)[1:]
	return t, true
}

// peek returns the next token without consuming it.
func (r *tokens) peek() (token, bool) {
	if r == nil || len(*r) == 0 {
		return token{}, false
	}
	return (*r)[0], true
}

// isSeparator reports whether t is the path separator.
func (t token) isSeparator() bool {
	return t.kind == tokenLiteral && t.r == '/'
}
