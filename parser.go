package dirglob

import (
	"github.com/pkg/errors"
)

// splitSegments splits the token sequence at each separator outside a char
// class. Empty segments (leading, trailing or doubled separators) are
// dropped.
func splitSegments(tks tokens) []tokens {
	var out []tokens
	var cur tokens
	insideCC := false
	for _, t := range tks {
		switch {
		case t.kind == tokenOpenClass:
			insideCC = true
		case t.kind == tokenCloseClass:
			insideCC = false
		case t.isSeparator() && !insideCC:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// parseSegment converts the tokens of one path component into a Segment.
// It returns nil (and no error) for the segment ".".
func parseSegment(pattern string, tks tokens, cfg *parseConfig) (*Segment, error) {
	if len(tks) == 1 && tks[0].kind == tokenLiteral && tks[0].r == '.' {
		return nil, nil
	}

	seg := &Segment{fold: cfg.caseInsensitive}
	if len(tks) == 1 && tks[0].kind == tokenDoubleStar && cfg.allowDoubleStar {
		seg.Elems = []Element{{Kind: RecursiveWildcard}}
		return seg, nil
	}

	appendLiteral := func(r rune) {
		if n := len(seg.Elems); n > 0 && seg.Elems[n-1].Kind == Literal {
			seg.Elems[n-1].Text += charString(r)
			return
		}
		seg.Elems = append(seg.Elems, Element{Kind: Literal, Text: charString(r)})
	}

	for {
		t, ok := tks.next()
		if !ok {
			break
		}

		switch t.kind {
		case tokenLiteral:
			appendLiteral(t.r)

		case tokenStar, tokenDoubleStar:
			// ** within a segment is no different to *, and neither is **.
			if n := len(seg.Elems); n > 0 && seg.Elems[n-1].Kind == Wildcard {
				break
			}
			seg.Elems = append(seg.Elems, Element{Kind: Wildcard})

		case tokenQuestion:
			seg.Elems = append(seg.Elems, Element{Kind: SingleChar})

		case tokenOpenClass:
			e, err := parseCharClass(pattern, &tks, t)
			if err != nil {
				return nil, err
			}
			seg.Elems = append(seg.Elems, e)

		default:
			// The tokeniser only produces the remaining kinds inside a class.
			return nil, invalidPattern(pattern, t.off, errors.Errorf("unexpected token kind %d", t.kind))
		}
	}

	seg.build()
	return seg, nil
}

// parseCharClass consumes tokens up to and including the closing ] of the
// class opened by open.
func parseCharClass(pattern string, tks *tokens, open token) (Element, error) {
	e := Element{Kind: CharClass, Negated: open.neg}
	for {
		t, ok := tks.next()
		if !ok {
			return Element{}, invalidPattern(pattern, open.off, ErrUnterminatedClass)
		}

		switch t.kind {
		case tokenCloseClass:
			return e, nil

		case tokenNamedClass:
			if _, known := namedClasses[t.name]; !known {
				return Element{}, invalidPattern(pattern, t.off, errors.Wrapf(ErrUnknownClass, "%q", t.name))
			}
			e.Named = append(e.Named, t.name)

		case tokenLiteral:
			lo := t.r
			dash, ok := tks.peek()
			if !ok || dash.kind != tokenRange {
				e.Ranges = append(e.Ranges, RuneRange{lo, lo})
				break
			}
			tks.next()
			hi, ok := tks.next()
			if !ok {
				return Element{}, invalidPattern(pattern, open.off, ErrUnterminatedClass)
			}
			if hi.kind != tokenLiteral {
				// Something like [a-[:digit:]]: the - is literal.
				e.Ranges = append(e.Ranges, RuneRange{lo, lo}, RuneRange{'-', '-'})
				*tks = append(tokens{hi}, *tks...)
				break
			}
			if hi.r < lo {
				return Element{}, invalidPattern(pattern, dash.off, ErrRangeOutOfOrder)
			}
			e.Ranges = append(e.Ranges, RuneRange{lo, hi.r})

		case tokenRange:
			// A - that could not start a range, e.g. the second - in [a-c-e].
			e.Ranges = append(e.Ranges, RuneRange{'-', '-'})

		default:
			return Element{}, invalidPattern(pattern, t.off, errors.Errorf("unexpected token kind %d within char class", t.kind))
		}
	}
}
