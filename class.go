package dirglob

import "unicode"

// RuneRange is an inclusive range of runes in a character class. A single
// character is a range with Lo == Hi.
type RuneRange struct {
	Lo, Hi rune
}

func (rr RuneRange) String() string {
	if rr.Lo == rr.Hi {
		return charString(rr.Lo)
	}
	return charString(rr.Lo) + "-" + charString(rr.Hi)
}

// namedClasses are the POSIX classes usable as [:name:] inside brackets.
var namedClasses = map[string]func(rune) bool{
	"alnum": func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	"alpha": unicode.IsLetter,
	"blank": func(r rune) bool { return r == ' ' || r == '\t' },
	"cntrl": unicode.IsControl,
	"digit": func(r rune) bool { return '0' <= r && r <= '9' },
	"graph": func(r rune) bool { return unicode.IsGraphic(r) && !unicode.IsSpace(r) },
	"lower": unicode.IsLower,
	"print": unicode.IsPrint,
	"punct": func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) },
	"space": unicode.IsSpace,
	"upper": unicode.IsUpper,
	"xdigit": func(r rune) bool {
		return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
	},
}
