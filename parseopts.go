package dirglob

var defaultParseConfig = parseConfig{
	allowEscaping:   true,
	allowQuestion:   true,
	allowStar:       true,
	allowDoubleStar: true,
	allowCharClass:  true,
	caseInsensitive: false,
	expandTilde:     false,
}

type parseConfig struct {
	allowEscaping   bool
	allowQuestion   bool
	allowStar       bool
	allowDoubleStar bool
	allowCharClass  bool
	caseInsensitive bool
	expandTilde     bool
}

// ParseOption functions optionally alter how patterns are compiled.
type ParseOption = func(*parseConfig)

// AllowEscaping changes how backslash is parsed. If disabled, it is treated as
// a literal which does not escape the next character. Enabled by default.
func AllowEscaping(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowEscaping = enable
	}
}

// AllowQuestion changes how ? is parsed. If disabled, ? is treated as a
// literal. Enabled by default.
func AllowQuestion(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowQuestion = enable
	}
}

// AllowStar changes how * is parsed. If disabled, * is treated as a literal.
// Enabled by default.
func AllowStar(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowStar = enable
	}
}

// AllowDoubleStar changes how a ** segment is parsed, and applies only if
// AllowStar is enabled (the default). If disabled, ** is equivalent to a
// single *. Enabled by default.
func AllowDoubleStar(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowDoubleStar = enable
	}
}

// AllowCharClass changes how [ ] are parsed. If enabled, [ and ] denote
// character classes. If disabled, [ and ] are treated as literals.
// Enabled by default.
func AllowCharClass(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowCharClass = enable
	}
}

// CaseInsensitive makes literals and character classes compare runes using
// Unicode simple case folding. Disabled by default.
func CaseInsensitive(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.caseInsensitive = enable
	}
}

// ExpandTilde changes how a leading ~ is parsed. If enabled, ~ is expanded to
// the current user's home directory. If disabled, ~ is treated as a literal.
// Disabled by default.
func ExpandTilde(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.expandTilde = enable
	}
}
