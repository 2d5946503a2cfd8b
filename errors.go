package dirglob

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reasons a pattern can fail to compile. Compile wraps them in an
// *InvalidPatternError, so test for them with errors.Is.
var (
	ErrEmptyPattern      = errors.New("pattern has no path segments")
	ErrUnterminatedClass = errors.New("unterminated char class - missing closing square bracket")
	ErrDanglingEscape    = errors.New("escape character at end of pattern")
	ErrRangeOutOfOrder   = errors.New("char class range bounds are out of order")
	ErrUnknownClass      = errors.New("unknown named char class")
)

// InvalidPatternError is returned by Compile for malformed patterns.
type InvalidPatternError struct {
	// Pattern is the pattern being compiled.
	Pattern string

	// Offset is the byte offset within Pattern where the problem was found.
	Offset int

	// Err is the reason, one of the Err* values above (possibly annotated).
	Err error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

func invalidPattern(pattern string, offset int, err error) error {
	return &InvalidPatternError{
		Pattern: pattern,
		Offset:  offset,
		Err:     err,
	}
}
