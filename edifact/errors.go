package edifact

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAdvice indicates that a UNA segment has the wrong length
	// or a required literal (the "UNA" tag or the fixed space) is missing.
	ErrMalformedAdvice = errors.New("malformed service string advice")

	// ErrDuplicateSeparator indicates that the four characters collected
	// from a UNA segment are not pairwise distinct.
	ErrDuplicateSeparator = errors.New("duplicate separator in service string advice")

	// ErrUnexpectedLiteral indicates that a required fixed token, such as
	// the "UNB" tag, a data-element separator or the segment terminator,
	// is absent at its expected offset.
	ErrUnexpectedLiteral = errors.New("unexpected literal")

	// ErrFieldTooShort indicates that a bounded field consumed fewer
	// characters than its minimum.
	ErrFieldTooShort = errors.New("field too short")

	// ErrInvalidDateTimeComponent indicates that a date or time sub-field
	// is outside its enumerated range.
	ErrInvalidDateTimeComponent = errors.New("invalid date-time component")

	// ErrInvalidFixedWidthValue indicates that a fixed-width element is
	// present but holds an unacceptable value, such as a test indicator
	// other than "1" or a reference qualifier that is not exactly two
	// characters.
	ErrInvalidFixedWidthValue = errors.New("invalid fixed-width value")
)

// ParseError reports a grammar failure at a byte offset within the line
// being parsed. It wraps one of the sentinel error kinds of this package,
// so callers can match with errors.Is.
type ParseError struct {
	// Pos is the byte offset of the first offending element.
	Pos int
	// Err is the error kind, one of the Err* sentinels.
	Err error
	// Detail describes the unmatched element.
	Detail string
}

// NewParseError creates a ParseError wrapping kind at byte offset pos.
func NewParseError(pos int, kind error, detail string) *ParseError {
	return &ParseError{Pos: pos, Err: kind, Detail: detail}
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Err, e.Pos, e.Detail)
}

// Unwrap returns the wrapped error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}
