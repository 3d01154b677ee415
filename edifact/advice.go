package edifact

import "fmt"

// ServiceStringAdvice holds the four redefinable delimiter characters
// declared by a UNA segment. It is an immutable value: produced once per
// interchange and consulted for every subsequent line of that interchange.
//
// The struct is comparable, so it can be used directly as a map key.
type ServiceStringAdvice struct {
	// DataElementSeparator separates data elements (canonical '+').
	DataElementSeparator byte
	// DecimalNotation is the decimal mark (canonical '.').
	DecimalNotation byte
	// ReleaseIndicator escapes the following character (canonical '?').
	ReleaseIndicator byte
	// SegmentTerminator ends a segment (canonical '\'').
	SegmentTerminator byte
}

// DefaultAdvice returns the canonical delimiter set used when an
// interchange carries no UNA segment.
func DefaultAdvice() ServiceStringAdvice {
	return ServiceStringAdvice{
		DataElementSeparator: DataElementSeparator,
		DecimalNotation:      DecimalNotation,
		ReleaseIndicator:     ReleaseIndicator,
		SegmentTerminator:    SegmentTerminator,
	}
}

// IsCanonical reports whether the advice equals the canonical delimiter set.
func (a ServiceStringAdvice) IsCanonical() bool {
	return a == DefaultAdvice()
}

// Validate checks that the four delimiter characters are pairwise distinct.
// It returns an error wrapping ErrDuplicateSeparator naming the first
// colliding pair, or nil.
func (a ServiceStringAdvice) Validate() error {
	chars := [4]byte{
		a.DataElementSeparator,
		a.DecimalNotation,
		a.ReleaseIndicator,
		a.SegmentTerminator,
	}
	names := [4]string{
		"data element separator",
		"decimal notation",
		"release indicator",
		"segment terminator",
	}
	for i := 0; i < len(chars); i++ {
		for j := i + 1; j < len(chars); j++ {
			if chars[i] == chars[j] {
				return fmt.Errorf("%w: %s and %s are both %q",
					ErrDuplicateSeparator, names[i], names[j], chars[i])
			}
		}
	}
	return nil
}

// String renders the advice as a 9-byte UNA line, including the fixed
// component separator and the unused repetition position (a space).
func (a ServiceStringAdvice) String() string {
	return string([]byte{
		'U', 'N', 'A',
		ComponentSeparator,
		a.DataElementSeparator,
		a.DecimalNotation,
		a.ReleaseIndicator,
		' ',
		a.SegmentTerminator,
	})
}
