package segment

import (
	"github.com/arloliu/go-edifact/edifact"
)

// AdviceLength is the exact byte length of a UNA segment: the "UNA" tag,
// the fixed component separator, the four delimiter characters with a
// space in the unused repetition position, and the segment terminator.
const AdviceLength = 9

// ParseServiceStringAdvice parses a UNA line into a delimiter set.
//
// The line must be exactly 9 bytes: literal "UNA", one ignored byte
// (conventionally ':'), the data-element separator, the decimal notation,
// the release indicator, a literal space, and the segment terminator.
// Nothing may remain after the terminator.
//
// The four collected characters must be pairwise distinct; a violation is
// reported as edifact.ErrDuplicateSeparator. Shape violations are reported
// as edifact.ErrMalformedAdvice.
//
// An interchange without a UNA segment should not call this at all; the
// canonical defaults from edifact.DefaultAdvice apply directly.
func ParseServiceStringAdvice(line string) (edifact.ServiceStringAdvice, error) {
	var advice edifact.ServiceStringAdvice

	if len(line) != AdviceLength {
		return advice, edifact.NewParseError(0, edifact.ErrMalformedAdvice,
			"service string advice must be exactly 9 bytes")
	}

	p := newParser(line)
	if err := p.expectLiteral("UNA"); err != nil {
		return advice, edifact.NewParseError(0, edifact.ErrMalformedAdvice,
			`expect "UNA" tag`)
	}

	// The byte after the tag is the component separator position. It is
	// fixed by the standard and carries no information, so its value is
	// not inspected.
	p.forward(1)

	advice.DataElementSeparator = line[4]
	advice.DecimalNotation = line[5]
	advice.ReleaseIndicator = line[6]
	p.forward(3)

	if !p.acceptByte(' ') {
		return edifact.ServiceStringAdvice{}, edifact.NewParseError(p.pos, edifact.ErrMalformedAdvice,
			"expect space in the unused repetition position")
	}

	advice.SegmentTerminator = line[8]

	if err := advice.Validate(); err != nil {
		return edifact.ServiceStringAdvice{}, err
	}

	return advice, nil
}
