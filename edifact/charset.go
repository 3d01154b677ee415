package edifact

// Canonical service characters. These apply whenever an interchange does
// not carry a UNA segment, and they are the target alphabet of the
// segment.ApplyServiceAdvice rewrite.
const (
	// DataElementSeparator separates simple and composite data elements
	// within a segment.
	DataElementSeparator byte = '+'
	// ComponentSeparator separates components within a composite data
	// element. It is fixed by the standard and not redefinable via UNA.
	ComponentSeparator byte = ':'
	// DecimalNotation is the decimal mark used in numeric values.
	DecimalNotation byte = '.'
	// ReleaseIndicator makes the immediately following character literal,
	// suppressing its syntactic meaning.
	ReleaseIndicator byte = '?'
	// SegmentTerminator ends a segment.
	SegmentTerminator byte = '\''
)

// levelACharacters enumerates the EDIFACT Level A character set.
// levelBCharacters extends it to Level B.
const (
	levelACharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,-()/="
	levelBCharacters = levelACharacters + "abcdefghijklmnopqrstuvwxyz!\"%&*;<>"
)

var (
	levelATable [256]bool
	levelBTable [256]bool
)

func init() {
	for i := 0; i < len(levelACharacters); i++ {
		levelATable[levelACharacters[i]] = true
	}
	for i := 0; i < len(levelBCharacters); i++ {
		levelBTable[levelBCharacters[i]] = true
	}
}

// IsLevelA reports whether ch belongs to the EDIFACT Level A character set:
// upper-case letters, digits, space and the characters ". , - ( ) / =".
func IsLevelA(ch byte) bool {
	return levelATable[ch]
}

// IsLevelB reports whether ch belongs to the EDIFACT Level B character set,
// which is Level A extended with lower-case letters and the characters
// `! " % & * ; < >`.
func IsLevelB(ch byte) bool {
	return levelBTable[ch]
}

// IsDigit reports whether ch is a decimal digit.
func IsDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// IsUpperAlpha reports whether ch is an upper-case letter.
func IsUpperAlpha(ch byte) bool {
	return 'A' <= ch && ch <= 'Z'
}
