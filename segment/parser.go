package segment

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-edifact/edifact"
)

// parser holds the state of a single left-to-right pass over one segment
// line. It is not reused across lines and retains no state between calls.
type parser struct {
	pos   int
	len   int
	input string
}

func newParser(input string) *parser {
	return &parser{input: input, len: len(input)}
}

// rest returns the unconsumed tail of the input.
func (p *parser) rest() string {
	return p.input[p.pos:]
}

// peekByte returns the byte at the cursor without consuming it.
func (p *parser) peekByte() (byte, bool) {
	if p.pos >= p.len {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) forward(n int) {
	p.pos += n
	if p.pos > p.len {
		p.pos = p.len
	}
}

// acceptByte consumes the next byte if it equals ch.
func (p *parser) acceptByte(ch byte) bool {
	if p.pos < p.len && p.input[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

// expectByte consumes the next byte, which must equal ch.
func (p *parser) expectByte(ch byte, what string) error {
	if p.acceptByte(ch) {
		return nil
	}
	return edifact.NewParseError(p.pos, edifact.ErrUnexpectedLiteral, "expect "+what)
}

// expectLiteral consumes the given literal string.
func (p *parser) expectLiteral(lit string) error {
	if strings.HasPrefix(p.input[p.pos:], lit) {
		p.forward(len(lit))
		return nil
	}
	return edifact.NewParseError(p.pos, edifact.ErrUnexpectedLiteral, fmt.Sprintf("expect literal %q", lit))
}

// nextLogicalChar consumes one escape-aware logical character whose value
// matches the accept predicate. A release indicator followed by any byte is
// consumed as a single logical character holding that byte; the escaped
// byte is exempt from the predicate, which is how field values carry
// delimiter characters as data. A lone trailing release indicator cannot
// form an escape sequence and never matches.
func (p *parser) nextLogicalChar(accept func(byte) bool) (byte, bool) {
	ch, ok := p.peekByte()
	if !ok {
		return 0, false
	}
	if ch == edifact.ReleaseIndicator && p.pos+1 < p.len {
		escaped := p.input[p.pos+1]
		p.forward(2)
		return escaped, true
	}
	if !accept(ch) {
		return 0, false
	}
	p.forward(1)
	return ch, true
}

// parseField greedily consumes between min and max logical characters from
// the accept charset and returns them joined. It stops at the first
// non-matching character; input past max is silently left unconsumed
// rather than rejected. Fewer than min matching characters is an
// ErrFieldTooShort failure at the stop offset.
func (p *parser) parseField(accept func(byte) bool, min, max int, what string) (string, error) {
	var sb strings.Builder
	count := 0
	for count < max {
		ch, ok := p.nextLogicalChar(accept)
		if !ok {
			break
		}
		sb.WriteByte(ch)
		count++
	}
	if count < min {
		return "", edifact.NewParseError(p.pos, edifact.ErrFieldTooShort,
			fmt.Sprintf("%s needs at least %d characters, got %d", what, min, count))
	}
	return sb.String(), nil
}

// parseOptionalField is parseField for a conditional slot: zero matching
// characters means the slot is absent, not an error.
func (p *parser) parseOptionalField(accept func(byte) bool, min, max int, what string) (string, bool, error) {
	if ch, ok := p.peekByte(); !ok || (!accept(ch) && ch != edifact.ReleaseIndicator) {
		return "", false, nil
	}
	val, err := p.parseField(accept, min, max, what)
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
