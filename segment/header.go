package segment

import (
	"github.com/arloliu/go-edifact/edifact"
)

// Field bounds of the interchange header elements.
const (
	maxIdentification = 35
	maxPartnerID      = 4
	maxRouting        = 14
	maxControlRef     = 14
	maxPassword       = 14
	qualifierWidth    = 2
	maxAppReference   = 35
	maxAgreementID    = 35
)

// ParseInterchangeHeader parses a UNB segment expressed over the canonical
// delimiters and returns the header together with the unconsumed remainder
// of the line. Lines using a custom delimiter set must be normalized with
// ApplyServiceAdvice first.
//
// The six mandatory elements are followed by six conditional elements in
// fixed positional order. Each conditional element is attempted only if
// its data-element separator is present, and a populated later slot may
// follow an empty earlier one. Trailing elements are omitted by simply not
// supplying further separators.
//
// Bounded fields cap silently at their maximum: excess characters are left
// unconsumed in the remainder instead of failing the parse. The segment
// terminator is consumed when it directly follows the last matched
// element; a line that runs out of bytes without one fails with
// edifact.ErrUnexpectedLiteral.
//
// On failure the returned error is an *edifact.ParseError carrying the
// byte offset of the first offending element. No partial header is ever
// returned.
func ParseInterchangeHeader(line string) (*edifact.InterchangeHeader, string, error) {
	p := newParser(line)
	header, err := p.parseInterchangeHeader()
	if err != nil {
		return nil, "", err
	}
	return header, p.rest(), nil
}

func (p *parser) parseInterchangeHeader() (*edifact.InterchangeHeader, error) {
	var h edifact.InterchangeHeader
	var err error

	if err = p.expectLiteral("UNB"); err != nil {
		return nil, err
	}
	if err = p.expectByte(edifact.DataElementSeparator, "data element separator after segment tag"); err != nil {
		return nil, err
	}

	if h.Syntax, err = p.parseSyntaxIdentifier(); err != nil {
		return nil, err
	}
	if err = p.expectByte(edifact.ComponentSeparator, "component separator before syntax version"); err != nil {
		return nil, err
	}
	if h.Version, err = p.parseField(edifact.IsDigit, 1, 1, "syntax version number"); err != nil {
		return nil, err
	}

	if err = p.expectByte(edifact.DataElementSeparator, "data element separator before sender"); err != nil {
		return nil, err
	}
	if h.Sender, err = p.parseParticipant(); err != nil {
		return nil, err
	}

	if err = p.expectByte(edifact.DataElementSeparator, "data element separator before recipient"); err != nil {
		return nil, err
	}
	if h.Recipient, err = p.parseParticipant(); err != nil {
		return nil, err
	}

	if err = p.expectByte(edifact.DataElementSeparator, "data element separator before date-time"); err != nil {
		return nil, err
	}
	if h.DateTime, err = p.parseDateTime(); err != nil {
		return nil, err
	}

	if err = p.expectByte(edifact.DataElementSeparator, "data element separator before control reference"); err != nil {
		return nil, err
	}
	if h.ControlReference, err = p.parseField(edifact.IsLevelB, 1, maxControlRef, "interchange control reference"); err != nil {
		return nil, err
	}

	if err = p.parseConditionalElements(&h); err != nil {
		return nil, err
	}

	// The terminator is consumed when it directly follows the matched
	// elements. Other trailing bytes stay in the remainder, consistent
	// with the permissive length policy of bounded fields; only running
	// out of input entirely is an error.
	if !p.acceptByte(edifact.SegmentTerminator) {
		if _, ok := p.peekByte(); !ok {
			return nil, edifact.NewParseError(p.pos, edifact.ErrUnexpectedLiteral,
				"expect segment terminator")
		}
	}

	return &h, nil
}

// parseSyntaxIdentifier consumes the 3-letter controlling agency followed
// by the 1-letter character-set level, e.g. "UNOC".
func (p *parser) parseSyntaxIdentifier() (edifact.SyntaxIdentifier, error) {
	var sid edifact.SyntaxIdentifier
	var err error

	if sid.ControllingAgency, err = p.parseField(edifact.IsUpperAlpha, 3, 3, "controlling agency"); err != nil {
		return edifact.SyntaxIdentifier{}, err
	}
	if sid.Level, err = p.parseField(edifact.IsUpperAlpha, 1, 1, "syntax level"); err != nil {
		return edifact.SyntaxIdentifier{}, err
	}
	return sid, nil
}

// parseParticipant consumes "<identification>[:[<partner>][:<routing>]]".
// The two optional components exist only if their preceding component
// separator was supplied; an absent separator means "no further field",
// which is distinct from an empty one.
func (p *parser) parseParticipant() (edifact.Participant, error) {
	var pt edifact.Participant
	var err error

	if pt.Identification, err = p.parseField(edifact.IsLevelB, 1, maxIdentification, "participant identification"); err != nil {
		return edifact.Participant{}, err
	}

	if !p.acceptByte(edifact.ComponentSeparator) {
		return pt, nil
	}

	partner, ok, err := p.parseOptionalField(edifact.IsLevelB, 1, maxPartnerID, "partner identification")
	if err != nil {
		return edifact.Participant{}, err
	}
	if ok {
		pt.PartnerIdentification = &partner
	}

	if !p.acceptByte(edifact.ComponentSeparator) {
		return pt, nil
	}

	routing, err := p.parseField(edifact.IsLevelB, 1, maxRouting, "routing address")
	if err != nil {
		return edifact.Participant{}, err
	}
	pt.RoutingAddress = &routing

	return pt, nil
}

// parseConditionalElements consumes the six conditional elements of the
// header as a left-to-right optional chain. Each slot is attempted only
// after its data-element separator was consumed, and a slot with no
// matching characters is simply absent; the chain never backtracks past a
// consumed separator.
func (p *parser) parseConditionalElements(h *edifact.InterchangeHeader) error {
	slots := []func() error{
		func() error { return p.parseRecipientReference(h) },
		func() error { return p.parseOptionalInto(&h.ApplicationReference, edifact.IsLevelB, 1, maxAppReference, "application reference") },
		func() error { return p.parseOptionalInto(&h.PriorityCode, edifact.IsLevelB, 1, 1, "processing priority code") },
		func() error { return p.parseOptionalInto(&h.AcknowledgementRequest, edifact.IsDigit, 1, 1, "acknowledgement request") },
		func() error { return p.parseOptionalInto(&h.AgreementID, edifact.IsLevelB, 1, maxAgreementID, "communications agreement") },
		func() error { return p.parseTestIndicator(h) },
	}

	for _, parseSlot := range slots {
		if !p.acceptByte(edifact.DataElementSeparator) {
			return nil
		}
		if err := parseSlot(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseOptionalInto(dst **string, accept func(byte) bool, min, max int, what string) error {
	val, ok, err := p.parseOptionalField(accept, min, max, what)
	if err != nil {
		return err
	}
	if ok {
		*dst = &val
	}
	return nil
}

// parseRecipientReference consumes "[<password 1..14>[:<qualifier 2>]]".
// A qualifier slot opened by a component separator must hold exactly two
// characters.
func (p *parser) parseRecipientReference(h *edifact.InterchangeHeader) error {
	password, ok, err := p.parseOptionalField(edifact.IsLevelB, 1, maxPassword, "recipient reference")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	ref := &edifact.RecipientReference{Password: password}
	if p.acceptByte(edifact.ComponentSeparator) {
		start := p.pos
		qualifier, err := p.parseField(edifact.IsLevelB, qualifierWidth, qualifierWidth, "reference qualifier")
		if err != nil {
			return edifact.NewParseError(start, edifact.ErrInvalidFixedWidthValue,
				"reference qualifier must be exactly 2 characters")
		}
		ref.Qualifier = &qualifier
	}

	h.Reference = ref
	return nil
}

// parseTestIndicator consumes the final conditional element, which may
// only hold the literal "1".
func (p *parser) parseTestIndicator(h *edifact.InterchangeHeader) error {
	start := p.pos
	val, ok, err := p.parseOptionalField(edifact.IsDigit, 1, 1, "test indicator")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if val != "1" {
		return edifact.NewParseError(start, edifact.ErrInvalidFixedWidthValue,
			`test indicator must be the literal "1"`)
	}
	h.TestIndicator = &val
	return nil
}
