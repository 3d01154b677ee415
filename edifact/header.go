package edifact

import "strings"

// SyntaxIdentifier identifies the syntax rules an interchange follows,
// e.g. "UNOC" splits into controlling agency "UNO" and level "C".
type SyntaxIdentifier struct {
	// ControllingAgency is the 3-letter agency code, normally "UNO".
	ControllingAgency string
	// Level is the 1-letter character-set level, e.g. "A", "B" or "C".
	Level string
}

// String returns the joined 4-letter syntax identifier code.
func (s SyntaxIdentifier) String() string {
	return s.ControllingAgency + s.Level
}

// Participant identifies one party of an interchange, either sender or
// recipient. PartnerIdentification and RoutingAddress are nil when their
// governing component separator was absent in the source text, which is
// distinct from an empty field.
type Participant struct {
	// Identification is the party identification, 1 to 35 characters.
	Identification string
	// PartnerIdentification is the identification code qualifier,
	// 1 to 4 characters.
	PartnerIdentification *string
	// RoutingAddress is the address for reverse routing, 1 to 14 characters.
	RoutingAddress *string
}

// DateTime is the preparation date and time of an interchange. Each field
// holds its literal two-digit pair so rendering is loss-free; values are
// range-checked at parse time (month 01-12, day 01-31, hour 00-23,
// minute 00-59).
type DateTime struct {
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
}

// String renders the date-time block as "YYMMDD:HHMM".
func (dt DateTime) String() string {
	return dt.Year + dt.Month + dt.Day + string(ComponentSeparator) + dt.Hour + dt.Minute
}

// RecipientReference is the conditional recipient reference/password
// element of the interchange header. Qualifier is nil when its component
// separator was absent.
type RecipientReference struct {
	// Password is the recipient reference or password, 1 to 14 characters.
	Password string
	// Qualifier is the reference qualifier, exactly 2 characters.
	Qualifier *string
}

// InterchangeHeader is a parsed UNB segment. The first six fields are
// mandatory; the remaining fields are conditional in fixed positional
// order and are nil when their slot was truncated or left empty.
//
// A header is built field by field during a single left-to-right parse and
// is never modified afterwards.
type InterchangeHeader struct {
	Syntax           SyntaxIdentifier
	Version          string // syntax version number, 1 digit
	Sender           Participant
	Recipient        Participant
	DateTime         DateTime
	ControlReference string // unique interchange reference, 1 to 14 characters

	Reference              *RecipientReference
	ApplicationReference   *string // 1 to 35 characters
	PriorityCode           *string // processing priority, 1 character
	AcknowledgementRequest *string // 1 digit
	AgreementID            *string // communications agreement, 1 to 35 characters
	TestIndicator          *string // literal "1" when the interchange is a test
}

// String renders the header as a canonical-delimiter UNB segment line,
// re-escaping any service characters that occur inside field values.
// Conditional elements are rendered only up to the last populated slot.
func (h *InterchangeHeader) String() string {
	var sb strings.Builder
	sb.WriteString("UNB")
	sb.WriteByte(DataElementSeparator)
	sb.WriteString(h.Syntax.ControllingAgency)
	sb.WriteString(h.Syntax.Level)
	sb.WriteByte(ComponentSeparator)
	sb.WriteString(h.Version)
	sb.WriteByte(DataElementSeparator)
	writeParticipant(&sb, h.Sender)
	sb.WriteByte(DataElementSeparator)
	writeParticipant(&sb, h.Recipient)
	sb.WriteByte(DataElementSeparator)
	sb.WriteString(h.DateTime.String())
	sb.WriteByte(DataElementSeparator)
	writeEscaped(&sb, h.ControlReference)

	// Trailing conditional groups are truncated after the last populated
	// slot, so collect them first.
	groups := make([]string, 0, 6)
	last := -1
	appendGroup := func(s string, populated bool) {
		groups = append(groups, s)
		if populated {
			last = len(groups) - 1
		}
	}

	var ref strings.Builder
	if h.Reference != nil {
		writeEscaped(&ref, h.Reference.Password)
		if h.Reference.Qualifier != nil {
			ref.WriteByte(ComponentSeparator)
			writeEscaped(&ref, *h.Reference.Qualifier)
		}
	}
	appendGroup(ref.String(), h.Reference != nil)
	appendGroup(escapeOptional(h.ApplicationReference), h.ApplicationReference != nil)
	appendGroup(escapeOptional(h.PriorityCode), h.PriorityCode != nil)
	appendGroup(escapeOptional(h.AcknowledgementRequest), h.AcknowledgementRequest != nil)
	appendGroup(escapeOptional(h.AgreementID), h.AgreementID != nil)
	appendGroup(escapeOptional(h.TestIndicator), h.TestIndicator != nil)

	for i := 0; i <= last; i++ {
		sb.WriteByte(DataElementSeparator)
		sb.WriteString(groups[i])
	}

	sb.WriteByte(SegmentTerminator)
	return sb.String()
}

func writeParticipant(sb *strings.Builder, p Participant) {
	writeEscaped(sb, p.Identification)
	if p.PartnerIdentification == nil && p.RoutingAddress == nil {
		return
	}
	sb.WriteByte(ComponentSeparator)
	if p.PartnerIdentification != nil {
		writeEscaped(sb, *p.PartnerIdentification)
	}
	if p.RoutingAddress != nil {
		sb.WriteByte(ComponentSeparator)
		writeEscaped(sb, *p.RoutingAddress)
	}
}

func escapeOptional(v *string) string {
	if v == nil {
		return ""
	}
	var sb strings.Builder
	writeEscaped(&sb, *v)
	return sb.String()
}

// writeEscaped writes value, prefixing the release indicator to any byte
// that has syntactic meaning under the canonical delimiters.
func writeEscaped(sb *strings.Builder, value string) {
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch ch {
		case DataElementSeparator, ComponentSeparator, ReleaseIndicator, SegmentTerminator:
			sb.WriteByte(ReleaseIndicator)
		}
		sb.WriteByte(ch)
	}
}
