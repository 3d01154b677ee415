package segment

import (
	"slices"

	"github.com/arloliu/go-edifact/edifact"
)

// The date and time sub-fields are validated against exhaustive literal
// code tables rather than numeric range arithmetic. This mirrors the
// code-point grammar of the standard exactly: a value is either one of the
// enumerated two-digit codes or it is rejected, with no leading-zero or
// locale ambiguity. Day codes are deliberately not month-aware ("940230"
// is accepted).
var monthCodes = []string{
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12",
}

var dayCodes = []string{
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10",
	"11", "12", "13", "14", "15", "16", "17", "18", "19", "20",
	"21", "22", "23", "24", "25", "26", "27", "28", "29", "30",
	"31",
}

var hourCodes = []string{
	"00", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11",
	"12", "13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "23",
}

var minuteCodes = []string{
	"00", "01", "02", "03", "04", "05", "06", "07", "08", "09",
	"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
	"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
	"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
	"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
	"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
}

// parseDigitPair consumes exactly two digit bytes.
func (p *parser) parseDigitPair(what string) (string, error) {
	start := p.pos
	if p.pos+2 > p.len || !edifact.IsDigit(p.input[p.pos]) || !edifact.IsDigit(p.input[p.pos+1]) {
		return "", edifact.NewParseError(start, edifact.ErrInvalidDateTimeComponent,
			what+" must be two digits")
	}
	pair := p.input[p.pos : p.pos+2]
	p.forward(2)
	return pair, nil
}

// parseCodedPair consumes a two-digit pair and checks it against one of the
// literal code tables above.
func (p *parser) parseCodedPair(what string, codes []string) (string, error) {
	start := p.pos
	pair, err := p.parseDigitPair(what)
	if err != nil {
		return "", err
	}
	if !slices.Contains(codes, pair) {
		return "", edifact.NewParseError(start, edifact.ErrInvalidDateTimeComponent,
			what+" "+pair+" is out of range")
	}
	return pair, nil
}

// parseDateTime consumes a fixed-width "YYMMDD:HHMM" block. Any sub-field
// outside its enumerated range fails the whole parse at that offset; no
// partial date-time is ever returned.
func (p *parser) parseDateTime() (edifact.DateTime, error) {
	var dt edifact.DateTime
	var err error

	if dt.Year, err = p.parseDigitPair("year"); err != nil {
		return edifact.DateTime{}, err
	}
	if dt.Month, err = p.parseCodedPair("month", monthCodes); err != nil {
		return edifact.DateTime{}, err
	}
	if dt.Day, err = p.parseCodedPair("day", dayCodes); err != nil {
		return edifact.DateTime{}, err
	}
	if err = p.expectByte(edifact.ComponentSeparator, "component separator between date and time"); err != nil {
		return edifact.DateTime{}, err
	}
	if dt.Hour, err = p.parseCodedPair("hour", hourCodes); err != nil {
		return edifact.DateTime{}, err
	}
	if dt.Minute, err = p.parseCodedPair("minute", minuteCodes); err != nil {
		return edifact.DateTime{}, err
	}

	return dt, nil
}
