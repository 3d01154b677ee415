package interchange

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-edifact/edifact"
	"github.com/arloliu/go-edifact/logger"
	"github.com/arloliu/go-edifact/segment"
)

// Interchange holds the decoded leading control segments of one
// interchange. Segments contains the raw canonicalized segment lines that
// follow the header, terminator included, in input order; they are not
// parsed further.
type Interchange struct {
	// Advice is the parsed UNA delimiter set, or nil when the interchange
	// used the canonical defaults.
	Advice *edifact.ServiceStringAdvice
	// Header is the parsed UNB segment.
	Header *edifact.InterchangeHeader
	// Segments are the remaining segment lines in canonical delimiters.
	Segments []string
}

// Decoder decodes interchanges. A Decoder is safe for concurrent use; it
// holds no per-call state beyond its metrics counters.
type Decoder struct {
	logger  logger.Logger
	metrics Metrics
}

// Option customizes a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for decode diagnostics.
// Defaults to the package-level logger.
func WithLogger(l logger.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// NewDecoder creates a Decoder with the given options applied.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger: logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Metrics returns the decoder's metrics counters.
func (d *Decoder) Metrics() *Metrics {
	return &d.metrics
}

// Decode decodes one complete interchange. The input must start with
// either a UNA segment or the UNB header; carriage returns and line feeds
// between segments are tolerated. Every segment after the header is
// normalized to canonical delimiters and returned unparsed.
func (d *Decoder) Decode(input string) (*Interchange, error) {
	ic, err := d.decode(input)
	if err != nil {
		d.metrics.incDecodeErrCount()
		return nil, err
	}
	return ic, nil
}

func (d *Decoder) decode(input string) (*Interchange, error) {
	input = strings.TrimLeft(input, " \t\r\n")

	ic := &Interchange{}
	advice := edifact.DefaultAdvice()

	if strings.HasPrefix(input, "UNA") {
		if len(input) < segment.AdviceLength {
			return nil, fmt.Errorf("%w: truncated service string advice", edifact.ErrMalformedAdvice)
		}
		parsed, err := segment.ParseServiceStringAdvice(input[:segment.AdviceLength])
		if err != nil {
			return nil, err
		}
		advice = parsed
		ic.Advice = &parsed
		input = strings.TrimLeft(input[segment.AdviceLength:], " \t\r\n")
		d.metrics.incAdviceCount()
		d.logger.Debug("service string advice detected", "advice", parsed.String())
	}

	lines, err := splitSegments(input, advice)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: interchange has no segments", edifact.ErrUnexpectedLiteral)
	}

	for i, line := range lines {
		lines[i] = segment.ApplyServiceAdvice(line, advice)
		d.metrics.incSegmentScanCount()
	}

	header, rest, err := segment.ParseInterchangeHeader(lines[0])
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: %d unconsumed bytes after interchange header", edifact.ErrUnexpectedLiteral, len(rest))
	}

	ic.Header = header
	ic.Segments = lines[1:]
	d.metrics.incHeaderParseCount()
	d.logger.Debug("interchange header parsed",
		"syntax", header.Syntax.String(),
		"sender", header.Sender.Identification,
		"recipient", header.Recipient.Identification,
		"controlReference", header.ControlReference,
		"segments", len(ic.Segments),
	)

	return ic, nil
}

// splitSegments cuts the input into segment lines on the active segment
// terminator. A terminator preceded by the release indicator is literal
// data and does not cut; the terminator stays part of its line. Whitespace
// between segments is dropped.
func splitSegments(input string, advice edifact.ServiceStringAdvice) ([]string, error) {
	lines := make([]string, 0, 8)

	start := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case advice.ReleaseIndicator:
			if i+1 < len(input) {
				i++
			}
		case advice.SegmentTerminator:
			lines = append(lines, input[start:i+1])
			for i+1 < len(input) && isSegmentGap(input[i+1]) {
				i++
			}
			start = i + 1
		}
	}

	if start < len(input) {
		return nil, fmt.Errorf("%w: unterminated segment at offset %d", edifact.ErrUnexpectedLiteral, start)
	}

	return lines, nil
}

func isSegmentGap(ch byte) bool {
	return ch == '\r' || ch == '\n' || ch == ' ' || ch == '\t'
}
