package interchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-edifact/edifact"
	"github.com/arloliu/go-edifact/logger"
)

func TestDecode_CanonicalInterchange(t *testing.T) {
	require := require.New(t)

	input := "UNB+UNOC:3+SENDER:ZZ+RECEIVER:ZZ+940101:0950+1'" +
		"UNH+1+ORDERS:D:96A:UN'" +
		"UNT+2+1'" +
		"UNZ+1+1'"

	decoder := NewDecoder()
	ic, err := decoder.Decode(input)
	require.NoError(err)

	require.Nil(ic.Advice)
	require.NotNil(ic.Header)
	require.Equal("SENDER", ic.Header.Sender.Identification)
	require.Equal("RECEIVER", ic.Header.Recipient.Identification)
	require.Equal("1", ic.Header.ControlReference)
	require.Equal([]string{
		"UNH+1+ORDERS:D:96A:UN'",
		"UNT+2+1'",
		"UNZ+1+1'",
	}, ic.Segments)
}

func TestDecode_CustomDelimiterSet(t *testing.T) {
	require := require.New(t)

	input := "UNA:|,* ~" +
		"UNB|UNOC:3|SENDER:ZZ|RECEIVER:ZZ|940101:0950|1~" +
		"UNH|1|ORDERS:D:96A:UN~" +
		"UNT|2|1~" +
		"UNZ|1|1~"

	decoder := NewDecoder()
	ic, err := decoder.Decode(input)
	require.NoError(err)

	require.NotNil(ic.Advice)
	require.Equal(byte('|'), ic.Advice.DataElementSeparator)
	require.Equal(byte('~'), ic.Advice.SegmentTerminator)

	require.Equal("SENDER", ic.Header.Sender.Identification)
	require.Equal([]string{
		"UNH+1+ORDERS:D:96A:UN'",
		"UNT+2+1'",
		"UNZ+1+1'",
	}, ic.Segments)
}

func TestDecode_EscapedTerminatorInsideSegment(t *testing.T) {
	require := require.New(t)

	// A release-escaped terminator is data, not a segment cut.
	input := "UNA:|,* ~" +
		"UNB|UNOC:3|SEND*~ER|RECEIVER|940101:0950|1~" +
		"UNT|2|1~"

	ic, err := NewDecoder().Decode(input)
	require.NoError(err)
	require.Equal("SEND~ER", ic.Header.Sender.Identification)
	require.Equal([]string{"UNT+2+1'"}, ic.Segments)
}

func TestDecode_WhitespaceBetweenSegments(t *testing.T) {
	require := require.New(t)

	input := "  UNB+UNOC:3+S+R+940101:0950+1'\r\n" +
		"UNH+1+ORDERS:D:96A:UN'\r\n" +
		"UNZ+1+1'\r\n"

	ic, err := NewDecoder().Decode(input)
	require.NoError(err)
	require.Equal("S", ic.Header.Sender.Identification)
	require.Equal([]string{
		"UNH+1+ORDERS:D:96A:UN'",
		"UNZ+1+1'",
	}, ic.Segments)
}

func TestDecode_AdviceOnSeparateLine(t *testing.T) {
	require := require.New(t)

	input := "UNA:+.? '\nUNB+UNOC:3+S+R+940101:0950+1'"

	ic, err := NewDecoder().Decode(input)
	require.NoError(err)
	require.NotNil(ic.Advice)
	require.Equal(edifact.DefaultAdvice(), *ic.Advice)
	require.Empty(ic.Segments)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		description string
		input       string
		kind        error
	}{
		{
			description: "empty input",
			input:       "",
			kind:        edifact.ErrUnexpectedLiteral,
		},
		{
			description: "truncated service string advice",
			input:       "UNA:|,* ",
			kind:        edifact.ErrMalformedAdvice,
		},
		{
			description: "advice with duplicate separators",
			input:       "UNA:++? 'UNB+UNOC:3+S+R+940101:0950+1'",
			kind:        edifact.ErrDuplicateSeparator,
		},
		{
			description: "unterminated final segment",
			input:       "UNB+UNOC:3+S+R+940101:0950+1'UNH+1",
			kind:        edifact.ErrUnexpectedLiteral,
		},
		{
			description: "first segment is not an interchange header",
			input:       "UNH+1+ORDERS:D:96A:UN'",
			kind:        edifact.ErrUnexpectedLiteral,
		},
		{
			description: "trailing bytes inside the header segment",
			input:       "UNB+UNOC:3+S+R+940101:0950+" + strings.Repeat("R", 15) + "'",
			kind:        edifact.ErrUnexpectedLiteral,
		},
		{
			description: "malformed date-time in header",
			input:       "UNB+UNOC:3+S+R+941301:0950+1'",
			kind:        edifact.ErrInvalidDateTimeComponent,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		decoder := NewDecoder()
		ic, err := decoder.Decode(test.input)
		require.Nil(t, ic)
		require.ErrorIs(t, err, test.kind)
		require.Equal(t, uint64(1), decoder.Metrics().DecodeErrCount.Load())
	}
}

func TestDecode_Metrics(t *testing.T) {
	require := require.New(t)

	decoder := NewDecoder()

	_, err := decoder.Decode("UNA:|,* ~UNB|UNOC:3|S|R|940101:0950|1~UNT|2|1~")
	require.NoError(err)

	metrics := decoder.Metrics()
	require.Equal(uint64(2), metrics.SegmentScanCount.Load())
	require.Equal(uint64(1), metrics.AdviceCount.Load())
	require.Equal(uint64(1), metrics.HeaderParseCount.Load())
	require.Equal(uint64(0), metrics.DecodeErrCount.Load())

	_, err = decoder.Decode("UNB+UNOC:3+S+R+940101:0950+1")
	require.Error(err)
	require.Equal(uint64(1), metrics.DecodeErrCount.Load())
}

func TestDecode_WithLogger(t *testing.T) {
	require := require.New(t)

	mockLogger := logger.NewMockLogger()
	mockLogger.On("Debug", mock.Anything, mock.Anything)

	decoder := NewDecoder(WithLogger(mockLogger))
	_, err := decoder.Decode("UNA:|,* ~UNB|UNOC:3|S|R|940101:0950|1~")
	require.NoError(err)

	mockLogger.AssertCalled(t, "Debug", "service string advice detected", mock.Anything)
	mockLogger.AssertCalled(t, "Debug", "interchange header parsed", mock.Anything)
}
