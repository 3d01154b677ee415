package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-edifact/edifact"
)

func TestParseServiceStringAdvice(t *testing.T) {
	// Every pairwise-distinct tuple (d, n, r, t) with a non-space release
	// indicator must parse back to exactly that tuple.
	tuples := [][4]byte{
		{'+', '.', '?', '\''},
		{'|', ',', '*', '~'},
		{'#', '.', '!', '@'},
		{'^', ';', '\\', '`'},
		{'+', ',', '?', '~'},
	}

	for i, tuple := range tuples {
		line := "UNA:" + string(tuple[0]) + string(tuple[1]) + string(tuple[2]) + " " + string(tuple[3])
		t.Logf("Test #%d: %q", i, line)

		advice, err := ParseServiceStringAdvice(line)
		require.NoError(t, err)
		require.Equal(t, tuple[0], advice.DataElementSeparator)
		require.Equal(t, tuple[1], advice.DecimalNotation)
		require.Equal(t, tuple[2], advice.ReleaseIndicator)
		require.Equal(t, tuple[3], advice.SegmentTerminator)
	}
}

func TestParseServiceStringAdvice_IgnoredComponentSeparator(t *testing.T) {
	require := require.New(t)

	// The byte after the tag is fixed by the standard; its value carries
	// no information and any byte is accepted there.
	advice, err := ParseServiceStringAdvice("UNAx+.? '")
	require.NoError(err)
	require.Equal(edifact.DefaultAdvice(), advice)
}

func TestParseServiceStringAdvice_DuplicateSeparators(t *testing.T) {
	tests := []struct {
		description string
		line        string
	}{
		{"separator equals decimal notation", "UNA:++? '"},
		{"separator equals release indicator", "UNA:+.+ '"},
		{"separator equals terminator", "UNA:+.? +"},
		{"decimal equals release indicator", "UNA:+.. '"},
		{"decimal equals terminator", "UNA:+.? ."},
		{"release indicator equals terminator", "UNA:+.? ?"},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		_, err := ParseServiceStringAdvice(test.line)
		require.ErrorIs(t, err, edifact.ErrDuplicateSeparator)
	}
}

func TestParseServiceStringAdvice_Malformed(t *testing.T) {
	tests := []struct {
		description string
		line        string
	}{
		{"empty line", ""},
		{"too short", "UNA:+.? "},
		{"trailing bytes", "UNA:+.? ''"},
		{"wrong tag", "UNB:+.? '"},
		{"lower-case tag", "una:+.? '"},
		{"missing space in repetition position", "UNA:+.?x'"},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		_, err := ParseServiceStringAdvice(test.line)
		require.ErrorIs(t, err, edifact.ErrMalformedAdvice)
	}
}
