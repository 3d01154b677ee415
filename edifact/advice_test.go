package edifact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAdvice(t *testing.T) {
	require := require.New(t)

	advice := DefaultAdvice()
	require.Equal(byte('+'), advice.DataElementSeparator)
	require.Equal(byte('.'), advice.DecimalNotation)
	require.Equal(byte('?'), advice.ReleaseIndicator)
	require.Equal(byte('\''), advice.SegmentTerminator)
	require.True(advice.IsCanonical())
	require.NoError(advice.Validate())
}

func TestAdviceValidate(t *testing.T) {
	tests := []struct {
		description string
		advice      ServiceStringAdvice
		wantErr     bool
	}{
		{
			description: "canonical set is distinct",
			advice:      ServiceStringAdvice{'+', '.', '?', '\''},
			wantErr:     false,
		},
		{
			description: "fully custom distinct set",
			advice:      ServiceStringAdvice{'|', ',', '*', '~'},
			wantErr:     false,
		},
		{
			description: "separator equals decimal notation",
			advice:      ServiceStringAdvice{'+', '+', '?', '\''},
			wantErr:     true,
		},
		{
			description: "separator equals release indicator",
			advice:      ServiceStringAdvice{'?', '.', '?', '\''},
			wantErr:     true,
		},
		{
			description: "decimal notation equals terminator",
			advice:      ServiceStringAdvice{'+', '\'', '?', '\''},
			wantErr:     true,
		},
		{
			description: "release indicator equals terminator",
			advice:      ServiceStringAdvice{'+', '.', '~', '~'},
			wantErr:     true,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		err := test.advice.Validate()
		if test.wantErr {
			require.ErrorIs(t, err, ErrDuplicateSeparator)
		} else {
			require.NoError(t, err)
		}
	}
}

func TestAdviceString(t *testing.T) {
	require := require.New(t)

	require.Equal("UNA:+.? '", DefaultAdvice().String())
	require.Equal("UNA:|,* ~", ServiceStringAdvice{'|', ',', '*', '~'}.String())
}
