package edifact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLevelA(t *testing.T) {
	require := require.New(t)

	for ch := byte('A'); ch <= 'Z'; ch++ {
		require.Truef(IsLevelA(ch), "%q should be Level A", ch)
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		require.Truef(IsLevelA(ch), "%q should be Level A", ch)
	}
	for _, ch := range []byte{' ', '.', ',', '-', '(', ')', '/', '='} {
		require.Truef(IsLevelA(ch), "%q should be Level A", ch)
	}

	for _, ch := range []byte{'a', 'z', '!', '"', '%', '&', '*', ';', '<', '>'} {
		require.Falsef(IsLevelA(ch), "%q should not be Level A", ch)
	}
	for _, ch := range []byte{'+', ':', '?', '\'', '\n', 0x00, '|', '~', '@', '#'} {
		require.Falsef(IsLevelA(ch), "%q should not be Level A", ch)
	}
}

func TestIsLevelB(t *testing.T) {
	require := require.New(t)

	// Level B is a superset of Level A.
	for ch := 0; ch < 256; ch++ {
		if IsLevelA(byte(ch)) {
			require.Truef(IsLevelB(byte(ch)), "%q should be Level B", byte(ch))
		}
	}

	for ch := byte('a'); ch <= 'z'; ch++ {
		require.Truef(IsLevelB(ch), "%q should be Level B", ch)
	}
	for _, ch := range []byte{'!', '"', '%', '&', '*', ';', '<', '>'} {
		require.Truef(IsLevelB(ch), "%q should be Level B", ch)
	}

	// The service characters stay outside both levels so fields stop at
	// them naturally.
	for _, ch := range []byte{'+', ':', '?', '\''} {
		require.Falsef(IsLevelB(ch), "%q should not be Level B", ch)
	}
}

func TestIsDigitAndIsUpperAlpha(t *testing.T) {
	require := require.New(t)

	require.True(IsDigit('0'))
	require.True(IsDigit('9'))
	require.False(IsDigit('/'))
	require.False(IsDigit(':'))

	require.True(IsUpperAlpha('A'))
	require.True(IsUpperAlpha('Z'))
	require.False(IsUpperAlpha('@'))
	require.False(IsUpperAlpha('['))
	require.False(IsUpperAlpha('a'))
}
