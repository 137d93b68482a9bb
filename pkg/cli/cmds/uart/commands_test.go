package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	data, err := ParseBytes([]string{"99", "0x24", "7F"})
	require.NoError(t, err)
	require.Equal(t, []byte{0x99, 0x24, 0x7f}, data)

	_, err = ParseBytes([]string{"100"})
	require.Error(t, err)
	_, err = ParseBytes([]string{"zz"})
	require.Error(t, err)
}

func TestParseUint7(t *testing.T) {
	vals, err := parseUint7([]string{"36", "0x64"}, "NOTE", "VELOCITY")
	require.NoError(t, err)
	require.Equal(t, []byte{36, 100}, vals)

	_, err = parseUint7([]string{"128", "1"}, "NOTE", "VELOCITY")
	require.Error(t, err)
	_, err = parseUint7([]string{"36"}, "NOTE", "VELOCITY")
	require.Error(t, err)

	ch, err := parseChannel("10")
	require.NoError(t, err)
	require.Equal(t, byte(9), ch)
	_, err = parseChannel("0")
	require.Error(t, err)
}
