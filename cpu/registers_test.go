package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterEncoding(t *testing.T) {
	tests := []struct {
		reg  Register
		want uint64
	}{
		{R0, 0},
		{R15, 15},
		{F0, 0},
		{F15, 15},
		{V0, 0},
		{V17, 17},
		{V31, 31},
	}
	for _, tc := range tests {
		got, err := Encoding(tc.reg)
		require.NoError(t, err, "register %s", tc.reg)
		require.Equal(t, tc.want, got, "register %s", tc.reg)
	}
}

func TestRegisterEncodingInvalid(t *testing.T) {
	_, err := Encoding(Register(200))
	require.Error(t, err)
}

func TestRegisterString(t *testing.T) {
	require.Equal(t, "r5", R5.String())
	require.Equal(t, "f10", F10.String())
	require.Equal(t, "v31", V31.String())
}
