package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendBytesBigEndian(t *testing.T) {
	tests := []struct {
		bits uint64
		size int
		want []byte
	}{
		{0x1812, 2, []byte{0x18, 0x12}},
		{0x5813B123, 4, []byte{0x58, 0x13, 0xB1, 0x23}},
		{0xE34323451204, 6, []byte{0xE3, 0x43, 0x23, 0x45, 0x12, 0x04}},
		{0xFF, 1, []byte{0xFF}},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, AppendBytes(nil, tc.bits, tc.size))
	}
}

func TestAppendBytesExtendsDst(t *testing.T) {
	dst := AppendBytes([]byte{0xAA}, 0x1812, 2)
	require.Equal(t, []byte{0xAA, 0x18, 0x12}, dst)
}

func TestBitsFromBytesRoundTrip(t *testing.T) {
	for _, bits := range []uint64{0, 0x18, 0x5813B123, 0xE34323451204} {
		for size := 6; size <= 8; size++ {
			require.Equal(t, bits, BitsFromBytes(AppendBytes(nil, bits, size)))
		}
	}
}
