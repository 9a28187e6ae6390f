package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixupKindProperties(t *testing.T) {
	require.Equal(t, 16, FixupPC16DBL.Bits())
	require.Equal(t, 32, FixupPC32DBL.Bits())
	require.Equal(t, 0, FixupTLSCall.Bits())

	require.True(t, FixupPC16DBL.PCRel())
	require.True(t, FixupPC32DBL.PCRel())
	require.False(t, FixupTLSCall.PCRel())
}

func TestFixupKindString(t *testing.T) {
	require.Equal(t, "PC16DBL", FixupPC16DBL.String())
	require.Equal(t, "PC32DBL", FixupPC32DBL.String())
	require.Equal(t, "TLS_CALL", FixupTLSCall.String())
}

func TestOpcodeString(t *testing.T) {
	require.Equal(t, "mvc", OPMVC.String())
	require.Equal(t, "brasl", OPBRASL.String())
	require.Equal(t, "opcode(0xffff)", Opcode(0xFFFF).String())
}
