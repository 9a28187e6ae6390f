package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zarchlab/s390x/cpu"
)

// addrOperands builds a throwaway instruction whose operand list starts at
// index 0, so the mode encoders can be driven directly.
func addrOperands(ops ...Operand) *Instruction {
	return Inst(cpu.OPL, ops...)
}

func TestBDAddr12Packing(t *testing.T) {
	tests := []struct {
		name string
		base cpu.Register
		disp int64
		want uint64
	}{
		{"Example", cpu.R5, 10, 0x500A},
		{"Zero", cpu.R0, 0, 0x0000},
		{"Max", cpu.R15, 0xFFF, 0xFFFF},
		{"BaseOnly", cpu.R8, 0, 0x8000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bdAddr12(addrOperands(Reg(tc.base), Imm(tc.disp)), 0)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestBDAddr12RoundTrip(t *testing.T) {
	for base := int64(0); base < 16; base++ {
		for _, disp := range []int64{0, 1, 0x123, 0x7FF, 0xFFE, 0xFFF} {
			got, err := bdAddr12(addrOperands(Imm(base), Imm(disp)), 0)
			require.NoError(t, err)
			require.Equal(t, uint64(base), got>>12)
			require.Equal(t, uint64(disp), got&0xFFF)
		}
	}
}

func TestBDAddr20SplitDisp(t *testing.T) {
	got, err := bdAddr20(addrOperands(Reg(cpu.R5), Imm(0x12345)), 0)
	require.NoError(t, err)
	// high byte 0x12 lands in the low 8 bits, low 12 bits next to the base
	require.Equal(t, uint64(0x534512), got)
}

func TestBDAddr20RoundTrip(t *testing.T) {
	for base := int64(0); base < 16; base++ {
		for _, disp := range []int64{0, 1, -1, 0x7FF, -0x800, 0x12345, 0x7FFFF, -0x80000} {
			got, err := bdAddr20(addrOperands(Imm(base), Imm(disp)), 0)
			require.NoError(t, err)
			require.Equal(t, uint64(base), got>>20)
			low := (got >> 8) & 0xFFF
			high := got & 0xFF
			require.Equal(t, uint64(disp)&0xFFFFF, high<<12|low, "disp %#x", disp)
		}
	}
}

func TestBDXAddr12Packing(t *testing.T) {
	got, err := bdxAddr12(addrOperands(Reg(cpu.R2), Imm(0x123), Reg(cpu.R3)), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(3<<16|2<<12|0x123), got)
}

func TestBDXAddr20Packing(t *testing.T) {
	got, err := bdxAddr20(addrOperands(Reg(cpu.R2), Imm(0x12345), Reg(cpu.R3)), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(3<<24|2<<20|0x345<<8|0x12), got)
}

func TestBDLAddr12Length(t *testing.T) {
	tests := []struct {
		length  int64
		want    uint64
		wantErr bool
	}{
		{1, 0x000000, false},
		{2, 0x010000, false},
		{16, 0x0F0000, false},
		{256, 0xFF0000, false},
		{0, 0, true},
		{257, 0, true},
		{-1, 0, true},
	}
	for _, tc := range tests {
		got, err := bdlAddr12(addrOperands(Reg(cpu.R0), Imm(0), Imm(tc.length)), 0)
		if tc.wantErr {
			require.Error(t, err, "length %d", tc.length)
			continue
		}
		require.NoError(t, err, "length %d", tc.length)
		require.Equal(t, tc.want, got, "length %d", tc.length)
	}
}

func TestBDVAddr12Packing(t *testing.T) {
	// vector index fields are 5 bits wide
	got, err := bdvAddr12(addrOperands(Reg(cpu.R4), Imm(0x123), Reg(cpu.V19)), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(19<<16|4<<12|0x123), got)

	_, err = bdvAddr12(addrOperands(Reg(cpu.R4), Imm(0x123), Imm(32)), 0)
	require.Error(t, err)
}

func TestBaseRegisterOverflow(t *testing.T) {
	// base=16 must fail in every mode, never be masked to 4 bits
	modes := map[string]func(*Instruction, int) (uint64, error){
		"bd12":  bdAddr12,
		"bd20":  bdAddr20,
		"bdx12": bdxAddr12,
		"bdx20": bdxAddr20,
		"bdl12": bdlAddr12,
		"bdv12": bdvAddr12,
	}
	for name, encode := range modes {
		t.Run(name, func(t *testing.T) {
			_, err := encode(addrOperands(Imm(16), Imm(0), Imm(1)), 0)
			require.Error(t, err)
			require.Contains(t, err.Error(), "base register")
		})
	}
}

func TestDisplacementOverflow(t *testing.T) {
	_, err := bdAddr12(addrOperands(Reg(cpu.R1), Imm(0x1000)), 0)
	require.Error(t, err)

	_, err = bdAddr12(addrOperands(Reg(cpu.R1), Imm(-1)), 0)
	require.Error(t, err)

	_, err = bdAddr20(addrOperands(Reg(cpu.R1), Imm(1<<19)), 0)
	require.Error(t, err)

	_, err = bdAddr20(addrOperands(Reg(cpu.R1), Imm(-(1<<19)-1)), 0)
	require.Error(t, err)

	_, err = bdxAddr12(addrOperands(Reg(cpu.R1), Imm(0), Imm(16)), 0)
	require.Error(t, err)
}

func TestAddressRejectsExpression(t *testing.T) {
	_, err := bdAddr12(addrOperands(Reg(cpu.R1), Sym(Symbol("x"))), 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected operand kind")
}
