package encoder

import "fmt"

// addrMode describes one base-displacement addressing form: the width and
// signedness of its displacement, the width of the optional third field
// (index, length or vector index), and the bit-packing formula. The operands
// always arrive in the order base, displacement, then the third field.
type addrMode struct {
	name      string
	dispBits  int  // 12 (unsigned) or 20 (signed)
	extraBits int  // 0 when the mode has no third operand
	length    bool // third operand is a length, stored as length-1
	pack      func(base, disp, extra uint64) uint64
}

// A 20-bit displacement is stored as two discontiguous sub-fields: the low 12
// bits next to the base, the high 8 bits elsewhere in the word.
func splitDisp20(disp uint64) uint64 {
	return (disp&0xfff)<<8 | (disp&0xff000)>>12
}

var (
	modeBD12 = addrMode{
		name:     "bd12",
		dispBits: 12,
		pack: func(base, disp, _ uint64) uint64 {
			return base<<12 | disp
		},
	}
	modeBD20 = addrMode{
		name:     "bd20",
		dispBits: 20,
		pack: func(base, disp, _ uint64) uint64 {
			return base<<20 | splitDisp20(disp)
		},
	}
	modeBDX12 = addrMode{
		name:      "bdx12",
		dispBits:  12,
		extraBits: 4,
		pack: func(base, disp, index uint64) uint64 {
			return index<<16 | base<<12 | disp
		},
	}
	modeBDX20 = addrMode{
		name:      "bdx20",
		dispBits:  20,
		extraBits: 4,
		pack: func(base, disp, index uint64) uint64 {
			return index<<24 | base<<20 | splitDisp20(disp)
		},
	}
	modeBDL12 = addrMode{
		name:      "bdl12",
		dispBits:  12,
		extraBits: 8,
		length:    true,
		pack: func(base, disp, length uint64) uint64 {
			return length<<16 | base<<12 | disp
		},
	}
	modeBDV12 = addrMode{
		name:      "bdv12",
		dispBits:  12,
		extraBits: 5,
		pack: func(base, disp, index uint64) uint64 {
			return index<<16 | base<<12 | disp
		},
	}
)

func fitsUint(v uint64, bits int) bool {
	return v>>bits == 0
}

func fitsInt(v uint64, bits int) bool {
	s := int64(v)
	return s >= -(int64(1)<<(bits-1)) && s < int64(1)<<(bits-1)
}

// addressEncoding resolves the mode's operands starting at opNum and packs
// them into one address field. A value outside its field width means the
// opcode table and the instruction builder disagree about operand ranges;
// that is reported as an error, never masked.
func addressEncoding(inst *Instruction, opNum int, mode *addrMode) (uint64, error) {
	base, err := operandValue(inst, opNum)
	if err != nil {
		return 0, err
	}
	if !fitsUint(base, 4) {
		return 0, fmt.Errorf("%s: base register %d does not fit in 4 bits", mode.name, base)
	}

	disp, err := operandValue(inst, opNum+1)
	if err != nil {
		return 0, err
	}
	if mode.dispBits == 20 {
		if !fitsInt(disp, 20) {
			return 0, fmt.Errorf("%s: displacement %d outside signed 20-bit range", mode.name, int64(disp))
		}
		disp &= 0xfffff
	} else if !fitsUint(disp, 12) {
		return 0, fmt.Errorf("%s: displacement %d does not fit in 12 bits", mode.name, disp)
	}

	var extra uint64
	if mode.extraBits > 0 {
		extra, err = operandValue(inst, opNum+2)
		if err != nil {
			return 0, err
		}
		if mode.length {
			// The hardware field holds length-1 so a zero field means one.
			if extra == 0 || !fitsUint(extra-1, mode.extraBits) {
				return 0, fmt.Errorf("%s: length %d out of range 1-%d", mode.name, int64(extra), 1<<mode.extraBits)
			}
			extra--
		} else if !fitsUint(extra, mode.extraBits) {
			return 0, fmt.Errorf("%s: index register %d does not fit in %d bits", mode.name, extra, mode.extraBits)
		}
	}

	return mode.pack(base, disp, extra), nil
}

// The six addressing forms, as consumed by the opcode table.

func bdAddr12(inst *Instruction, opNum int) (uint64, error) {
	return addressEncoding(inst, opNum, &modeBD12)
}

func bdAddr20(inst *Instruction, opNum int) (uint64, error) {
	return addressEncoding(inst, opNum, &modeBD20)
}

func bdxAddr12(inst *Instruction, opNum int) (uint64, error) {
	return addressEncoding(inst, opNum, &modeBDX12)
}

func bdxAddr20(inst *Instruction, opNum int) (uint64, error) {
	return addressEncoding(inst, opNum, &modeBDX20)
}

func bdlAddr12(inst *Instruction, opNum int) (uint64, error) {
	return addressEncoding(inst, opNum, &modeBDL12)
}

func bdvAddr12(inst *Instruction, opNum int) (uint64, error) {
	return addressEncoding(inst, opNum, &modeBDV12)
}
