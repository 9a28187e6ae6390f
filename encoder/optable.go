package encoder

import (
	"fmt"

	"github.com/zarchlab/s390x/cpu"
)

// assembleFunc packs one instruction's bits, left-justified within its byte
// length, appending fixups for any deferred fields.
type assembleFunc func(inst *Instruction, fixups *[]Fixup) (uint64, error)

// formatEntry is one row of the opcode layout table: the instruction's byte
// length and the routine assembling its bit pattern.
type formatEntry struct {
	size     int
	assemble assembleFunc
}

// pcRelFunc is one of the PC-relative field encoders from fixup.go.
type pcRelFunc func(inst *Instruction, opNum int, fixups *[]Fixup) (uint64, error)

// optab maps each opcode to its layout, built from the per-format
// constructors below. Read-only after init; safe for concurrent use.
var optab = map[cpu.Opcode]formatEntry{
	cpu.OPLR:    rr(cpu.OPLR),
	cpu.OPAR:    rr(cpu.OPAR),
	cpu.OPL:     rx(cpu.OPL),
	cpu.OPST:    rx(cpu.OPST),
	cpu.OPLA:    rx(cpu.OPLA),
	cpu.OPLG:    rxy(cpu.OPLG),
	cpu.OPSTG:   rxy(cpu.OPSTG),
	cpu.OPLAY:   rxy(cpu.OPLAY),
	cpu.OPLM:    rs(cpu.OPLM),
	cpu.OPSTM:   rs(cpu.OPSTM),
	cpu.OPLMG:   rsy(cpu.OPLMG),
	cpu.OPSTMG:  rsy(cpu.OPSTMG),
	cpu.OPMVC:   ss(cpu.OPMVC),
	cpu.OPCLC:   ss(cpu.OPCLC),
	cpu.OPXC:    ss(cpu.OPXC),
	cpu.OPVL:    vrx(cpu.OPVL),
	cpu.OPVST:   vrx(cpu.OPVST),
	cpu.OPVGEF:  vrv(cpu.OPVGEF),
	cpu.OPBRC:   ri(cpu.OPBRC, pc16DBL),
	cpu.OPBRAS:  ri(cpu.OPBRAS, pc16DBLTLS),
	cpu.OPBRCL:  ril(cpu.OPBRCL, pc32DBL),
	cpu.OPBRASL: ril(cpu.OPBRASL, pc32DBLTLS),
	cpu.OPLARL:  ril(cpu.OPLARL, pc32DBL),
}

// field resolves operand n and checks it against its declared bit width.
func field(inst *Instruction, n, bits int) (uint64, error) {
	v, err := operandValue(inst, n)
	if err != nil {
		return 0, err
	}
	if !fitsUint(v, bits) {
		return 0, fmt.Errorf("%s: operand %d value %d does not fit in %d bits", inst.Op, n, v, bits)
	}
	return v, nil
}

// rr: opcode(8) r1(4) r2(4).
func rr(op cpu.Opcode) formatEntry {
	return formatEntry{size: 2, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		r2, err := field(inst, 1, 4)
		if err != nil {
			return 0, err
		}
		return uint64(op)<<8 | r1<<4 | r2, nil
	}}
}

// rx: opcode(8) r1(4) x2(4) b2(4) d2(12).
func rx(op cpu.Opcode) formatEntry {
	return formatEntry{size: 4, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		addr, err := bdxAddr12(inst, 1)
		if err != nil {
			return 0, err
		}
		return uint64(op)<<24 | r1<<20 | addr, nil
	}}
}

// rxy: opcode(8) r1(4) x2(4) b2(4) dl2(12) dh2(8) opcode2(8).
func rxy(op cpu.Opcode) formatEntry {
	op1, op2 := uint64(op)>>8, uint64(op)&0xff
	return formatEntry{size: 6, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		addr, err := bdxAddr20(inst, 1)
		if err != nil {
			return 0, err
		}
		return op1<<40 | r1<<36 | addr<<8 | op2, nil
	}}
}

// rs: opcode(8) r1(4) r3(4) b2(4) d2(12).
func rs(op cpu.Opcode) formatEntry {
	return formatEntry{size: 4, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		r3, err := field(inst, 1, 4)
		if err != nil {
			return 0, err
		}
		addr, err := bdAddr12(inst, 2)
		if err != nil {
			return 0, err
		}
		return uint64(op)<<24 | r1<<20 | r3<<16 | addr, nil
	}}
}

// rsy: opcode(8) r1(4) r3(4) b2(4) dl2(12) dh2(8) opcode2(8).
func rsy(op cpu.Opcode) formatEntry {
	op1, op2 := uint64(op)>>8, uint64(op)&0xff
	return formatEntry{size: 6, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		r3, err := field(inst, 1, 4)
		if err != nil {
			return 0, err
		}
		addr, err := bdAddr20(inst, 2)
		if err != nil {
			return 0, err
		}
		return op1<<40 | r1<<36 | r3<<32 | addr<<8 | op2, nil
	}}
}

// ss: opcode(8) l(8) b1(4) d1(12) b2(4) d2(12).
func ss(op cpu.Opcode) formatEntry {
	return formatEntry{size: 6, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		dst, err := bdlAddr12(inst, 0)
		if err != nil {
			return 0, err
		}
		src, err := bdAddr12(inst, 3)
		if err != nil {
			return 0, err
		}
		return uint64(op)<<40 | dst<<16 | src, nil
	}}
}

// vrx: opcode(8) v1(4) x2(4) b2(4) d2(12) m3(4) rxb(4) opcode2(8).
// The fifth bit of v1 lives in the rxb extension field.
func vrx(op cpu.Opcode) formatEntry {
	op1, op2 := uint64(op)>>8, uint64(op)&0xff
	return formatEntry{size: 6, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		v1, err := field(inst, 0, 5)
		if err != nil {
			return 0, err
		}
		addr, err := bdxAddr12(inst, 1)
		if err != nil {
			return 0, err
		}
		rxb := (v1 >> 4) << 3
		return op1<<40 | (v1&0xf)<<36 | addr<<16 | rxb<<8 | op2, nil
	}}
}

// vrv: opcode(8) v1(4) v2(4) b2(4) d2(12) m3(4) rxb(4) opcode2(8).
// The fifth bits of v1 and of the vector index go into rxb.
func vrv(op cpu.Opcode) formatEntry {
	op1, op2 := uint64(op)>>8, uint64(op)&0xff
	return formatEntry{size: 6, assemble: func(inst *Instruction, _ *[]Fixup) (uint64, error) {
		v1, err := field(inst, 0, 5)
		if err != nil {
			return 0, err
		}
		addr, err := bdvAddr12(inst, 1)
		if err != nil {
			return 0, err
		}
		m3, err := field(inst, 4, 4)
		if err != nil {
			return 0, err
		}
		rxb := (v1>>4)<<3 | (addr>>20)<<2
		return op1<<40 | (v1&0xf)<<36 | (addr&0xfffff)<<16 | m3<<12 | rxb<<8 | op2, nil
	}}
}

// ri: opcode(8) r1(4) opcode2(4) ri2(16), ri2 PC-relative.
func ri(op cpu.Opcode, pcRel pcRelFunc) formatEntry {
	op1, op2 := uint64(op)>>4, uint64(op)&0xf
	return formatEntry{size: 4, assemble: func(inst *Instruction, fixups *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		target, err := pcRel(inst, 1, fixups)
		if err != nil {
			return 0, err
		}
		return op1<<24 | r1<<20 | op2<<16 | target&0xffff, nil
	}}
}

// ril: opcode(8) r1(4) opcode2(4) ri2(32), ri2 PC-relative.
func ril(op cpu.Opcode, pcRel pcRelFunc) formatEntry {
	op1, op2 := uint64(op)>>4, uint64(op)&0xf
	return formatEntry{size: 6, assemble: func(inst *Instruction, fixups *[]Fixup) (uint64, error) {
		r1, err := field(inst, 0, 4)
		if err != nil {
			return 0, err
		}
		target, err := pcRel(inst, 1, fixups)
		if err != nil {
			return 0, err
		}
		return op1<<40 | r1<<36 | op2<<32 | target&0xffffffff, nil
	}}
}
