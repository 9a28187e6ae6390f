package encoder

import (
	"fmt"

	"github.com/zarchlab/s390x/cpu"
)

// Fixup records an instruction field whose final value is resolved at link or
// load time: the byte offset of the field within the instruction, the
// expression producing the value, and the relocation semantics to apply.
type Fixup struct {
	Offset int
	Expr   *Expr
	Kind   cpu.FixupKind
}

func (f Fixup) String() string {
	return fmt.Sprintf("%s@%d -> %s", f.Kind, f.Offset, f.Expr)
}

// pcRelEncoding appends a PC-relative fixup of the given kind for operand
// opNum, whose field sits offset bytes into the instruction. The operand
// value is relative to the start of the instruction while the relocation is
// applied relative to the field itself, so offset is folded into the
// expression to cancel the difference; the fixup's addend stays zero because
// the object writer is add-explicit. The returned in-place field value is
// always 0. With allowTLS set and a trailing operand present, that operand's
// expression is emitted as a TLS call marker fixup at offset 0.
func pcRelEncoding(inst *Instruction, opNum int, kind cpu.FixupKind, offset int64, allowTLS bool, fixups *[]Fixup) (uint64, error) {
	if opNum >= len(inst.Operands) {
		return 0, fmt.Errorf("%s: missing operand %d", inst.Op, opNum)
	}

	var expr *Expr
	switch op := inst.Operands[opNum]; op.Kind {
	case KindImmediate:
		expr = Constant(op.Imm + offset)
	case KindExpr:
		expr = op.Expr
		if offset != 0 {
			expr = expr.Add(offset)
		}
	default:
		return 0, fmt.Errorf("%s: operand %d cannot carry a PC-relative fixup", inst.Op, opNum)
	}
	*fixups = append(*fixups, Fixup{Offset: int(offset), Expr: expr, Kind: kind})

	if allowTLS && opNum+1 < len(inst.Operands) {
		marker := inst.Operands[opNum+1]
		if marker.Kind != KindExpr {
			return 0, fmt.Errorf("%s: TLS marker operand must be an expression", inst.Op)
		}
		*fixups = append(*fixups, Fixup{Offset: 0, Expr: marker.Expr, Kind: cpu.FixupTLSCall})
	}
	return 0, nil
}

// The four PC-relative variants used by the opcode table. Every PC-relative
// field this emitter handles sits two bytes into its instruction.

func pc16DBL(inst *Instruction, opNum int, fixups *[]Fixup) (uint64, error) {
	return pcRelEncoding(inst, opNum, cpu.FixupPC16DBL, 2, false, fixups)
}

func pc32DBL(inst *Instruction, opNum int, fixups *[]Fixup) (uint64, error) {
	return pcRelEncoding(inst, opNum, cpu.FixupPC32DBL, 2, false, fixups)
}

func pc16DBLTLS(inst *Instruction, opNum int, fixups *[]Fixup) (uint64, error) {
	return pcRelEncoding(inst, opNum, cpu.FixupPC16DBL, 2, true, fixups)
}

func pc32DBLTLS(inst *Instruction, opNum int, fixups *[]Fixup) (uint64, error) {
	return pcRelEncoding(inst, opNum, cpu.FixupPC32DBL, 2, true, fixups)
}
