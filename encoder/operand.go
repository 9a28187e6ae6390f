package encoder

import (
	"fmt"

	"github.com/zarchlab/s390x/cpu"
)

// OperandKind tags the shapes an operand can take.
type OperandKind int

const (
	// KindRegister is a machine register.
	KindRegister OperandKind = iota
	// KindImmediate is a signed integer constant.
	KindImmediate
	// KindExpr is an unresolved symbolic address expression.
	KindExpr
)

// Operand is one instruction operand. Operands are read-only inputs to
// encoding and are never mutated.
type Operand struct {
	Kind OperandKind
	Reg  cpu.Register
	Imm  int64
	Expr *Expr
}

// Reg creates a register operand.
func Reg(r cpu.Register) Operand {
	return Operand{Kind: KindRegister, Reg: r}
}

// Imm creates an immediate operand.
func Imm(v int64) Operand {
	return Operand{Kind: KindImmediate, Imm: v}
}

// Sym creates a symbolic expression operand.
func Sym(e *Expr) Operand {
	return Operand{Kind: KindExpr, Expr: e}
}

// Instruction is an opcode plus its ordered, fixed-arity operand list.
// It is immutable once constructed.
type Instruction struct {
	Op       cpu.Opcode
	Operands []Operand
}

// Inst builds an instruction from an opcode and its operands.
func Inst(op cpu.Opcode, operands ...Operand) *Instruction {
	return &Instruction{Op: op, Operands: operands}
}

// operandValue returns the raw unsigned bit value of operand n: the hardware
// encoding for registers, the integer value reinterpreted as unsigned for
// immediates. Expressions never take this path; they are handled by the
// PC-relative fixup generator only.
func operandValue(inst *Instruction, n int) (uint64, error) {
	if n >= len(inst.Operands) {
		return 0, fmt.Errorf("%s: missing operand %d", inst.Op, n)
	}
	op := inst.Operands[n]
	switch op.Kind {
	case KindRegister:
		return cpu.Encoding(op.Reg)
	case KindImmediate:
		return uint64(op.Imm), nil
	}
	return 0, fmt.Errorf("%s: unexpected operand kind for operand %d", inst.Op, n)
}
