package encoder

import (
	"fmt"

	"github.com/zarchlab/s390x/cpu"
)

// EncodedInstruction is the binary form of one instruction together with the
// fixups a downstream object writer must apply during final layout. Fixup
// offsets are relative to the start of the instruction.
type EncodedInstruction struct {
	Bytes  []byte
	Fixups []Fixup
}

// Encoder turns fully-formed instructions into machine code. It holds no
// per-call state, so one Encoder may be shared across goroutines.
type Encoder struct{}

// New creates a new Encoder instance.
func New() *Encoder {
	return &Encoder{}
}

// Size returns the byte length of op's encoding.
func Size(op cpu.Opcode) (int, error) {
	entry, ok := optab[op]
	if !ok {
		return 0, fmt.Errorf("unknown opcode %s", op)
	}
	return entry.size, nil
}

// Encode converts one instruction into its byte sequence and fixup list.
// An error means the instruction violates the opcode table's operand
// contract; it indicates a bug in the instruction builder, not a condition
// the caller can recover from.
func (e *Encoder) Encode(inst *Instruction) (*EncodedInstruction, error) {
	entry, ok := optab[inst.Op]
	if !ok {
		return nil, fmt.Errorf("unknown opcode %s", inst.Op)
	}

	enc := &EncodedInstruction{}
	bits, err := entry.assemble(inst, &enc.Fixups)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", inst.Op, err)
	}
	enc.Bytes = cpu.AppendBytes(nil, bits, entry.size)
	return enc, nil
}

// EncodeProgram encodes a sequence of instructions into one byte stream,
// rebasing each fixup's offset from its instruction to the stream.
func (e *Encoder) EncodeProgram(insts []*Instruction) ([]byte, []Fixup, error) {
	var code []byte
	var fixups []Fixup
	for i, inst := range insts {
		enc, err := e.Encode(inst)
		if err != nil {
			return nil, nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		for _, f := range enc.Fixups {
			f.Offset += len(code)
			fixups = append(fixups, f)
		}
		code = append(code, enc.Bytes...)
	}
	return code, fixups, nil
}
