package cpu

import "fmt"

// Opcode identifies an instruction. The constant value is the instruction's
// opcode byte pattern: one byte for the short formats, the primary and
// extended opcode bytes for the six-byte formats, and the primary byte plus
// opcode nibble for the relative-branch formats.
type Opcode uint16

// Opcodes for the supported instruction subset.
const (
	// Register-register
	OPLR Opcode = 0x18 // LR - load (32-bit)
	OPAR Opcode = 0x1A // AR - add (32-bit)

	// Register + indexed address, 12-bit displacement
	OPL  Opcode = 0x58 // L - load (32-bit)
	OPST Opcode = 0x50 // ST - store (32-bit)
	OPLA Opcode = 0x41 // LA - load address

	// Register + indexed address, 20-bit displacement
	OPLG  Opcode = 0xE304 // LG - load (64-bit)
	OPSTG Opcode = 0xE324 // STG - store (64-bit)
	OPLAY Opcode = 0xE371 // LAY - load address (long displacement)

	// Register range + address, 12-bit displacement
	OPLM  Opcode = 0x98 // LM - load multiple (32-bit)
	OPSTM Opcode = 0x90 // STM - store multiple (32-bit)

	// Register range + address, 20-bit displacement
	OPLMG  Opcode = 0xEB04 // LMG - load multiple (64-bit)
	OPSTMG Opcode = 0xEB24 // STMG - store multiple (64-bit)

	// Storage-storage with length
	OPMVC Opcode = 0xD2 // MVC - move characters
	OPCLC Opcode = 0xD5 // CLC - compare logical characters
	OPXC  Opcode = 0xD7 // XC - exclusive-or characters

	// Vector load/store, register index
	OPVL  Opcode = 0xE706 // VL - vector load
	OPVST Opcode = 0xE70E // VST - vector store

	// Vector gather, vector index
	OPVGEF Opcode = 0xE713 // VGEF - vector gather element (32-bit)

	// Relative branches, 16-bit doubleword-scaled target
	OPBRC  Opcode = 0xA74 // BRC - branch relative on condition
	OPBRAS Opcode = 0xA75 // BRAS - branch relative and save

	// Relative branches, 32-bit doubleword-scaled target
	OPBRCL  Opcode = 0xC04 // BRCL - branch relative on condition long
	OPBRASL Opcode = 0xC05 // BRASL - branch relative and save long
	OPLARL  Opcode = 0xC00 // LARL - load address relative long
)

var opcodeNames = map[Opcode]string{
	OPLR:    "lr",
	OPAR:    "ar",
	OPL:     "l",
	OPST:    "st",
	OPLA:    "la",
	OPLG:    "lg",
	OPSTG:   "stg",
	OPLAY:   "lay",
	OPLM:    "lm",
	OPSTM:   "stm",
	OPLMG:   "lmg",
	OPSTMG:  "stmg",
	OPMVC:   "mvc",
	OPCLC:   "clc",
	OPXC:    "xc",
	OPVL:    "vl",
	OPVST:   "vst",
	OPVGEF:  "vgef",
	OPBRC:   "brc",
	OPBRAS:  "bras",
	OPBRCL:  "brcl",
	OPBRASL: "brasl",
	OPLARL:  "larl",
}

// String returns the instruction mnemonic.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("opcode(%#x)", uint16(op))
}
