package cpu

import "fmt"

// Register identifies a machine register. The identifier space is flat;
// Encoding maps it to the 4- or 5-bit number the hardware uses.
type Register uint8

// General-purpose registers.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15 // stack pointer by convention
)

// Floating-point registers.
const (
	F0 Register = iota + 16
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
)

// Vector registers.
const (
	V0 Register = iota + 32
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	V10
	V11
	V12
	V13
	V14
	V15
	V16
	V17
	V18
	V19
	V20
	V21
	V22
	V23
	V24
	V25
	V26
	V27
	V28
	V29
	V30
	V31
)

// Encoding returns the hardware number of r: 0-15 for general and
// floating-point registers, 0-31 for vector registers.
func Encoding(r Register) (uint64, error) {
	switch {
	case r <= R15:
		return uint64(r - R0), nil
	case r >= F0 && r <= F15:
		return uint64(r - F0), nil
	case r >= V0 && r <= V31:
		return uint64(r - V0), nil
	}
	return 0, fmt.Errorf("no hardware encoding for register %d", uint8(r))
}

// String returns the assembler name of the register.
func (r Register) String() string {
	switch {
	case r <= R15:
		return fmt.Sprintf("r%d", r-R0)
	case r >= F0 && r <= F15:
		return fmt.Sprintf("f%d", r-F0)
	case r >= V0 && r <= V31:
		return fmt.Sprintf("v%d", r-V0)
	}
	return fmt.Sprintf("reg(%d)", uint8(r))
}
