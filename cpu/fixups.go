package cpu

import "fmt"

// FixupKind identifies the relocation semantics of a deferred instruction
// field: which bits to patch and how the resolved value is scaled.
type FixupKind int

const (
	// FixupPC16DBL is a 16-bit PC-relative field counted in 2-byte doublewords.
	FixupPC16DBL FixupKind = iota
	// FixupPC32DBL is a 32-bit PC-relative field counted in 2-byte doublewords.
	FixupPC32DBL
	// FixupTLSCall marks a call site that needs thread-local-storage
	// relocation handling at link time. It patches no bits itself.
	FixupTLSCall
)

// Bits returns the width of the patched field in bits, or 0 for marker kinds.
func (k FixupKind) Bits() int {
	switch k {
	case FixupPC16DBL:
		return 16
	case FixupPC32DBL:
		return 32
	}
	return 0
}

// PCRel reports whether the resolved value is relative to the fixup location.
func (k FixupKind) PCRel() bool {
	return k == FixupPC16DBL || k == FixupPC32DBL
}

// String returns the relocation name of the fixup kind.
func (k FixupKind) String() string {
	switch k {
	case FixupPC16DBL:
		return "PC16DBL"
	case FixupPC32DBL:
		return "PC32DBL"
	case FixupTLSCall:
		return "TLS_CALL"
	}
	return fmt.Sprintf("fixup(%d)", int(k))
}
