package cpu

// AppendBytes appends the low size bytes of bits to dst in big-endian order,
// most significant byte first. size must be between 1 and 8.
func AppendBytes(dst []byte, bits uint64, size int) []byte {
	for shift := (size - 1) * 8; shift >= 0; shift -= 8 {
		dst = append(dst, byte(bits>>shift))
	}
	return dst
}

// BitsFromBytes interprets b as a big-endian integer. Bytes beyond the
// eighth are ignored.
func BitsFromBytes(b []byte) uint64 {
	if len(b) > 8 {
		b = b[:8]
	}
	var bits uint64
	for _, c := range b {
		bits = bits<<8 | uint64(c)
	}
	return bits
}
