// Package bits provides bit and byte-lane helpers for 8 and 16-bit
// hardware values.
package bits

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets the bit at the given index when v is true,
// and resets it otherwise.
func Assign(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Hi returns bits 15-8 of w.
func Hi(w uint16) uint8 {
	return uint8(w >> 8)
}

// Lo returns bits 7-0 of w.
func Lo(w uint16) uint8 {
	return uint8(w)
}

// Join combines a high and low byte into a 16-bit value.
func Join(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// WithHi replaces bits 15-8 of w with hi.
func WithHi(w uint16, hi uint8) uint16 {
	return w&0x00FF | uint16(hi)<<8
}

// WithLo replaces bits 7-0 of w with lo.
func WithLo(w uint16, lo uint8) uint16 {
	return w&0xFF00 | uint16(lo)
}
