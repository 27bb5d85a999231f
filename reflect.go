package bitcheck

import "fmt"

// Reverse8 returns x with the order of its bits reversed,
// i.e. bit i of the result is bit 7-i of x.
// Reverse8 is its own inverse.
func Reverse8(x uint8) uint8 {
	x = x&0xF0>>4 | x&0x0F<<4
	x = x&0xCC>>2 | x&0x33<<2
	x = x&0xAA>>1 | x&0x55<<1
	return x
}

// Reverse16 returns x with the order of its 16 bits reversed, e.g. the
// reflected form of a 16-bit polynomial: Reverse16(0x8005) == 0xA001.
// Reverse16 is its own inverse.
func Reverse16(x uint16) uint16 {
	return uint16(Reverse8(uint8(x)))<<8 | uint16(Reverse8(uint8(x>>8)))
}

// ReflectBytes replaces each of the first n bytes of buf with its
// bit-reversed value, in place, preserving byte order.
// n = 0 is a no-op.
// It fails with ErrInvalidLength before touching
// the buffer if buf holds fewer than n bytes.
func ReflectBytes(buf []byte, n int) error {
	if n < 0 || n > len(buf) {
		return fmt.Errorf("bitcheck.ReflectBytes: reflecting %d of %d bytes: %w", n, len(buf), ErrInvalidLength)
	}

	for i := 0; i < n; i++ {
		buf[i] = Reverse8(buf[i])
	}

	return nil
}
