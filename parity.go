package bitcheck

import "math/bits"

// Parity8 returns the bit parity of a single byte:
// 1 for odd parity, 0 for even.
func Parity8(x uint8) int {
	return bits.OnesCount8(x) & 1
}

// ParityBytes returns the bit parity of all bytes of data:
// 1 for odd parity, 0 for even.
// Empty data returns 0.
func ParityBytes(data []byte) int {
	var p int
	for _, b := range data {
		p ^= Parity8(b)
	}

	return p
}

// XorBytes returns the bytewise XOR of data, i.e. the per-bit-position
// parity across the buffer.
// Empty data returns 0.
func XorBytes(data []byte) uint8 {
	var x uint8
	for _, b := range data {
		x ^= b
	}

	return x
}

// AddBytes returns the sum of all bytes of data,
// widened so the supported buffer lengths cannot overflow.
// Empty data returns 0.
func AddBytes(data []byte) int {
	var sum int
	for _, b := range data {
		sum += int(b)
	}

	return sum
}
