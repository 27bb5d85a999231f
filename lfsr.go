package bitcheck

import "fmt"

// The digests below are keyed linear hashes over GF(2): a generator rolls
// an initial key through an LFSR, and the key stream is XOR-accumulated
// into the sum wherever the corresponding message bit is set. This is the
// multiplication by a Toeplitz matrix some radio protocols specify instead
// of a textbook CRC; the feedback polynomial acts on the key stream,
// decoupled from the message content, rather than on a running remainder.
//
// One key schedule step drops the LSB of the key: shift right, and XOR with
// gen when the dropped bit was 1. For the LFSR to roll over, gen must
// include the MSB, which feeds the dropped bit back in at the top; no
// normalization of gen is performed here.

// LFSRDigest8 returns the 8-bit LFSR-based Toeplitz hash of data,
// consuming message bits MSB-first within each byte.
// gen drives the key schedule and key seeds it.
// Empty data returns 0.
func LFSRDigest8(data []byte, gen, key uint8) uint8 {
	var sum uint8
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			if b>>uint(i)&1 != 0 {
				sum ^= key
			}
			if key&1 != 0 {
				key = key>>1 ^ gen
			} else {
				key >>= 1
			}
		}
	}

	return sum
}

// LFSRDigest16 returns the 16-bit LFSR-based Toeplitz hash of the bits-wide
// field held LSB-aligned in data, consuming bits from bit bits-1 down to
// bit 0 with the same key schedule as LFSRDigest8.
// bits = 0 returns 0.
// It fails with ErrInvalidBitCount if bits is negative or exceeds
// the 32 bits data can hold.
func LFSRDigest16(data uint32, bits int, gen, key uint16) (uint16, error) {
	if bits < 0 || bits > 32 {
		return 0, fmt.Errorf("bitcheck.LFSRDigest16: digesting %d of 32 bits: %w", bits, ErrInvalidBitCount)
	}

	var sum uint16
	for bit := bits - 1; bit >= 0; bit-- {
		if data>>uint(bit)&1 != 0 {
			sum ^= key
		}
		if key&1 != 0 {
			key = key>>1 ^ gen
		} else {
			key >>= 1
		}
	}

	return sum, nil
}
