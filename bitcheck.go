// Package bitcheck provides bit- and byte-oriented integrity-check
// primitives for decoders of noisy, bit-framed signals such as radio
// protocol payloads.
//
// The package covers the checksum families such protocols actually use:
// generic polynomial CRCs of 4, 7, 8 and 16 bit width in both normal
// (MSB-first) and reflected (LSB-first) bit order, LFSR-based Toeplitz-hash
// digests, and plain parity/XOR/sum checks, together with the bit reversal
// helpers needed to move between the two bit orders.
//
// Every function is a pure transform over caller-owned input; no state is
// carried between calls and no function touches process-wide state, so all
// of them are safe for concurrent use on disjoint buffers. ReflectBytes is
// the single exception to read-only input: it reverses bit order in place
// and needs exclusive access to its buffer for the duration of the call.
//
// None of the checksums are cryptographic and no such strength is claimed.
package bitcheck

import "errors"

var (
	// ErrInvalidLength reports a declared byte or bit span that does not
	// fit in the supplied buffer.
	ErrInvalidLength = errors.New("bitcheck: span exceeds the buffer")
	// ErrInvalidBitCount reports a digest or field width over more bits
	// than the input value can hold.
	ErrInvalidBitCount = errors.New("bitcheck: bit count exceeds the input width")
)
