package bitcheck

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// ReadBits returns the n-bit big-endian field of data that starts at bit
// offset off, where offset 0 is the MSB of data[0]. Checksum fields of
// bit-framed protocols are rarely byte-aligned; decoders use ReadBits to
// extract the transmitted value they compare a computed digest against.
//
// n = 0 returns 0. It fails with ErrInvalidBitCount if n exceeds 64, and
// with ErrInvalidLength if the field runs past the end of data.
func ReadBits(data []byte, off, n uint) (uint64, error) {
	if n > 64 {
		return 0, fmt.Errorf("bitcheck.ReadBits: reading %d bits into a uint64: %w", n, ErrInvalidBitCount)
	}
	if uint64(off)+uint64(n) > uint64(len(data))*8 {
		return 0, fmt.Errorf("bitcheck.ReadBits: %d bit field at offset %d in a %d byte buffer: %w", n, off, len(data), ErrInvalidLength)
	}

	r := bitio.NewReader(bytes.NewReader(data))
	for skip := off; skip > 0; {
		c := skip
		if c > 64 {
			c = 64
		}
		if _, err := r.ReadBits(uint8(c)); err != nil {
			return 0, fmt.Errorf("bitcheck.ReadBits: skipping to offset %d: %w", off, err)
		}
		skip -= c
	}

	if n == 0 {
		return 0, nil
	}

	v, err := r.ReadBits(uint8(n))
	if err != nil {
		return 0, fmt.Errorf("bitcheck.ReadBits: reading %d bits at offset %d: %w", n, off, err)
	}

	return v, nil
}
