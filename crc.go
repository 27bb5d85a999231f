package bitcheck

// The six public CRC variants below share two shift-register cores, one per
// bit order. Protocols are free to define their checksum MSB-first or
// LSB-first; the reflected cores let a digest be computed directly on the
// as-received bit stream without a separate reflection pass over the buffer.
//
// Both cores keep the remainder in a uint16 wide enough for every supported
// width and make the masking explicit at each shift step, so the fixed-width
// overflow behavior is visible rather than implied by a native type.

// crcMSB computes a width-bit CRC consuming message bits MSB-first.
// Sub-byte registers are kept left-aligned to bit 7 so that whole input
// bytes can be folded in at the top; the result is realigned before return.
func crcMSB(data []byte, width uint, poly, init uint16) uint16 {
	var align uint
	if width < 8 {
		align = 8 - width
	}

	regw := width + align // 8 or 16
	mask := ^uint16(0) >> (16 - regw)
	top := uint16(1) << (regw - 1)
	gen := poly << align & mask
	rem := init << align & mask
	for _, b := range data {
		rem ^= uint16(b) << (regw - 8)
		for bit := 0; bit < 8; bit++ {
			if rem&top != 0 {
				rem = (rem<<1 ^ gen) & mask
			} else {
				rem = rem << 1 & mask
			}
		}
	}

	return rem >> align
}

// crcLSB computes a width-bit CRC consuming message bits LSB-first.
// poly and init are expected in reflected form already.
func crcLSB(data []byte, width uint, poly, init uint16) uint16 {
	mask := ^uint16(0) >> (16 - width)
	rem := init & mask
	for _, b := range data {
		rem ^= uint16(b)
		for bit := 0; bit < 8; bit++ {
			if rem&1 != 0 {
				rem = rem>>1 ^ poly
			} else {
				rem >>= 1
			}
		}
	}

	return rem & mask
}

// CRC4 returns the 4-bit CRC of data.
// The register occupies the low 4 bits of the result;
// poly and init are taken from their low 4 bits.
// Empty data returns init.
func CRC4(data []byte, poly, init uint8) uint8 {
	return uint8(crcMSB(data, 4, uint16(poly), uint16(init)))
}

// CRC7 returns the 7-bit CRC of data.
// The register occupies the low 7 bits of the result;
// poly and init are taken from their low 7 bits.
// Empty data returns init.
func CRC7(data []byte, poly, init uint8) uint8 {
	return uint8(crcMSB(data, 7, uint16(poly), uint16(init)))
}

// CRC8 returns the 8-bit CRC of data, consuming bits MSB-first.
//
// The x^8 term of the polynomial is implicit:
//
//	poly 0x31 = x^8 + x^5 + x^4 + 1
//	poly 0x80 = x^8 + x^7 (a plain bit-by-bit parity XOR)
//
// Empty data returns init. poly 0 is legal and degenerates to no feedback.
func CRC8(data []byte, poly, init uint8) uint8 {
	return uint8(crcMSB(data, 8, uint16(poly), uint16(init)))
}

// CRC8LE returns the reflected 8-bit CRC of data, consuming bits LSB-first.
// poly and init are given in the same normal form as for CRC8 and are
// bit-reversed internally, so CRC8LE(data, 0x31, 0x00) matches the
// CRC-8/MAXIM definition (reflected poly 0x8C).
// Empty data returns the reflected init.
func CRC8LE(data []byte, poly, init uint8) uint8 {
	return uint8(crcLSB(data, 8, uint16(Reverse8(poly)), uint16(Reverse8(init))))
}

// CRC16 returns the 16-bit CRC of data, consuming bits MSB-first.
// Empty data returns init.
func CRC16(data []byte, poly, init uint16) uint16 {
	return crcMSB(data, 16, poly, init)
}

// CRC16LSB returns the reflected 16-bit CRC of data, consuming bits
// LSB-first. Unlike CRC8LE, poly and init must already be supplied in
// reflected form, e.g. 0xA001 for the reflected 0x8005 of CRC-16/ARC.
// Empty data returns init.
func CRC16LSB(data []byte, poly, init uint16) uint16 {
	return crcLSB(data, 16, poly, init)
}
