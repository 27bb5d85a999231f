package bitcheck_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/icza/bitio"
	"github.com/pchchv/bitcheck"
)

func TestReadBits(t *testing.T) {
	frame := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}
	tests := []struct {
		off, n uint
		want   uint64
	}{
		{0, 8, 0xDE},
		{4, 8, 0xEA},
		{7, 3, 0x2},
		{12, 16, 0xDBEE},
		{39, 1, 0x1},
		{0, 40, 0xDEADBEEF01},
		{0, 0, 0x0},
		{40, 0, 0x0},
	}

	for i, test := range tests {
		got, err := bitcheck.ReadBits(frame, test.off, test.n)
		if err != nil {
			t.Fatalf("i=%d; %v", i, err)
		}
		if got != test.want {
			t.Errorf("i=%d; ReadBits(frame, %d, %d), expected %#x, got %#x", i, test.off, test.n, test.want, got)
		}
	}
}

func TestReadBitsLongSkip(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i)
	}

	// offset past the 64-bit skip chunk
	got, err := bitcheck.ReadBits(data, 70, 8)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(0x2); got != want {
		t.Errorf("ReadBits(data, 70, 8), expected %#x, got %#x", want, got)
	}
}

func TestReadBitsBounds(t *testing.T) {
	frame := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}
	tests := []struct {
		data   []byte
		off, n uint
		err    error
	}{
		{frame, 0, 65, bitcheck.ErrInvalidBitCount},
		{frame, 33, 8, bitcheck.ErrInvalidLength},
		{frame, 40, 1, bitcheck.ErrInvalidLength},
		{nil, 0, 1, bitcheck.ErrInvalidLength},
	}

	for i, test := range tests {
		if _, err := bitcheck.ReadBits(test.data, test.off, test.n); !errors.Is(err, test.err) {
			t.Errorf("i=%d; ReadBits(%#v, %d, %d), expected %v, got %v", i, test.data, test.off, test.n, test.err, err)
		}
	}
}

// TestReadBitsAssembled round-trips bit-granular fields through a bitio
// writer the way a demodulator assembles a frame.
func TestReadBitsAssembled(t *testing.T) {
	buf := &bytes.Buffer{}
	bw := bitio.NewWriter(buf)
	fields := []struct {
		v uint64
		n uint8
	}{
		{0x5, 3},
		{0x1FF, 9},
		{0x0, 4},
		{0xABCD, 16},
	}
	for _, f := range fields {
		if err := bw.WriteBits(f.v, f.n); err != nil {
			t.Fatalf("unable to write field; %v", err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("unable to close (flush) the bit buffer; %v", err)
	}

	var off uint
	for i, f := range fields {
		got, err := bitcheck.ReadBits(buf.Bytes(), off, uint(f.n))
		if err != nil {
			t.Fatalf("i=%d; %v", i, err)
		}
		if got != f.v {
			t.Errorf("i=%d; field at offset %d differs; expected %#x, got %#x", i, off, f.v, got)
		}
		off += uint(f.n)
	}
}
