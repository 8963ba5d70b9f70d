package lzw

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// countingByteReader reads from a byte reader and counts the number of bytes read.
// bitio reads through ReadByte when it is available, so the count stops exactly at
// the byte holding the last bit of the sentinel.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// Read fills p one byte at a time.
func (r *countingByteReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := r.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}

	return len(p), nil
}

// codeReader reads the header and fixed-width codewords of a stream.
type codeReader struct {
	bits *bitio.Reader
}

func newCodeReader(r io.Reader) *codeReader {
	return &codeReader{bits: bitio.NewReader(r)}
}

// readMode reads and validates the header byte.
func (r *codeReader) readMode() (Mode, error) {
	b, err := r.bits.ReadByte()
	if err != nil {
		return 0, eofAsTruncated(err, "reading mode header")
	}

	mode := Mode(b)
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: header byte %#x", ErrInvalidMode, b)
	}

	return mode, nil
}

// readCode reads one codeword of width bits.
func (r *codeReader) readCode(width int) (int, error) {
	u, err := r.bits.ReadBits(uint8(width)) // #nosec G115 -- width is within MinWidth..MaxWidth
	if err != nil {
		return 0, eofAsTruncated(err, "reading codeword")
	}

	return int(u), nil
}

// eofAsTruncated maps end of input to ErrTruncated; other reader errors pass through.
func eofAsTruncated(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncated, what)
	}

	return fmt.Errorf("%s: %w", what, err)
}
