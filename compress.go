package lzw

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Compress compresses src. Options nil means DefaultCompressOptions().
// Empty src is valid and produces the header and the EOF code only.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(src)/2 + 4)
	if _, err := CompressToWriter(&buf, src, opts); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CompressToWriter compresses src into w and returns stream statistics.
// Options nil means DefaultCompressOptions().
func CompressToWriter(w io.Writer, src []byte, opts *CompressOptions) (Stats, error) {
	if w == nil {
		return Stats{}, ErrNilWriter
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if !opts.Mode.Valid() {
		return Stats{}, fmt.Errorf("%w: %#x", ErrInvalidMode, byte(opts.Mode))
	}

	e := newEncoder(w, opts.Mode)
	if err := e.encode(src); err != nil {
		return e.stats, err
	}

	return e.stats, nil
}

// encoder holds the state of one compression run.
type encoder struct {
	w     *bitio.Writer
	mode  Mode
	dict  *symbolTable
	state State
	ratio ratio
	stats Stats

	// observe, when set, is called with the state after every learning step.
	observe func(State)
}

func newEncoder(w io.Writer, mode Mode) *encoder {
	st := InitialState()

	return &encoder{
		w:     bitio.NewWriter(w),
		mode:  mode,
		dict:  newSymbolTable(),
		state: st,
		stats: Stats{Mode: mode, Width: st.Width, PeakWidth: st.Width, NextCode: st.Next},
	}
}

func (e *encoder) encode(src []byte) error {
	if err := e.w.WriteByte(byte(e.mode)); err != nil {
		return err
	}
	e.stats.PackedBits += 8

	// The input is only ever read through pos; matched sequences are subslices of src.
	pos := 0
	for pos < len(src) {
		code, n := e.dict.longestPrefix(src[pos:])
		if err := e.writeCode(code, e.state.Width); err != nil {
			return err
		}
		e.ratio.add(n, e.state.Width)
		e.stats.Codes++

		// The final match has no following byte to learn with, so the codebook is left
		// untouched even when it sits on a growth or reset boundary.
		if pos+n < len(src) {
			e.learn(src[pos : pos+n+1])
		}
		pos += n
	}
	e.stats.RawBytes = int64(len(src))

	// The decoder steps its state once more before reading the sentinel, so the
	// sentinel is written at the width that step yields. The codebook is not
	// consulted again and is left as is.
	final, reset := e.state.advance(e.mode, e.ratio)
	if reset {
		e.stats.Resets++
	}
	e.state = final
	e.record()
	if err := e.writeCode(EOF, e.state.Width); err != nil {
		return err
	}

	return e.w.Close()
}

// learn binds seq, the last match extended by one byte, to the next free code.
func (e *encoder) learn(seq []byte) {
	next, reset := e.state.advance(e.mode, e.ratio)
	if reset {
		e.dict.reset()
		e.stats.Resets++
	}
	e.state = next

	if e.state.Next < e.state.Limit {
		e.dict.put(seq, e.state.Next)
		e.state.Next++
		e.ratio.mark()
	}

	e.record()
	if e.observe != nil {
		e.observe(e.state)
	}
}

func (e *encoder) record() {
	e.stats.Width = e.state.Width
	e.stats.PeakWidth = max(e.stats.PeakWidth, e.state.Width)
	e.stats.NextCode = e.state.Next
}

func (e *encoder) writeCode(code, width int) error {
	e.stats.PackedBits += int64(width)

	return e.w.WriteBits(uint64(code), uint8(width)) // #nosec G115 -- code < 1<<width, width <= MaxWidth
}
