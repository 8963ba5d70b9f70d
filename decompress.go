package lzw

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decompress decompresses one stream from the beginning of src.
// Bytes after the sentinel's final byte are ignored. On error no output is returned.
func Decompress(src []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(src) * 2)
	if _, err := DecompressFromReader(bytes.NewReader(src), &out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// DecompressFromReader decompresses one stream from r into w and returns its statistics.
// Decoding stops right after the byte holding the sentinel, so Stats.Consumed bytes have
// been read from r and a following stream can be decoded from the same r.
// On error, output already written to w must be discarded by the caller.
func DecompressFromReader(r io.Reader, w io.Writer) (Stats, error) {
	if r == nil {
		return Stats{}, ErrNilReader
	}
	if w == nil {
		return Stats{}, ErrNilWriter
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out := bufio.NewWriter(w)
	d := newDecoder(countingReader, out)
	err := d.decode()
	d.stats.Consumed = countingReader.count
	if err != nil {
		return d.stats, err
	}
	if err := out.Flush(); err != nil {
		return d.stats, err
	}

	return d.stats, nil
}

// decoder holds the state of one decompression run.
type decoder struct {
	r     *codeReader
	w     *bufio.Writer
	mode  Mode
	table *codeTable
	state State
	ratio ratio
	stats Stats

	// observe, when set, is called with the state after every learning step.
	observe func(State)
}

func newDecoder(r io.Reader, w *bufio.Writer) *decoder {
	st := InitialState()

	return &decoder{
		r:     newCodeReader(r),
		w:     w,
		table: newCodeTable(),
		state: st,
		stats: Stats{Width: st.Width, PeakWidth: st.Width, NextCode: st.Next},
	}
}

func (d *decoder) decode() error {
	mode, err := d.r.readMode()
	if err != nil {
		return err
	}
	d.mode = mode
	d.stats.Mode = mode
	d.stats.PackedBits += 8

	code, err := d.readCode()
	if err != nil {
		return err
	}
	if code == EOF {
		return nil
	}
	if code >= Radix {
		return fmt.Errorf("%w: first codeword %d is not a literal", ErrInvalidCode, code)
	}
	val := d.table.get(code)

	for {
		if _, err := d.w.Write(val); err != nil {
			return err
		}
		d.stats.RawBytes += int64(len(val))
		d.stats.Codes++
		d.ratio.add(len(val), d.state.Width)

		// Same transition the encoder applied before learning from this codeword.
		next, reset := d.state.advance(d.mode, d.ratio)
		if reset {
			d.table.reset()
			d.stats.Resets++
		}
		d.state = next
		d.record()

		code, err = d.readCode()
		if err != nil {
			return err
		}
		if code == EOF {
			return nil
		}

		var s []byte
		switch {
		case code < d.state.Next:
			s = d.table.get(code)
		case code == d.state.Next && d.state.Next < d.state.Limit:
			// The encoder learned this code one step ahead of us: it bound val plus the
			// first byte of the sequence it then matched, and that sequence is this very
			// code. Its first byte is therefore val[0].
			s = make([]byte, len(val)+1)
			copy(s, val)
			s[len(val)] = val[0]
		default:
			return fmt.Errorf("%w: codeword %d, next code %d, width %d", ErrInvalidCode, code, d.state.Next, d.state.Width)
		}

		if d.state.Next < d.state.Limit {
			entry := s
			if code != d.state.Next {
				entry = make([]byte, len(val)+1)
				copy(entry, val)
				entry[len(val)] = s[0]
			}
			d.table.put(d.state.Next, entry)
			d.state.Next++
			d.ratio.mark()
			d.record()
		}
		if d.observe != nil {
			d.observe(d.state)
		}
		val = s
	}
}

func (d *decoder) readCode() (int, error) {
	code, err := d.r.readCode(d.state.Width)
	if err != nil {
		return 0, err
	}
	d.stats.PackedBits += int64(d.state.Width)

	return code, nil
}

func (d *decoder) record() {
	d.stats.Width = d.state.Width
	d.stats.PeakWidth = max(d.stats.PeakWidth, d.state.Width)
	d.stats.NextCode = d.state.Next
}
