/*
Package lzw implements adaptive-width LZW compression and decompression.

Format: one header byte holding the reset Mode ('r', 'm' or 'n'), then codewords
written MSB-first with github.com/icza/bitio, then the EOF code 256. The last byte is
padded with zero bits.
Codes 0..255 are literals, 256 is EOF, learned sequences start at 257.
Codewords start 9 bits wide and grow one bit each time the codebook fills, up to 16 bits.
Widths are never stored: encoder and decoder derive them from the same schedule.

Full codebook at 16 bits:
  - ModeReset clears it and starts again at 9 bits.
  - ModeMonitor clears it once old/new compression ratio exceeds ResetThreshold (1.1).
  - ModeNoOp keeps it and stops learning.

Use Compress(src, opts) with nil for default (ModeReset).
Use CompressToWriter(w, src, opts) to stream the codewords and get Stats.
Use Decompress(src) to decode one stream held in memory.
Use DecompressFromReader(r, w) to decode one stream and continue from the current position.

# Examples

Round-trip compress and decompress:

	enc, err := lzw.Compress(data, &lzw.CompressOptions{Mode: lzw.ModeMonitor})
	if err != nil {
		return err
	}
	dec, err := lzw.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Decode two concatenated streams:

	r := bufio.NewReader(f)
	var a, b bytes.Buffer
	if _, err := lzw.DecompressFromReader(r, &a); err != nil {
		return err
	}
	if _, err := lzw.DecompressFromReader(r, &b); err != nil {
		return err
	}

Corrupt input is reported, never silently truncated:

	_, err := lzw.Decompress(src)
	if errors.Is(err, lzw.ErrInvalidCode) || errors.Is(err, lzw.ErrTruncated) {
		// damaged stream
	}
*/
package lzw
