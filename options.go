package lzw

// CompressOptions configures Compress and CompressToWriter.
type CompressOptions struct {
	// Mode is the full-codebook policy, recorded in the stream header.
	Mode Mode
}

// DefaultCompressOptions returns options for default compression (ModeReset).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		Mode: ModeReset,
	}
}

// Stats describes one encoded or decoded stream.
type Stats struct {
	Mode       Mode
	Codes      int   // Codewords excluding the EOF sentinel.
	Resets     int   // Codebook resets applied.
	Width      int   // Codeword width when the stream ended.
	PeakWidth  int   // Widest codeword used.
	NextCode   int   // Next code that would have been assigned.
	RawBytes   int64 // Uncompressed bytes.
	PackedBits int64 // Compressed bits including header and sentinel, excluding padding.
	Consumed   int64 // Bytes read from the compressed input (decoding only).
}

// Ratio returns uncompressed bits over compressed bits, or 0 for an empty stream.
func (s Stats) Ratio() float64 {
	if s.PackedBits == 0 {
		return 0
	}

	return float64(s.RawBytes*8) / float64(s.PackedBits)
}
