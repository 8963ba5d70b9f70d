package lzw

// Stream format constants.
const (
	Radix     = 256     // Literal codes 0..255.
	EOF       = Radix   // End-of-stream sentinel code.
	FirstCode = EOF + 1 // First code assigned to a learned sequence.
	MinWidth  = 9       // Codeword width at start and after a reset.
	MaxWidth  = 16      // Codeword width ceiling.
	MaxCodes  = 1 << MaxWidth

	// ResetThreshold is the old/new compression ratio above which Monitor mode resets.
	ResetThreshold = 1.1
)
