package lzw

import (
	"fmt"
	"strings"
)

// Mode selects what happens when the codebook is full at MaxWidth.
// It is written as the single header byte of every stream.
type Mode byte

// Mode constants. The values are the header bytes.
const (
	ModeReset   Mode = 'r' // Always start over with a fresh codebook.
	ModeMonitor Mode = 'm' // Start over once the compression ratio degrades past ResetThreshold.
	ModeNoOp    Mode = 'n' // Keep the full codebook and stop learning.
)

// ParseMode parses a mode name: "r", "reset", "m", "monitor", "n" or "noop".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "r", "reset":
		return ModeReset, nil
	case "m", "monitor":
		return ModeMonitor, nil
	case "n", "noop", "no-op":
		return ModeNoOp, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeReset, ModeMonitor, ModeNoOp:
		return true
	}

	return false
}

func (m Mode) String() string {
	switch m {
	case ModeReset:
		return "reset"
	case ModeMonitor:
		return "monitor"
	case ModeNoOp:
		return "noop"
	}

	return fmt.Sprintf("Mode(%#x)", byte(m))
}

// resets reports whether a full codebook at MaxWidth is cleared under mode m.
func (m Mode) resets(r ratio) bool {
	switch m {
	case ModeReset:
		return true
	case ModeMonitor:
		return r.degraded()
	}

	return false
}
