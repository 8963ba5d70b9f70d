package lzw

// State is the adaptive codeword state. Both sides of a stream step it identically,
// so the width of every codeword is implied and never stored.
type State struct {
	Width int // Current codeword width in bits.
	Limit int // Codebook capacity at Width, always 1 << Width.
	Next  int // Next code to assign; Next <= Limit.
}

// InitialState returns the state at the start of a stream and after every reset.
func InitialState() State {
	return State{
		Width: MinWidth,
		Limit: 1 << MinWidth,
		Next:  FirstCode,
	}
}

// Full reports whether the codebook has no free code at MaxWidth.
func (s State) Full() bool {
	return s.Width == MaxWidth && s.Next >= s.Limit
}

// advance returns the state in which the next entry may be learned.
// A codebook with free codes is left as is; one that is out of codes grows by one bit
// until MaxWidth, after which mode decides between a reset and staying full.
// The reset result tells the caller to clear its dictionary.
func (s State) advance(mode Mode, r ratio) (State, bool) {
	if s.Next < s.Limit {
		return s, false
	}

	if s.Width < MaxWidth {
		s.Width++
		s.Limit <<= 1

		return s, false
	}

	if mode.resets(r) {
		return InitialState(), true
	}

	return s, false
}

// ratio tracks the running compression ratio used by ModeMonitor.
type ratio struct {
	raw    float64 // Uncompressed bits so far.
	packed float64 // Codeword bits so far.
	old    float64 // Ratio at the last learned entry.
}

// add accounts for one codeword of width bits expanding to n bytes.
func (r *ratio) add(n, width int) {
	r.raw += float64(n * 8)
	r.packed += float64(width)
}

func (r ratio) current() float64 {
	if r.packed == 0 {
		return 0
	}

	return r.raw / r.packed
}

// mark records the current ratio as the reference for the next full-codebook check.
func (r *ratio) mark() {
	r.old = r.current()
}

// degraded reports whether the ratio fell by more than ResetThreshold since mark.
func (r ratio) degraded() bool {
	cur := r.current()
	if cur == 0 {
		return false
	}

	return r.old/cur > ResetThreshold
}
