package lzw

// codeTable maps codes to byte sequences for the decoder.
// It is sized for MaxCodes up front and indexed directly.
type codeTable struct {
	entries [][]byte
}

func newCodeTable() *codeTable {
	t := &codeTable{entries: make([][]byte, MaxCodes)}
	for i := 0; i < Radix; i++ {
		t.entries[i] = []byte{byte(i)}
	}

	return t
}

// reset drops every learned sequence, keeping the literals.
func (t *codeTable) reset() {
	clear(t.entries[FirstCode:])
}

func (t *codeTable) put(code int, seq []byte) {
	t.entries[code] = seq
}

func (t *codeTable) get(code int) []byte {
	return t.entries[code]
}
