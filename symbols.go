package lzw

// symbolTable maps byte sequences to codes for the encoder.
// It is a trie stored as an edge map keyed by (node, byte); node 0 is the root and
// node b+1 holds the literal b. Nodes without an entry have code -1, which happens
// when a sequence is learned after a reset while its prefix is not in the codebook.
type symbolTable struct {
	codes []int32
	edges map[uint64]int32
}

func edgeKey(node int32, b byte) uint64 {
	return uint64(node)<<8 | uint64(b)
}

func newSymbolTable() *symbolTable {
	t := &symbolTable{
		codes: make([]int32, 0, MaxCodes+Radix),
		edges: make(map[uint64]int32, MaxCodes),
	}
	t.reset()

	return t
}

// reset drops every learned sequence, keeping the literals.
func (t *symbolTable) reset() {
	clear(t.edges)
	t.codes = append(t.codes[:0], -1)
	for i := 0; i < Radix; i++ {
		t.codes = append(t.codes, int32(i))
		t.edges[edgeKey(0, byte(i))] = int32(i + 1)
	}
}

// put binds seq to code, creating intermediate nodes as needed.
func (t *symbolTable) put(seq []byte, code int) {
	node := int32(0)
	for _, b := range seq {
		child, ok := t.edges[edgeKey(node, b)]
		if !ok {
			child = int32(len(t.codes))
			t.codes = append(t.codes, -1)
			t.edges[edgeKey(node, b)] = child
		}
		node = child
	}
	t.codes[node] = int32(code)
}

// get returns the code bound to seq.
func (t *symbolTable) get(seq []byte) (int, bool) {
	node := int32(0)
	for _, b := range seq {
		child, ok := t.edges[edgeKey(node, b)]
		if !ok {
			return 0, false
		}
		node = child
	}
	if node == 0 || t.codes[node] < 0 {
		return 0, false
	}

	return int(t.codes[node]), true
}

// longestPrefix returns the code of the longest sequence in the table that prefixes src
// and its length. src must not be empty; every single byte is always present.
func (t *symbolTable) longestPrefix(src []byte) (code int, n int) {
	node := int32(0)
	for i, b := range src {
		child, ok := t.edges[edgeKey(node, b)]
		if !ok {
			break
		}
		node = child
		if c := t.codes[node]; c >= 0 {
			code, n = int(c), i+1
		}
	}

	return code, n
}
