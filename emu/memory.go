package emu

// Memory is a sparse word-addressed memory: a mapping from 32-bit address
// to 32-bit word. Addresses are only materialized when written.
//
// No instruction in the current repertoire loads or stores, so nothing in
// a running program observes the read policy yet; Read32 returns 0 for
// unmapped addresses, which is what whoever adds load/store instructions
// should assume.
type Memory struct {
	words map[uint32]uint32
}

// NewMemory creates an empty sparse memory.
func NewMemory() *Memory {
	return &Memory{words: make(map[uint32]uint32)}
}

// Read32 returns the word at addr. Unmapped addresses read as 0.
func (m *Memory) Read32(addr uint32) uint32 {
	return m.words[addr]
}

// Write32 stores a word at addr, materializing the address.
func (m *Memory) Write32(addr uint32, value uint32) {
	m.words[addr] = value
}

// Mapped reports the number of materialized addresses.
func (m *Memory) Mapped() int {
	return len(m.words)
}

// Snapshot returns a copy of all mapped words for inspection.
func (m *Memory) Snapshot() map[uint32]uint32 {
	out := make(map[uint32]uint32, len(m.words))
	for addr, word := range m.words {
		out[addr] = word
	}
	return out
}
