// ABOUTME: Lookup tables for the delta code's table fast path, computed at init() from the slow-path algorithm.
// ABOUTME: Read and write tables are built once per bit order; their literal bit patterns are not interchangeable.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

var (
	deltaReadTableM2L, deltaReadTableL2M   []uint64
	deltaReadLenM2L, deltaReadLenL2M       []uint8
	deltaWriteTableM2L, deltaWriteTableL2M []uint64
	deltaWriteLen                          []uint8
	deltaLen                               []uint8
)

func init() {
	decode := func(r bitio.Reader) (uint64, error) { return readDeltaSlow(r, false) }
	deltaReadTableM2L, deltaReadLenM2L = buildReadTable(bitio.M2L, deltaTableK, decode)
	deltaReadTableL2M, deltaReadLenL2M = buildReadTable(bitio.L2M, deltaTableK, decode)

	lenFn := func(v uint64) int { return lenDeltaSlow(v, false) }
	encode := func(w bitio.Writer, v uint64) error { return writeDeltaSlow(w, v, false) }
	deltaWriteTableM2L, deltaWriteLen = buildWriteTable(bitio.M2L, deltaTableK, lenFn, encode)
	deltaWriteTableL2M, _ = buildWriteTable(bitio.L2M, deltaTableK, lenFn, encode)

	deltaLen = deltaWriteLen
}

// deltaReadTables returns the READ_TABLE/READ_LEN pair for order.
func deltaReadTables(order bitio.BitOrder) ([]uint64, []uint8) {
	if order == bitio.L2M {
		return deltaReadTableL2M, deltaReadLenL2M
	}
	return deltaReadTableM2L, deltaReadLenM2L
}

// deltaWriteTableFor returns the WRITE_TABLE for order; WRITE_LEN is shared
// across orders since code length never depends on bit order.
func deltaWriteTableFor(order bitio.BitOrder) []uint64 {
	if order == bitio.L2M {
		return deltaWriteTableL2M
	}
	return deltaWriteTableM2L
}
