// ABOUTME: Lookup tables for the unary code's table fast path, computed at init() from the slow-path algorithm.
// ABOUTME: Read and write tables are built once per bit order; their literal bit patterns are not interchangeable.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

var (
	unaryReadTableM2L, unaryReadTableL2M   []uint64
	unaryReadLenM2L, unaryReadLenL2M       []uint8
	unaryWriteTableM2L, unaryWriteTableL2M []uint64
	unaryWriteLen                          []uint8
	unaryLen                               []uint8
)

func init() {
	decode := func(r bitio.Reader) (uint64, error) { return r.ReadUnary() }
	unaryReadTableM2L, unaryReadLenM2L = buildReadTable(bitio.M2L, unaryTableK, decode)
	unaryReadTableL2M, unaryReadLenL2M = buildReadTable(bitio.L2M, unaryTableK, decode)

	lenFn := func(v uint64) int { return int(v) + 1 }
	encode := func(w bitio.Writer, v uint64) error { return w.WriteUnary(v) }
	unaryWriteTableM2L, unaryWriteLen = buildWriteTable(bitio.M2L, unaryTableK, lenFn, encode)
	unaryWriteTableL2M, _ = buildWriteTable(bitio.L2M, unaryTableK, lenFn, encode)

	unaryLen = unaryWriteLen
}

// unaryReadTables returns the READ_TABLE/READ_LEN pair for order.
func unaryReadTables(order bitio.BitOrder) ([]uint64, []uint8) {
	if order == bitio.L2M {
		return unaryReadTableL2M, unaryReadLenL2M
	}
	return unaryReadTableM2L, unaryReadLenM2L
}

// unaryWriteTableFor returns the WRITE_TABLE for order; WRITE_LEN is shared
// across orders since code length never depends on bit order.
func unaryWriteTableFor(order bitio.BitOrder) []uint64 {
	if order == bitio.L2M {
		return unaryWriteTableL2M
	}
	return unaryWriteTableM2L
}
