// ABOUTME: Lookup tables for the gamma code's table fast path, computed at init() from the slow-path algorithm.
// ABOUTME: Read and write tables are built once per bit order; their literal bit patterns are not interchangeable.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

var (
	gammaReadTableM2L, gammaReadTableL2M   []uint64
	gammaReadLenM2L, gammaReadLenL2M       []uint8
	gammaWriteTableM2L, gammaWriteTableL2M []uint64
	gammaWriteLen                          []uint8
	gammaLen                               []uint8
)

func init() {
	gammaReadTableM2L, gammaReadLenM2L = buildReadTable(bitio.M2L, gammaTableK, readGammaSlow)
	gammaReadTableL2M, gammaReadLenL2M = buildReadTable(bitio.L2M, gammaTableK, readGammaSlow)

	gammaWriteTableM2L, gammaWriteLen = buildWriteTable(bitio.M2L, gammaTableK, lenGammaSlow, writeGammaSlow)
	gammaWriteTableL2M, _ = buildWriteTable(bitio.L2M, gammaTableK, lenGammaSlow, writeGammaSlow)

	gammaLen = gammaWriteLen
}

// gammaReadTables returns the READ_TABLE/READ_LEN pair for order.
func gammaReadTables(order bitio.BitOrder) ([]uint64, []uint8) {
	if order == bitio.L2M {
		return gammaReadTableL2M, gammaReadLenL2M
	}
	return gammaReadTableM2L, gammaReadLenM2L
}

// gammaWriteTableFor returns the WRITE_TABLE for order; WRITE_LEN is shared
// across orders since code length never depends on bit order.
func gammaWriteTableFor(order bitio.BitOrder) []uint64 {
	if order == bitio.L2M {
		return gammaWriteTableL2M
	}
	return gammaWriteTableM2L
}
