// ABOUTME: Shared helpers for the universal-code read/write/length functions.
// ABOUTME: The read/write/length functions take bitio.Reader/bitio.Writer; only the table fast path and its builders depend on bit order.
package codes

import "github.com/vigna/dsi-bitstream-go/word"

// tableMiss is the sentinel length recorded in a READ_LEN table when a code
// extends past the peeked window.
const tableMiss = 255

// fastFloorLog2 re-exports word.FastFloorLog2 under the name used throughout
// this package's call sites.
func fastFloorLog2(value uint64) int { return word.FastFloorLog2(value) }
