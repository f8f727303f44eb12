// ABOUTME: Unary code: value zeros followed by a terminating one bit.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

// unaryTableK is the peek width of the unary fast-path table.
const unaryTableK = 5

// LenUnary returns how long the unary code for value will be.
//
// The table is not actually useful for unary (the formula is trivial), but
// it is implemented for consistency with every other code in this package.
func LenUnary(value uint64, useTable bool) int {
	if useTable {
		if int(value) < len(unaryLen) {
			return int(unaryLen[value])
		}
	}
	return int(value) + 1
}

// ReadUnary reads a unary code from r.
func ReadUnary(r bitio.Reader, useTable bool) (uint64, error) {
	if useTable {
		peeked, err := r.PeekBits(unaryTableK)
		if err != nil {
			return 0, err
		}
		readTable, readLen := unaryReadTables(r.Order())
		if l := readLen[peeked]; l != tableMiss {
			if err := r.SkipBitsAfterTableLookup(int(l)); err != nil {
				return 0, err
			}
			return readTable[peeked], nil
		}
	}
	return r.ReadUnary()
}

// WriteUnary writes Unary(value) to w. value must not be math.MaxUint64.
func WriteUnary(w bitio.Writer, value uint64, useTable bool) error {
	if useTable {
		if writeTable := unaryWriteTableFor(w.Order()); int(value) < len(writeTable) {
			return w.WriteBits(writeTable[value], int(unaryWriteLen[value]))
		}
	}
	return w.WriteUnary(value)
}
