// ABOUTME: Elias delta: a gamma-coded length prefix followed by the value's lower bits.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

// deltaTableK is the peek width of the delta fast-path table.
const deltaTableK = 5

// LenDelta returns how long the delta code for value will be.
//
// useGammaTable controls only the nested gamma length lookup used by the
// slow-path fallback; it has no effect when the top-level delta table hits.
func LenDelta(value uint64, useTable, useGammaTable bool) int {
	if useTable && value < uint64(len(deltaLen)) {
		return int(deltaLen[value])
	}
	return lenDeltaSlow(value, useGammaTable)
}

func lenDeltaSlow(value uint64, useGammaTable bool) int {
	l := fastFloorLog2(value + 1)
	return l + LenGamma(uint64(l), useGammaTable)
}

// ReadDelta reads a delta code from r.
func ReadDelta(r bitio.Reader, useTable, useGammaTable bool) (uint64, error) {
	if useTable {
		peeked, err := r.PeekBits(deltaTableK)
		if err != nil {
			return 0, err
		}
		readTable, readLen := deltaReadTables(r.Order())
		if l := readLen[peeked]; l != tableMiss {
			if err := r.SkipBitsAfterTableLookup(int(l)); err != nil {
				return 0, err
			}
			return readTable[peeked], nil
		}
	}
	return readDeltaSlow(r, useGammaTable)
}

func readDeltaSlow(r bitio.Reader, useGammaTable bool) (uint64, error) {
	length, err := ReadGamma(r, useGammaTable)
	if err != nil {
		return 0, err
	}
	tail, err := r.ReadBits(int(length))
	if err != nil {
		return 0, err
	}
	return tail + (uint64(1) << length) - 1, nil
}

// WriteDelta writes Delta(value) to w.
func WriteDelta(w bitio.Writer, value uint64, useTable, useGammaTable bool) error {
	if useTable {
		if writeTable := deltaWriteTableFor(w.Order()); value < uint64(len(writeTable)) {
			return w.WriteBits(writeTable[value], int(deltaWriteLen[value]))
		}
	}
	return writeDeltaSlow(w, value, useGammaTable)
}

func writeDeltaSlow(w bitio.Writer, value uint64, useGammaTable bool) error {
	v := value + 1
	length := fastFloorLog2(v)
	short := v - (uint64(1) << uint(length))
	if err := WriteGamma(w, uint64(length), useGammaTable); err != nil {
		return err
	}
	return w.WriteBits(short, length)
}
