// ABOUTME: Elias gamma: a unary length prefix followed by the value's lower bits.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

// gammaTableK is the peek width of the gamma fast-path table.
const gammaTableK = 5

// LenGamma returns how long the gamma code for value will be.
func LenGamma(value uint64, useTable bool) int {
	if useTable && value < uint64(len(gammaLen)) {
		return int(gammaLen[value])
	}
	return lenGammaSlow(value)
}

func lenGammaSlow(value uint64) int {
	return 2*fastFloorLog2(value+1) + 1
}

// ReadGamma reads a gamma code from r.
func ReadGamma(r bitio.Reader, useTable bool) (uint64, error) {
	if useTable {
		peeked, err := r.PeekBits(gammaTableK)
		if err != nil {
			return 0, err
		}
		readTable, readLen := gammaReadTables(r.Order())
		if l := readLen[peeked]; l != tableMiss {
			if err := r.SkipBitsAfterTableLookup(int(l)); err != nil {
				return 0, err
			}
			return readTable[peeked], nil
		}
	}
	return readGammaSlow(r)
}

func readGammaSlow(r bitio.Reader) (uint64, error) {
	length, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	tail, err := r.ReadBits(int(length))
	if err != nil {
		return 0, err
	}
	return tail + (uint64(1) << length) - 1, nil
}

// WriteGamma writes Gamma(value) to w.
func WriteGamma(w bitio.Writer, value uint64, useTable bool) error {
	if useTable {
		if writeTable := gammaWriteTableFor(w.Order()); value < uint64(len(writeTable)) {
			return w.WriteBits(writeTable[value], int(gammaWriteLen[value]))
		}
	}
	return writeGammaSlow(w, value)
}

func writeGammaSlow(w bitio.Writer, value uint64) error {
	v := value + 1
	length := fastFloorLog2(v)
	short := v - (uint64(1) << uint(length))
	if err := w.WriteUnary(uint64(length)); err != nil {
		return err
	}
	return w.WriteBits(short, length)
}
