// ABOUTME: Zeta_k: a banded universal code tuned for power-law distributions with exponent near 1 + 1/k.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

func zetaBand(k uint, i uint64) (lo, hi uint64) {
	lo = uint64(1) << (uint64(i) * uint64(k))
	hi = uint64(1) << (uint64(i+1) * uint64(k))
	return
}

// LenZeta returns how long the zeta_k code for value will be.
//
// useTable is accepted for interface parity with the other codes but has no
// effect: a zeta table's domain depends on k, so a single precomputed table
// cannot cover every instantiation the way the fixed-width unary/gamma/delta
// tables do.
func LenZeta(value uint64, k uint, useTable bool) int {
	v := value + 1
	i := fastFloorLog2(v) / int(k)
	lo, hi := zetaBand(k, uint64(i))
	return int(i) + 1 + LenMinimalBinary(v-lo, hi-lo)
}

// ReadZeta reads a zeta_k value from r. See LenZeta for why useTable is a
// no-op here.
func ReadZeta(r bitio.Reader, k uint, useTable bool) (uint64, error) {
	i, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	lo, hi := zetaBand(k, i)
	offset, err := ReadMinimalBinary(r, hi-lo)
	if err != nil {
		return 0, err
	}
	return lo + offset - 1, nil
}

// WriteZeta writes value using zeta_k to w.
func WriteZeta(w bitio.Writer, value uint64, k uint, useTable bool) error {
	v := value + 1
	i := uint64(fastFloorLog2(v)) / uint64(k)
	lo, hi := zetaBand(k, i)
	if err := w.WriteUnary(i); err != nil {
		return err
	}
	return WriteMinimalBinary(w, v-lo, hi-lo)
}
