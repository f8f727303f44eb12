// ABOUTME: Minimal binary: a near-optimal fixed-range code for n in [0, max).
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

// LenMinimalBinary returns how long the minimal-binary code for n over
// [0, max) will be.
func LenMinimalBinary(n, max uint64) int {
	u := fastFloorLog2(max)
	pivot := (uint64(1) << uint(u+1)) - max
	if n < pivot {
		return u
	}
	return u + 1
}

// ReadMinimalBinary reads a minimal-binary value over [0, max) from r.
//
// Unlike the table fast path, this reads the u leading bits outright rather
// than peeking them: every branch below consumes exactly those u bits
// either way, so there is nothing to "un-read", and reading directly avoids
// peek_bits' 32-bit ceiling for ranges wider than 2^32.
func ReadMinimalBinary(r bitio.Reader, max uint64) (uint64, error) {
	u := fastFloorLog2(max)
	pivot := (uint64(1) << uint(u+1)) - max

	n, err := r.ReadBits(u)
	if err != nil {
		return 0, err
	}
	if n < pivot {
		return n, nil
	}
	extra, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	return (n << 1) + extra - pivot, nil
}

// WriteMinimalBinary writes n, which must be in [0, max), to w.
func WriteMinimalBinary(w bitio.Writer, n, max uint64) error {
	u := fastFloorLog2(max)
	pivot := (uint64(1) << uint(u+1)) - max
	if n < pivot {
		return w.WriteBits(n, u)
	}
	return w.WriteBits(n+pivot, u+1)
}
