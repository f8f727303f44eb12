package codes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vigna/dsi-bitstream-go/bitio"
)

// orders is every bit order the table fast path must agree on independently
// (its literal bit patterns are order-specific, unlike the slow path).
var orders = []bitio.BitOrder{bitio.M2L, bitio.L2M}

func newWriter(order bitio.BitOrder, words *[]uint64) bitio.Writer {
	if order == bitio.L2M {
		return bitio.NewWriterL2M(bitio.NewMemWordWriter(words))
	}
	return bitio.NewWriterM2L(bitio.NewMemWordWriter(words))
}

func newReader(order bitio.BitOrder, words []uint64) bitio.Reader {
	if order == bitio.L2M {
		return bitio.NewUnbufferedReaderL2M(bitio.NewInfiniteMemWordReader(words))
	}
	return bitio.NewUnbufferedReaderM2L(bitio.NewInfiniteMemWordReader(words))
}

func writeAll(t *testing.T, order bitio.BitOrder, write func(w bitio.Writer) error) []uint64 {
	t.Helper()
	var words []uint64
	w := newWriter(order, &words)
	require.NoError(t, write(w))
	require.NoError(t, w.Close())
	return words
}

func writeAllM2L(t *testing.T, write func(w bitio.Writer) error) []uint64 {
	t.Helper()
	return writeAll(t, bitio.M2L, write)
}

func TestUnaryRoundTripBothTableSettings(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5, 10, 31, 32, 63, 64, 1000}
	for _, order := range orders {
		for _, useTable := range []bool{false, true} {
			words := writeAll(t, order, func(w bitio.Writer) error {
				for _, v := range values {
					if err := WriteUnary(w, v, useTable); err != nil {
						return err
					}
				}
				return nil
			})
			r := newReader(order, words)
			for _, want := range values {
				got, err := ReadUnary(r, useTable)
				require.NoError(t, err, "order=%v", order)
				require.Equal(t, want, got, "order=%v", order)
			}
		}
	}
}

func TestGammaRoundTripBothTableSettings(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5, 6, 10, 31, 32, 63, 64, 1000, 1 << 20}
	for _, order := range orders {
		for _, useTable := range []bool{false, true} {
			words := writeAll(t, order, func(w bitio.Writer) error {
				for _, v := range values {
					if err := WriteGamma(w, v, useTable); err != nil {
						return err
					}
				}
				return nil
			})
			r := newReader(order, words)
			for _, want := range values {
				got, err := ReadGamma(r, useTable)
				require.NoError(t, err, "order=%v", order)
				require.Equal(t, want, got, "order=%v", order)
			}
		}
	}
}

func TestDeltaRoundTripBothTableSettings(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5, 6, 10, 31, 32, 63, 64, 1000, 1 << 20}
	for _, order := range orders {
		for _, useTable := range []bool{false, true} {
			for _, useGammaTable := range []bool{false, true} {
				words := writeAll(t, order, func(w bitio.Writer) error {
					for _, v := range values {
						if err := WriteDelta(w, v, useTable, useGammaTable); err != nil {
							return err
						}
					}
					return nil
				})
				r := newReader(order, words)
				for _, want := range values {
					got, err := ReadDelta(r, useTable, useGammaTable)
					require.NoError(t, err, "order=%v", order)
					require.Equal(t, want, got, "order=%v", order)
				}
			}
		}
	}
}

// TestTableSlowPathAgreement is the universal property from spec section 8:
// for every value in a table's domain, the bit string produced with the
// table enabled equals the one produced with it disabled — checked
// independently for both bit orders, since the table's literal patterns
// differ per order even though the values they encode don't.
func TestTableSlowPathAgreement(t *testing.T) {
	for _, order := range orders {
		writeTable := unaryWriteTableFor(order)
		for v := uint64(0); v < uint64(len(writeTable)); v++ {
			fast := writeAll(t, order, func(w bitio.Writer) error { return WriteUnary(w, v, true) })
			slow := writeAll(t, order, func(w bitio.Writer) error { return WriteUnary(w, v, false) })
			require.Equal(t, slow, fast, "unary(%d) order=%v", v, order)
		}

		gammaTable := gammaWriteTableFor(order)
		for v := uint64(0); v < uint64(len(gammaTable)); v++ {
			fast := writeAll(t, order, func(w bitio.Writer) error { return WriteGamma(w, v, true) })
			slow := writeAll(t, order, func(w bitio.Writer) error { return WriteGamma(w, v, false) })
			require.Equal(t, slow, fast, "gamma(%d) order=%v", v, order)
		}

		deltaTable := deltaWriteTableFor(order)
		for v := uint64(0); v < uint64(len(deltaTable)); v++ {
			fast := writeAll(t, order, func(w bitio.Writer) error { return WriteDelta(w, v, true, false) })
			slow := writeAll(t, order, func(w bitio.Writer) error { return WriteDelta(w, v, false, false) })
			require.Equal(t, slow, fast, "delta(%d) order=%v", v, order)
		}
	}
}

// bitsWritten measures the exact bit length a single code occupies by
// decoding it with the reader under test and checking how far the cursor
// advanced — robust regardless of what bit pattern the code itself ends in.
func bitsWritten(t *testing.T, write func(w bitio.Writer) error, read func(r bitio.Reader) error) int {
	t.Helper()
	var words []uint64
	w := bitio.NewWriterM2L(bitio.NewMemWordWriter(&words))
	require.NoError(t, write(w))
	require.NoError(t, w.Close())

	r := bitio.NewUnbufferedReaderM2L(bitio.NewInfiniteMemWordReader(words))
	require.NoError(t, read(r))
	return int(r.Position())
}

func TestLenFunctionsMatchEncodedLength(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 6, 10, 31, 32, 63, 1000}
	for _, v := range values {
		got := bitsWritten(t,
			func(w bitio.Writer) error { return WriteUnary(w, v, false) },
			func(r bitio.Reader) error { _, err := ReadUnary(r, false); return err },
		)
		require.Equal(t, LenUnary(v, false), got, "unary(%d)", v)

		got = bitsWritten(t,
			func(w bitio.Writer) error { return WriteGamma(w, v, false) },
			func(r bitio.Reader) error { _, err := ReadGamma(r, false); return err },
		)
		require.Equal(t, LenGamma(v, false), got, "gamma(%d)", v)

		got = bitsWritten(t,
			func(w bitio.Writer) error { return WriteDelta(w, v, false, false) },
			func(r bitio.Reader) error { _, err := ReadDelta(r, false, false); return err },
		)
		require.Equal(t, LenDelta(v, false, false), got, "delta(%d)", v)
	}
}

func TestMinimalBinaryRoundTrip(t *testing.T) {
	type rangeCase struct{ max uint64 }
	ranges := []rangeCase{{1}, {2}, {3}, {5}, {7}, {8}, {16}, {17}, {100}, {1000}}
	for _, rc := range ranges {
		for n := uint64(0); n < rc.max; n++ {
			words := writeAllM2L(t, func(w bitio.Writer) error { return WriteMinimalBinary(w, n, rc.max) })
			r := bitio.NewUnbufferedReaderM2L(bitio.NewInfiniteMemWordReader(words))
			got, err := ReadMinimalBinary(r, rc.max)
			require.NoError(t, err)
			require.Equal(t, n, got, "max=%d n=%d", rc.max, n)
			require.Equal(t, LenMinimalBinary(n, rc.max), int(r.Position()))
		}
	}
}

func TestZetaRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 31, 32, 63, 64, 1000, 1 << 20}
	for _, k := range []uint{1, 2, 3, 6} {
		words := writeAllM2L(t, func(w bitio.Writer) error {
			for _, v := range values {
				if err := WriteZeta(w, v, k, false); err != nil {
					return err
				}
			}
			return nil
		})
		r := bitio.NewUnbufferedReaderM2L(bitio.NewInfiniteMemWordReader(words))
		for _, want := range values {
			got, err := ReadZeta(r, k, false)
			require.NoError(t, err)
			require.Equal(t, want, got, "k=%d", k)
		}
	}
}

func TestZetaLenMatchesEncodedLength(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 6, 10, 31, 32, 63, 1000}
	for _, k := range []uint{1, 2, 3, 6} {
		for _, v := range values {
			got := bitsWritten(t,
				func(w bitio.Writer) error { return WriteZeta(w, v, k, false) },
				func(r bitio.Reader) error { _, err := ReadZeta(r, k, false); return err },
			)
			require.Equal(t, LenZeta(v, k, false), got, "zeta k=%d v=%d", k, v)
		}
	}
}
