// ABOUTME: Generic table builders shared by unary_tables.go, gamma_tables.go and delta_tables.go.
// ABOUTME: Every table is computed at init() time by running the slow-path algorithm itself, never hand-transcribed.
package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

// newSyntheticWriter and newSyntheticReader build the in-memory writer/
// reader pair a table builder runs its synthetic streams through, using the
// concrete M2L or L2M implementation matching order. The table fast path's
// bit patterns are order-specific (WriteBits packs a field MSB-first within
// the field under M2L but LSB-first under L2M), so a table built against
// one order's writer/reader is only valid for readers/writers of that same
// order — every table in this package is therefore built, and looked up,
// per order.
func newSyntheticWriter(order bitio.BitOrder, words *[]uint64) bitio.Writer {
	if order == bitio.L2M {
		return bitio.NewWriterL2M(bitio.NewMemWordWriter(words))
	}
	return bitio.NewWriterM2L(bitio.NewMemWordWriter(words))
}

func newSyntheticReader(order bitio.BitOrder, words []uint64) bitio.Reader {
	if order == bitio.L2M {
		return bitio.NewUnbufferedReaderL2M(bitio.NewInfiniteMemWordReader(words))
	}
	return bitio.NewUnbufferedReaderM2L(bitio.NewInfiniteMemWordReader(words))
}

// buildReadTable constructs a READ_TABLE/READ_LEN pair for a k-bit peek
// window, for the given bit order. For every possible window value it
// writes that window as the first k bits of a synthetic stream in that
// order, pads the rest with one bits (so a code that isn't exhausted within
// the window terminates just past it rather than reading off the end), and
// runs decode — the same slow-path decoder the reader falls back to on a
// table miss. If decode consumes more than k bits, the window is recorded
// as a miss; this is what guarantees the table agrees with the slow path by
// construction.
func buildReadTable(order bitio.BitOrder, k int, decode func(r bitio.Reader) (uint64, error)) ([]uint64, []uint8) {
	n := 1 << uint(k)
	table := make([]uint64, n)
	lens := make([]uint8, n)
	for idx := 0; idx < n; idx++ {
		var words []uint64
		w := newSyntheticWriter(order, &words)
		_ = w.WriteBits(uint64(idx), k)
		padOnes(w, 192-k)
		_ = w.Close()

		r := newSyntheticReader(order, words)
		val, err := decode(r)
		consumed := r.Position()
		if err != nil || consumed > uint64(k) {
			lens[idx] = tableMiss
			continue
		}
		table[idx] = val
		lens[idx] = uint8(consumed)
	}
	return table, lens
}

// padOnes writes n one bits to w in <=64-bit chunks.
func padOnes(w bitio.Writer, n int) {
	for n > 0 {
		chunk := n
		if chunk > 64 {
			chunk = 64
		}
		var pattern uint64
		if chunk == 64 {
			pattern = ^uint64(0)
		} else {
			pattern = (uint64(1) << uint(chunk)) - 1
		}
		_ = w.WriteBits(pattern, chunk)
		n -= chunk
	}
}

// buildWriteTable constructs a WRITE_TABLE/WRITE_LEN pair, for the given
// bit order, covering every value whose slow-path length (lenFn) is at most
// k, by actually encoding each value with encode and reading back its
// right-justified bit pattern. lenFn is itself order-independent (code
// length never depends on bit order), so WRITE_LEN is identical across
// orders; WRITE_TABLE's bit patterns are not, so callers build one of each
// per order and may discard the redundant length slice from all but one.
func buildWriteTable(order bitio.BitOrder, k int, lenFn func(uint64) int, encode func(w bitio.Writer, value uint64) error) ([]uint64, []uint8) {
	var values []uint64
	var lengths []int
	for v := uint64(0); ; v++ {
		l := lenFn(v)
		if l > k {
			break
		}
		values = append(values, v)
		lengths = append(lengths, l)
	}

	table := make([]uint64, len(values))
	lens := make([]uint8, len(values))
	for i, v := range values {
		var words []uint64
		w := newSyntheticWriter(order, &words)
		_ = encode(w, v)
		_ = w.Close()

		r := newSyntheticReader(order, words)
		pattern, _ := r.ReadBits(lengths[i])
		table[i] = pattern
		lens[i] = uint8(lengths[i])
	}
	return table, lens
}
