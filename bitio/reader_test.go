package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// readerFactory builds a fresh Reader over the given words, for the matrix
// of reader implementations that must agree on every operation.
type readerFactory struct {
	name string
	new  func(words []uint64) Reader
}

var m2lReaders = []readerFactory{
	{"UnbufferedM2L", func(words []uint64) Reader { return NewUnbufferedReaderM2L(NewInfiniteMemWordReader(words)) }},
	{"BufferedM2L", func(words []uint64) Reader { return NewBufferedReaderM2L(NewInfiniteMemWordReader(words)) }},
}

var l2mReaders = []readerFactory{
	{"UnbufferedL2M", func(words []uint64) Reader { return NewUnbufferedReaderL2M(NewInfiniteMemWordReader(words)) }},
	{"BufferedL2M", func(words []uint64) Reader { return NewBufferedReaderL2M(NewInfiniteMemWordReader(words)) }},
}

func writeM2LFixture(t *testing.T, fields []uint64, widths []int) []uint64 {
	t.Helper()
	var words []uint64
	w := NewWriterM2L(NewMemWordWriter(&words))
	for i, f := range fields {
		require.NoError(t, w.WriteBits(f, widths[i]))
	}
	require.NoError(t, w.Close())
	return words
}

func writeL2MFixture(t *testing.T, fields []uint64, widths []int) []uint64 {
	t.Helper()
	var words []uint64
	w := NewWriterL2M(NewMemWordWriter(&words))
	for i, f := range fields {
		require.NoError(t, w.WriteBits(f, widths[i]))
	}
	require.NoError(t, w.Close())
	return words
}

func TestReadersAgreeOnFieldSequence(t *testing.T) {
	fields := []uint64{0b101, 0x1234, 1, 0x7FFFFFFF, 0}
	widths := []int{3, 16, 1, 31, 5}

	m2lWords := writeM2LFixture(t, fields, widths)
	for _, rf := range m2lReaders {
		t.Run(rf.name, func(t *testing.T) {
			r := rf.new(m2lWords)
			for i, want := range fields {
				got, err := r.ReadBits(widths[i])
				require.NoError(t, err)
				require.Equal(t, want, got, "field %d", i)
			}
		})
	}

	l2mWords := writeL2MFixture(t, fields, widths)
	for _, rf := range l2mReaders {
		t.Run(rf.name, func(t *testing.T) {
			r := rf.new(l2mWords)
			for i, want := range fields {
				got, err := r.ReadBits(widths[i])
				require.NoError(t, err)
				require.Equal(t, want, got, "field %d", i)
			}
		})
	}
}

func TestReadersAgreeOnPeekThenSkip(t *testing.T) {
	fields := []uint64{42, 7}
	widths := []int{10, 6}
	words := writeM2LFixture(t, fields, widths)

	for _, rf := range m2lReaders {
		t.Run(rf.name, func(t *testing.T) {
			r := rf.new(words)
			peeked, err := r.PeekBits(10)
			require.NoError(t, err)
			require.Equal(t, uint32(42), peeked)
			require.NoError(t, r.SkipBitsAfterTableLookup(10))
			got, err := r.ReadBits(6)
			require.NoError(t, err)
			require.Equal(t, uint64(7), got)
		})
	}
}

func TestReadersAgreeOnUnaryAtArbitraryOffsets(t *testing.T) {
	values := []uint64{0, 3, 9, 64, 70, 130}

	var m2lWords []uint64
	w := NewWriterM2L(NewMemWordWriter(&m2lWords))
	require.NoError(t, w.WriteBits(0b11, 2)) // misalign the stream before the unary codes
	for _, v := range values {
		require.NoError(t, w.WriteUnary(v))
	}
	require.NoError(t, w.Close())

	for _, rf := range m2lReaders {
		t.Run(rf.name, func(t *testing.T) {
			r := rf.new(m2lWords)
			_, err := r.ReadBits(2)
			require.NoError(t, err)
			for _, want := range values {
				got, err := r.ReadUnary()
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestReadersAgreeOnSeekBit(t *testing.T) {
	fields := []uint64{1, 2, 3, 4}
	widths := []int{8, 8, 8, 8}
	words := writeM2LFixture(t, fields, widths)

	for _, rf := range m2lReaders {
		t.Run(rf.name, func(t *testing.T) {
			r := rf.new(words)
			require.NoError(t, r.SeekBit(16))
			require.Equal(t, uint64(16), r.Position())
			got, err := r.ReadBits(8)
			require.NoError(t, err)
			require.Equal(t, uint64(3), got)

			require.NoError(t, r.SeekBit(0))
			got, err = r.ReadBits(8)
			require.NoError(t, err)
			require.Equal(t, uint64(1), got)
		})
	}
}

func TestReadBitsRejectsOutOfRangeWidth(t *testing.T) {
	r := NewUnbufferedReaderM2L(NewInfiniteMemWordReader(nil))
	_, err := r.ReadBits(65)
	require.ErrorIs(t, err, ErrBitWidth)
	_, err = r.ReadBits(-1)
	require.ErrorIs(t, err, ErrBitWidth)
}

func TestPeekBitsRejectsOutOfRangeWidth(t *testing.T) {
	r := NewBufferedReaderM2L(NewInfiniteMemWordReader(nil))
	_, err := r.PeekBits(33)
	require.ErrorIs(t, err, ErrBitWidth)
}

func TestMemWordReaderReportsUnexpectedEOF(t *testing.T) {
	r := NewMemWordReader([]uint64{1, 2})
	_, err := r.ReadWord()
	require.NoError(t, err)
	_, err = r.ReadWord()
	require.NoError(t, err)
	_, err = r.ReadWord()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}
