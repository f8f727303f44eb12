// ABOUTME: Buffered bit-stream reader: caches the most recently fetched word(s) to amortize backend I/O.
// ABOUTME: External contract matches the unbuffered reader exactly; only the accumulator policy differs.
package bitio

import (
	"fmt"

	"github.com/vigna/dsi-bitstream-go/word"
)

// BufferedReaderM2L reads a most-significant-bit-first bit stream, caching
// the last word fetched from the backend so that repeated small reads
// within the same word don't re-issue a backend call each time. This is the
// minimal accumulator policy that satisfies the peek-then-skip contract the
// table fast path depends on (spec's buffered-reader accumulator is
// implementation-defined).
type BufferedReaderM2L struct {
	data     PositionableWordSource
	bitIdx   uint64
	haveWord bool
	wordIdx  uint64
	word     uint64 // already converted via toBE
}

// NewBufferedReaderM2L creates a BufferedReaderM2L over data.
func NewBufferedReaderM2L(data PositionableWordSource) *BufferedReaderM2L {
	return &BufferedReaderM2L{data: data}
}

func (r *BufferedReaderM2L) wordAt(idx uint64) (uint64, error) {
	if r.haveWord && r.wordIdx == idx {
		return r.word, nil
	}
	if err := r.data.SetPosition(int(idx)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	wd, err := r.data.ReadWord()
	if err != nil {
		return 0, err
	}
	wd = toBE(wd)
	r.haveWord, r.wordIdx, r.word = true, idx, wd
	return wd, nil
}

// SkipBits implements Reader.
func (r *BufferedReaderM2L) SkipBits(n int) error {
	r.bitIdx += uint64(n)
	return nil
}

// SkipBitsAfterTableLookup implements Reader.
func (r *BufferedReaderM2L) SkipBitsAfterTableLookup(n int) error { return r.SkipBits(n) }

// Position implements Reader.
func (r *BufferedReaderM2L) Position() uint64 { return r.bitIdx }

// SeekBit implements Reader.
func (r *BufferedReaderM2L) SeekBit(bitIndex uint64) error {
	r.bitIdx = bitIndex
	return nil
}

func (r *BufferedReaderM2L) readOrPeek(n int) (uint64, error) {
	inWordOffset := uint(r.bitIdx % 64)
	wordIdx := r.bitIdx / 64

	if inWordOffset+uint(n) <= 64 {
		wd, err := r.wordAt(wordIdx)
		if err != nil {
			return 0, err
		}
		return (wd << inWordOffset) >> (64 - uint(n)), nil
	}
	high, err := r.wordAt(wordIdx)
	if err != nil {
		return 0, err
	}
	low, err := r.wordAt(wordIdx + 1)
	if err != nil {
		return 0, err
	}
	shamt1 := 64 - uint(n)
	shamt2 := 128 - inWordOffset - uint(n)
	return ((high << inWordOffset) >> shamt1) | (low >> shamt2), nil
}

// ReadBits implements Reader.
func (r *BufferedReaderM2L) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	res, err := r.readOrPeek(n)
	if err != nil {
		return 0, err
	}
	r.bitIdx += uint64(n)
	return res, nil
}

// PeekBits implements Reader.
func (r *BufferedReaderM2L) PeekBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	res, err := r.readOrPeek(n)
	if err != nil {
		return 0, err
	}
	return uint32(res), nil
}

// ReadUnary implements Reader.
func (r *BufferedReaderM2L) ReadUnary() (uint64, error) {
	wordIdx := r.bitIdx / 64
	inWordOffset := uint(r.bitIdx % 64)
	bitsInWord := 64 - inWordOffset
	var total uint64

	wd, err := r.wordAt(wordIdx)
	if err != nil {
		return 0, err
	}
	wd <<= inWordOffset
	for {
		zeros := uint(word.LeadingZeros(wd))
		if zeros < bitsInWord {
			r.bitIdx += total + uint64(zeros) + 1
			return total + uint64(zeros), nil
		}
		total += uint64(bitsInWord)
		bitsInWord = 64
		wordIdx++
		wd, err = r.wordAt(wordIdx)
		if err != nil {
			return 0, err
		}
	}
}

// BufferedReaderL2M reads a least-significant-bit-first bit stream, with
// the same caching policy as BufferedReaderM2L.
type BufferedReaderL2M struct {
	data     PositionableWordSource
	bitIdx   uint64
	haveWord bool
	wordIdx  uint64
	word     uint64 // already converted via toLE
}

// NewBufferedReaderL2M creates a BufferedReaderL2M over data.
func NewBufferedReaderL2M(data PositionableWordSource) *BufferedReaderL2M {
	return &BufferedReaderL2M{data: data}
}

func (r *BufferedReaderL2M) wordAt(idx uint64) (uint64, error) {
	if r.haveWord && r.wordIdx == idx {
		return r.word, nil
	}
	if err := r.data.SetPosition(int(idx)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	wd, err := r.data.ReadWord()
	if err != nil {
		return 0, err
	}
	wd = toLE(wd)
	r.haveWord, r.wordIdx, r.word = true, idx, wd
	return wd, nil
}

// SkipBits implements Reader.
func (r *BufferedReaderL2M) SkipBits(n int) error {
	r.bitIdx += uint64(n)
	return nil
}

// SkipBitsAfterTableLookup implements Reader.
func (r *BufferedReaderL2M) SkipBitsAfterTableLookup(n int) error { return r.SkipBits(n) }

// Position implements Reader.
func (r *BufferedReaderL2M) Position() uint64 { return r.bitIdx }

// SeekBit implements Reader.
func (r *BufferedReaderL2M) SeekBit(bitIndex uint64) error {
	r.bitIdx = bitIndex
	return nil
}

func (r *BufferedReaderL2M) readOrPeek(n int) (uint64, error) {
	inWordOffset := uint(r.bitIdx % 64)
	wordIdx := r.bitIdx / 64

	if inWordOffset+uint(n) <= 64 {
		wd, err := r.wordAt(wordIdx)
		if err != nil {
			return 0, err
		}
		shamt := 64 - uint(n)
		return (wd << (shamt - inWordOffset)) >> shamt, nil
	}
	low, err := r.wordAt(wordIdx)
	if err != nil {
		return 0, err
	}
	high, err := r.wordAt(wordIdx + 1)
	if err != nil {
		return 0, err
	}
	shamt1 := 128 - inWordOffset - uint(n)
	shamt2 := 64 - uint(n)
	return ((high << shamt1) >> shamt2) | (low >> inWordOffset), nil
}

// ReadBits implements Reader.
func (r *BufferedReaderL2M) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	res, err := r.readOrPeek(n)
	if err != nil {
		return 0, err
	}
	r.bitIdx += uint64(n)
	return res, nil
}

// PeekBits implements Reader.
func (r *BufferedReaderL2M) PeekBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	res, err := r.readOrPeek(n)
	if err != nil {
		return 0, err
	}
	return uint32(res), nil
}

// ReadUnary implements Reader.
func (r *BufferedReaderL2M) ReadUnary() (uint64, error) {
	wordIdx := r.bitIdx / 64
	inWordOffset := uint(r.bitIdx % 64)
	bitsInWord := 64 - inWordOffset
	var total uint64

	wd, err := r.wordAt(wordIdx)
	if err != nil {
		return 0, err
	}
	wd >>= inWordOffset
	for {
		zeros := uint(word.TrailingZeros(wd))
		if zeros < bitsInWord {
			r.bitIdx += total + uint64(zeros) + 1
			return total + uint64(zeros), nil
		}
		total += uint64(bitsInWord)
		bitsInWord = 64
		wordIdx++
		wd, err = r.wordAt(wordIdx)
		if err != nil {
			return 0, err
		}
	}
}

// Order implements Reader.
func (r *BufferedReaderM2L) Order() BitOrder { return M2L }

// Order implements Reader.
func (r *BufferedReaderL2M) Order() BitOrder { return L2M }

var (
	_ Reader = (*BufferedReaderM2L)(nil)
	_ Reader = (*BufferedReaderL2M)(nil)
)
