// ABOUTME: Unbuffered bit-stream reader: every operation re-reads words from a positionable word source.
// ABOUTME: UnbufferedReaderM2L and UnbufferedReaderL2M are mirror-image implementations.
package bitio

import (
	"fmt"

	"github.com/vigna/dsi-bitstream-go/word"
)

// UnbufferedReaderM2L reads a most-significant-bit-first bit stream,
// re-reading the backing word(s) on every call rather than caching them.
type UnbufferedReaderM2L struct {
	data   PositionableWordSource
	bitIdx uint64
}

// NewUnbufferedReaderM2L creates an UnbufferedReaderM2L over data.
func NewUnbufferedReaderM2L(data PositionableWordSource) *UnbufferedReaderM2L {
	return &UnbufferedReaderM2L{data: data}
}

// SkipBits implements Reader.
func (r *UnbufferedReaderM2L) SkipBits(n int) error {
	r.bitIdx += uint64(n)
	return nil
}

// SkipBitsAfterTableLookup implements Reader.
func (r *UnbufferedReaderM2L) SkipBitsAfterTableLookup(n int) error { return r.SkipBits(n) }

// Position implements Reader.
func (r *UnbufferedReaderM2L) Position() uint64 { return r.bitIdx }

// SeekBit implements Reader.
func (r *UnbufferedReaderM2L) SeekBit(bitIndex uint64) error {
	r.bitIdx = bitIndex
	return nil
}

// ReadBits implements Reader.
func (r *UnbufferedReaderM2L) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	if err := r.data.SetPosition(int(r.bitIdx / 64)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	inWordOffset := uint(r.bitIdx % 64)

	var res uint64
	if inWordOffset+uint(n) <= 64 {
		wd, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		wd = toBE(wd)
		res = (wd << inWordOffset) >> (64 - uint(n))
	} else {
		high, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		low, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		high, low = toBE(high), toBE(low)
		shamt1 := 64 - uint(n)
		shamt2 := 128 - inWordOffset - uint(n)
		res = ((high << inWordOffset) >> shamt1) | (low >> shamt2)
	}
	r.bitIdx += uint64(n)
	return res, nil
}

// PeekBits implements Reader.
func (r *UnbufferedReaderM2L) PeekBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	if err := r.data.SetPosition(int(r.bitIdx / 64)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	inWordOffset := uint(r.bitIdx % 64)

	var res uint64
	if inWordOffset+uint(n) <= 64 {
		wd, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		wd = toBE(wd)
		res = (wd << inWordOffset) >> (64 - uint(n))
	} else {
		high, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		low, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		high, low = toBE(high), toBE(low)
		shamt1 := 64 - uint(n)
		shamt2 := 128 - inWordOffset - uint(n)
		res = ((high << inWordOffset) >> shamt1) | (low >> shamt2)
	}
	return uint32(res), nil
}

// ReadUnary implements Reader using the general word-scanning algorithm:
// count leading zeros word by word until a set bit is found.
func (r *UnbufferedReaderM2L) ReadUnary() (uint64, error) {
	if err := r.data.SetPosition(int(r.bitIdx / 64)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	inWordOffset := uint(r.bitIdx % 64)
	bitsInWord := 64 - inWordOffset
	var total uint64

	wd, err := r.data.ReadWord()
	if err != nil {
		return 0, err
	}
	wd = toBE(wd) << inWordOffset
	for {
		zeros := uint(word.LeadingZeros(wd))
		if zeros < bitsInWord {
			r.bitIdx += total + uint64(zeros) + 1
			return total + uint64(zeros), nil
		}
		total += uint64(bitsInWord)
		bitsInWord = 64
		wd, err = r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		wd = toBE(wd)
	}
}

// UnbufferedReaderL2M reads a least-significant-bit-first bit stream.
type UnbufferedReaderL2M struct {
	data   PositionableWordSource
	bitIdx uint64
}

// NewUnbufferedReaderL2M creates an UnbufferedReaderL2M over data.
func NewUnbufferedReaderL2M(data PositionableWordSource) *UnbufferedReaderL2M {
	return &UnbufferedReaderL2M{data: data}
}

// SkipBits implements Reader.
func (r *UnbufferedReaderL2M) SkipBits(n int) error {
	r.bitIdx += uint64(n)
	return nil
}

// SkipBitsAfterTableLookup implements Reader.
func (r *UnbufferedReaderL2M) SkipBitsAfterTableLookup(n int) error { return r.SkipBits(n) }

// Position implements Reader.
func (r *UnbufferedReaderL2M) Position() uint64 { return r.bitIdx }

// SeekBit implements Reader.
func (r *UnbufferedReaderL2M) SeekBit(bitIndex uint64) error {
	r.bitIdx = bitIndex
	return nil
}

// ReadBits implements Reader.
func (r *UnbufferedReaderL2M) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	if err := r.data.SetPosition(int(r.bitIdx / 64)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	inWordOffset := uint(r.bitIdx % 64)

	var res uint64
	if inWordOffset+uint(n) <= 64 {
		wd, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		wd = toLE(wd)
		shamt := 64 - uint(n)
		res = (wd << (shamt - inWordOffset)) >> shamt
	} else {
		low, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		high, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		low, high = toLE(low), toLE(high)
		shamt1 := 128 - inWordOffset - uint(n)
		shamt2 := 64 - uint(n)
		res = ((high << shamt1) >> shamt2) | (low >> inWordOffset)
	}
	r.bitIdx += uint64(n)
	return res, nil
}

// PeekBits implements Reader.
func (r *UnbufferedReaderL2M) PeekBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return 0, nil
	}
	if err := r.data.SetPosition(int(r.bitIdx / 64)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	inWordOffset := uint(r.bitIdx % 64)

	var res uint64
	if inWordOffset+uint(n) <= 64 {
		wd, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		wd = toLE(wd)
		shamt := 64 - uint(n)
		res = (wd << (shamt - inWordOffset)) >> shamt
	} else {
		low, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		high, err := r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		low, high = toLE(low), toLE(high)
		shamt1 := 128 - inWordOffset - uint(n)
		shamt2 := 64 - uint(n)
		res = ((high << shamt1) >> shamt2) | (low >> inWordOffset)
	}
	return uint32(res), nil
}

// ReadUnary implements Reader using the general word-scanning algorithm:
// count trailing zeros word by word until a set bit is found.
func (r *UnbufferedReaderL2M) ReadUnary() (uint64, error) {
	if err := r.data.SetPosition(int(r.bitIdx / 64)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	inWordOffset := uint(r.bitIdx % 64)
	bitsInWord := 64 - inWordOffset
	var total uint64

	wd, err := r.data.ReadWord()
	if err != nil {
		return 0, err
	}
	wd = toLE(wd) >> inWordOffset
	for {
		zeros := uint(word.TrailingZeros(wd))
		if zeros < bitsInWord {
			r.bitIdx += total + uint64(zeros) + 1
			return total + uint64(zeros), nil
		}
		total += uint64(bitsInWord)
		bitsInWord = 64
		wd, err = r.data.ReadWord()
		if err != nil {
			return 0, err
		}
		wd = toLE(wd)
	}
}

// Order implements Reader.
func (r *UnbufferedReaderM2L) Order() BitOrder { return M2L }

// Order implements Reader.
func (r *UnbufferedReaderL2M) Order() BitOrder { return L2M }

var (
	_ Reader = (*UnbufferedReaderM2L)(nil)
	_ Reader = (*UnbufferedReaderL2M)(nil)
)
