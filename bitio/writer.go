// ABOUTME: Buffered bit-stream writer: packs variable-width fields into a 128-bit staging register.
// ABOUTME: WriterM2L and WriterL2M are mirror-image implementations, selected by type at construction.
package bitio

import (
	"fmt"
	"math"
	"runtime"

	"github.com/vigna/dsi-bitstream-go/word"
)

// WriterM2L is a buffered bit-stream writer using most-significant-bit-first
// packing: bit position 0 of the logical stream is the highest-order bit of
// the first word, which is then serialized big-endian.
type WriterM2L struct {
	backend WordSink
	buffer  word.Uint128
	bits    int // bits_in_buffer, always in [0, 128]
	closed  bool
}

// NewWriterM2L creates a WriterM2L over backend. The returned writer must
// be closed with Close when the caller is done with it; a finalizer
// performs the same flush (discarding any error) if Close is never called,
// mirroring the Rust source's Drop-based final flush.
func NewWriterM2L(backend WordSink) *WriterM2L {
	w := &WriterM2L{backend: backend}
	runtime.SetFinalizer(w, func(w *WriterM2L) { _ = w.Close() })
	return w
}

func (w *WriterM2L) spaceLeft() int { return 128 - w.bits }

// WriteBits implements Writer.
func (w *WriterM2L) WriteBits(value uint64, n int) error {
	if n < 0 || n > 64 {
		return fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return nil
	}
	if debugChecks && n < 64 && (value>>uint(n)) != 0 {
		return fmt.Errorf("%w: value %d does not fit in %d bits", ErrValueOverflow, value, n)
	}
	if n > w.spaceLeft() {
		if err := w.PartialFlush(); err != nil {
			return err
		}
	}
	w.buffer = w.buffer.Shl(uint(n)).Or(word.FromLo(value))
	w.bits += n
	return nil
}

// WriteUnary implements Writer: it writes value zeros followed by a
// terminating one bit, without the 64-bit-per-call limit of WriteBits.
func (w *WriterM2L) WriteUnary(value uint64) error {
	if debugChecks && value == math.MaxUint64 {
		return fmt.Errorf("%w: unary value must not be MaxUint64", ErrValueOverflow)
	}
	codeLength := value + 1
	for {
		spaceLeft := uint64(w.spaceLeft())
		if codeLength <= spaceLeft {
			break
		}
		if spaceLeft == 128 {
			if err := w.backend.WriteWord(0); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
			if err := w.backend.WriteWord(0); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
		} else {
			w.buffer = w.buffer.Shl(uint(spaceLeft))
			if err := w.backend.WriteWord(toBE(w.buffer.Hi)); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
			if err := w.backend.WriteWord(toBE(w.buffer.Lo)); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
			w.buffer = word.Uint128{}
		}
		codeLength -= spaceLeft
		w.bits = 0
	}
	w.bits += int(codeLength)
	if codeLength == 128 {
		w.buffer = word.Uint128{}
	} else {
		w.buffer = w.buffer.Shl(uint(codeLength))
	}
	w.buffer = w.buffer.Or(word.FromLo(1))
	return nil
}

// PartialFlush implements Writer: if at least one full word is staged, it
// is written to the backend.
func (w *WriterM2L) PartialFlush() error {
	if w.bits < 64 {
		return nil
	}
	w.bits -= 64
	out := w.buffer.Shr(uint(w.bits)).Lo
	if err := w.backend.WriteWord(toBE(out)); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}

// Close implements Writer: flushes any complete words, then emits one more
// word holding the remaining bits zero-padded at the low end.
func (w *WriterM2L) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.PartialFlush(); err != nil {
		return err
	}
	if w.bits > 0 {
		shamt := uint(64 - w.bits)
		out := w.buffer.Lo << shamt
		if err := w.backend.WriteWord(toBE(out)); err != nil {
			return fmt.Errorf("%w: %v", ErrBackendIO, err)
		}
		w.bits = 0
	}
	return nil
}

// WriterL2M is a buffered bit-stream writer using least-significant-bit-first
// packing: bit position 0 of the logical stream is the lowest-order bit of
// the first word, which is then serialized little-endian.
type WriterL2M struct {
	backend WordSink
	buffer  word.Uint128
	bits    int
	closed  bool
}

// NewWriterL2M creates a WriterL2M over backend. See NewWriterM2L for the
// Close/finalizer contract.
func NewWriterL2M(backend WordSink) *WriterL2M {
	w := &WriterL2M{backend: backend}
	runtime.SetFinalizer(w, func(w *WriterL2M) { _ = w.Close() })
	return w
}

func (w *WriterL2M) spaceLeft() int { return 128 - w.bits }

// WriteBits implements Writer.
func (w *WriterL2M) WriteBits(value uint64, n int) error {
	if n < 0 || n > 64 {
		return fmt.Errorf("%w: n=%d", ErrBitWidth, n)
	}
	if n == 0 {
		return nil
	}
	if debugChecks && n < 64 && (value>>uint(n)) != 0 {
		return fmt.Errorf("%w: value %d does not fit in %d bits", ErrValueOverflow, value, n)
	}
	if n > w.spaceLeft() {
		if err := w.PartialFlush(); err != nil {
			return err
		}
	}
	w.buffer = w.buffer.Shr(uint(n)).Or(word.FromLo(value).Shl(uint(128 - n)))
	w.bits += n
	return nil
}

// WriteUnary implements Writer.
func (w *WriterL2M) WriteUnary(value uint64) error {
	if debugChecks && value == math.MaxUint64 {
		return fmt.Errorf("%w: unary value must not be MaxUint64", ErrValueOverflow)
	}
	codeLength := value + 1
	for {
		spaceLeft := uint64(w.spaceLeft())
		if codeLength <= spaceLeft {
			break
		}
		if spaceLeft == 128 {
			if err := w.backend.WriteWord(0); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
			if err := w.backend.WriteWord(0); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
		} else {
			w.buffer = w.buffer.Shr(uint(spaceLeft))
			if err := w.backend.WriteWord(toLE(w.buffer.Lo)); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
			if err := w.backend.WriteWord(toLE(w.buffer.Hi)); err != nil {
				return fmt.Errorf("%w: %v", ErrBackendIO, err)
			}
			w.buffer = word.Uint128{}
		}
		codeLength -= spaceLeft
		w.bits = 0
	}
	w.bits += int(codeLength)
	if codeLength == 128 {
		w.buffer = word.Uint128{}
	} else {
		w.buffer = w.buffer.Shr(uint(codeLength))
	}
	w.buffer = w.buffer.Or(word.FromHiBit())
	return nil
}

// PartialFlush implements Writer.
func (w *WriterL2M) PartialFlush() error {
	if w.bits < 64 {
		return nil
	}
	out := w.buffer.Shr(uint(128 - w.bits)).Lo
	w.bits -= 64
	if err := w.backend.WriteWord(toLE(out)); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}

// Close implements Writer.
func (w *WriterL2M) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.PartialFlush(); err != nil {
		return err
	}
	if w.bits > 0 {
		shamt := uint(64 - w.bits)
		out := w.buffer.Hi >> shamt
		if err := w.backend.WriteWord(toLE(out)); err != nil {
			return fmt.Errorf("%w: %v", ErrBackendIO, err)
		}
		w.bits = 0
	}
	return nil
}

// Order implements Writer.
func (w *WriterM2L) Order() BitOrder { return M2L }

// Order implements Writer.
func (w *WriterL2M) Order() BitOrder { return L2M }

var (
	_ Writer = (*WriterM2L)(nil)
	_ Writer = (*WriterL2M)(nil)
)
