// ABOUTME: Error kinds surfaced by the bit-stream reader and writer.
// ABOUTME: Every fallible operation returns exactly one of these, wrapped with context via %w.
package bitio

import "errors"

// ErrBitWidth is returned when a caller asks for more bits than a single
// read_bits/write_bits call supports: more than 64 bits, or more than 32 for
// peek_bits.
var ErrBitWidth = errors.New("bitio: bit width out of range")

// ErrValueOverflow is returned, in debug builds only (see checks_debug.go),
// when a value does not fit in the requested number of bits, or when a
// unary value equals the reserved sentinel math.MaxUint64.
var ErrValueOverflow = errors.New("bitio: value does not fit in requested width")

// ErrBackendIO wraps a failure from the underlying word backend.
var ErrBackendIO = errors.New("bitio: backend I/O error")

// ErrUnexpectedEOF is returned when the reader exhausts its source before a
// requested code or bit field could be completed.
var ErrUnexpectedEOF = errors.New("bitio: unexpected end of stream")
