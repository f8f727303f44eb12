// ABOUTME: The Reader and Writer interfaces shared by every bit-order-specific implementation.
// ABOUTME: The codes package is written entirely against these, never against a concrete type.
package bitio

// BitOrder identifies which of the two mirror-image packings a Reader or
// Writer implements. The codes package's slow-path algorithms never need
// this (WriteBits/ReadBits round-trip correctly regardless of order), but
// the table fast path's literal bit patterns are order-specific, so
// Reader/Writer expose Order for callers that keep per-order tables.
type BitOrder int

const (
	// M2L is most-significant-bit-first: bit 0 of the logical stream is
	// the highest-order bit of the first word.
	M2L BitOrder = iota
	// L2M is least-significant-bit-first: bit 0 of the logical stream is
	// the lowest-order bit of the first word.
	L2M
)

// Writer is the contract every buffered bit-stream writer satisfies,
// regardless of bit order. WriteUnary implements only the general
// shift-and-flush algorithm (spec §4.2); the table fast path for unary
// values lives in the codes package, which calls WriteBits directly for
// table hits and falls back to WriteUnary otherwise.
type Writer interface {
	// WriteBits writes the low n bits of value, n in [0, 64]. M2L writers
	// emit the field MSB-first, L2M writers LSB-first; either way ReadBits
	// on a reader of the same order returns value.
	WriteBits(value uint64, n int) error
	// WriteUnary writes Unary(value): value zeros followed by a
	// terminating one bit. value must not be math.MaxUint64.
	WriteUnary(value uint64) error
	// PartialFlush writes any complete 64-bit words currently staged,
	// without forcing out a final partial word.
	PartialFlush() error
	// Close flushes any remaining staged bits, zero-padded to a full
	// word, and releases the writer. After Close, the writer must not be
	// used again.
	Close() error
	// Order reports which bit order this writer packs fields in.
	Order() BitOrder
}

// Reader is the contract every bit-stream reader satisfies (buffered or
// unbuffered), regardless of bit order.
type Reader interface {
	// ReadBits reads the next n bits and returns them right-justified,
	// n in [0, 64].
	ReadBits(n int) (uint64, error)
	// PeekBits returns the next n bits without advancing the stream,
	// n in [0, 32].
	PeekBits(n int) (uint32, error)
	// SkipBits advances the stream position by n bits without reading.
	SkipBits(n int) error
	// SkipBitsAfterTableLookup is functionally identical to SkipBits; it
	// exists as a separate name so a buffered implementation can skip
	// bounds re-checks the caller has already performed via a table
	// lookup (spec §4.4).
	SkipBitsAfterTableLookup(n int) error
	// ReadUnary reads a Unary code using the general word-scanning
	// algorithm (spec §4.3). Table-accelerated decoding lives in the
	// codes package, which peeks first and only falls back to ReadUnary
	// on a table miss.
	ReadUnary() (uint64, error)
	// SeekBit sets the absolute bit position.
	SeekBit(bitIndex uint64) error
	// Position returns the absolute bit position.
	Position() uint64
	// Order reports which bit order this reader unpacks fields from.
	Order() BitOrder
}
