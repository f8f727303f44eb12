package bitio

import "github.com/vigna/dsi-bitstream-go/word"

// toBE converts a 64-bit word holding the logical, MSB-first bit pattern
// used by the M2L algorithms into the form handed to / received from a
// WordSink/WordSource. Applying it again on read recovers the logical
// value; it is its own inverse, so it is correct regardless of what byte
// order a concrete backend happens to serialize with underneath (the file
// backend fixes little-endian on the wire; the memory backend stores raw
// uint64 values with no serialization at all).
func toBE(w uint64) uint64 { return word.ReverseBytes(w) }

// toLE is the L2M counterpart of toBE. L2M's bit-packing already matches
// the backends' native word order, so no transform is needed.
func toLE(w uint64) uint64 { return w }
