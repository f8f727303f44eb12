//go:build debug

package bitio

// debugChecks is true when built with `-tags debug`, turning on the
// ValueOverflowError range checks in write_bits and write_unary.
const debugChecks = true
