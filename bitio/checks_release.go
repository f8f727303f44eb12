//go:build !debug

package bitio

// debugChecks is false in release builds, so the compiler eliminates every
// branch guarded by it below (mirrors Rust's #[cfg(test)] / debug_assert
// elision in release builds).
const debugChecks = false
