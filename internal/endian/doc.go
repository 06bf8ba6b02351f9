// Package endian reports the byte order of the executing CPU.
//
// Well-known GOARCH values are resolved by build tags. Any other port falls
// back to probing the in-memory layout of a known integer. Both answers are
// compared at init so a binary never runs with a byte order it cannot vouch for.
package endian
