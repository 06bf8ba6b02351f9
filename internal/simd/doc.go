// Package simd detects the SIMD instruction set of the executing CPU.
//
// # Supported Platforms
//
//   - x86 and x86-64: SSE2, AVX2, AVX-512F
//   - ARM64: NEON, SVE2
//
// Detection uses golang.org/x/sys/cpu at init. Set SYSPRIM_SIMD to pin a
// narrower instruction set; an override the CPU cannot honour is ignored.
package simd
