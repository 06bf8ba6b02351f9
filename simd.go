package sysprim

import "github.com/hupe1980/sysprim/internal/simd"

// ISA identifies a SIMD instruction set.
type ISA = simd.ISA

// Recognised instruction sets.
const (
	ISAGeneric = simd.Generic
	ISASSE2    = simd.SSE2
	ISAAVX2    = simd.AVX2
	ISAAVX512F = simd.AVX512F
	ISANEON    = simd.NEON
	ISASVE2    = simd.SVE2
)

// SIMDInstructionSet returns the widest instruction set the executing CPU
// supports. Setting SYSPRIM_SIMD to one of generic, sse2, avx2, avx512f,
// neon or sve2 pins a narrower set when the CPU supports it.
func SIMDInstructionSet() ISA {
	return simd.ActiveISA()
}

// PreferredAlignment returns the register width of SIMDInstructionSet, and
// never less than SSEInstructionAlignment.
func PreferredAlignment() int {
	return max(simd.ActiveISA().VectorBytes(), SSEInstructionAlignment)
}
