package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that pins the instruction set.
const EnvOverride = "SYSPRIM_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents a CPU without a recognised vector unit.
	Generic ISA = iota
	// SSE2 represents x86 SSE2 (128-bit).
	SSE2
	// AVX2 represents x86-64 AVX2 (256-bit).
	AVX2
	// AVX512F represents x86-64 AVX-512 Foundation (512-bit).
	AVX512F
	// NEON represents ARM64 Advanced SIMD (128-bit).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512F:
		return "avx512f"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	default:
		return "unknown"
	}
}

// VectorBytes returns the register width of the instruction set in bytes.
// SVE2 reports its architectural minimum.
func (i ISA) VectorBytes() int {
	switch i {
	case SSE2, NEON, SVE2:
		return 16
	case AVX2:
		return 32
	case AVX512F:
		return 64
	default:
		return 0
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	case "avx2":
		return AVX2, true
	case "avx512f", "avx512":
		return AVX512F, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	default:
		return Generic, false
	}
}

// Package-level state, written once by the platform init functions.
var (
	activeISA   ISA
	hasOverride bool

	hasSSE2    bool
	hasAVX2    bool
	hasAVX512F bool
	hasASIMD   bool
	hasSVE2    bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			return
		}
		// Unknown or unavailable override - fall through to auto-detection
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE2:
		return hasSSE2
	case AVX2:
		return hasAVX2
	case AVX512F:
		return hasAVX512F
	case NEON:
		return hasASIMD
	case SVE2:
		return hasSVE2
	default:
		return false
	}
}

// selectBestISA chooses the widest instruction set the CPU offers.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64", "386":
		switch {
		case hasAVX512F:
			return AVX512F
		case hasAVX2:
			return AVX2
		case hasSSE2:
			return SSE2
		}
	case "arm64":
		// SVE2 registers are at least 128 bits, same as NEON; report the
		// newer unit when present.
		switch {
		case hasSVE2:
			return SVE2
		case hasASIMD:
			return NEON
		}
	}
	return Generic
}

// ActiveISA returns the selected instruction set.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if SYSPRIM_SIMD selected the instruction set.
func IsOverridden() bool {
	return hasOverride
}

// Available reports whether the CPU supports isa.
func Available(isa ISA) bool {
	return isISAAvailable(isa)
}
