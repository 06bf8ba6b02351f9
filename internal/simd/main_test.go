package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints ISA diagnostics so CI logs show which unit was detected.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active ISA: %s (%d-byte vectors)\n", ActiveISA(), ActiveISA().VectorBytes())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("CPU Features:\n")

	switch runtime.GOARCH {
	case "arm64":
		fmt.Printf("  ASIMD (NEON): %v\n", Available(NEON))
		fmt.Printf("  SVE2: %v\n", Available(SVE2))
	case "amd64", "386":
		fmt.Printf("  SSE2: %v\n", Available(SSE2))
		fmt.Printf("  AVX2: %v\n", Available(AVX2))
		fmt.Printf("  AVX-512F: %v\n", Available(AVX512F))
	}

	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
