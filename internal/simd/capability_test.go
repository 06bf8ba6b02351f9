package simd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{"SSE2", SSE2, true},
		{" avx2 ", AVX2, true},
		{"avx512", AVX512F, true},
		{"avx512f", AVX512F, true},
		{"neon", NEON, true},
		{"sve2", SVE2, true},
		{"mmx", Generic, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseISA(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestISAStringRoundTrip(t *testing.T) {
	for _, isa := range []ISA{Generic, SSE2, AVX2, AVX512F, NEON, SVE2} {
		got, ok := ParseISA(isa.String())
		assert.True(t, ok)
		assert.Equal(t, isa, got)
	}
	assert.Equal(t, "unknown", ISA(200).String())
}

func TestActiveISAIsAvailable(t *testing.T) {
	assert.True(t, Available(ActiveISA()))
	assert.True(t, Available(Generic))

	if runtime.GOARCH == "amd64" {
		// SSE2 is part of the amd64 baseline.
		assert.True(t, Available(SSE2))
		if !IsOverridden() {
			assert.NotEqual(t, Generic, ActiveISA())
		}
	}
}

func TestVectorBytes(t *testing.T) {
	assert.Equal(t, 0, Generic.VectorBytes())
	assert.Equal(t, 16, SSE2.VectorBytes())
	assert.Equal(t, 32, AVX2.VectorBytes())
	assert.Equal(t, 64, AVX512F.VectorBytes())
	assert.Equal(t, 16, NEON.VectorBytes())
}

func TestOverrideSelection(t *testing.T) {
	saved, savedOverride := activeISA, hasOverride
	t.Cleanup(func() { activeISA, hasOverride = saved, savedOverride })

	t.Setenv(EnvOverride, "generic")
	initCapabilities()
	assert.Equal(t, Generic, ActiveISA())
	assert.True(t, IsOverridden())

	hasOverride = false
	t.Setenv(EnvOverride, "not-an-isa")
	initCapabilities()
	assert.Equal(t, selectBestISA(), ActiveISA())
	assert.False(t, IsOverridden())
}
