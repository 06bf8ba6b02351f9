package swapbuffer

import (
	"testing"

	"github.com/hupe1980/sysprim"
	"github.com/hupe1980/sysprim/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, alignment := range []int{16, 64} {
		for _, numBytes := range []int{0, 1, 15, 16, 17, 100, 4096} {
			sb, err := New(numBytes, WithAlignment(alignment))
			require.NoError(t, err)

			assert.Equal(t, numBytes, sb.NumBytes())
			assert.Len(t, sb.Valid(), numBytes)
			assert.Len(t, sb.Scratch(), numBytes)
			require.NotNil(t, sb.Underlying())

			if numBytes > 0 {
				base := sb.Underlying().Addr()
				assert.Equal(t, base, testutil.AddrOf(sb.Valid()))
				scratch := testutil.AddrOf(sb.Scratch())
				assert.True(t, testutil.IsAligned(scratch, alignment), "align=%d n=%d", alignment, numBytes)
				assert.GreaterOrEqual(t, int(scratch-base), numBytes)
				assert.Less(t, int(scratch-base), numBytes+alignment)
			}

			require.NoError(t, sb.Close())
			assert.True(t, sb.Underlying().Freed())
			assert.Nil(t, sb.Valid())
		}
	}
}

func TestSwap(t *testing.T) {
	sb, err := New(64)
	require.NoError(t, err)
	defer sb.Close()

	valid, scratch := sb.Valid(), sb.Scratch()
	copy(valid, testutil.Pattern(64))

	// Transform valid into scratch, then promote scratch.
	require.NoError(t, sysprim.ByteSwapCopy(sb.Scratch(), sb.Valid(), 4, 16))
	sb.Swap()

	assert.Equal(t, testutil.AddrOf(scratch), testutil.AddrOf(sb.Valid()))
	assert.Equal(t, testutil.AddrOf(valid), testutil.AddrOf(sb.Scratch()))
	assert.Equal(t, []byte{3, 2, 1, 0}, sb.Valid()[:4])

	sb.Swap()
	assert.Equal(t, testutil.AddrOf(valid), testutil.AddrOf(sb.Valid()))
}

func TestNewFromBuffers(t *testing.T) {
	valid := testutil.Pattern(32)
	scratch := make([]byte, 32)

	sb, err := NewFromBuffers(valid, scratch)
	require.NoError(t, err)
	assert.Nil(t, sb.Underlying())
	assert.Equal(t, 32, sb.NumBytes())

	sb.Swap()
	assert.Equal(t, testutil.AddrOf(scratch), testutil.AddrOf(sb.Valid()))

	require.NoError(t, sb.Close())
	assert.Equal(t, testutil.Pattern(32), valid)

	_, err = NewFromBuffers(valid, scratch[:16])
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewInvalid(t *testing.T) {
	_, err := New(-1)
	assert.ErrorIs(t, err, sysprim.ErrInvalidArgument)

	_, err = New(16, WithAlignment(24))
	assert.ErrorIs(t, err, sysprim.ErrInvalidArgument)
}

func TestWithAllocator(t *testing.T) {
	metrics := &sysprim.BasicMetricsCollector{}
	a := sysprim.NewAllocator(sysprim.WithMetricsCollector(metrics), sysprim.WithMemoryLimit(100))

	sb, err := New(40, WithAllocator(a))
	require.NoError(t, err)
	// 40 bytes, 8 bytes of padding, 40 bytes.
	assert.Equal(t, int64(88), metrics.GetStats().LiveBytes)

	_, err = New(40, WithAllocator(a))
	assert.ErrorIs(t, err, sysprim.ErrOutOfMemory)

	require.NoError(t, sb.Close())
	assert.ErrorIs(t, sb.Close(), sysprim.ErrDoubleFree)
	assert.Zero(t, metrics.GetStats().LiveBuffers)
}

func TestTypedViews(t *testing.T) {
	sb, err := New(64, WithAlignment(64))
	require.NoError(t, err)
	defer sb.Close()

	v := ValidAs[float32](sb)
	s := ScratchAs[float32](sb)
	require.Len(t, v, 16)
	require.Len(t, s, 16)

	for i := range v {
		v[i] = float32(i)
	}
	for i := range s {
		s[i] = v[len(v)-1-i]
	}
	sb.Swap()
	assert.Equal(t, float32(15), ValidAs[float32](sb)[0])
}
