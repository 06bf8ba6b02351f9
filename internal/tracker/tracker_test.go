package tracker

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterRelease(t *testing.T) {
	r := New()

	a := r.Register()
	b := r.Register()
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, uint64(2), r.Len())
	assert.True(t, r.Live(a))

	assert.True(t, r.Release(a))
	assert.False(t, r.Live(a))
	assert.False(t, r.Release(a), "second release must be detected")
	assert.False(t, r.Release(9999), "unknown id must be detected")

	assert.True(t, r.Live(b))
	assert.Equal(t, uint64(1), r.Len())
}

func TestRegistry_WrapSkipsZeroAndLive(t *testing.T) {
	r := New()
	first := r.Register()
	require.Equal(t, uint32(1), first)

	r.next = math.MaxUint32 - 1
	assert.Equal(t, uint32(math.MaxUint32), r.Register())

	// 0 is skipped and 1 is still live.
	assert.Equal(t, uint32(2), r.Register())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				id := r.Register()
				if !r.Release(id) {
					t.Errorf("id %d released twice", id)
				}
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, r.Len())
}
