package testutil

import (
	"sync"
	"unsafe"

	"github.com/zeebo/pcg"
)

var mu sync.Mutex

// FillRandom fills dst with pseudo-random bytes.
// It is safe for concurrent use.
func FillRandom(dst []byte) {
	mu.Lock()
	defer mu.Unlock()

	i := 0
	for ; i+8 <= len(dst); i += 8 {
		v := pcg.Uint64()
		for j := 0; j < 8; j++ {
			dst[i+j] = byte(v >> (8 * j))
		}
	}
	if i < len(dst) {
		v := pcg.Uint64()
		for ; i < len(dst); i++ {
			dst[i] = byte(v)
			v >>= 8
		}
	}
}

// RandomBytes returns n pseudo-random bytes.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	FillRandom(b)
	return b
}

// Pattern returns n bytes counting up from zero, wrapping at 256.
func Pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// AddrOf returns the address of the first byte backing b, even when len(b) is 0.
func AddrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// IsAligned reports whether addr is a multiple of alignment.
func IsAligned(addr uintptr, alignment int) bool {
	return addr%uintptr(alignment) == 0
}
