package sysprim

import (
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/sysprim/internal/mem"
)

// Numeric is the set of element types an aligned buffer can be viewed as.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Buffer is an aligned memory region obtained from an Allocator.
//
// The region must be released exactly once, either with Close or with the
// Free method of the allocator that produced it. After release every
// accessor reports an empty region.
type Buffer struct {
	owner     *Allocator
	block     *mem.Block
	id        uint32
	size      int
	alignment int
	strategy  Strategy
	freed     atomic.Bool
}

// Bytes returns the usable region. len and cap both equal the requested
// size, so appending never writes past the region. It returns nil once the
// buffer has been released.
func (b *Buffer) Bytes() []byte {
	if b.freed.Load() {
		return nil
	}
	return b.block.Bytes()
}

// Len returns the requested size in bytes.
func (b *Buffer) Len() int { return b.size }

// Pointer returns the aligned base address, or nil once released.
// A zero-size buffer still has a non-nil address.
func (b *Buffer) Pointer() unsafe.Pointer {
	if b.freed.Load() {
		return nil
	}
	return b.block.Pointer()
}

// Addr returns the aligned base address as an integer, or 0 once released.
func (b *Buffer) Addr() uintptr {
	return uintptr(b.Pointer())
}

// Alignment returns the alignment the buffer was allocated with.
func (b *Buffer) Alignment() int { return b.alignment }

// Strategy returns the facility backing the buffer. It is never StrategyAuto.
func (b *Buffer) Strategy() Strategy { return b.strategy }

// Freed reports whether the buffer has been released.
func (b *Buffer) Freed() bool { return b.freed.Load() }

// Close releases the buffer through its allocator.
func (b *Buffer) Close() error {
	if b == nil {
		return nil
	}
	return b.owner.Free(b)
}

// Slice views the buffer as a slice of T. Trailing bytes that do not fill a
// whole element are not part of the view. It returns nil for a released or
// too-short buffer.
//
// The buffer must be aligned to at least the alignment of T, which every
// accepted alignment satisfies for the Numeric types.
func Slice[T Numeric](b *Buffer) []T {
	return mem.View[T](b.Bytes())
}
