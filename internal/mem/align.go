package mem

import (
	"errors"
	"unsafe"
)

const (
	// MinAlignment is the pointer size.
	MinAlignment = int(unsafe.Sizeof(uintptr(0)))
	// MaxAlignment bounds the alignments accepted by Alloc.
	MaxAlignment = 1 << 30
)

var (
	// ErrInvalidAlignment is returned for alignments that are not a power of
	// two or fall outside [MinAlignment, MaxAlignment].
	ErrInvalidAlignment = errors.New("mem: invalid alignment")
	// ErrInvalidSize is returned for negative sizes or sizes that overflow
	// once alignment slack is added.
	ErrInvalidSize = errors.New("mem: invalid size")
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateAlignment checks alignment against the accepted range.
func ValidateAlignment(alignment int) error {
	if !IsPowerOfTwo(alignment) || alignment < MinAlignment || alignment > MaxAlignment {
		return ErrInvalidAlignment
	}
	return nil
}

// Padding returns the number of bytes needed after n bytes so that the
// following byte starts on an alignment boundary.
func Padding(n, alignment int) int {
	if rem := n & (alignment - 1); rem != 0 {
		return alignment - rem
	}
	return 0
}

// IsAligned checks if a pointer is aligned to the given boundary.
func IsAligned(ptr unsafe.Pointer, alignment int) bool {
	return uintptr(ptr)&uintptr(alignment-1) == 0
}

// offsetFor returns how far past addr the first aligned address lies.
func offsetFor(addr uintptr, alignment int) int {
	a := uintptr(alignment)
	return int((a - (addr & (a - 1))) & (a - 1))
}
