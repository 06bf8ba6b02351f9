package sysprim

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sysprim/internal/mem"
	"github.com/hupe1980/sysprim/internal/mmap"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory is matched by every allocation failure.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrDoubleFree is returned when a buffer is released a second time.
	ErrDoubleFree = errors.New("buffer already freed")

	// ErrForeignBuffer is returned when a buffer is released through an
	// allocator that did not produce it.
	ErrForeignBuffer = errors.New("buffer not owned by this allocator")
)

// ErrInvalidAlignment indicates an alignment that is not a power of two or
// lies outside [MinAlignment, MaxAlignment].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidAlignment struct {
	Alignment int
	cause     error
}

func (e *ErrInvalidAlignment) Error() string {
	return fmt.Sprintf("invalid alignment: %d (want a power of two in [%d, %d])", e.Alignment, MinAlignment, MaxAlignment)
}

func (e *ErrInvalidAlignment) Unwrap() error { return e.cause }

// Is reports ErrInvalidArgument as a match.
func (e *ErrInvalidAlignment) Is(target error) bool { return target == ErrInvalidArgument }

// ErrInvalidSize indicates a negative size or one that overflows once
// alignment slack is added.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d", e.Size)
}

func (e *ErrInvalidSize) Unwrap() error { return e.cause }

// Is reports ErrInvalidArgument as a match.
func (e *ErrInvalidSize) Is(target error) bool { return target == ErrInvalidArgument }

// ErrExtentOutOfRange indicates an element extent that does not fit the buffer.
type ErrExtentOutOfRange struct {
	ElemSize int
	NumElems int
	BufLen   int
	cause    error
}

func (e *ErrExtentOutOfRange) Error() string {
	return fmt.Sprintf("extent out of range: %d elements of %d bytes in a %d-byte buffer", e.NumElems, e.ElemSize, e.BufLen)
}

func (e *ErrExtentOutOfRange) Unwrap() error { return e.cause }

// Is reports ErrInvalidArgument as a match.
func (e *ErrExtentOutOfRange) Is(target error) bool { return target == ErrInvalidArgument }

// ErrAllocation indicates that the memory facility could not satisfy a request.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrAllocation struct {
	Size      int
	Alignment int
	Strategy  Strategy
	cause     error
}

func (e *ErrAllocation) Error() string {
	return fmt.Sprintf("allocation of %d bytes (alignment %d, %s) failed: %v", e.Size, e.Alignment, e.Strategy, e.cause)
}

func (e *ErrAllocation) Unwrap() error { return e.cause }

// Is reports ErrOutOfMemory as a match.
func (e *ErrAllocation) Is(target error) bool { return target == ErrOutOfMemory }

// translateAllocError maps internal allocation errors onto the public taxonomy.
func translateAllocError(err error, size, alignment int, strategy Strategy) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mem.ErrInvalidAlignment):
		return &ErrInvalidAlignment{Alignment: alignment, cause: err}
	case errors.Is(err, mem.ErrInvalidSize), errors.Is(err, mmap.ErrInvalidSize):
		return &ErrInvalidSize{Size: size, cause: err}
	}

	// Everything else is exhaustion: the memory budget, ENOMEM from the page
	// facility, or a platform without one.
	return &ErrAllocation{Size: size, Alignment: alignment, Strategy: strategy, cause: err}
}
