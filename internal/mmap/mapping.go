package mmap

import (
	"errors"
	"os"
	"sync/atomic"
)

var (
	// ErrInvalidSize is returned for a non-positive mapping size.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrUnsupported is returned on platforms without anonymous mappings.
	ErrUnsupported = errors.New("mmap: anonymous mappings not supported on this platform")
)

// Mapping is an anonymous read-write memory mapping.
// It owns the underlying bytes and is responsible for unmapping them.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	// unmap is the platform-specific release function.
	unmap func([]byte) error
}

// MapAnon maps size bytes of zeroed, page-aligned memory.
// The mapped length is size rounded up to a whole number of pages.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	page := PageSize()
	if size > int(^uint(0)>>1)-page {
		return nil, ErrInvalidSize
	}
	length := (size + page - 1) &^ (page - 1)

	data, unmapFunc, err := osMapAnon(length)
	if err != nil {
		return nil, err
	}

	return &Mapping{data: data, unmap: unmapFunc}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the mapped memory, or nil once closed.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the mapped length in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// PageSize returns the granularity of the mapping facility.
func PageSize() int {
	return os.Getpagesize()
}

// Supported reports whether MapAnon can succeed on this platform.
func Supported() bool {
	return supported
}
