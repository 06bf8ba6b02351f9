// Package swapbuffer pairs two equally sized byte regions for transforms
// that read one region and write the other, then exchange roles.
package swapbuffer

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sysprim"
	"github.com/hupe1980/sysprim/internal/conv"
	"github.com/hupe1980/sysprim/internal/mem"
)

// ErrLengthMismatch is returned by NewFromBuffers for regions of different length.
var ErrLengthMismatch = errors.New("swapbuffer: valid and scratch lengths differ")

type options struct {
	allocator *sysprim.Allocator
	alignment int
}

// Option configures New.
type Option func(*options)

// WithAllocator draws the backing block from a rather than the default allocator.
func WithAllocator(a *sysprim.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithAlignment aligns both halves to alignment instead of
// sysprim.SSEInstructionAlignment.
func WithAlignment(alignment int) Option {
	return func(o *options) {
		o.alignment = alignment
	}
}

// SwapBuffer holds a valid region with the current data and a scratch region
// of the same length to write the next result into.
type SwapBuffer struct {
	numBytes int
	block    *sysprim.Buffer
	valid    []byte
	scratch  []byte
}

// New allocates one aligned block holding both regions. The scratch region
// starts at the first aligned offset past the valid region, so both are
// aligned.
func New(numBytes int, opts ...Option) (*SwapBuffer, error) {
	o := options{
		allocator: sysprim.DefaultAllocator(),
		alignment: sysprim.SSEInstructionAlignment,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if numBytes < 0 {
		return nil, fmt.Errorf("swapbuffer: %w", &sysprim.ErrInvalidSize{Size: numBytes})
	}
	if err := mem.ValidateAlignment(o.alignment); err != nil {
		return nil, fmt.Errorf("swapbuffer: %w", &sysprim.ErrInvalidAlignment{Alignment: o.alignment})
	}

	offset, err := conv.AddInt(numBytes, mem.Padding(numBytes, o.alignment))
	if err != nil {
		return nil, fmt.Errorf("swapbuffer: %w", &sysprim.ErrInvalidSize{Size: numBytes})
	}
	total, err := conv.AddInt(offset, numBytes)
	if err != nil {
		return nil, fmt.Errorf("swapbuffer: %w", &sysprim.ErrInvalidSize{Size: numBytes})
	}

	block, err := o.allocator.Alloc(total, o.alignment)
	if err != nil {
		return nil, fmt.Errorf("swapbuffer: %w", err)
	}

	data := block.Bytes()
	return &SwapBuffer{
		numBytes: numBytes,
		block:    block,
		valid:    data[:numBytes:numBytes],
		scratch:  data[offset : offset+numBytes : offset+numBytes],
	}, nil
}

// NewFromBuffers wraps caller-owned regions. Close leaves them alone.
func NewFromBuffers(valid, scratch []byte) (*SwapBuffer, error) {
	if len(valid) != len(scratch) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(valid), len(scratch))
	}
	return &SwapBuffer{
		numBytes: len(valid),
		valid:    valid,
		scratch:  scratch,
	}, nil
}

// NumBytes returns the length of each region.
func (s *SwapBuffer) NumBytes() int { return s.numBytes }

// Valid returns the region holding the current data.
func (s *SwapBuffer) Valid() []byte { return s.valid }

// Scratch returns the region to write the next result into.
func (s *SwapBuffer) Scratch() []byte { return s.scratch }

// Swap exchanges the valid and scratch regions.
func (s *SwapBuffer) Swap() {
	s.valid, s.scratch = s.scratch, s.valid
}

// Underlying returns the block backing both regions, or nil for regions
// supplied through NewFromBuffers.
func (s *SwapBuffer) Underlying() *sysprim.Buffer { return s.block }

// Close releases the backing block. Regions supplied through NewFromBuffers
// are not touched. Both regions are empty afterwards.
func (s *SwapBuffer) Close() error {
	s.valid, s.scratch = nil, nil
	if s.block == nil {
		return nil
	}
	return s.block.Close()
}

// ValidAs views the valid region as a slice of T.
func ValidAs[T sysprim.Numeric](s *SwapBuffer) []T { return mem.View[T](s.valid) }

// ScratchAs views the scratch region as a slice of T.
func ScratchAs[T sysprim.Numeric](s *SwapBuffer) []T { return mem.View[T](s.scratch) }
