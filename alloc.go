package sysprim

import (
	"context"
	"time"

	"github.com/hupe1980/sysprim/internal/conv"
	"github.com/hupe1980/sysprim/internal/diag"
	"github.com/hupe1980/sysprim/internal/mem"
	"github.com/hupe1980/sysprim/internal/mmap"
	"github.com/hupe1980/sysprim/internal/resource"
	"github.com/hupe1980/sysprim/internal/tracker"
)

const (
	// SSEInstructionAlignment is the default alignment, in bytes, of every
	// buffer allocated without an explicit alignment. It matches 128-bit
	// vector registers.
	SSEInstructionAlignment = 16

	// MinAlignment is the smallest accepted alignment: the alignment every
	// plain Go allocation already has.
	MinAlignment = mem.MinAlignment

	// MaxAlignment is the largest accepted alignment.
	MaxAlignment = mem.MaxAlignment
)

// Allocator hands out aligned buffers and takes them back.
//
// An Allocator is safe for concurrent use. Every buffer must be released
// exactly once through the allocator that produced it.
type Allocator struct {
	opts   options
	budget *resource.Controller
	live   *tracker.Registry
	misuse *diag.Reporter
}

// AllocatorStats is a snapshot of an allocator's outstanding memory.
type AllocatorStats struct {
	LiveBuffers    uint64
	BytesInUse     int64
	PeakBytesInUse int64
	MemoryLimit    int64
	Misuses        int64
}

var defaultAllocator = NewAllocator()

// NewAllocator creates an Allocator configured by opts.
func NewAllocator(opts ...Option) *Allocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Allocator{
		opts:   o,
		budget: resource.NewController(resource.Config{MemoryLimitBytes: max(o.memoryLimit, 0)}),
		live:   tracker.New(),
		misuse: diag.NewReporter(o.logger.Logger, misuseInterval, misuseBurst),
	}
}

// DefaultAllocator returns the allocator behind AlignedAlloc and AlignedFree.
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// AlignedAlloc allocates size bytes aligned to SSEInstructionAlignment from
// the default allocator.
func AlignedAlloc(size int) (*Buffer, error) {
	return defaultAllocator.Alloc(size, SSEInstructionAlignment)
}

// AlignedAllocWithAlignment allocates size bytes aligned to alignment from
// the default allocator. alignment must be a power of two in
// [MinAlignment, MaxAlignment].
func AlignedAllocWithAlignment(size, alignment int) (*Buffer, error) {
	if alignment == 0 {
		err := &ErrInvalidAlignment{Alignment: alignment, cause: mem.ErrInvalidAlignment}
		defaultAllocator.opts.metricsCollector.RecordAlloc(size, alignment, StrategyAuto, 0, err)
		return nil, err
	}
	return defaultAllocator.Alloc(size, alignment)
}

// AlignedFree releases a buffer obtained from AlignedAlloc or
// AlignedAllocWithAlignment. A nil buffer is a no-op.
func AlignedFree(b *Buffer) error {
	return defaultAllocator.Free(b)
}

// Alloc allocates size bytes whose first byte sits at a multiple of
// alignment. An alignment of 0 selects the allocator default.
//
// A size of 0 yields a valid handle with an aligned, non-zero address and no
// usable bytes; it must still be freed.
func (a *Allocator) Alloc(size, alignment int) (*Buffer, error) {
	if alignment == 0 {
		alignment = a.opts.defaultAlignment
	}
	strategy := a.pick(size)

	start := time.Now()
	b, err := a.alloc(size, alignment, strategy)
	a.opts.metricsCollector.RecordAlloc(size, alignment, strategy, time.Since(start), err)
	a.opts.logger.LogAlloc(context.Background(), b, size, alignment, strategy, err)

	return b, err
}

func (a *Allocator) alloc(size, alignment int, strategy Strategy) (*Buffer, error) {
	// Reject bad arguments before the budget or a facility is touched.
	if err := mem.ValidateAlignment(alignment); err != nil {
		return nil, translateAllocError(err, size, alignment, strategy)
	}
	if _, err := conv.AddInt(size, alignment); err != nil {
		return nil, translateAllocError(mem.ErrInvalidSize, size, alignment, strategy)
	}

	if err := a.budget.AcquireMemory(conv.IntToInt64(size)); err != nil {
		return nil, translateAllocError(err, size, alignment, strategy)
	}

	var (
		blk *mem.Block
		err error
	)
	switch strategy {
	case StrategyPages:
		blk, err = mem.AllocPages(size, alignment)
	default:
		blk, err = mem.AllocHeap(size, alignment)
	}
	if err != nil {
		a.budget.ReleaseMemory(conv.IntToInt64(size))
		return nil, translateAllocError(err, size, alignment, strategy)
	}

	return &Buffer{
		owner:     a,
		block:     blk,
		id:        a.live.Register(),
		size:      size,
		alignment: alignment,
		strategy:  strategy,
	}, nil
}

// pick resolves StrategyAuto for a request of size bytes.
func (a *Allocator) pick(size int) Strategy {
	switch a.opts.strategy {
	case StrategyHeap, StrategyPages:
		return a.opts.strategy
	}
	if a.opts.mmapThreshold > 0 && size >= a.opts.mmapThreshold && mmap.Supported() {
		return StrategyPages
	}
	return StrategyHeap
}

// Free releases b with the facility that produced it. A nil buffer is a no-op.
//
// Releasing a buffer twice returns ErrDoubleFree; releasing a buffer that
// another allocator produced returns ErrForeignBuffer. Neither touches memory.
func (a *Allocator) Free(b *Buffer) error {
	if b == nil {
		return nil
	}
	ctx := context.Background()

	if b.owner != a {
		a.misuse.Report(ctx, "free of buffer owned by another allocator", "id", b.id, "size", b.size)
		a.opts.metricsCollector.RecordFree(b.size, b.strategy, ErrForeignBuffer)
		return ErrForeignBuffer
	}
	if !a.live.Release(b.id) {
		a.misuse.Report(ctx, "double free of aligned buffer", "id", b.id, "size", b.size)
		a.opts.metricsCollector.RecordFree(b.size, b.strategy, ErrDoubleFree)
		return ErrDoubleFree
	}

	b.freed.Store(true)
	err := b.block.Release()
	a.budget.ReleaseMemory(conv.IntToInt64(b.size))

	a.opts.metricsCollector.RecordFree(b.size, b.strategy, err)
	a.opts.logger.LogFree(ctx, b, err)

	return err
}

// Stats returns a snapshot of the allocator's outstanding memory.
func (a *Allocator) Stats() AllocatorStats {
	return AllocatorStats{
		LiveBuffers:    a.live.Len(),
		BytesInUse:     a.budget.MemoryUsage(),
		PeakBytesInUse: a.budget.PeakMemoryUsage(),
		MemoryLimit:    a.budget.MemoryLimit(),
		Misuses:        a.misuse.Total(),
	}
}
