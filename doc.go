// Package sysprim provides low-level memory primitives for numeric and
// imaging code: byte-order detection, in-place byte swapping of packed
// elements, and aligned buffers suitable for vector instructions.
//
// # Byte Order
//
//	if sysprim.IsBigEndianSystem() {
//	    // data is already in network order
//	}
//	order := sysprim.NativeByteOrder() // binary.BigEndian or binary.LittleEndian
//
// # Byte Swapping
//
// ByteSwap reverses each element of a packed buffer in place. Element sizes of
// 2, 4 and 8 bytes take fast paths; any other size is reversed byte by byte:
//
//	pixels := readRaster()                        // 16-bit big-endian samples
//	_ = sysprim.ByteSwap(pixels, 2, len(pixels)/2) // now little-endian
//
// ByteSwapCopy writes into a second buffer, and ByteSwapParallel splits large
// buffers across goroutines:
//
//	err := sysprim.ByteSwapParallel(ctx, data, 8, len(data)/8, 0)
//
// # Aligned Buffers
//
// AlignedAlloc returns a buffer whose first byte sits on a
// SSEInstructionAlignment boundary. Every buffer must be released exactly
// once:
//
//	buf, err := sysprim.AlignedAlloc(4096)
//	if err != nil {
//	    return err
//	}
//	defer buf.Close()
//
//	floats := sysprim.Slice[float32](buf) // 1024 elements over the same memory
//
// Releasing a buffer twice, or through an allocator that did not produce it,
// returns ErrDoubleFree or ErrForeignBuffer and is logged at warn level.
//
// # Allocators
//
// NewAllocator creates an allocator with its own budget, logger and metrics:
//
//	metrics := &sysprim.BasicMetricsCollector{}
//	alloc := sysprim.NewAllocator(
//	    sysprim.WithDefaultAlignment(sysprim.PreferredAlignment()),
//	    sysprim.WithMmapThreshold(1<<20), // map 1 MiB and up from the OS
//	    sysprim.WithMemoryLimit(256<<20),
//	    sysprim.WithMetricsCollector(metrics),
//	    sysprim.WithLogger(sysprim.NewJSONLogger(slog.LevelWarn)),
//	)
//
//	buf, err := alloc.Alloc(8<<20, 0)
//	...
//	_ = alloc.Free(buf)
//
// Small buffers come from the Go heap. Buffers at or above the mmap threshold
// are anonymous mappings that go back to the operating system on release.
//
// # SIMD Detection
//
// SIMDInstructionSet reports the widest vector unit of the executing CPU and
// PreferredAlignment its register width. Set SYSPRIM_SIMD to pin a narrower
// set (for example SYSPRIM_SIMD=sse2).
//
// # Swap Buffers
//
// Package swapbuffer pairs two aligned halves of one allocation for
// ping-pong transforms.
package sysprim
