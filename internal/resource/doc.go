// Package resource implements a memory budget for an allocator.
//
// Tracking uses a weighted semaphore for the hard limit and an atomic
// counter for usage. AcquireMemory never blocks: it returns
// ErrMemoryLimitExceeded at once and leaves retry policy to the caller.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(1 << 20); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1 << 20)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
// With a zero limit usage and peak are still tracked.
package resource
