// Package mmap provides anonymous memory mappings outside the Go heap.
//
// # Overview
//
// Anonymous mappings come straight from the operating system, start on a
// page boundary and are zero-filled. They back the page allocation strategy
// for buffers large enough that keeping them off the garbage-collected heap
// is worth a system call.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, released with munmap(2)
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT, released with VirtualFree
//   - Elsewhere MapAnon returns ErrUnsupported
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure
// no goroutine touches Bytes() after Close() returns.
package mmap
