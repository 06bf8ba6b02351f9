// Package mem provides aligned memory blocks.
//
// # Aligned Allocation
//
// Two facilities back a Block:
//
//   - Heap: the Go heap, over-allocated by alignment bytes and sliced to
//     the first aligned address. The raw slice travels with the Block so
//     release needs no hidden header.
//   - Pages: an anonymous mapping from package mmap. Mappings are page
//     aligned already; larger alignments over-map and shift the same way.
//
// A Block is released with the facility that produced it.
package mem
