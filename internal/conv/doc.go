// Package conv provides checked integer arithmetic for buffer extents.
//
// Byte counts in this module arrive as element size times element count, or
// as a size plus alignment slack. Both can overflow int on hostile or buggy
// input, so every such computation goes through this package before memory
// is touched.
package conv
