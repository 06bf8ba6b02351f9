// Package swap implements the byte-order reversal kernels.
//
// Kernels trust the extent they are given; bounds are validated once at the
// public boundary. Element sizes 2, 4 and 8 take dedicated paths, every other
// size uses a two-index reversal. Both produce identical bytes.
package swap
