package sysprim

import (
	"context"

	"github.com/hupe1980/sysprim/internal/conv"
	"github.com/hupe1980/sysprim/internal/swap"
)

// Integer is the set of types SwapValue accepts.
type Integer = swap.Integer

// ByteSwap reverses the byte order of each of the numElems elements of
// elemSize bytes at the start of buf, in place. Element order is unchanged
// and bytes past the extent are not touched.
//
// An elemSize of 0 or 1, or a numElems of 0, is a no-op. A negative numElems
// or an extent that does not fit buf returns *ErrExtentOutOfRange, which
// matches ErrInvalidArgument, and leaves buf unmodified.
func ByteSwap(buf []byte, elemSize uint16, numElems int) error {
	if err := checkSwapExtent(len(buf), elemSize, numElems); err != nil {
		return err
	}
	swap.InPlace(buf, int(elemSize), numElems)
	return nil
}

// ByteSwapCopy writes the byte-swapped elements of src into dst and leaves
// src unmodified. dst may be src itself but must not partially overlap it.
// An elemSize of 0 or 1 copies the extent unchanged.
func ByteSwapCopy(dst, src []byte, elemSize uint16, numElems int) error {
	if err := checkExtent(len(src), elemSize, numElems); err != nil {
		return err
	}
	if err := checkExtent(len(dst), elemSize, numElems); err != nil {
		return err
	}
	swap.Copy(dst, src, int(elemSize), numElems)
	return nil
}

// ByteSwapParallel is ByteSwap split into chunks at element boundaries and
// run on up to workers goroutines. A non-positive workers uses GOMAXPROCS.
// Extents below 64 KiB are swapped on the calling goroutine.
//
// If ctx is cancelled, chunks that have not started are skipped and
// ctx.Err() is returned; buf may then be partially swapped.
func ByteSwapParallel(ctx context.Context, buf []byte, elemSize uint16, numElems, workers int) error {
	if err := checkSwapExtent(len(buf), elemSize, numElems); err != nil {
		return err
	}
	return swap.Parallel(ctx, buf, int(elemSize), numElems, workers)
}

// SwapUint16 returns v with its two bytes reversed.
func SwapUint16(v uint16) uint16 { return swap.Value(v) }

// SwapUint32 returns v with its four bytes reversed.
func SwapUint32(v uint32) uint32 { return swap.Value(v) }

// SwapUint64 returns v with its eight bytes reversed.
func SwapUint64(v uint64) uint64 { return swap.Value(v) }

// SwapValue returns v with its bytes reversed.
func SwapValue[T Integer](v T) T { return swap.Value(v) }

// checkSwapExtent is checkExtent for operations where elements of at most
// one byte are left alone regardless of count.
func checkSwapExtent(bufLen int, elemSize uint16, numElems int) error {
	if elemSize <= 1 && numElems >= 0 {
		return nil
	}
	return checkExtent(bufLen, elemSize, numElems)
}

// checkExtent validates numElems elements of elemSize bytes against a
// buffer of bufLen bytes.
func checkExtent(bufLen int, elemSize uint16, numElems int) error {
	if numElems < 0 {
		return &ErrExtentOutOfRange{ElemSize: int(elemSize), NumElems: numElems, BufLen: bufLen}
	}

	n, err := conv.MulInt(int(elemSize), numElems)
	if err != nil {
		return &ErrExtentOutOfRange{ElemSize: int(elemSize), NumElems: numElems, BufLen: bufLen, cause: err}
	}
	if n > bufLen {
		return &ErrExtentOutOfRange{ElemSize: int(elemSize), NumElems: numElems, BufLen: bufLen}
	}
	return nil
}
