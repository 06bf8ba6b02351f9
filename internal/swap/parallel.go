package swap

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinParallelBytes is the extent below which Parallel swaps inline.
const MinParallelBytes = 64 << 10

// Parallel swaps the extent in chunks cut at element boundaries, at most
// workers at a time. A non-positive workers uses GOMAXPROCS.
//
// On cancellation the chunks already started complete and the rest are left
// untouched, so the buffer is only partially swapped.
func Parallel(ctx context.Context, buf []byte, elemSize, numElems, workers int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if elemSize <= 1 || numElems <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || elemSize*numElems < MinParallelBytes {
		InPlace(buf, elemSize, numElems)
		return nil
	}

	per := (numElems + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < numElems; start += per {
		count := min(per, numElems-start)
		chunk := buf[start*elemSize : (start+count)*elemSize]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			InPlace(chunk, elemSize, count)
			return nil
		})
	}

	return g.Wait()
}
