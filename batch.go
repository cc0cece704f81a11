// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hftrie

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RangeSearchBatch runs one exact range search per target, spreading the
// queries over at most workers goroutines (GOMAXPROCS when workers < 1).
// It returns one result slice per target, in target order. Searches are
// read-only: the trie must not be mutated while a batch is running, but
// other readers may run alongside it. The only error returned is the
// context's, when ctx is cancelled before all queries start.
func (t *Trie) RangeSearchBatch(ctx context.Context, targets []uint64, radius int, workers int) ([][]Entry, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([][]Entry, len(targets))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, target := range targets {
		i, target := i, target
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = t.RangeSearch(target, radius)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
