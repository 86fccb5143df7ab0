package passage

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Prefetch loads every reference through src with at most workers
// concurrent calls. It is meant to warm a Memo before a sequential pass;
// the first error cancels the remaining loads and is returned.
func Prefetch(ctx context.Context, src Source, references []string, version string, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, ref := range references {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			_, err := src.Chapter(gctx, ref, version)
			return err
		})
	}
	return g.Wait()
}
