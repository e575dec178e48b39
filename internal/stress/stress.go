// Package stress provides a small fan-out helper for concurrency tests
// that need many goroutines hammering a shared Tree and want the first
// failure reported promptly, the way
// fuse/test/node_parallel_lookup_test.go drives its parallel-lookup
// scenario in the teacher.
package stress

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run launches n goroutines, each calling fn with a worker index in
// [0, n), and returns the first non-nil error any of them returned (or nil
// if all of them succeeded). Every worker's context is cancelled as soon as
// one of them fails, so well-behaved callers can stop early.
func Run(ctx context.Context, n int, fn func(ctx context.Context, worker int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		worker := i
		g.Go(func() error {
			return fn(gctx, worker)
		})
	}
	return g.Wait()
}
