package kzg

import "golang.org/x/sync/errgroup"

// ParallelFor runs fn(i) for every i in [0, n), one goroutine per index
// with no limit on how many run at once, and returns the first error
// encountered. Callers must ensure
// each invocation of fn writes to index-disjoint state (e.g. row i of a
// results slice) so the combined result does not depend on scheduling
// order. That is what keeps the parallel and sequential code paths
// byte-for-byte identical (Property 5, determinism), letting the KZG
// open rows, the GWC per-point fold, and the MBB per-polynomial
// interpolation run concurrently without becoming a second, divergent
// implementation.
func ParallelFor(n int, fn func(i int) error) error {
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
