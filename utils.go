package exactle

import (
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// mapConcurrent applies fn to every item on up to GOMAXPROCS goroutines and
// returns the results in input order. Results land in an index-addressed
// slice so callers can reduce them deterministically afterwards; the first
// error encountered is returned and the results discarded.
func mapConcurrent[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(items))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// minIndex returns the index of the smallest value, the earliest on ties.
func minIndex[K constraints.Ordered](vals []K) int {
	best := 0
	for i, v := range vals {
		if v < vals[best] {
			best = i
		}
	}
	return best
}
