//go:build parallel

package parway

import (
	"context"
	"sync"
)

var (
	sharedOnce sync.Once
	shared     *Pool
)

// sharedPool backs the build-selected Map and TryMap. It is sized to the
// ambient parallelism and lives for the process; explicit pools remain
// available for caller-managed lifecycles.
func sharedPool() *Pool {
	sharedOnce.Do(func() {
		p, err := NewPool()
		if err != nil {
			panic(err) // ambient defaults always validate
		}
		shared = p
	})
	return shared
}

func mapDefault[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out], o Options) ([]Out, error) {
	return mapOn(ctx, sharedPool(), in, fn, o)
}

func tryMapDefault[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out], o Options) ([]Result[Out], error) {
	return tryMapOn(ctx, sharedPool(), in, fn, o)
}
