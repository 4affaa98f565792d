package parway

import "context"

// WorkUnit is an atomic, side-effect-free computation over one input
// element. It is invoked exactly once per element in either execution mode.
type WorkUnit[In, Out any] func(ctx context.Context, in In) (Out, error)

// Map applies fn to every element of in and returns the outputs in input
// order. The executor is bound at build time: sequential by default, a
// shared worker pool under the `parallel` build tag.
//
// The first element failure aborts the call with a *WorkUnitError carrying
// the failing index; no partial output is returned.
func Map[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out], opts ...Option) ([]Out, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return mapDefault(ctx, in, fn, o)
}

// TryMap applies fn to every element of in and returns one Result per
// element in input order. Element failures are recorded in their Result,
// never propagated; the call itself fails only for invalid configuration
// or context cancellation.
func TryMap[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out], opts ...Option) ([]Result[Out], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return tryMapDefault(ctx, in, fn, o)
}
