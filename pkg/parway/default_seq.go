//go:build !parallel

package parway

import "context"

func mapDefault[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out], _ Options) ([]Out, error) {
	return MapSeq(ctx, in, fn)
}

func tryMapDefault[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out], _ Options) ([]Result[Out], error) {
	return TryMapSeq(ctx, in, fn)
}
