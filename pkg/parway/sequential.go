package parway

import "context"

// MapSeq applies fn to every element of in on the calling goroutine, in
// index order, aborting on the first failure. It is the executor behind
// Map in default builds and stays available by name in parallel builds.
func MapSeq[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out]) ([]Out, error) {
	out := make([]Out, len(in))
	for i := range in {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(ctx, in[i])
		if err != nil {
			return nil, &WorkUnitError{Index: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// TryMapSeq applies fn to every element of in on the calling goroutine,
// recording one Result per element. Element failures never abort the call.
func TryMapSeq[In, Out any](ctx context.Context, in []In, fn WorkUnit[In, Out]) ([]Result[Out], error) {
	out := make([]Result[Out], len(in))
	for i := range in {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(ctx, in[i])
		if err != nil {
			out[i] = Failure[Out](i, err)
			continue
		}
		out[i] = Success(i, v)
	}
	return out, nil
}
