//go:build parallel

package parway

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MapOn applies fn to every element of in on p, returning outputs in input
// order. Elements are dispatched through a shared next-index counter, so a
// slow element does not stall the rest of the batch. Each output slot is
// written by exactly one worker.
//
// The first failure stops assignment of not-yet-started elements while
// in-flight elements finish; the reported index is the lowest original
// index among the failures that occurred. No partial output is returned.
func MapOn[In, Out any](ctx context.Context, p *Pool, in []In, fn WorkUnit[In, Out], opts ...Option) ([]Out, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return mapOn(ctx, p, in, fn, o)
}

func mapOn[In, Out any](ctx context.Context, p *Pool, in []In, fn WorkUnit[In, Out], o Options) ([]Out, error) {
	n := len(in)
	out := make([]Out, n)
	if n == 0 {
		return out, nil
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		next    atomic.Int64
		done    sync.WaitGroup
		failMu  sync.Mutex
		failIdx = -1
		failErr error
	)

	fail := func(i int, err error) {
		failMu.Lock()
		if failIdx == -1 || i < failIdx {
			failIdx = i
			failErr = err
		}
		failMu.Unlock()
		cancel()
	}

	slots := p.slots(o, n)
	callID := uuid.New()
	p.log.Debug("map dispatch",
		zap.Stringer("call", callID), zap.Int("inputs", n), zap.Int("slots", slots))

	for range slots {
		done.Add(1)
		err := p.submit(func() {
			defer done.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n || callCtx.Err() != nil {
					return
				}
				start := time.Now()
				v, err := fn(callCtx, in[i])
				p.record(time.Since(start))
				if err != nil {
					// A unit interrupted by the call's own cancellation is
					// not an element failure.
					if IsCancellation(err) && callCtx.Err() != nil {
						return
					}
					fail(i, err)
					return
				}
				out[i] = v
			}
		})
		if err != nil {
			done.Done()
			cancel()
			done.Wait()
			return nil, err
		}
	}
	done.Wait()

	failMu.Lock()
	idx, unitErr := failIdx, failErr
	failMu.Unlock()
	if idx != -1 {
		return nil, &WorkUnitError{Index: idx, Err: unitErr}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TryMapOn applies fn to every element of in on p, returning one Result
// per element in input order. Element failures are recorded in place;
// execution continues for the remaining elements.
func TryMapOn[In, Out any](ctx context.Context, p *Pool, in []In, fn WorkUnit[In, Out], opts ...Option) ([]Result[Out], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return tryMapOn(ctx, p, in, fn, o)
}

func tryMapOn[In, Out any](ctx context.Context, p *Pool, in []In, fn WorkUnit[In, Out], o Options) ([]Result[Out], error) {
	n := len(in)
	out := make([]Result[Out], n)
	if n == 0 {
		return out, nil
	}

	var (
		next atomic.Int64
		done sync.WaitGroup
	)

	slots := p.slots(o, n)
	callID := uuid.New()
	p.log.Debug("trymap dispatch",
		zap.Stringer("call", callID), zap.Int("inputs", n), zap.Int("slots", slots))

	for range slots {
		done.Add(1)
		err := p.submit(func() {
			defer done.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n || ctx.Err() != nil {
					return
				}
				start := time.Now()
				v, err := fn(ctx, in[i])
				p.record(time.Since(start))
				if err != nil {
					out[i] = Failure[Out](i, err)
					continue
				}
				out[i] = Success(i, v)
			}
		})
		if err != nil {
			done.Done()
			done.Wait()
			return nil, err
		}
	}
	done.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
