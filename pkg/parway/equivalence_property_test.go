//go:build parallel

package parway

import (
	"context"
	"errors"
	"testing"

	"pgregory.net/rapid"
)

var errDivisible = errors.New("divisible by five")

// Sequential and parallel execution must produce element-for-element
// identical output for any pure work unit.
func TestMapModeEquivalenceProperty(t *testing.T) {
	p, err := NewPool(WithWorkers(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOfN(rapid.IntRange(-1000, 1000), 0, 200).Draw(t, "in")
		mul := rapid.IntRange(-7, 7).Draw(t, "mul")
		add := rapid.IntRange(-7, 7).Draw(t, "add")
		fn := func(_ context.Context, v int) (int, error) {
			return v*mul + add, nil
		}

		seq, err := MapSeq(context.Background(), in, fn)
		if err != nil {
			t.Fatalf("sequential run failed: %v", err)
		}
		par, err := MapOn(context.Background(), p, in, fn)
		if err != nil {
			t.Fatalf("parallel run failed: %v", err)
		}
		if len(par) != len(seq) {
			t.Fatalf("length mismatch: %d vs %d", len(par), len(seq))
		}
		for i := range seq {
			if par[i] != seq[i] {
				t.Fatalf("mode divergence at index %d: %d vs %d", i, par[i], seq[i])
			}
		}
	})
}

// TryMap must record the same per-element values and failure positions in
// both modes.
func TestTryMapModeEquivalenceProperty(t *testing.T) {
	p, err := NewPool(WithWorkers(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOfN(rapid.IntRange(-50, 50), 0, 150).Draw(t, "in")
		fn := func(_ context.Context, v int) (int, error) {
			if v%5 == 0 {
				return 0, errDivisible
			}
			return v * 3, nil
		}

		seq, err := TryMapSeq(context.Background(), in, fn)
		if err != nil {
			t.Fatalf("sequential run failed: %v", err)
		}
		par, err := TryMapOn(context.Background(), p, in, fn)
		if err != nil {
			t.Fatalf("parallel run failed: %v", err)
		}
		for i := range seq {
			if seq[i].IsSuccess() != par[i].IsSuccess() {
				t.Fatalf("failure position divergence at index %d", i)
			}
			if seq[i].IsSuccess() && seq[i].Value() != par[i].Value() {
				t.Fatalf("value divergence at index %d: %d vs %d", i, seq[i].Value(), par[i].Value())
			}
		}
	})
}
