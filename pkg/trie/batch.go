package trie

import (
	"cmp"
	"context"
	"iter"

	"github.com/ib-77/parway/pkg/parway"
)

// Lookup is the outcome of one exact-match query.
type Lookup[V any] struct {
	Value V    `json:"value"`
	OK    bool `json:"ok"`
}

// Entry is one materialized search hit.
type Entry[L cmp.Ordered, V any] struct {
	Key   []L `json:"key"`
	Value V   `json:"value"`
}

// BatchExactMatch resolves queries through the build-selected executor,
// one Lookup per query in query order.
func BatchExactMatch[L cmp.Ordered, V any](ctx context.Context, m *Map[L, V], queries [][]L, opts ...parway.Option) ([]Lookup[V], error) {
	return parway.Map(ctx, queries, func(_ context.Context, q []L) (Lookup[V], error) {
		v, ok := m.ExactMatch(q)
		return Lookup[V]{Value: v, OK: ok}, nil
	}, opts...)
}

// BatchPredictiveSearch materializes a predictive search per query, in
// query order.
func BatchPredictiveSearch[L cmp.Ordered, V any](ctx context.Context, m *Map[L, V], queries [][]L, opts ...parway.Option) ([][]Entry[L, V], error) {
	return parway.Map(ctx, queries, func(_ context.Context, q []L) ([]Entry[L, V], error) {
		return collect(m.PredictiveSearch(q)), nil
	}, opts...)
}

// BatchCommonPrefixSearch materializes a common-prefix search per query,
// in query order.
func BatchCommonPrefixSearch[L cmp.Ordered, V any](ctx context.Context, m *Map[L, V], queries [][]L, opts ...parway.Option) ([][]Entry[L, V], error) {
	return parway.Map(ctx, queries, func(_ context.Context, q []L) ([]Entry[L, V], error) {
		return collect(m.CommonPrefixSearch(q)), nil
	}, opts...)
}

func collect[L cmp.Ordered, V any](seq iter.Seq2[[]L, V]) []Entry[L, V] {
	var es []Entry[L, V]
	for k, v := range seq {
		es = append(es, Entry[L, V]{Key: k, Value: v})
	}
	return es
}
