package trie

import (
	"context"
	"slices"
	"testing"

	"github.com/ib-77/parway/pkg/parway"
)

func batchFixture() (*Map[byte, int], [][]byte) {
	b := NewBuilder[byte, int]()
	for i, w := range []string{"sea", "seal", "season", "seat", "see", "seed", "saw"} {
		b.Put([]byte(w), i+1)
	}
	queries := [][]byte{
		[]byte("sea"), []byte("sky"), []byte("see"), []byte("s"), []byte("seed"),
	}
	return b.Build(), queries
}

func TestBatchExactMatch_MatchesDirectLookups(t *testing.T) {
	t.Parallel()
	m, queries := batchFixture()

	got, err := BatchExactMatch(context.Background(), m, queries, parway.WithWorkers(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(queries) {
		t.Fatalf("expected %d lookups, got %d", len(queries), len(got))
	}
	for i, q := range queries {
		v, ok := m.ExactMatch(q)
		if got[i].OK != ok || got[i].Value != v {
			t.Fatalf("lookup %q diverged from direct call: %+v vs (%d, %v)", q, got[i], v, ok)
		}
	}
}

func TestBatchPredictiveSearch_MatchesDirectSearches(t *testing.T) {
	t.Parallel()
	m, queries := batchFixture()

	got, err := BatchPredictiveSearch(context.Background(), m, queries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range queries {
		var want []Entry[byte, int]
		for k, v := range m.PredictiveSearch(q) {
			want = append(want, Entry[byte, int]{Key: k, Value: v})
		}
		if len(got[i]) != len(want) {
			t.Fatalf("query %q: expected %d hits, got %d", q, len(want), len(got[i]))
		}
		for j := range want {
			if !slices.Equal(got[i][j].Key, want[j].Key) || got[i][j].Value != want[j].Value {
				t.Fatalf("query %q hit %d diverged: %+v vs %+v", q, j, got[i][j], want[j])
			}
		}
	}
}

func TestBatchCommonPrefixSearch_MatchesDirectSearches(t *testing.T) {
	t.Parallel()
	m, queries := batchFixture()

	got, err := BatchCommonPrefixSearch(context.Background(), m, queries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range queries {
		var want []Entry[byte, int]
		for k, v := range m.CommonPrefixSearch(q) {
			want = append(want, Entry[byte, int]{Key: k, Value: v})
		}
		if len(got[i]) != len(want) {
			t.Fatalf("query %q: expected %d hits, got %d", q, len(want), len(got[i]))
		}
	}
}

func TestBatchExactMatch_EmptyQuerySet(t *testing.T) {
	t.Parallel()
	m, _ := batchFixture()

	got, err := BatchExactMatch(context.Background(), m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no lookups, got %d", len(got))
	}
}
