package trie

import (
	"cmp"
	"iter"
)

// Set is a prefix tree without values. Pushing a word twice is ignored.
type Set[L cmp.Ordered] struct {
	m *Map[L, struct{}]
}

// SetBuilder accumulates words before freezing them into a Set.
type SetBuilder[L cmp.Ordered] struct {
	b *Builder[L, struct{}]
}

func NewSetBuilder[L cmp.Ordered]() *SetBuilder[L] {
	return &SetBuilder[L]{b: NewBuilder[L, struct{}]()}
}

func (b *SetBuilder[L]) Push(word []L) {
	b.b.Put(word, struct{}{})
}

// Build freezes the builder into a Set. The builder must not be used
// afterwards.
func (b *SetBuilder[L]) Build() *Set[L] {
	return &Set[L]{m: b.b.Build()}
}

func (s *Set[L]) Len() int {
	return s.m.Len()
}

func (s *Set[L]) ExactMatch(query []L) bool {
	_, ok := s.m.ExactMatch(query)
	return ok
}

func (s *Set[L]) IsPrefix(query []L) bool {
	return s.m.IsPrefix(query)
}

func (s *Set[L]) LongestPrefix(query []L) ([]L, bool) {
	return s.m.LongestPrefix(query)
}

// PredictiveSearch yields every word that has query as a prefix, in
// lexicographic label order.
func (s *Set[L]) PredictiveSearch(query []L) iter.Seq[[]L] {
	return keys(s.m.PredictiveSearch(query))
}

// CommonPrefixSearch yields every word that is a prefix of query, shortest
// first.
func (s *Set[L]) CommonPrefixSearch(query []L) iter.Seq[[]L] {
	return keys(s.m.CommonPrefixSearch(query))
}

// PostfixSearch yields the postfix of every word that strictly extends
// query. A word equal to query is not reported.
func (s *Set[L]) PostfixSearch(query []L) iter.Seq[[]L] {
	return keys(s.m.PostfixSearch(query))
}

// keys strips values from a search iterator.
func keys[L cmp.Ordered, V any](seq iter.Seq2[[]L, V]) iter.Seq[[]L] {
	return func(yield func([]L) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}
