package trie

import (
	"cmp"
	"iter"
	"slices"
)

type node[L cmp.Ordered, V any] struct {
	label    L
	children []*node[L, V]
	value    *V // non-nil marks a terminal
}

// find locates label among the sorted children.
func (n *node[L, V]) find(label L) (int, bool) {
	return slices.BinarySearchFunc(n.children, label, func(c *node[L, V], l L) int {
		return cmp.Compare(c.label, l)
	})
}

// Builder accumulates entries before freezing them into a Map.
type Builder[L cmp.Ordered, V any] struct {
	root *node[L, V]
	size int
}

func NewBuilder[L cmp.Ordered, V any]() *Builder[L, V] {
	return &Builder[L, V]{root: &node[L, V]{}}
}

// Put records word with value. Putting the same word again keeps the last
// value.
func (b *Builder[L, V]) Put(word []L, value V) {
	cur := b.root
	for _, l := range word {
		i, ok := cur.find(l)
		if !ok {
			cur.children = slices.Insert(cur.children, i, &node[L, V]{label: l})
		}
		cur = cur.children[i]
	}
	if cur.value == nil {
		b.size++
	}
	v := value
	cur.value = &v
}

// Build freezes the builder into a Map. The builder must not be used
// afterwards.
func (b *Builder[L, V]) Build() *Map[L, V] {
	m := &Map[L, V]{root: b.root, size: b.size}
	b.root = nil
	return m
}

// Map is a prefix tree associating a value with every entry.
type Map[L cmp.Ordered, V any] struct {
	root *node[L, V]
	size int
}

// Len returns the number of entries.
func (m *Map[L, V]) Len() int {
	return m.size
}

// walk follows query from the root, reporting false when the path is
// absent.
func (m *Map[L, V]) walk(query []L) (*node[L, V], bool) {
	cur := m.root
	for _, l := range query {
		i, ok := cur.find(l)
		if !ok {
			return nil, false
		}
		cur = cur.children[i]
	}
	return cur, true
}

// ExactMatch returns the value stored for query.
func (m *Map[L, V]) ExactMatch(query []L) (V, bool) {
	n, ok := m.walk(query)
	if !ok || n.value == nil {
		var zero V
		return zero, false
	}
	return *n.value, true
}

// Update replaces the value of an existing entry. It reports false when
// query is not an entry.
func (m *Map[L, V]) Update(query []L, value V) bool {
	n, ok := m.walk(query)
	if !ok || n.value == nil {
		return false
	}
	v := value
	n.value = &v
	return true
}

// IsPrefix reports whether query can be extended into at least one entry.
// An entry with no extensions is not a prefix.
func (m *Map[L, V]) IsPrefix(query []L) bool {
	n, ok := m.walk(query)
	return ok && len(n.children) > 0
}

// PredictiveSearch yields every entry that has query as a prefix, in
// lexicographic label order. Iteration may be stopped early.
func (m *Map[L, V]) PredictiveSearch(query []L) iter.Seq2[[]L, V] {
	return func(yield func([]L, V) bool) {
		n, ok := m.walk(query)
		if !ok {
			return
		}
		dfs(n, slices.Clone(query), yield)
	}
}

// PostfixSearch yields the postfix and value of every entry that strictly
// extends query. An entry equal to query is not reported.
func (m *Map[L, V]) PostfixSearch(query []L) iter.Seq2[[]L, V] {
	return func(yield func([]L, V) bool) {
		n, ok := m.walk(query)
		if !ok {
			return
		}
		for _, c := range n.children {
			if !dfs(c, []L{c.label}, yield) {
				return
			}
		}
	}
}

// CommonPrefixSearch yields every entry that is a prefix of query,
// shortest first.
func (m *Map[L, V]) CommonPrefixSearch(query []L) iter.Seq2[[]L, V] {
	return func(yield func([]L, V) bool) {
		cur := m.root
		for i, l := range query {
			j, ok := cur.find(l)
			if !ok {
				return
			}
			cur = cur.children[j]
			if cur.value != nil {
				if !yield(slices.Clone(query[:i+1]), *cur.value) {
					return
				}
			}
		}
	}
}

// LongestPrefix returns query's path extended while exactly one child
// exists and no terminal is reached. It reports false when query itself is
// not present.
func (m *Map[L, V]) LongestPrefix(query []L) ([]L, bool) {
	out := make([]L, 0, len(query))
	cur := m.root
	for _, l := range query {
		i, ok := cur.find(l)
		if !ok {
			return nil, false
		}
		cur = cur.children[i]
		out = append(out, l)
	}
	for cur.value == nil && len(cur.children) == 1 {
		cur = cur.children[0]
		out = append(out, cur.label)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// dfs yields terminals under n in label order. word holds the labels
// accumulated so far and is reused between levels; yielded keys are
// cloned.
func dfs[L cmp.Ordered, V any](n *node[L, V], word []L, yield func([]L, V) bool) bool {
	if n.value != nil {
		if !yield(slices.Clone(word), *n.value) {
			return false
		}
	}
	for _, c := range n.children {
		if !dfs(c, append(word, c.label), yield) {
			return false
		}
	}
	return true
}
