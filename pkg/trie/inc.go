package trie

import (
	"cmp"
	"fmt"
)

// Answer classifies the position of an incremental search.
type Answer int

const (
	// AnswerPrefix: the position is a strict prefix of at least one entry.
	AnswerPrefix Answer = iota + 1
	// AnswerMatch: the position is an entry with no extensions.
	AnswerMatch
	// AnswerPrefixAndMatch: the position is an entry that can be extended.
	AnswerPrefixAndMatch
)

func (a Answer) String() string {
	switch a {
	case AnswerPrefix:
		return "prefix"
	case AnswerMatch:
		return "match"
	case AnswerPrefixAndMatch:
		return "prefix+match"
	default:
		return "unknown"
	}
}

// NoMatchError reports the position of the first label that could not be
// consumed by QueryUntil.
type NoMatchError struct {
	Index int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no match at label index %d", e.Index)
}

// IncSearch is a cursor over a Map for label-at-a-time queries, useful for
// interactive applications.
type IncSearch[L cmp.Ordered, V any] struct {
	m   *Map[L, V]
	cur *node[L, V]
}

func (m *Map[L, V]) IncSearch() *IncSearch[L, V] {
	return &IncSearch[L, V]{m: m, cur: m.root}
}

// Query advances by one label. It reports false and keeps the position
// when no entry continues with label.
func (s *IncSearch[L, V]) Query(label L) (Answer, bool) {
	i, ok := s.cur.find(label)
	if !ok {
		return 0, false
	}
	s.cur = s.cur.children[i]
	return s.answer(), true
}

// QueryUntil advances over labels. On a dead end it keeps the last good
// position and returns a *NoMatchError with the offending index.
func (s *IncSearch[L, V]) QueryUntil(labels []L) (Answer, error) {
	var last Answer
	for i, l := range labels {
		a, ok := s.Query(l)
		if !ok {
			return 0, &NoMatchError{Index: i}
		}
		last = a
	}
	return last, nil
}

// Value returns the value stored at the current position.
func (s *IncSearch[L, V]) Value() (V, bool) {
	if s.cur.value == nil {
		var zero V
		return zero, false
	}
	return *s.cur.value, true
}

// Reset returns the cursor to the root.
func (s *IncSearch[L, V]) Reset() {
	s.cur = s.m.root
}

func (s *IncSearch[L, V]) answer() Answer {
	switch {
	case s.cur.value != nil && len(s.cur.children) > 0:
		return AnswerPrefixAndMatch
	case s.cur.value != nil:
		return AnswerMatch
	default:
		return AnswerPrefix
	}
}
