// Package trie implements a generic prefix tree over ordered label types.
//
// Map associates a value with every entry; Set stores entries alone.
// Both are frozen from a Builder and immutable afterwards except for
// value updates. Children of every node are kept sorted, so all searches
// yield entries in lexicographic label order.
//
// Search operations return lazy iterators (iter.Seq / iter.Seq2) that can
// be short-circuited. IncSearch offers label-at-a-time queries for
// interactive use.
//
// Batch entry points (BatchExactMatch and friends) run many queries
// through the parway execution core, sequentially or on a worker pool
// depending on the build.
package trie
