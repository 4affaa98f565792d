package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/parway/pkg/parway"
	"github.com/ib-77/parway/pkg/parway/codec"
	"github.com/ib-77/parway/pkg/trie"
)

var dictionary = []string{
	"sea", "seal", "season", "seat", "see", "seed", "saw",
	"sun", "sunny", "sunday", "sunset",
	"moon", "moonlight",
}

func buildDictionary() *trie.Map[byte, int] {
	b := trie.NewBuilder[byte, int]()
	for i, w := range dictionary {
		b.Put([]byte(w), i+1)
	}
	return b.Build()
}

// TestDictionaryPipeline runs the full flow: build a trie, resolve a batch
// of queries through the build-selected executor, then round-trip the
// results through the codec.
func TestDictionaryPipeline(t *testing.T) {
	m := buildDictionary()
	require.Equal(t, len(dictionary), m.Len())

	queries := [][]byte{
		[]byte("sea"), []byte("sun"), []byte("mars"), []byte("moonlight"), []byte("s"),
	}

	lookups, err := trie.BatchExactMatch(context.Background(), m, queries, parway.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, lookups, len(queries))

	assert.True(t, lookups[0].OK)
	assert.Equal(t, 1, lookups[0].Value)
	assert.True(t, lookups[1].OK)
	assert.False(t, lookups[2].OK)
	assert.True(t, lookups[3].OK)
	assert.False(t, lookups[4].OK)

	// Encode, then decode strictly: the round trip must not change values.
	data, err := codec.Marshal(lookups)
	require.NoError(t, err)

	var decoded []trie.Lookup[int]
	require.NoError(t, codec.Unmarshal(data, &decoded))
	assert.Equal(t, lookups, decoded)
}

func TestPredictivePipeline(t *testing.T) {
	m := buildDictionary()

	results, err := trie.BatchPredictiveSearch(context.Background(), m, [][]byte{
		[]byte("sun"), []byte("sea"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	var sunWords []string
	for _, e := range results[0] {
		sunWords = append(sunWords, string(e.Key))
	}
	assert.Equal(t, []string{"sun", "sunday", "sunny", "sunset"}, sunWords)

	for _, e := range results[1] {
		assert.True(t, strings.HasPrefix(string(e.Key), "sea"))
	}
}

// TestFailingWorkUnitPipeline drives a failing work unit through both
// failure policies.
func TestFailingWorkUnitPipeline(t *testing.T) {
	inputs := []int{1, 2, 0, 4}
	divide := func(_ context.Context, v int) (int, error) {
		if v == 0 {
			return 0, errors.New("division by zero")
		}
		return 10 / v, nil
	}

	_, err := parway.Map(context.Background(), inputs, divide)
	var unitErr *parway.WorkUnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, 2, unitErr.Index)

	results, err := parway.TryMap(context.Background(), inputs, divide)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	assert.True(t, results[0].IsSuccess())
	assert.False(t, results[2].IsSuccess())
	assert.Equal(t, 2, results[2].Index())
}

func TestConfigurationSnapshotPipeline(t *testing.T) {
	o, err := parway.FromSnapshot(parway.Snapshot{Workers: 4})
	require.NoError(t, err)

	data, err := codec.Marshal(o.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, `{"workers":4}`, string(data))

	// Payloads from a newer release carry fields this build does not know.
	newer := []byte(`{"workers":4,"chunking":"auto"}`)
	var s parway.Snapshot
	err = codec.Unmarshal(newer, &s)
	var decErr *codec.DecodeError
	require.ErrorAs(t, err, &decErr)

	require.NoError(t, codec.Lenient().Unmarshal(newer, &s))
	assert.Equal(t, 4, s.Workers)

	_, err = parway.FromSnapshot(parway.Snapshot{Workers: -2})
	var cfgErr *parway.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func ExampleMap() {
	out, _ := parway.Map(context.Background(), []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
		return v * v, nil
	})
	fmt.Println(out)
	// Output: [1 4 9]
}
