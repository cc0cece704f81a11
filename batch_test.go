package hftrie_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starkdg/hftrie"
	"github.com/starkdg/hftrie/testutil"
)

func TestRangeSearchBatch(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(21))
	trie := hftrie.NewTrie()
	for _, e := range testutil.Uniform(rng, 4000, 1) {
		trie.Insert(e)
	}

	targets := make([]uint64, 50)
	for i := range targets {
		targets[i] = rng.Uint64()
	}

	results, err := trie.RangeSearchBatch(context.Background(), targets, 14, 4)
	require.NoError(t, err)
	require.Len(t, results, len(targets))

	for i, target := range targets {
		got := results[i]
		want := trie.RangeSearch(target, 14)
		sortEntries(got)
		sortEntries(want)
		require.Equal(t, want, got, "target %016x", target)
	}
}

func TestRangeSearchBatchCancelled(t *testing.T) {
	t.Parallel()

	trie := hftrie.NewTrie()
	trie.Insert(hftrie.Entry{ID: 1, Code: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := trie.RangeSearchBatch(ctx, []uint64{1, 2, 3}, 4, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRangeSearchBatchEmpty(t *testing.T) {
	t.Parallel()

	trie := hftrie.NewTrie()
	results, err := trie.RangeSearchBatch(context.Background(), nil, 4, 0)
	require.NoError(t, err)
	require.Empty(t, results)
}
