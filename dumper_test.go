package hftrie_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkdg/hftrie"
)

func TestPrintEmptyTree(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	hftrie.NewTrie().Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "HF Trie")
	assert.Contains(t, out, "END")
	assert.NotContains(t, out, "leaf(")
}

func TestPrintDumpsLevels(t *testing.T) {
	t.Parallel()

	trie := hftrie.NewTrie()
	for i := 0; i <= hftrie.LeafCapacity; i++ {
		trie.Insert(hftrie.Entry{ID: int64(i), Code: 0xA000000000000000 | uint64(i)})
	}

	var buf bytes.Buffer
	trie.Print(&buf)
	out := buf.String()

	require.Contains(t, out, "internal(level=0)")
	require.Contains(t, out, "leaf(level=1) size = 11")
	// Every entry shows up as "id code".
	assert.Contains(t, out, "0 a000000000000000")
	assert.Contains(t, out, "10 a00000000000000a")
	assert.Equal(t, 1, strings.Count(out, "internal("))
}
