package hftrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafAddAndEntries(t *testing.T) {
	t.Parallel()

	leaf := &LeafNode{}
	require.True(t, leaf.IsLeaf())
	require.Zero(t, leaf.Size())

	// Add never refuses, capacity is enforced by the insert path.
	for i := 0; i < LeafCapacity+5; i++ {
		leaf.Add(Entry{ID: int64(i), Code: uint64(i)})
	}
	assert.Equal(t, LeafCapacity+5, leaf.Size())
	assert.Len(t, leaf.Entries(), LeafCapacity+5)
}

func TestLeafDeleteMatchesBothFields(t *testing.T) {
	t.Parallel()

	leaf := &LeafNode{}
	leaf.Add(Entry{ID: 1, Code: 10})
	leaf.Add(Entry{ID: 1, Code: 20})
	leaf.Add(Entry{ID: 2, Code: 10})
	leaf.Add(Entry{ID: 1, Code: 10})

	removed := leaf.Delete(Entry{ID: 1, Code: 10})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, leaf.Size())

	removed = leaf.Delete(Entry{ID: 9, Code: 9})
	assert.Zero(t, removed)
	assert.Equal(t, 2, leaf.Size())
}

func TestLeafSearchUsesOriginalRadius(t *testing.T) {
	t.Parallel()

	leaf := &LeafNode{}
	leaf.Add(Entry{ID: 1, Code: 0})
	leaf.Add(Entry{ID: 2, Code: 0x8000000000000001})

	// The leaf filters on the caller's radius, not the branch budget.
	var stats SearchStats
	results := leaf.search(0, 2, nil, &stats)
	require.Len(t, results, 2)
	assert.Equal(t, uint64(2), stats.DistanceOps)

	results = leaf.search(0, 1, nil, &stats)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].ID)
}

func TestInternalChildSlots(t *testing.T) {
	t.Parallel()

	internal := &InternalNode{}
	require.False(t, internal.IsLeaf())
	require.Zero(t, internal.Size())

	for i := uint64(0); i < NodeFanout; i++ {
		assert.False(t, internal.HasChild(i))
		assert.Nil(t, internal.Child(i))
	}

	// childOrLeaf grows an empty leaf once and then keeps returning it.
	grown := internal.childOrLeaf(5)
	require.NotNil(t, grown)
	assert.True(t, internal.HasChild(5))
	assert.Same(t, grown, internal.childOrLeaf(5))
	assert.Same(t, grown, internal.Child(5))

	leaf := &LeafNode{}
	internal.SetChild(5, leaf)
	assert.Same(t, leaf, internal.Child(5))

	present := 0
	for _, child := range internal.Children() {
		if child != nil {
			present++
		}
	}
	assert.Equal(t, 1, present)
}

func TestExpandBudgets(t *testing.T) {
	t.Parallel()

	// Occupy slots 0x0, 0x3 and 0xF: chunk distances 0, 2 and 4 from a
	// zero target chunk.
	internal := &InternalNode{}
	internal.SetChild(0x0, &LeafNode{})
	internal.SetChild(0x3, &LeafNode{})
	internal.SetChild(0xF, &LeafNode{})

	var stats SearchStats
	next := newBranchQueue()
	internal.expand(0, 2, next, &stats)

	require.Equal(t, 2, next.Len())
	assert.Equal(t, uint64(1), stats.Pruned)

	budgets := map[Node]int{}
	for next.Len() > 0 {
		b := next.Pop()
		budgets[b.node] = b.remaining
	}
	assert.Equal(t, 2, budgets[internal.Child(0x0)])
	assert.Equal(t, 0, budgets[internal.Child(0x3)])

	// Radius 4 admits every slot.
	stats = SearchStats{}
	next = newBranchQueue()
	internal.expand(0, 4, next, &stats)
	assert.Equal(t, 3, next.Len())
	assert.Zero(t, stats.Pruned)
}

func TestExpandFastVisitsOnlyUnitNeighbours(t *testing.T) {
	t.Parallel()

	internal := &InternalNode{}
	for i := uint64(0); i < NodeFanout; i++ {
		internal.SetChild(i, &LeafNode{})
	}

	var stats SearchStats
	next := newBranchQueue()
	internal.expandFast(0x5, 3, next, &stats)

	// The exact slot plus its four single-bit neighbours.
	require.Equal(t, 1+ChunkBits, next.Len())
	budgets := map[Node]int{}
	for next.Len() > 0 {
		b := next.Pop()
		budgets[b.node] = b.remaining
	}
	assert.Equal(t, 3, budgets[internal.Child(0x5)])
	for _, idx := range []uint64{0x4, 0x7, 0x1, 0xD} {
		assert.Equal(t, 2, budgets[internal.Child(idx)], "slot %#x", idx)
	}

	// With no budget left, only the exact slot survives.
	next = newBranchQueue()
	internal.expandFast(0x5, 0, next, &stats)
	assert.Equal(t, 1, next.Len())
}

func TestFootprintGrowsWithBucket(t *testing.T) {
	t.Parallel()

	leaf := &LeafNode{}
	empty := leaf.footprint()
	for i := 0; i < 100; i++ {
		leaf.Add(Entry{ID: int64(i), Code: uint64(i)})
	}
	assert.Greater(t, leaf.footprint(), empty)

	internal := &InternalNode{}
	assert.NotZero(t, internal.footprint())
}
