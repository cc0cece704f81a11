// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hftrie

import (
	"unsafe"

	"github.com/gammazero/deque"
)

// Trie is the HF-Trie: a fan-out-16 trie over the 16 four-bit chunks of
// a 64-bit code, most-significant chunk first. The zero value is an
// empty, ready-to-use index.
//
// A Trie is not safe for concurrent use with mutation: any number of
// readers may run concurrently, but Insert, Delete and Clear require
// exclusive access. Callers that need locking wrap the trie themselves.
type Trie struct {
	root Node
}

// NewTrie returns an empty index.
func NewTrie() *Trie {
	return &Trie{}
}

// SearchStats reports the work one range search performed.
type SearchStats struct {
	// DistanceOps counts full-width Hamming evaluations at leaves.
	DistanceOps uint64
	// NodesVisited counts branches dequeued, leaves included.
	NodesVisited uint64
	// Pruned counts occupied child slots the budget ruled out. The fast
	// variant skips slots without inspecting them, so it reports zero.
	Pruned uint64
}

// Insert adds e to the index. Duplicate (id, code) pairs accumulate; the
// index performs no duplicate detection.
func (t *Trie) Insert(e Entry) {
	if t.root == nil {
		leaf := &LeafNode{}
		leaf.Add(e)
		t.root = leaf
		return
	}

	level := 0
	var idx uint64
	var parent *InternalNode
	node := t.root
	for !node.IsLeaf() {
		idx = ExtractIndex(e.Code, level)
		parent = node.(*InternalNode)
		node = parent.childOrLeaf(idx)
		level++
	}

	leaf := node.(*LeafNode)
	leaf.Add(e)

	if leaf.Size() <= LeafCapacity || level >= MaxDepth {
		return
	}

	// One-level split: re-route the overflowed bucket through chunk
	// `level`. A resulting child bucket can itself be over capacity; it
	// stays that way until one of its own inserts splits it.
	internal := &InternalNode{}
	if level == 0 {
		t.root = internal
	} else {
		parent.SetChild(idx, internal)
	}
	for _, cur := range leaf.Entries() {
		child := internal.childOrLeaf(ExtractIndex(cur.Code, level)).(*LeafNode)
		child.Add(cur)
	}
}

// Delete removes every stored entry matching e on both id and code. It
// is a no-op when no such entry exists. Emptied leaves and their
// ancestors are left in place; the tree is never compacted.
func (t *Trie) Delete(e Entry) {
	node := t.root
	level := 0
	for node != nil && !node.IsLeaf() {
		internal := node.(*InternalNode)
		idx := ExtractIndex(e.Code, level)
		if !internal.HasChild(idx) {
			return
		}
		node = internal.Child(idx)
		level++
	}
	if node == nil {
		return
	}
	node.(*LeafNode).Delete(e)
}

// RangeSearch returns every stored entry whose Hamming distance to
// target is at most radius, in unspecified order. The search is
// exhaustive: no false positives, no false negatives. Entries inserted
// multiple times are returned once per insertion. A radius above
// CodeBits saturates; a negative radius matches nothing.
func (t *Trie) RangeSearch(target uint64, radius int) []Entry {
	results, _ := t.RangeSearchStats(target, radius)
	return results
}

// RangeSearchStats is RangeSearch plus the per-call work statistics.
func (t *Trie) RangeSearchStats(target uint64, radius int) ([]Entry, SearchStats) {
	return t.rangeSearch(target, radius, (*InternalNode).expand)
}

// RangeSearchFast is the cheaper search variant: at each internal node
// it descends only into the target's own child slot and its four
// single-bit chunk neighbours. On clustered data it finds matches with
// overwhelming recall, but it is NOT guaranteed to be exhaustive: a
// match whose code differs from the target by two or more bits within a
// single routed chunk is missed. Callers that need completeness must use
// RangeSearch.
func (t *Trie) RangeSearchFast(target uint64, radius int) []Entry {
	results, _ := t.RangeSearchFastStats(target, radius)
	return results
}

// RangeSearchFastStats is RangeSearchFast plus the per-call work
// statistics. The same recall caveat applies.
func (t *Trie) RangeSearchFastStats(target uint64, radius int) ([]Entry, SearchStats) {
	return t.rangeSearch(target, radius, (*InternalNode).expandFast)
}

// rangeSearch runs the level-synchronised BFS. Every branch of the
// current wave sits at the same depth, so one chunk extraction per wave
// serves all of them. Leaves drain into the result set against the
// original radius; internal nodes expand into the next wave according
// to the supplied expansion rule.
func (t *Trie) rangeSearch(target uint64, radius int, expand func(*InternalNode, uint64, int, *branchQueue, *SearchStats)) ([]Entry, SearchStats) {
	var stats SearchStats
	if t.root == nil || radius < 0 {
		return nil, stats
	}
	if radius > CodeBits {
		radius = CodeBits
	}

	var results []Entry
	current := newBranchQueue()
	current.Push(branch{node: t.root, remaining: radius})

	for level := 0; current.Len() > 0; level++ {
		// The deepest wave holds only leaves at MaxDepth; there is no
		// chunk left to extract for it.
		var targetIdx uint64
		if level < MaxDepth {
			targetIdx = ExtractIndex(target, level)
		}

		next := newBranchQueue()
		for current.Len() > 0 {
			b := current.Pop()
			stats.NodesVisited++
			switch n := b.node.(type) {
			case *LeafNode:
				results = n.search(target, radius, results, &stats)
			case *InternalNode:
				expand(n, targetIdx, b.remaining, next, &stats)
			}
		}
		current = next
	}
	return results, stats
}

// Size returns the total number of stored entries.
func (t *Trie) Size() int {
	if t.root == nil {
		return 0
	}

	count := 0
	nodes := deque.New(64)
	nodes.PushBack(t.root)
	for nodes.Len() > 0 {
		switch n := nodes.PopFront().(type) {
		case *LeafNode:
			count += n.Size()
		case *InternalNode:
			for _, child := range n.Children() {
				if child != nil {
					nodes.PushBack(child)
				}
			}
		}
	}
	return count
}

// Clear empties the index. Dropping the root releases the whole owned
// subtree to the garbage collector; the trie is immediately reusable.
func (t *Trie) Clear() {
	t.root = nil
}

// MemoryUsage estimates the bytes held by the index: for each leaf the
// allocated bucket capacity plus the node overhead, for each internal
// node its child table. The number is an estimate, not a guarantee.
func (t *Trie) MemoryUsage() uint64 {
	total := uint64(unsafe.Sizeof(*t))
	if t.root == nil {
		return total
	}

	nodes := deque.New(64)
	nodes.PushBack(t.root)
	for nodes.Len() > 0 {
		n := nodes.PopFront().(Node)
		total += n.footprint()
		if internal, ok := n.(*InternalNode); ok {
			for _, child := range internal.Children() {
				if child != nil {
					nodes.PushBack(child)
				}
			}
		}
	}
	return total
}
