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
	"math/bits"
	"unsafe"
)

// Node is implemented by the two node variants of the trie: InternalNode
// routes on 4-bit chunk values, LeafNode buckets entries.
type Node interface {
	// IsLeaf reports whether the node is a leaf.
	IsLeaf() bool

	// Size returns the number of entries held directly by the node. It
	// is always zero for internal nodes.
	Size() int

	// footprint estimates the heap bytes attributable to this node
	// alone, children excluded.
	footprint() uint64
}

type (
	// InternalNode has one fixed slot per possible chunk value. A nil
	// slot means no entry has routed through it. Internal nodes hold no
	// entries of their own.
	InternalNode struct {
		children [NodeFanout]Node
	}

	// LeafNode buckets entries. A leaf splits on the insert that takes it
	// past LeafCapacity, but the split is one level deep: a child bucket
	// produced by it can hold more than LeafCapacity entries until one of
	// its own inserts splits it. At MaxDepth no routing bits remain to
	// split on, so a leaf there grows without bound.
	LeafNode struct {
		entries []Entry
	}
)

func (n *InternalNode) IsLeaf() bool { return false }

func (n *InternalNode) Size() int { return 0 }

func (n *InternalNode) footprint() uint64 {
	return uint64(unsafe.Sizeof(*n))
}

// SetChild installs child at slot idx, replacing whatever occupied it.
func (n *InternalNode) SetChild(idx uint64, child Node) {
	n.children[idx] = child
}

// HasChild reports whether slot idx is occupied.
func (n *InternalNode) HasChild(idx uint64) bool {
	return n.children[idx] != nil
}

// Child returns the subtree at slot idx, or nil when the slot is empty.
// Read paths use this accessor; it never allocates.
func (n *InternalNode) Child(idx uint64) Node {
	return n.children[idx]
}

// childOrLeaf returns the subtree at slot idx, creating an empty leaf
// when the slot is vacant. Only the insert path grows the tree this way.
func (n *InternalNode) childOrLeaf(idx uint64) Node {
	if n.children[idx] == nil {
		n.children[idx] = &LeafNode{}
	}
	return n.children[idx]
}

// Children exposes the full child slot array, empty slots included as
// nil. Callers iterating present children skip the nils.
func (n *InternalNode) Children() []Node {
	return n.children[:]
}

// expand enqueues every occupied child whose chunk sub-distance to
// targetIdx fits within the remaining budget. The 4 bits that routed an
// entry into slot i differ from the target's chunk in exactly
// popcount(targetIdx^i) positions, and those differences are an
// inescapable part of the entry's total distance, so the child inherits
// the budget less that amount.
func (n *InternalNode) expand(targetIdx uint64, remaining int, next *branchQueue, stats *SearchStats) {
	for i := uint64(0); i < NodeFanout; i++ {
		if n.children[i] == nil {
			continue
		}
		r := remaining - bits.OnesCount64(targetIdx^i)
		if r < 0 {
			stats.Pruned++
			continue
		}
		next.Push(branch{node: n.children[i], remaining: r})
	}
}

// expandFast enqueues only the child at the target's own slot and, when
// budget remains, its four single-bit chunk neighbours. Slots at chunk
// distance 2 or more are skipped regardless of the budget, which is what
// makes the fast search heuristic: a match routed through one of them is
// lost.
func (n *InternalNode) expandFast(targetIdx uint64, remaining int, next *branchQueue, stats *SearchStats) {
	if child := n.children[targetIdx]; child != nil {
		next.Push(branch{node: child, remaining: remaining})
	}
	if remaining <= 0 {
		return
	}
	for k := 0; k < ChunkBits; k++ {
		if child := n.children[targetIdx^(1<<k)]; child != nil {
			next.Push(branch{node: child, remaining: remaining - 1})
		}
	}
}

func (l *LeafNode) IsLeaf() bool { return true }

func (l *LeafNode) Size() int { return len(l.entries) }

func (l *LeafNode) footprint() uint64 {
	return uint64(unsafe.Sizeof(*l)) + uint64(cap(l.entries))*uint64(unsafe.Sizeof(Entry{}))
}

// Add appends e to the bucket unconditionally.
func (l *LeafNode) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries exposes the bucket. The returned slice is owned by the leaf
// and must not be mutated or retained across tree mutations.
func (l *LeafNode) Entries() []Entry {
	return l.entries
}

// Delete removes every bucketed entry matching e on both fields and
// reports how many were removed. Duplicates of the same (id, code) pair
// are all removed.
func (l *LeafNode) Delete(e Entry) int {
	kept := l.entries[:0]
	for _, cur := range l.entries {
		if cur.ID == e.ID && cur.Code == e.Code {
			continue
		}
		kept = append(kept, cur)
	}
	removed := len(l.entries) - len(kept)
	l.entries = kept
	return removed
}

// search appends every bucketed entry within radius of target to
// results. The branch budget already vouched for the leaf being viable;
// the scan filters on the caller's original radius alone.
func (l *LeafNode) search(target uint64, radius int, results []Entry, stats *SearchStats) []Entry {
	for _, e := range l.entries {
		stats.DistanceOps++
		if e.Distance(target) <= radius {
			results = append(results, e)
		}
	}
	return results
}
