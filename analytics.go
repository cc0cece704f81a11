package hftrie

import (
	"unsafe"
)

// TreeStats aggregates structural statistics over the whole trie, for
// diagnostics and the benchmark harnesses.
type TreeStats struct {
	Entries       int
	LeafCount     int
	InternalCount int
	MinLeafDepth  int
	MaxLeafDepth  int
	Bytes         uint64
}

// Stats walks the tree and returns its structural statistics. An empty
// tree reports zero counts and depths.
func (t *Trie) Stats() TreeStats {
	stats := TreeStats{
		Bytes:        uint64(unsafe.Sizeof(*t)),
		MinLeafDepth: MaxDepth + 1,
	}
	if t.root != nil {
		nodeStats(t.root, 0, &stats)
	}
	if stats.LeafCount == 0 {
		stats.MinLeafDepth = 0
	}
	return stats
}

func nodeStats(n Node, depth int, stats *TreeStats) {
	stats.Bytes += n.footprint()
	switch n := n.(type) {
	case *LeafNode:
		stats.LeafCount++
		stats.Entries += n.Size()
		if depth < stats.MinLeafDepth {
			stats.MinLeafDepth = depth
		}
		if depth > stats.MaxLeafDepth {
			stats.MaxLeafDepth = depth
		}
	case *InternalNode:
		stats.InternalCount++
		for _, child := range n.Children() {
			if child != nil {
				nodeStats(child, depth+1, stats)
			}
		}
	}
}
