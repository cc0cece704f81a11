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
)

// SeqIndex is the sequential-scan baseline: Trie's core operations
// (Insert, Delete, exact RangeSearch, Size, Clear, MemoryUsage) with one
// popcount per stored entry per query. It has no fast search, Stats,
// Print or batch search. It exists as the
// correctness reference for the trie and as the comparison point in the
// benchmark driver.
type SeqIndex struct {
	entries []Entry
}

// NewSeqIndex returns an empty baseline index.
func NewSeqIndex() *SeqIndex {
	return &SeqIndex{}
}

// Insert appends e to the index.
func (s *SeqIndex) Insert(e Entry) {
	s.entries = append(s.entries, e)
}

// Delete removes every stored entry matching e on both fields.
func (s *SeqIndex) Delete(e Entry) {
	kept := s.entries[:0]
	for _, cur := range s.entries {
		if cur.ID == e.ID && cur.Code == e.Code {
			continue
		}
		kept = append(kept, cur)
	}
	s.entries = kept
}

// RangeSearch scans every stored entry and returns those within radius
// of target, in insertion order.
func (s *SeqIndex) RangeSearch(target uint64, radius int) []Entry {
	results, _ := s.RangeSearchStats(target, radius)
	return results
}

// RangeSearchStats is RangeSearch plus the per-call work statistics.
func (s *SeqIndex) RangeSearchStats(target uint64, radius int) ([]Entry, SearchStats) {
	var stats SearchStats
	if radius < 0 {
		return nil, stats
	}
	if radius > CodeBits {
		radius = CodeBits
	}
	var results []Entry
	for _, e := range s.entries {
		stats.DistanceOps++
		if e.Distance(target) <= radius {
			results = append(results, e)
		}
	}
	return results, stats
}

// Size returns the number of stored entries.
func (s *SeqIndex) Size() int {
	return len(s.entries)
}

// Clear empties the index.
func (s *SeqIndex) Clear() {
	s.entries = nil
}

// MemoryUsage estimates the bytes held by the index.
func (s *SeqIndex) MemoryUsage() uint64 {
	return uint64(unsafe.Sizeof(*s)) + uint64(cap(s.entries))*uint64(unsafe.Sizeof(Entry{}))
}
