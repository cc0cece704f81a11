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

// Package hftrie implements an in-memory index for 64-bit binary
// fingerprints that answers radius-bounded Hamming range queries: given
// a target code and a radius r, it returns every stored entry whose
// bitwise Hamming distance to the target is at most r.
//
// The index partitions the 64-bit code space into 16 chunks of 4 bits
// each and routes entries through a trie of fan-out-16 internal nodes
// into leaf buckets. Searches traverse the trie breadth-first, one level
// per wave, and spend a per-branch distance budget on the chunk-wise
// distance between the target and each child slot, pruning any branch
// whose budget runs out.
package hftrie

import "math/bits"

// Entry associates a caller-supplied identifier with a 64-bit binary
// fingerprint. Entries are value objects: two entries are equal iff both
// fields match.
type Entry struct {
	ID   int64
	Code uint64
}

// Distance returns the Hamming distance between the entry's code and c.
func (e Entry) Distance(c uint64) int {
	return bits.OnesCount64(e.Code ^ c)
}

// CreateMask returns the 64-bit mask whose only set bits are the 4 bits
// of chunk level. Chunk 0 covers the most-significant nibble.
func CreateMask(level int) uint64 {
	mask := uint64(1)<<ChunkBits - 1
	return mask << (CodeBits - ChunkBits - ChunkBits*level)
}

// ExtractIndex returns the value of chunk level of code, in
// [0, NodeFanout). Chunk 0 selects the root's child slot, chunk 1 the
// slot one level below, and so on down to chunk MaxDepth-1.
func ExtractIndex(code uint64, level int) uint64 {
	return (code & CreateMask(level)) >> (CodeBits - ChunkBits - ChunkBits*level)
}
