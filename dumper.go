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
	"fmt"
	"io"

	"github.com/gammazero/deque"
)

// Print writes a human-readable dump of the tree to w, one traversal
// wave per block, with each leaf's entries listed as "id code".
func (t *Trie) Print(w io.Writer) {
	fmt.Fprintln(w, "------HF Trie-------")
	fmt.Fprintln(w, "--------------------")

	current := deque.New(64)
	if t.root != nil {
		current.PushBack(t.root)
	}

	for level := 0; current.Len() > 0; level++ {
		next := deque.New(64)
		for current.Len() > 0 {
			switch n := current.PopFront().(type) {
			case *LeafNode:
				fmt.Fprintf(w, "  leaf(level=%d) size = %d\n", level, n.Size())
				for _, e := range n.Entries() {
					fmt.Fprintf(w, "    %d %016x\n", e.ID, e.Code)
				}
			case *InternalNode:
				fmt.Fprintf(w, "  internal(level=%d)\n", level)
				for _, child := range n.Children() {
					if child != nil {
						next.PushBack(child)
					}
				}
			}
		}
		current = next
	}

	fmt.Fprintln(w, "--------END---------")
}
