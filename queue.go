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
	"github.com/gammazero/deque"
)

// branch is one pending unit of the level-synchronised traversal: a
// subtree root and the Hamming budget still spendable below it. The
// subtree's depth is the wave level owned by the search loop, so it is
// not carried here.
type branch struct {
	node      Node
	remaining int
}

// branchQueue holds the branches of one traversal wave.
type branchQueue struct {
	branches *deque.Deque
}

func newBranchQueue() *branchQueue {
	return &branchQueue{
		branches: deque.New(64),
	}
}

func (q *branchQueue) Push(b branch) {
	q.branches.PushBack(b)
}

func (q *branchQueue) Pop() branch {
	return q.branches.PopFront().(branch)
}

func (q *branchQueue) Len() int {
	return q.branches.Len()
}
