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
	"testing"
)

func TestHammingDistance(t *testing.T) {
	t.Parallel()

	e := Entry{ID: 1, Code: 0xF0F0F0F0F0F0F0F0}
	if d := e.Distance(0xE1E1E1E1E1E1E1E1); d != 16 {
		t.Fatalf("distance = %d, want 16", d)
	}
	if d := e.Distance(e.Code); d != 0 {
		t.Fatalf("distance to self = %d, want 0", d)
	}
	if d := e.Distance(^e.Code); d != CodeBits {
		t.Fatalf("distance to complement = %d, want %d", d, CodeBits)
	}
}

func TestExtractIndexLadder(t *testing.T) {
	t.Parallel()

	// The nibbles of this constant spell out their own chunk position.
	const code = uint64(0x0123456789ABCDEF)
	for level := 0; level < MaxDepth; level++ {
		if idx := ExtractIndex(code, level); idx != uint64(level) {
			t.Fatalf("chunk %d = %#x, want %#x", level, idx, level)
		}
	}
}

func TestCreateMask(t *testing.T) {
	t.Parallel()

	if mask := CreateMask(0); mask != 0xF000000000000000 {
		t.Fatalf("mask(0) = %#016x", mask)
	}
	if mask := CreateMask(MaxDepth - 1); mask != 0xF {
		t.Fatalf("mask(15) = %#016x", mask)
	}

	// The masks tile the code space without overlap.
	var union uint64
	for level := 0; level < MaxDepth; level++ {
		mask := CreateMask(level)
		if union&mask != 0 {
			t.Fatalf("mask(%d) overlaps lower chunks", level)
		}
		union |= mask
	}
	if union != ^uint64(0) {
		t.Fatalf("masks cover %#016x, want all bits", union)
	}
}
