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

const (
	// CodeBits is the width of a fingerprint.
	CodeBits = 64

	// ChunkBits is the width of one routing chunk. Changing it requires
	// changing NodeFanout and MaxDepth in lockstep.
	ChunkBits = 4

	// NodeFanout is the child slot count of an internal node.
	NodeFanout = 1 << ChunkBits

	// MaxDepth is the number of chunks in a code. A leaf at MaxDepth has
	// consumed every routing bit and can never split.
	MaxDepth = CodeBits / ChunkBits

	// LeafCapacity is the bucket size above which a leaf splits on the
	// insert that overflowed it, provided the leaf is not at MaxDepth.
	LeafCapacity = 10
)
