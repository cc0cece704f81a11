// Package testutil generates fingerprint data sets for the tests, the
// benchmark driver and the demonstration binary.
package testutil

import (
	"math/rand"

	"github.com/starkdg/hftrie"
)

// Uniform returns n entries with uniformly random codes and sequential
// ids starting at startID.
func Uniform(rng *rand.Rand, n int, startID int64) []hftrie.Entry {
	entries := make([]hftrie.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, hftrie.Entry{
			ID:   startID + int64(i),
			Code: rng.Uint64(),
		})
	}
	return entries
}

// Cluster returns n entries near center with sequential ids starting at
// startID: the center itself first, then n-1 perturbations produced by
// flipping between 1 and radius randomly chosen bits. Flipped positions
// may repeat, so a member's distance to the center is at most radius.
func Cluster(rng *rand.Rand, center uint64, radius, n int, startID int64) []hftrie.Entry {
	entries := make([]hftrie.Entry, 0, n)
	entries = append(entries, hftrie.Entry{ID: startID, Code: center})
	for i := 1; i < n; i++ {
		code := center
		dist := 1 + rng.Intn(radius)
		for j := 0; j < dist; j++ {
			code ^= uint64(1) << rng.Intn(hftrie.CodeBits)
		}
		entries = append(entries, hftrie.Entry{ID: startID + int64(i), Code: code})
	}
	return entries
}
