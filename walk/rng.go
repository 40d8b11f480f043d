// Package walk - RNG utilities for the random walk.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks across runs.
//   - Injection: the random walk never touches the global math/rand source;
//     callers pass a *rand.Rand or a seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRand to create independent streams for parallel runs.
package walk

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0 or a nil RNG.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so nearby stream ids give unrelated sequences.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent deterministic stream for (seed, stream).
// Unlike consuming values from a shared base RNG, the result does not depend
// on how many other streams were derived before it.
//
// Complexity: O(1).
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}
