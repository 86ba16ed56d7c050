// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

// Rand is the minimal randomness surface the review engine needs: a
// uniform float in [0,1) for interval fuzzing and ease-band jitter
// (spec.md §4.G, §8). Satisfied directly by *math/rand.Rand, and
// replaceable in tests with a seeded or scripted source for
// deterministic assertions on otherwise-fuzzed output.
type Rand interface {
	Float64() float64
}
