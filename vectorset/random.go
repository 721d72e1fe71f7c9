// SPDX-License-Identifier: MIT

package vectorset

import (
	"math"
	"math/rand"
)

// Random components are drawn uniformly from [RandomLow, RandomHigh) and
// rounded to RandomDecimals places.
const (
	RandomLow      = -3.0
	RandomHigh     = 3.0
	RandomDecimals = 2
)

// Random returns a set of the same shape whose components are random.
// rng drives every draw, so a seeded source reproduces the same set.
func (s Set) Random(rng *rand.Rand) Set {
	scale := math.Pow(10, RandomDecimals)
	out := make([][]float64, len(s.vectors))
	for i := range out {
		row := make([]float64, s.dim)
		for j := range row {
			v := RandomLow + rng.Float64()*(RandomHigh-RandomLow)
			row[j] = math.Round(v*scale) / scale
		}
		out[i] = row
	}

	return Set{dim: s.dim, vectors: out}
}
