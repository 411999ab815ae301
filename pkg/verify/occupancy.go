// Copyright 2026 CardinalHQ, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verify

import "math"

// Occupancy math for throwing n balls independently into buckets with
// probability vector p. The collision count (balls minus occupied buckets)
// shifts the occupied-count distribution by a constant, so both share a
// variance.

// occupiedMoments returns the mean and variance of the occupied-bucket
// count. With q_i = (1−p_i)^n:
//
//	E    = Σ_i (1 − q_i)
//	Var  = Σ_i q_i(1 − q_i) + Σ_{i≠j} ((1 − p_i − p_j)^n − q_i q_j)
//
// The pairwise sum is O(len(p)²), fine for the bucket counts used here.
func occupiedMoments(p []float64, n int) (mean, variance float64) {
	nf := float64(n)
	q := make([]float64, len(p))
	for i, pi := range p {
		q[i] = math.Pow(1-pi, nf)
		mean += 1 - q[i]
		variance += q[i] * (1 - q[i])
	}
	for i, pi := range p {
		for j, pj := range p {
			if i == j {
				continue
			}
			variance += math.Pow(1-pi-pj, nf) - q[i]*q[j]
		}
	}
	return mean, variance
}

// uniformOccupiedMoments is the closed form of occupiedMoments for m equal
// buckets: q = (1−1/m)^n, E = m(1−q),
// Var = m·q(1−q) + m(m−1)·((1−2/m)^n − q²).
func uniformOccupiedMoments(m, n int) (mean, variance float64) {
	mf := float64(m)
	nf := float64(n)
	q := math.Pow(1-1/mf, nf)
	mean = mf * (1 - q)
	variance = mf*q*(1-q) + mf*(mf-1)*(math.Pow(1-2/mf, nf)-q*q)
	return mean, variance
}

// collisionPValue is the probability of seeing more than c collisions from
// n uniform throws into m buckets, using the exact occupied-count recurrence
// from Knuth's collision test. Probabilities below epsilon are trimmed off
// both ends of the support as the recurrence runs.
func collisionPValue(m, n, c int) float64 {
	const epsilon = 1e-20
	if n < 1 {
		return 1
	}
	mf := float64(m)
	a := make([]float64, n+1)
	a[1] = 1
	j0, j1 := 1, 1
	for range n - 1 {
		j1++
		for j := j1; j >= j0; j-- {
			v := float64(j) / mf
			a[j] = a[j]*v + a[j-1]*(1+1/mf-v)
		}
		if a[j0] < epsilon {
			a[j0] = 0
			j0++
		}
		if a[j1] < epsilon {
			a[j1] = 0
			j1--
		}
	}
	occupied := n - c
	if occupied > j1 {
		return 1
	}
	if occupied < j0 {
		return 0
	}
	cdf := 0.0
	for j := occupied; j <= j1; j++ {
		cdf += a[j]
	}
	return 1 - cdf
}
