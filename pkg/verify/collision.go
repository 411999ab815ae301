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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cardinalhq/warble/pkg/dist"
)

// CollisionOptions tunes the collision run. Zero values take the documented
// defaults. Bucket count trades birthday sensitivity against sample count;
// it is a test-design choice, not an API contract.
type CollisionOptions struct {
	// Samples is the number of draws (balls). Default 5000.
	Samples int
	// Buckets is the bucket (urn) count. Default 64.
	Buckets int
	// Lo, Hi select the bucketing mode. Left both zero, samples are mapped
	// through the cdf into density-weighted buckets whose masses are
	// uniform by construction. Set, buckets are equal x-widths over
	// [Lo, Hi] plus one outside cell, with per-bucket masses integrated
	// from the cdf rather than assumed flat.
	Lo, Hi float64
	// Confidence sizes the accepted interval around the expected collision
	// count. Default 0.95.
	Confidence float64
}

// CollisionReport is the collision-test verdict plus diagnostics.
type CollisionReport struct {
	Observed     int
	Expected     float64
	ExpectedLow  float64
	ExpectedHigh float64
	Passed       bool
	// PValue is the exact upper-tail probability from the Knuth collision
	// recurrence. Only defined for density-weighted bucketing; NaN in range
	// mode.
	PValue float64
}

// Collision draws opts.Samples values from d, discretizes each into a
// bucket, and counts every ball landing in an already-occupied bucket. The
// observed count must fall inside expected ± z·σ (widened half a count each
// side for the integer comparison), with the expectation and variance taken
// from the exact occupancy moments of the bucket-probability vector. Beyond
// shape mismatches, correlated or reused draws cluster samples into fewer
// buckets and push the count outside the interval.
func Collision(d dist.Distribution, src dist.Source, opts CollisionOptions) (*CollisionReport, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	m := opts.Buckets
	weighted := opts.Lo == 0 && opts.Hi == 0

	cells := m
	var probs []float64
	if !weighted {
		probs = bucketProbs(d, opts.Lo, opts.Hi, m)
		cells = m + 1
	}

	occupied := make([]bool, cells)
	collisions := 0
	for range opts.Samples {
		x := d.Sample(src)
		var b int
		if weighted {
			b = quantileBucket(d.CDF(x), m)
		} else {
			b = rangeBucket(x, opts.Lo, opts.Hi, m)
		}
		if occupied[b] {
			collisions++
		} else {
			occupied[b] = true
		}
	}

	var mean, variance float64
	if weighted {
		mean, variance = uniformOccupiedMoments(m, opts.Samples)
	} else {
		mean, variance = occupiedMoments(probs, opts.Samples)
	}
	expected := float64(opts.Samples) - mean
	halfWidth := distuv.UnitNormal.Quantile(0.5+opts.Confidence/2)*math.Sqrt(variance) + 0.5

	report := &CollisionReport{
		Observed:     collisions,
		Expected:     expected,
		ExpectedLow:  expected - halfWidth,
		ExpectedHigh: expected + halfWidth,
		PValue:       math.NaN(),
	}
	report.Passed = float64(collisions) >= report.ExpectedLow &&
		float64(collisions) <= report.ExpectedHigh
	if weighted {
		report.PValue = collisionPValue(m, opts.Samples, collisions)
	}
	return report, nil
}

func (o CollisionOptions) withDefaults() CollisionOptions {
	if o.Samples == 0 {
		o.Samples = 5000
	}
	if o.Buckets == 0 {
		o.Buckets = 64
	}
	if o.Confidence == 0 {
		o.Confidence = 0.95
	}
	return o
}

func (o CollisionOptions) validate() error {
	if o.Samples < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSamples, o.Samples)
	}
	if o.Buckets < 2 {
		return fmt.Errorf("%w: got %d", ErrBadBuckets, o.Buckets)
	}
	if !(o.Confidence > 0 && o.Confidence < 1) {
		return fmt.Errorf("%w: got %v", ErrBadConfidence, o.Confidence)
	}
	if (o.Lo != 0 || o.Hi != 0) && !(o.Hi > o.Lo) {
		return fmt.Errorf("%w: got [%v, %v]", ErrBadRange, o.Lo, o.Hi)
	}
	return nil
}

// quantileBucket maps a cdf value in [0, 1] to one of m buckets.
func quantileBucket(r float64, m int) int {
	b := int(r * float64(m))
	if b >= m {
		b = m - 1
	}
	return b
}

// rangeBucket maps x to its equal-width bucket over [lo, hi), or to the
// outside cell m.
func rangeBucket(x, lo, hi float64, m int) int {
	i := (x - lo) * float64(m) / (hi - lo)
	if i >= 0 && i < float64(m) {
		return int(i)
	}
	return m
}

// bucketProbs integrates the cdf over each equal-width bucket, with the
// outside mass in the trailing cell.
func bucketProbs(d dist.Distribution, lo, hi float64, m int) []float64 {
	probs := make([]float64, m+1)
	prev := d.CDF(lo)
	inside := 0.0
	for i := range m {
		edge := hi - float64(m-i-1)/float64(m)*(hi-lo)
		cur := d.CDF(edge)
		probs[i] = cur - prev
		inside += probs[i]
		prev = cur
	}
	probs[m] = 1 - inside
	if probs[m] < 0 {
		probs[m] = 0
	}
	return probs
}
