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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/warble/pkg/dist"
)

// halfSource halves every draw, pinning a broken stream to [0, 0.5).
type halfSource struct {
	inner dist.Source
}

func (s *halfSource) Float64() float64 {
	return s.inner.Float64() / 2
}

// constSource always returns the same draw.
type constSource struct {
	v float64
}

func (s constSource) Float64() float64 {
	return s.v
}

func TestCollisionAny(t *testing.T) {
	d, err := dist.NewAny(0, 1)
	require.NoError(t, err)

	report, err := Collision(d, dist.NewSource(123), CollisionOptions{})
	require.NoError(t, err)

	assert.True(t, report.Passed, "observed %v expected [%v, %v]", report.Observed, report.ExpectedLow, report.ExpectedHigh)
	// With 5000 draws into 64 equal-mass buckets every bucket fills, so the
	// expected collision count pins to samples minus buckets.
	assert.InDelta(t, 4936, report.Expected, 0.5)
	assert.Equal(t, 4936, report.Observed)
	assert.Less(t, report.ExpectedLow, report.ExpectedHigh)
	assert.False(t, math.IsNaN(report.PValue))
	assert.GreaterOrEqual(t, report.PValue, 0.0)
	assert.LessOrEqual(t, report.PValue, 1.0)
}

func TestCollisionFamilies(t *testing.T) {
	tests := []struct {
		name string
		spec dist.Spec
		seed uint64
	}{
		{"any", dist.Spec{Kind: "any", Center: 5, Spread: 2}, 17},
		{"anyTailed", dist.Spec{Kind: "anyTailed", Center: 0, Spread: 1, TailWeight: 0.2}, 18},
		{"central", dist.Spec{Kind: "central", Center: -2, Spread: 3}, 19},
		{"centralTailed", dist.Spec{Kind: "centralTailed", Center: 1, Spread: 0.5, TailWeight: 0.1}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := dist.NewFromSpec(tt.spec)
			require.NoError(t, err)
			report, err := Collision(d, dist.NewSource(tt.seed), CollisionOptions{})
			require.NoError(t, err)
			assert.True(t, report.Passed, "observed %v expected [%v, %v]", report.Observed, report.ExpectedLow, report.ExpectedHigh)
		})
	}
}

func TestCollisionDetectsStuckRange(t *testing.T) {
	// A source that never draws above 0.5 leaves half the buckets empty,
	// which reads as excess collisions.
	d, err := dist.NewAny(0, 1)
	require.NoError(t, err)

	report, err := Collision(d, &halfSource{inner: dist.NewSource(123)}, CollisionOptions{})
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.Greater(t, float64(report.Observed), report.ExpectedHigh)
}

func TestCollisionDetectsConstantSource(t *testing.T) {
	d, err := dist.NewAny(0, 1)
	require.NoError(t, err)

	report, err := Collision(d, constSource{v: 0.3}, CollisionOptions{})
	require.NoError(t, err)

	// Every draw is identical, so only one bucket ever fills.
	assert.Equal(t, 4999, report.Observed)
	assert.False(t, report.Passed)
	assert.Equal(t, 0.0, report.PValue)
}

func TestCollisionRangeMode(t *testing.T) {
	d, err := dist.NewCentral(0, 1)
	require.NoError(t, err)

	report, err := Collision(d, dist.NewSource(123), CollisionOptions{
		Lo:         -1,
		Hi:         1,
		Buckets:    32,
		Confidence: 0.999,
	})
	require.NoError(t, err)

	assert.True(t, report.Passed, "observed %v expected [%v, %v]", report.Observed, report.ExpectedLow, report.ExpectedHigh)
	assert.True(t, math.IsNaN(report.PValue))
	assert.Greater(t, report.Expected, 0.0)
	assert.Less(t, report.ExpectedLow, report.ExpectedHigh)
}

func TestCollisionValidation(t *testing.T) {
	d, err := dist.NewAny(0, 1)
	require.NoError(t, err)
	src := dist.NewSource(1)

	tests := []struct {
		name    string
		opts    CollisionOptions
		wantErr error
	}{
		{"negative samples", CollisionOptions{Samples: -5}, ErrBadSamples},
		{"one bucket", CollisionOptions{Buckets: 1}, ErrBadBuckets},
		{"inverted range", CollisionOptions{Lo: 1, Hi: -1}, ErrBadRange},
		{"confidence too high", CollisionOptions{Confidence: 1}, ErrBadConfidence},
		{"negative confidence", CollisionOptions{Confidence: -0.5}, ErrBadConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Collision(d, src, tt.opts)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQuantileBucket(t *testing.T) {
	tests := []struct {
		r    float64
		m    int
		want int
	}{
		{0, 64, 0},
		{0.0157, 64, 1},
		{0.5, 64, 32},
		{0.9999, 64, 63},
		{1, 64, 63},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, quantileBucket(tt.r, tt.m), "r=%v", tt.r)
	}
}

func TestRangeBucket(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.99, 3},
		{2.5, 10},
		{-0.01, 16},
		{4, 16},
		{math.NaN(), 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rangeBucket(tt.x, 0, 4, 16), "x=%v", tt.x)
	}
}

func TestBucketProbs(t *testing.T) {
	d, err := dist.NewCentral(0, 1)
	require.NoError(t, err)

	probs := bucketProbs(d, -1, 1, 4)
	require.Len(t, probs, 5)

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	// Nothing sits outside the support.
	assert.InDelta(t, 0.0, probs[4], 1e-12)
	// The shape is symmetric about the center.
	assert.InDelta(t, probs[0], probs[3], 1e-12)
	assert.InDelta(t, probs[1], probs[2], 1e-12)
	assert.Greater(t, probs[1], probs[0])
}
