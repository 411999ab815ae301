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

package dist

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestCentralSampleDeterministic(t *testing.T) {
	d, err := NewCentral(3, 2)
	require.NoError(t, err)

	// The median draw lands exactly on the center.
	src := &seqSource{vals: []float64{0.5}}
	assert.Equal(t, 3.0, d.Sample(src))

	// A zero draw lands on the finite lower edge without redrawing.
	src = &seqSource{vals: []float64{0}}
	assert.Equal(t, 1.0, d.Sample(src))
	assert.Equal(t, 1, src.i)
}

func TestCentralSampleInSupport(t *testing.T) {
	d, err := NewCentral(-1, 2)
	require.NoError(t, err)
	lo, hi := d.Support()

	src := NewSource(123)
	for range 10000 {
		x := d.Sample(src)
		if x < lo || x > hi {
			t.Fatalf("Sample returned %v outside [%v, %v]", x, lo, hi)
		}
	}
}

func TestCentralMoments(t *testing.T) {
	d, err := NewCentral(-1, 2)
	require.NoError(t, err)

	src := NewSource(123)
	xs := make([]float64, 100000)
	for i := range xs {
		xs[i] = d.Sample(src)
	}

	mean, variance := stat.MeanVariance(xs, nil)
	assert.InDelta(t, d.Mean(), mean, 0.02)
	assert.InDelta(t, d.Variance(), variance, 0.02)
}

func TestCentralDensityIntegratesToOne(t *testing.T) {
	tests := []struct {
		name   string
		center float64
		spread float64
	}{
		{"unit", 0, 1},
		{"shifted narrow", 4, 0.25},
		{"wide", -10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewCentral(tt.center, tt.spread)
			require.NoError(t, err)
			lo, hi := d.Support()
			assert.InDelta(t, 1.0, simpson(d.Density, lo, hi, 20000), 1e-6)
		})
	}
}

func TestCentralDensityOutsideSupport(t *testing.T) {
	d, err := NewCentral(0, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.Density(-1.001))
	assert.Equal(t, 0.0, d.Density(1.001))
	assert.Equal(t, 0.0, d.CDF(-2))
	assert.Equal(t, 1.0, d.CDF(2))
	assert.Equal(t, 0.5, d.CDF(0))
}

func TestCentralDensityMatchesCDF(t *testing.T) {
	d, err := NewCentral(0, 2)
	require.NoError(t, err)

	const h = 1e-5
	for _, x := range []float64{-1.9, -1, -0.3, 0, 0.7, 1.5} {
		deriv := (d.CDF(x+h) - d.CDF(x-h)) / (2 * h)
		assert.InDelta(t, d.Density(x), deriv, 1e-6, "x=%v", x)
	}
}

func TestCentralSymmetry(t *testing.T) {
	d, err := NewCentral(2, 3)
	require.NoError(t, err)

	n := 10000
	xs := make([]float64, n)
	ys := make([]float64, n)
	srcX := NewSource(11)
	srcY := NewSource(22)
	for i := range xs {
		xs[i] = d.Sample(srcX)
		ys[i] = 2*d.Mean() - d.Sample(srcY)
	}
	sort.Float64s(xs)
	sort.Float64s(ys)

	ks := stat.KolmogorovSmirnov(xs, nil, ys, nil)
	crit := 1.95 * math.Sqrt(float64(n+n)/float64(n*n))
	assert.Less(t, ks, crit)
}

func TestCentralShape(t *testing.T) {
	d, err := NewCentral(0, 1)
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.Density(0))
	assert.Equal(t, 0.0, d.Mean())
	assert.InDelta(t, 1.0/3.0-2.0/(math.Pi*math.Pi), d.Variance(), 1e-15)
	assert.Greater(t, d.Density(0), d.Density(0.5))
	assert.Greater(t, d.Density(0.5), d.Density(0.9))
}
