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

import "math"

// AnyTailed is Any plus a rare wide excursion: a gate draw below TailWeight
// routes the sample to the same logistic transform at tailScale times the
// base spread. The gate consumes its own draw, independent of the shape and
// side draws, so a correlated-source bug shows up in collision testing
// instead of hiding in the marginal shape. Density is the mixture
// (1−w)·Logistic(c, s) + w·Logistic(c, tailScale·s).
type AnyTailed struct {
	center     float64
	spread     float64
	tailWeight float64
}

var _ Distribution = (*AnyTailed)(nil)

// NewAnyTailed validates center, spread, and tailWeight ∈ (0, 1).
func NewAnyTailed(center, spread, tailWeight float64) (*AnyTailed, error) {
	if err := checkCenter(center); err != nil {
		return nil, err
	}
	if err := checkSpread(spread); err != nil {
		return nil, err
	}
	if err := checkTailWeight(tailWeight); err != nil {
		return nil, err
	}
	return &AnyTailed{center: center, spread: spread, tailWeight: tailWeight}, nil
}

func (d *AnyTailed) Sample(src Source) float64 {
	scale := d.spread
	if src.Float64() < d.tailWeight {
		scale *= tailScale
	}
	return sampleLogistic(src, d.center, scale)
}

func (d *AnyTailed) Density(x float64) float64 {
	base := logisticDensity((x-d.center)/d.spread) / d.spread
	tail := logisticDensity((x-d.center)/(d.spread*tailScale)) / (d.spread * tailScale)
	return (1-d.tailWeight)*base + d.tailWeight*tail
}

func (d *AnyTailed) CDF(x float64) float64 {
	base := logisticCDF((x - d.center) / d.spread)
	tail := logisticCDF((x - d.center) / (d.spread * tailScale))
	return (1-d.tailWeight)*base + d.tailWeight*tail
}

func (d *AnyTailed) Support() (float64, float64) {
	return math.Inf(-1), math.Inf(1)
}

func (d *AnyTailed) Mean() float64 {
	return d.center
}

// Variance mixes the two logistic branches; it grows linearly in the tail
// weight because the tail branch variance is tailScale² times the base.
func (d *AnyTailed) Variance() float64 {
	base := math.Pi * math.Pi * d.spread * d.spread / 3
	return base * ((1 - d.tailWeight) + d.tailWeight*tailScale*tailScale)
}
