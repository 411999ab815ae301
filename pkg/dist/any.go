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

// Any is the unbounded logistic-shaped family. Sampling builds a half-lobe
// magnitude spread·|logit(u)| from one draw and reflects it about the center
// with an independent side draw, giving two symmetric lobes over all reals
// with the mode at the center.
type Any struct {
	center float64
	spread float64
}

var _ Distribution = (*Any)(nil)

// NewAny validates center (finite) and spread (positive, finite).
func NewAny(center, spread float64) (*Any, error) {
	if err := checkCenter(center); err != nil {
		return nil, err
	}
	if err := checkSpread(spread); err != nil {
		return nil, err
	}
	return &Any{center: center, spread: spread}, nil
}

func (d *Any) Sample(src Source) float64 {
	return sampleLogistic(src, d.center, d.spread)
}

func (d *Any) Density(x float64) float64 {
	return logisticDensity((x-d.center)/d.spread) / d.spread
}

func (d *Any) CDF(x float64) float64 {
	return logisticCDF((x - d.center) / d.spread)
}

func (d *Any) Support() (float64, float64) {
	return math.Inf(-1), math.Inf(1)
}

func (d *Any) Mean() float64 {
	return d.center
}

// Variance of a logistic with scale s is (πs)²/3.
func (d *Any) Variance() float64 {
	return math.Pi * math.Pi * d.spread * d.spread / 3
}
