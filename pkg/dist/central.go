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

// Central is the raised-cosine family on the closed interval
// [Center−Spread, Center+Spread], density (1+cos(π(x−c)/s))/(2s) inside and
// zero outside. One uniform draw is mapped through the inverse cdf; a draw
// of exactly 0 lands on the finite lower edge, so no boundary redraw is
// needed on this path.
type Central struct {
	center float64
	spread float64
}

var _ Distribution = (*Central)(nil)

// NewCentral validates center (finite) and spread (positive, finite).
func NewCentral(center, spread float64) (*Central, error) {
	if err := checkCenter(center); err != nil {
		return nil, err
	}
	if err := checkSpread(spread); err != nil {
		return nil, err
	}
	return &Central{center: center, spread: spread}, nil
}

func (d *Central) Sample(src Source) float64 {
	return d.center + d.spread*invertRaisedCosine(src.Float64())/math.Pi
}

func (d *Central) Density(x float64) float64 {
	return raisedCosineDensity((x-d.center)/d.spread) / d.spread
}

func (d *Central) CDF(x float64) float64 {
	return raisedCosineCDF((x - d.center) / d.spread)
}

func (d *Central) Support() (float64, float64) {
	return d.center - d.spread, d.center + d.spread
}

func (d *Central) Mean() float64 {
	return d.center
}

// Variance of a raised cosine with half-width s is s²(1/3 − 2/π²).
func (d *Central) Variance() float64 {
	return d.spread * d.spread * (1.0/3.0 - 2.0/(math.Pi*math.Pi))
}
