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

// CentralTailed is Central plus rare excursions past the finite base
// interval: a gate draw below TailWeight switches to a normal branch with
// standard deviation tailScale·Spread, extending the support to all reals.
// The base stays on [Center−Spread, Center+Spread]; the asymmetry between
// the bounded base and the unbounded tail is intentional. Density is the
// mixture (1−w)·RaisedCosine(c, s) + w·Normal(c, (tailScale·s)²).
type CentralTailed struct {
	center     float64
	spread     float64
	tailWeight float64
}

var _ Distribution = (*CentralTailed)(nil)

// NewCentralTailed validates center, spread, and tailWeight ∈ (0, 1).
func NewCentralTailed(center, spread, tailWeight float64) (*CentralTailed, error) {
	if err := checkCenter(center); err != nil {
		return nil, err
	}
	if err := checkSpread(spread); err != nil {
		return nil, err
	}
	if err := checkTailWeight(tailWeight); err != nil {
		return nil, err
	}
	return &CentralTailed{center: center, spread: spread, tailWeight: tailWeight}, nil
}

func (d *CentralTailed) Sample(src Source) float64 {
	if src.Float64() < d.tailWeight {
		return d.center + d.spread*tailScale*invertNormal(openUniform(src))
	}
	return d.center + d.spread*invertRaisedCosine(src.Float64())/math.Pi
}

func (d *CentralTailed) Density(x float64) float64 {
	base := raisedCosineDensity((x-d.center)/d.spread) / d.spread
	sigma := d.spread * tailScale
	tail := normalDensity((x-d.center)/sigma) / sigma
	return (1-d.tailWeight)*base + d.tailWeight*tail
}

func (d *CentralTailed) CDF(x float64) float64 {
	base := raisedCosineCDF((x - d.center) / d.spread)
	tail := normalCDF((x - d.center) / (d.spread * tailScale))
	return (1-d.tailWeight)*base + d.tailWeight*tail
}

func (d *CentralTailed) Support() (float64, float64) {
	return math.Inf(-1), math.Inf(1)
}

func (d *CentralTailed) Mean() float64 {
	return d.center
}

// Variance mixes the raised-cosine base with the inflated normal tail and is
// strictly increasing in the tail weight.
func (d *CentralTailed) Variance() float64 {
	base := d.spread * d.spread * (1.0/3.0 - 2.0/(math.Pi*math.Pi))
	sigma := d.spread * tailScale
	return (1-d.tailWeight)*base + d.tailWeight*sigma*sigma
}
