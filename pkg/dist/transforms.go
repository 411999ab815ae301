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
	"fmt"
	"math"
)

const (
	// maxBoundaryRetries caps redraws of boundary uniforms. Sources built on
	// math/rand never return 1 and return 0 once in 2^53 draws, so hitting
	// the cap means the source is broken.
	maxBoundaryRetries = 8

	// maxInvertIterations and invertTolerance bound the raised-cosine
	// inversion. Plain bisection of [-π, π] reaches the tolerance in 33
	// halvings, so the cap is only reachable on non-finite input.
	maxInvertIterations = 50
	invertTolerance     = 1e-9
)

// tailScale multiplies the base spread on the tail branch of the tailed
// families. TailWeight is the only tunable tail parameter; the inflation
// itself is fixed so the mixture densities stay closed-form.
const tailScale = 4.0

// openUniform returns a draw strictly inside (0, 1), redrawing boundary
// values up to maxBoundaryRetries times.
func openUniform(src Source) float64 {
	for range maxBoundaryRetries {
		u := src.Float64()
		if u > 0 && u < 1 {
			return u
		}
	}
	panic(fmt.Errorf("%w after %d draws", ErrBadSource, maxBoundaryRetries))
}

// logit is the logistic quantile function, mapping (0, 1) onto all reals.
func logit(u float64) float64 {
	return math.Log(u / (1 - u))
}

// sampleLogistic draws center + scale·L where L is standard logistic. The
// magnitude |logit(u)| comes from one draw and an independent side draw
// reflects it about the center, so each lobe is its own random decision.
func sampleLogistic(src Source, center, scale float64) float64 {
	z := math.Abs(logit(openUniform(src)))
	if src.Float64() < 0.5 {
		return center - scale*z
	}
	return center + scale*z
}

// logisticDensity is the standard logistic pdf, in the overflow-safe form
// e^{-|z|}/(1+e^{-|z|})².
func logisticDensity(z float64) float64 {
	e := math.Exp(-math.Abs(z))
	return e / ((1 + e) * (1 + e))
}

// logisticCDF is the standard logistic cdf 1/(1+e^{-z}).
func logisticCDF(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// invertRaisedCosine solves u = (x + sin x)/(2π) + 1/2 for x in [-π, π].
// There is no elementary closed form, so it iterates Newton steps inside a
// maintained bisection bracket: any step that leaves the bracket, or divides
// by a vanishing derivative, is replaced by the bracket midpoint. The
// iteration stops once a step is smaller than invertTolerance and panics
// with ErrNonConvergence at the cap.
func invertRaisedCosine(u float64) float64 {
	target := (2*u - 1) * math.Pi
	if target <= -math.Pi {
		return -math.Pi
	}
	if target >= math.Pi {
		return math.Pi
	}
	lo, hi := -math.Pi, math.Pi
	// The identity term dominates away from the edges, making the target
	// itself a good opening guess.
	x := target
	for range maxInvertIterations {
		f := x + math.Sin(x) - target
		if f == 0 {
			return x
		}
		if f > 0 {
			hi = x
		} else {
			lo = x
		}
		next := x - f/(1+math.Cos(x))
		if !(next > lo && next < hi) {
			next = (lo + hi) / 2
		}
		if math.Abs(next-x) <= invertTolerance {
			return next
		}
		x = next
	}
	panic(fmt.Errorf("%w after %d iterations", ErrNonConvergence, maxInvertIterations))
}

// raisedCosineDensity is the standard raised-cosine pdf on [-1, 1].
func raisedCosineDensity(t float64) float64 {
	if t < -1 || t > 1 {
		return 0
	}
	return (1 + math.Cos(math.Pi*t)) / 2
}

// raisedCosineCDF is the standard raised-cosine cdf on [-1, 1].
func raisedCosineCDF(t float64) float64 {
	if t <= -1 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return (1 + t + math.Sin(math.Pi*t)/math.Pi) / 2
}

// invertNormal maps an open uniform draw through the standard normal
// quantile, Φ⁻¹(u) = √2·erfinv(2u−1).
func invertNormal(u float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*u-1)
}

// normalDensity is the standard normal pdf.
func normalDensity(z float64) float64 {
	return math.Exp(-z*z/2) / math.Sqrt(2*math.Pi)
}

// normalCDF is Φ(z), written with the error function that pairs with
// invertNormal.
func normalCDF(z float64) float64 {
	return (1 + math.Erf(z/math.Sqrt2)) / 2
}
