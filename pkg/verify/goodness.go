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

// FitOptions tunes the goodness-of-fit run. Zero values take the documented
// defaults. The defaults are test-design choices, not API contracts; callers
// with unusual parameter ranges should size Bins so each expected count
// stays at or above 5, the usual chi-squared validity rule.
type FitOptions struct {
	// Samples is the number of draws. Default 10000.
	Samples int
	// Bins is the equal-width bin count. Default 20.
	Bins int
	// Lo, Hi bound the binned range. Left both zero, the range is the
	// distribution's support when finite, otherwise mean ± 4 standard
	// deviations; mass outside is tracked by the residual cell.
	Lo, Hi float64
	// Significance is the test level. Default 0.01, conservative so that a
	// correct implementation run repeatedly rarely fails by chance.
	Significance float64
}

// FitBin pairs a bin's expected count with its observed count.
type FitBin struct {
	Expected float64
	Observed uint64
}

// FitReport is the goodness-of-fit verdict plus diagnostics.
type FitReport struct {
	Statistic     float64
	CriticalValue float64
	PValue        float64
	Dof           int
	Passed        bool
	Bins          []FitBin
	// Residual is the out-of-range cell. It joins the statistic (and adds a
	// degree of freedom) only when its expectation exceeds one sample.
	Residual FitBin
}

// GoodnessOfFit draws opts.Samples values from d, bins them, computes
// expected bin mass from CDF differences, and runs a chi-squared test with
// Bins−1 degrees of freedom (no parameters are fitted). The verdict passes
// when the statistic is at or below the critical value at the configured
// significance.
func GoodnessOfFit(d dist.Distribution, src dist.Source, opts FitOptions) (*FitReport, error) {
	opts = opts.withDefaults(d)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	h, err := NewHistogram(opts.Lo, opts.Hi, opts.Bins)
	if err != nil {
		return nil, err
	}
	for range opts.Samples {
		h.Add(d.Sample(src))
	}

	n := float64(opts.Samples)
	m := opts.Bins
	report := &FitReport{
		Dof:  m - 1,
		Bins: make([]FitBin, m),
	}

	cdfLo := d.CDF(opts.Lo)
	prev := cdfLo
	var stat float64
	for i, obs := range h.Counts() {
		// Right edge written so the last bin ends exactly at Hi.
		edge := opts.Hi - float64(m-i-1)/float64(m)*(opts.Hi-opts.Lo)
		cur := d.CDF(edge)
		expected := (cur - prev) * n
		prev = cur
		report.Bins[i] = FitBin{Expected: expected, Observed: obs}
		if expected > 0 {
			delta := float64(obs) - expected
			stat += delta * delta / expected
		} else if obs != 0 {
			// Mass observed where the model holds none.
			stat = math.Inf(1)
		}
	}

	expectedResidual := (cdfLo + 1 - d.CDF(opts.Hi)) * n
	report.Residual = FitBin{Expected: expectedResidual, Observed: h.Residual()}
	if expectedResidual > 1 {
		delta := float64(h.Residual()) - expectedResidual
		stat += delta * delta / expectedResidual
		report.Dof++
	}

	chi := distuv.ChiSquared{K: float64(report.Dof)}
	report.Statistic = stat
	report.CriticalValue = chi.Quantile(1 - opts.Significance)
	report.PValue = 1 - chi.CDF(stat)
	report.Passed = stat <= report.CriticalValue
	return report, nil
}

func (o FitOptions) withDefaults(d dist.Distribution) FitOptions {
	if o.Samples == 0 {
		o.Samples = 10000
	}
	if o.Bins == 0 {
		o.Bins = 20
	}
	if o.Significance == 0 {
		o.Significance = 0.01
	}
	if o.Lo == 0 && o.Hi == 0 {
		o.Lo, o.Hi = defaultRange(d)
	}
	return o
}

func (o FitOptions) validate() error {
	if o.Samples < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSamples, o.Samples)
	}
	if o.Bins < 2 {
		return fmt.Errorf("%w: got %d", ErrBadBins, o.Bins)
	}
	if !(o.Hi > o.Lo) {
		return fmt.Errorf("%w: got [%v, %v]", ErrBadRange, o.Lo, o.Hi)
	}
	if !(o.Significance > 0 && o.Significance < 1) {
		return fmt.Errorf("%w: got %v", ErrBadSignificance, o.Significance)
	}
	return nil
}

// defaultRange covers the support when it is finite and mean ± 4σ otherwise,
// leaving the far tails to the residual cell.
func defaultRange(d dist.Distribution) (float64, float64) {
	lo, hi := d.Support()
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		span := 4 * math.Sqrt(d.Variance())
		return d.Mean() - span, d.Mean() + span
	}
	return lo, hi
}
