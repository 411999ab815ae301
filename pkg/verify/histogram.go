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

import "fmt"

// Histogram counts samples into equal-width bins over [lo, hi). Anything
// outside the range, including NaN, lands in a single residual cell.
type Histogram struct {
	lo, hi   float64
	scale    float64
	bins     []uint64
	residual uint64
}

// NewHistogram builds a histogram with the given bin count over [lo, hi).
func NewHistogram(lo, hi float64, bins int) (*Histogram, error) {
	if bins < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBins, bins)
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: got [%v, %v]", ErrBadRange, lo, hi)
	}
	return &Histogram{
		lo:    lo,
		hi:    hi,
		scale: float64(bins) / (hi - lo),
		bins:  make([]uint64, bins),
	}, nil
}

// Add counts one sample.
func (h *Histogram) Add(x float64) {
	i := (x - h.lo) * h.scale
	if i >= 0 && i < float64(len(h.bins)) {
		h.bins[int(i)]++
		return
	}
	h.residual++
}

// Counts returns the per-bin counts. The slice is owned by the histogram.
func (h *Histogram) Counts() []uint64 {
	return h.bins
}

// Residual returns the count of out-of-range samples.
func (h *Histogram) Residual() uint64 {
	return h.residual
}

// Total returns the number of samples added, in or out of range.
func (h *Histogram) Total() uint64 {
	total := h.residual
	for _, c := range h.bins {
		total += c
	}
	return total
}

// Bounds returns the histogram range.
func (h *Histogram) Bounds() (lo, hi float64) {
	return h.lo, h.hi
}
