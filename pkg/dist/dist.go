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

// Package dist implements four configurable random-shape families: Any and
// AnyTailed (unbounded, logistic-shaped, optionally with a rare wide
// excursion) and Central and CentralTailed (raised-cosine on a finite
// interval, optionally with a normal tail). Each family validates its
// parameters at construction, is immutable afterward, and samples purely
// from an injected uniform Source, so a caller who wants reproducible or
// concurrent streams just supplies its own seeded source per stream.
package dist

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Source supplies independent uniform draws in [0, 1). *rand.Rand satisfies
// it. Successive draws must be independent; every logical decision inside a
// transform consumes its own draw and never reuses bits.
type Source interface {
	Float64() float64
}

// Distribution is one configured shape family instance.
type Distribution interface {
	// Sample draws one value from the shape. It never returns NaN or ±Inf.
	// It panics with an error wrapping ErrBadSource or ErrNonConvergence
	// when an internal retry or iteration cap runs out, which indicates a
	// defect rather than a recoverable condition.
	Sample(src Source) float64
	// Density evaluates the theoretical probability density at x. The math
	// here mirrors the sampling transform exactly; the verifiers depend on
	// that.
	Density(x float64) float64
	// CDF evaluates the cumulative distribution at x.
	CDF(x float64) float64
	// Support reports the domain, using ±Inf for unbounded sides.
	Support() (lo, hi float64)
	Mean() float64
	Variance() float64
}

// Spec is the wire form of a distribution configuration, decoded from YAML
// or JSON maps. TailWeight is rejected unless Kind is a tailed family.
type Spec struct {
	Kind       string  `mapstructure:"kind" yaml:"kind" json:"kind"`
	Center     float64 `mapstructure:"center" yaml:"center" json:"center"`
	Spread     float64 `mapstructure:"spread" yaml:"spread" json:"spread"`
	TailWeight float64 `mapstructure:"tailWeight" yaml:"tailWeight" json:"tailWeight"`
}

// New builds a Distribution from a decoded config map. Unknown map keys are
// an error, as is any parameter outside its documented range.
func New(is map[string]any) (Distribution, error) {
	if is == nil {
		return nil, errors.New("missing distribution spec")
	}
	spec := Spec{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(is); err != nil {
		return nil, err
	}
	return NewFromSpec(spec)
}

// NewFromSpec builds a Distribution from an already-decoded Spec.
func NewFromSpec(spec Spec) (Distribution, error) {
	switch spec.Kind {
	case "any":
		if err := checkNoTailWeight(spec); err != nil {
			return nil, err
		}
		return NewAny(spec.Center, spec.Spread)
	case "anyTailed":
		return NewAnyTailed(spec.Center, spec.Spread, spec.TailWeight)
	case "central":
		if err := checkNoTailWeight(spec); err != nil {
			return nil, err
		}
		return NewCentral(spec.Center, spec.Spread)
	case "centralTailed":
		return NewCentralTailed(spec.Center, spec.Spread, spec.TailWeight)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}

func checkNoTailWeight(spec Spec) error {
	if spec.TailWeight != 0 {
		return &ConfigError{Param: "tailWeight", Value: spec.TailWeight, Err: ErrTailWeightSet}
	}
	return nil
}

// NewSource returns a PCG-backed uniform source. A zero seed picks a
// time-based one; any other seed gives a reproducible stream.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
