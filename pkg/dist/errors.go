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
	"errors"
	"fmt"
	"math"
)

// Configuration errors, wrapped in *ConfigError by the constructors.
var (
	ErrBadCenter     = errors.New("center must be finite")
	ErrBadSpread     = errors.New("spread must be positive and finite")
	ErrBadTailWeight = errors.New("tail weight must be inside (0, 1)")
	ErrTailWeightSet = errors.New("tail weight is only valid for tailed kinds")
	ErrUnknownKind   = errors.New("unknown distribution kind")
)

// Defect errors carried by the panic raised from Sample when an internal
// cap runs out. Neither occurs with a healthy uniform source and valid
// parameters.
var (
	// ErrBadSource means the uniform source kept producing boundary draws
	// past the retry cap. That is a broken source, not a distribution bug.
	ErrBadSource = errors.New("uniform source produced only boundary draws")

	// ErrNonConvergence means the bounded inverse-CDF iteration hit its cap.
	ErrNonConvergence = errors.New("inverse transform did not converge")
)

// ConfigError reports which parameter violated its documented range. The
// wrapped sentinel identifies the rule; parameters are never clamped.
type ConfigError struct {
	Param string
	Value float64
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Param, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func checkCenter(center float64) error {
	if math.IsNaN(center) || math.IsInf(center, 0) {
		return &ConfigError{Param: "center", Value: center, Err: ErrBadCenter}
	}
	return nil
}

func checkSpread(spread float64) error {
	if !(spread > 0) || math.IsInf(spread, 0) {
		return &ConfigError{Param: "spread", Value: spread, Err: ErrBadSpread}
	}
	return nil
}

func checkTailWeight(w float64) error {
	if !(w > 0 && w < 1) {
		return &ConfigError{Param: "tailWeight", Value: w, Err: ErrBadTailWeight}
	}
	return nil
}
