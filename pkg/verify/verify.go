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

// Package verify contains offline statistical checks that a distribution's
// samples match its analytic shape: a chi-squared goodness-of-fit test and a
// birthday-style collision test. The collision test exists because a
// transform can produce the right marginal histogram while still carrying
// correlations between draws; clustering across buckets catches that class
// of bug. Both checks consume only the public Distribution surface, so they
// exercise exactly what callers see. They are batch, test-time tools, not a
// production code path.
package verify

import "errors"

// Option validation errors.
var (
	ErrBadSamples      = errors.New("sample count must be positive")
	ErrBadBins         = errors.New("bin count must be at least 2")
	ErrBadBuckets      = errors.New("bucket count must be at least 2")
	ErrBadRange        = errors.New("range low must be below range high")
	ErrBadSignificance = errors.New("significance must be inside (0, 1)")
	ErrBadConfidence   = errors.New("confidence must be inside (0, 1)")
)
