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

package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/warble/internal/config"
	"github.com/cardinalhq/warble/pkg/dist"
	"github.com/cardinalhq/warble/pkg/verify"
)

var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check sampler output against its distribution",
	Long:  `Run a chi-squared goodness-of-fit test and a collision test against the configured distribution, and fail if either rejects the sampler.`,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("no config files provided")
		}
		return Verify(args)
	},
}

func Verify(args []string) error {
	cfg, err := config.LoadConfigs(args)
	if err != nil {
		return fmt.Errorf("error loading config files: %w", err)
	}

	d, err := dist.New(cfg.Distribution)
	if err != nil {
		return fmt.Errorf("error building distribution: %w", err)
	}

	fit, err := verify.GoodnessOfFit(d, dist.NewSource(cfg.Seed), verify.FitOptions{
		Samples:      cfg.Fit.Samples,
		Bins:         cfg.Fit.Bins,
		Lo:           cfg.Fit.Lo,
		Hi:           cfg.Fit.Hi,
		Significance: cfg.Fit.Significance,
	})
	if err != nil {
		return fmt.Errorf("error running goodness-of-fit test: %w", err)
	}
	slog.Info("Goodness of fit",
		slog.String("config", cfg.ID()),
		slog.Float64("statistic", fit.Statistic),
		slog.Float64("criticalValue", fit.CriticalValue),
		slog.Float64("pValue", fit.PValue),
		slog.Int("dof", fit.Dof),
		slog.Bool("passed", fit.Passed))

	coll, err := verify.Collision(d, dist.NewSource(cfg.Seed), verify.CollisionOptions{
		Samples:    cfg.Collision.Samples,
		Buckets:    cfg.Collision.Buckets,
		Lo:         cfg.Collision.Lo,
		Hi:         cfg.Collision.Hi,
		Confidence: cfg.Collision.Confidence,
	})
	if err != nil {
		return fmt.Errorf("error running collision test: %w", err)
	}
	slog.Info("Collision",
		slog.String("config", cfg.ID()),
		slog.Int("observed", coll.Observed),
		slog.Float64("expected", coll.Expected),
		slog.Float64("expectedLow", coll.ExpectedLow),
		slog.Float64("expectedHigh", coll.ExpectedHigh),
		slog.Bool("passed", coll.Passed))

	if !fit.Passed || !coll.Passed {
		return errors.New("distribution failed statistical verification")
	}
	return nil
}
