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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/warble/internal/config"
	"github.com/cardinalhq/warble/internal/otlp"
	"github.com/cardinalhq/warble/pkg/dist"
)

var EmitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Stream samples to an OTLP collector",
	Long:  `Draw samples from the configured distribution and emit each one as a gauge datapoint to the configured OTLP endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("no config files provided")
		}
		return Emit(cmd.Context(), args)
	},
}

func Emit(ctx context.Context, args []string) error {
	cfg, err := config.LoadConfigs(args)
	if err != nil {
		return fmt.Errorf("error loading config files: %w", err)
	}
	if cfg.OTLPDestination.Endpoint == "" {
		return errors.New("no OTLP endpoint configured")
	}

	d, err := dist.New(cfg.Distribution)
	if err != nil {
		return fmt.Errorf("error building distribution: %w", err)
	}

	n := cfg.Samples
	if n <= 0 {
		n = 60
	}

	attrs := cfg.OTLPDestination.Attributes
	dattr := map[string]any{"run_id": cfg.ID()}
	maps.Copy(dattr, attrs.Datapoint)
	attrs.Datapoint = dattr

	slog.Info("Emitting",
		"config", cfg.ID(),
		"endpoint", cfg.OTLPDestination.Endpoint,
		"metric", cfg.OTLPDestination.MetricName,
		"samples", n,
		"interval", cfg.OTLPDestination.Interval)

	exporter := otlp.NewExporter(cfg.OTLPDestination)
	src := dist.NewSource(cfg.Seed)
	for i := range n {
		v := d.Sample(src)
		md, err := otlp.BuildGauge(cfg.OTLPDestination.MetricName, attrs, []otlp.Point{{Value: v, Ts: time.Now()}})
		if err != nil {
			return fmt.Errorf("error building metric: %w", err)
		}
		if err := exporter.Send(ctx, md); err != nil {
			return fmt.Errorf("error sending metric: %w", err)
		}
		slog.Info("Sent datapoint", "value", v)

		if i == n-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.OTLPDestination.Interval):
		}
	}
	return nil
}
