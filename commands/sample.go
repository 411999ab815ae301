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
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/warble/internal/config"
	"github.com/cardinalhq/warble/pkg/dist"
)

var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw samples from a distribution",
	Long:  `Draw samples from the configured distribution and write them, one per line, to the configured output.`,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("no config files provided")
		}
		return Sample(args)
	},
}

func Sample(args []string) error {
	cfg, err := config.LoadConfigs(args)
	if err != nil {
		return fmt.Errorf("error loading config files: %w", err)
	}

	d, err := dist.New(cfg.Distribution)
	if err != nil {
		return fmt.Errorf("error building distribution: %w", err)
	}

	out := os.Stdout
	if cfg.Output != "" && cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	n := cfg.Samples
	if n <= 0 {
		n = 1000
	}

	slog.Info("Sampling", "config", cfg.ID(), "samples", n, "seed", cfg.Seed)

	src := dist.NewSource(cfg.Seed)
	w := bufio.NewWriter(out)
	var buf []byte
	for range n {
		buf = strconv.AppendFloat(buf[:0], d.Sample(src), 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("error writing sample: %w", err)
		}
	}
	return w.Flush()
}
