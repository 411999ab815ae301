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

package config

import (
	"log/slog"
	"maps"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed            uint64          `mapstructure:"seed" yaml:"seed" json:"seed"`
	Samples         int             `mapstructure:"samples" yaml:"samples" json:"samples"`
	Output          string          `mapstructure:"output" yaml:"output" json:"output"`
	Distribution    map[string]any  `mapstructure:"distribution" yaml:"distribution" json:"distribution"`
	Fit             Fit             `mapstructure:"fit" yaml:"fit" json:"fit"`
	Collision       Collision       `mapstructure:"collision" yaml:"collision" json:"collision"`
	OTLPDestination OTLPDestination `mapstructure:"otlpDestination" yaml:"otlpDestination" json:"otlpDestination"`
}

// Fit carries goodness-of-fit overrides; zero fields fall back to the
// verifier defaults.
type Fit struct {
	Samples      int     `mapstructure:"samples" yaml:"samples" json:"samples"`
	Bins         int     `mapstructure:"bins" yaml:"bins" json:"bins"`
	Lo           float64 `mapstructure:"lo" yaml:"lo" json:"lo"`
	Hi           float64 `mapstructure:"hi" yaml:"hi" json:"hi"`
	Significance float64 `mapstructure:"significance" yaml:"significance" json:"significance"`
}

// Collision carries collision-test overrides; zero fields fall back to the
// verifier defaults.
type Collision struct {
	Samples    int     `mapstructure:"samples" yaml:"samples" json:"samples"`
	Buckets    int     `mapstructure:"buckets" yaml:"buckets" json:"buckets"`
	Lo         float64 `mapstructure:"lo" yaml:"lo" json:"lo"`
	Hi         float64 `mapstructure:"hi" yaml:"hi" json:"hi"`
	Confidence float64 `mapstructure:"confidence" yaml:"confidence" json:"confidence"`
}

type OTLPDestination struct {
	Endpoint   string            `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`
	Headers    map[string]string `mapstructure:"headers" yaml:"headers" json:"headers"`
	Timeout    time.Duration     `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	Interval   time.Duration     `mapstructure:"interval" yaml:"interval" json:"interval"`
	MetricName string            `mapstructure:"metricName" yaml:"metricName" json:"metricName"`
	Attributes Attributes        `mapstructure:"attributes" yaml:"attributes" json:"attributes"`
}

type Attributes struct {
	Resource  map[string]any `mapstructure:"resource" yaml:"resource" json:"resource"`
	Scope     map[string]any `mapstructure:"scope" yaml:"scope" json:"scope"`
	Datapoint map[string]any `mapstructure:"datapoint" yaml:"datapoint" json:"datapoint"`
}

func LoadConfigs(fnames []string) (*Config, error) {
	merged := &Config{
		OTLPDestination: OTLPDestination{
			Timeout:    5 * time.Second,
			Interval:   1 * time.Second,
			MetricName: "warble.sample",
		},
	}
	for _, fname := range fnames {
		slog.Info("Loading config", "file", fname)
		config, err := loadConfig(fname)
		if err != nil {
			return nil, err
		}
		if config.Seed != 0 {
			merged.Seed = config.Seed
		}
		if config.Samples != 0 {
			merged.Samples = config.Samples
		}
		if config.Output != "" {
			merged.Output = config.Output
		}
		if config.Distribution != nil {
			if merged.Distribution == nil {
				merged.Distribution = make(map[string]any)
			}
			maps.Copy(merged.Distribution, config.Distribution)
		}
		mergeFit(&merged.Fit, config.Fit)
		mergeCollision(&merged.Collision, config.Collision)
		mergeOTLP(&merged.OTLPDestination, config.OTLPDestination)
	}
	return merged, nil
}

func mergeFit(merged *Fit, next Fit) {
	if next.Samples != 0 {
		merged.Samples = next.Samples
	}
	if next.Bins != 0 {
		merged.Bins = next.Bins
	}
	if next.Lo != 0 || next.Hi != 0 {
		merged.Lo = next.Lo
		merged.Hi = next.Hi
	}
	if next.Significance != 0 {
		merged.Significance = next.Significance
	}
}

func mergeCollision(merged *Collision, next Collision) {
	if next.Samples != 0 {
		merged.Samples = next.Samples
	}
	if next.Buckets != 0 {
		merged.Buckets = next.Buckets
	}
	if next.Lo != 0 || next.Hi != 0 {
		merged.Lo = next.Lo
		merged.Hi = next.Hi
	}
	if next.Confidence != 0 {
		merged.Confidence = next.Confidence
	}
}

func mergeOTLP(merged *OTLPDestination, next OTLPDestination) {
	if next.Endpoint != "" {
		merged.Endpoint = next.Endpoint
	}
	if next.Timeout != 0 {
		merged.Timeout = next.Timeout
	}
	if next.Interval != 0 {
		merged.Interval = next.Interval
	}
	if next.MetricName != "" {
		merged.MetricName = next.MetricName
	}
	if next.Headers != nil {
		if merged.Headers == nil {
			merged.Headers = make(map[string]string)
		}
		maps.Copy(merged.Headers, next.Headers)
	}
	if next.Attributes.Resource != nil {
		merged.Attributes.Resource = next.Attributes.Resource
	}
	if next.Attributes.Scope != nil {
		merged.Attributes.Scope = next.Attributes.Scope
	}
	if next.Attributes.Datapoint != nil {
		merged.Attributes.Datapoint = next.Attributes.Datapoint
	}
}

func loadConfig(fname string) (*Config, error) {
	var config Config
	if err := LoadYAML(fname, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadYAML(fname string, config *Config) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, config)
}

func MarshalYAML(config *Config) ([]byte, error) {
	b, err := yaml.Marshal(config)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ID is a stable identifier for the merged configuration, the hash of its
// canonical YAML form. Emitted runs carry it so a stream can be traced back
// to the exact config that produced it.
func (c *Config) ID() string {
	b, err := MarshalYAML(c)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(b), 32)
}
