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

package otlp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cardinalhq/oteltools/signalbuilder"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/pmetric"
	"go.opentelemetry.io/collector/pdata/pmetric/pmetricotlp"

	"github.com/cardinalhq/warble/internal/config"
)

// Point is one sampled value with its wallclock timestamp.
type Point struct {
	Value float64
	Ts    time.Time
}

// BuildGauge assembles one gauge metric carrying a datapoint per point,
// under the configured resource, scope, and datapoint attributes.
func BuildGauge(name string, attrs config.Attributes, points []Point) (pmetric.Metrics, error) {
	mb := signalbuilder.NewMetricsBuilder()

	rattr := pcommon.NewMap()
	if err := rattr.FromRaw(attrs.Resource); err != nil {
		return pmetric.Metrics{}, fmt.Errorf("failed to create resource attributes: %w", err)
	}
	r := mb.Resource(rattr)

	sattr := pcommon.NewMap()
	if err := sattr.FromRaw(attrs.Scope); err != nil {
		return pmetric.Metrics{}, fmt.Errorf("failed to create scope attributes: %w", err)
	}
	s := r.Scope(sattr)

	mm, err := s.Metric(name, "1", pmetric.MetricTypeGauge)
	if err != nil {
		return pmetric.Metrics{}, fmt.Errorf("failed to create metric: %w", err)
	}

	for _, pt := range points {
		dattr := pcommon.NewMap()
		if err := dattr.FromRaw(attrs.Datapoint); err != nil {
			return pmetric.Metrics{}, fmt.Errorf("failed to create datapoint attributes: %w", err)
		}
		dp, _, _ := mm.Datapoint(dattr, pcommon.NewTimestampFromTime(pt.Ts))
		dp.SetDoubleValue(pt.Value)
	}

	return mb.Build(), nil
}

// Exporter posts metric payloads to an OTLP/HTTP collector endpoint.
type Exporter struct {
	client   *http.Client
	endpoint string
	headers  map[string]string
}

func NewExporter(dest config.OTLPDestination) *Exporter {
	return &Exporter{
		client:   &http.Client{Timeout: dest.Timeout},
		endpoint: dest.Endpoint,
		headers:  dest.Headers,
	}
}

// Send marshals the metrics to protobuf and POSTs them to /v1/metrics.
// Empty payloads are skipped.
func (e *Exporter) Send(ctx context.Context, md pmetric.Metrics) error {
	if md.MetricCount() == 0 {
		return nil
	}

	req := pmetricotlp.NewExportRequestFromMetrics(md)

	body, err := req.MarshalProto()
	if err != nil {
		return fmt.Errorf("failed to marshal metrics to protobuf: %w", err)
	}

	url := strings.TrimRight(e.endpoint, "/") + "/v1/metrics"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for k, v := range e.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Content-Type", "application/x-protobuf")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send metrics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("collector returned %s: %s", resp.Status, string(respBody))
	}

	return nil
}
