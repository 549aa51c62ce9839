// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/ChainSafe/xcm-transfer/metrics"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type TransferMetricsTestSuite struct {
	suite.Suite
	reader  *sdkmetric.ManualReader
	metrics *metrics.TransferMetrics
}

func TestRunTransferMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(TransferMetricsTestSuite))
}

func (s *TransferMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))
	m, err := metrics.NewTransferMetrics(provider.Meter("test"), "alice")
	s.Nil(err)
	s.metrics = m
}

func (s *TransferMetricsTestSuite) collect() map[string]metricdata.Metrics {
	var rm metricdata.ResourceMetrics
	s.Nil(s.reader.Collect(context.Background(), &rm))

	collected := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			collected[m.Name] = m
		}
	}
	return collected
}

func (s *TransferMetricsTestSuite) Test_TrackTransfer() {
	s.metrics.TrackTransfer("localExecute", "done", 20*time.Millisecond)
	s.metrics.TrackTransfer("localExecute", "done", 30*time.Millisecond)

	collected := s.collect()

	transfers := collected["xcm.Transfers"].Data.(metricdata.Sum[int64])
	s.Len(transfers.DataPoints, 1)
	s.Equal(int64(2), transfers.DataPoints[0].Value)
	latency := collected["xcm.TransferLatencyMs"].Data.(metricdata.Histogram[int64])
	s.Equal(uint64(2), latency.DataPoints[0].Count)
	s.Contains(collected, "xcm.StartTimeSeconds")
}

func (s *TransferMetricsTestSuite) Test_TrackDryRun_SplitsByVerdict() {
	s.metrics.TrackDryRun("send", true)
	s.metrics.TrackDryRun("send", false)

	dryRuns := s.collect()["xcm.DryRuns"].Data.(metricdata.Sum[int64])

	s.Len(dryRuns.DataPoints, 2)
}

func (s *TransferMetricsTestSuite) Test_DefaultMeter_NoCollector() {
	meter, shutdown, err := metrics.DefaultMeter(context.Background(), "", "test")

	s.Nil(err)
	s.NotNil(meter)
	s.Nil(shutdown(context.Background()))
}
