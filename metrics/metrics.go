// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type TransferMetrics struct {
	transfers       api.Int64Counter
	transferLatency api.Int64Histogram
	dryRuns         api.Int64Counter
	startTimeGauge  api.Int64ObservableGauge

	opts api.MeasurementOption
}

// NewTransferMetrics creates the transfer instruments on meter
func NewTransferMetrics(meter api.Meter, signer string) (*TransferMetrics, error) {
	opts := api.WithAttributes(attribute.String("signer", signer))

	transfers, err := meter.Int64Counter(
		"xcm.Transfers",
		api.WithDescription("Transfers by scenario and the last stage they reached"),
	)
	if err != nil {
		return nil, err
	}
	transferLatency, err := meter.Int64Histogram(
		"xcm.TransferLatencyMs",
		api.WithDescription("Duration of a transfer from build to receipt"),
		api.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	dryRuns, err := meter.Int64Counter(
		"xcm.DryRuns",
		api.WithDescription("Dry runs by entry point and verdict"),
	)
	if err != nil {
		return nil, err
	}

	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"xcm.StartTimeSeconds",
		api.WithDescription("Start time of the runner"),
		api.WithInt64Callback(func(ctx context.Context, result api.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &TransferMetrics{
		transfers:       transfers,
		transferLatency: transferLatency,
		dryRuns:         dryRuns,
		startTimeGauge:  startTimeGauge,
		opts:            opts,
	}, nil
}

func (m *TransferMetrics) TrackTransfer(scenario string, stage string, duration time.Duration) {
	attrs := api.WithAttributes(attribute.String("scenario", scenario), attribute.String("stage", stage))
	m.transfers.Add(context.Background(), 1, m.opts, attrs)
	m.transferLatency.Record(context.Background(), duration.Milliseconds(), m.opts, attrs)
}

func (m *TransferMetrics) TrackDryRun(entryPoint string, passed bool) {
	m.dryRuns.Add(
		context.Background(),
		1,
		m.opts,
		api.WithAttributes(attribute.String("entryPoint", entryPoint), attribute.Bool("passed", passed)),
	)
}
