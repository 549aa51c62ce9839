// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "xcm-transfer-metric-provider"

// DefaultMeter returns a meter exporting to the collector at collectorRawURL. An empty
// URL returns a meter that records nothing. The returned function flushes and stops the exporter.
func DefaultMeter(ctx context.Context, collectorRawURL string, env string) (metric.Meter, func(context.Context) error, error) {
	if collectorRawURL == "" {
		return noop.NewMeterProvider().Meter(meterName), func(context.Context) error { return nil }, nil
	}

	collectorURL, err := url.Parse(collectorRawURL)
	if err != nil {
		return nil, nil, err
	}
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithURLPath(collectorURL.Path),
		otlpmetrichttp.WithEndpoint(collectorURL.Host),
	}
	if collectorURL.Scheme == "http" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "xcm-transfer"),
			attribute.String("env", env),
		)),
	)
	return provider.Meter(meterName), provider.Shutdown, nil
}
