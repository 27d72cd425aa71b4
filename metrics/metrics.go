package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// AppMetrics holds the application's OpenTelemetry instruments. A nil
// *AppMetrics is valid and records nothing, so callers never need to guard.
type AppMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestsErrors  metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram

	OrdersCreated  metric.Int64Counter
	RevenueTotal   metric.Float64Counter
	ProductsViewed metric.Int64Counter
	CartItemsAdded metric.Int64Counter
}

// Init sets up an OTLP/HTTP metric pipeline and returns the instruments plus
// a shutdown func that flushes the exporter. An empty endpoint disables
// metrics entirely.
func Init(ctx context.Context, serviceName, endpoint string, insecure bool) (*AppMetrics, func(context.Context) error, error) {
	if endpoint == "" {
		return nil, func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create resource: %w", err)
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(endpoint),
		otlpmetrichttp.WithURLPath("/v1/metrics"),
	}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(10*time.Second))),
	)
	otel.SetMeterProvider(provider)
	meter := provider.Meter(serviceName)

	m := &AppMetrics{}

	if m.HTTPRequestsTotal, err = meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.HTTPRequestsErrors, err = meter.Int64Counter("http.server.request.error.count",
		metric.WithDescription("Total number of HTTP error responses"),
		metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.HTTPRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms")); err != nil {
		return nil, nil, err
	}
	if m.OrdersCreated, err = meter.Int64Counter("orders_created_total",
		metric.WithDescription("Total number of orders created"),
		metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.RevenueTotal, err = meter.Float64Counter("revenue_total",
		metric.WithDescription("Total revenue generated"),
		metric.WithUnit("USD")); err != nil {
		return nil, nil, err
	}
	if m.ProductsViewed, err = meter.Int64Counter("products_viewed_total",
		metric.WithDescription("Total number of product detail views"),
		metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.CartItemsAdded, err = meter.Int64Counter("cart_items_added_total",
		metric.WithDescription("Total number of items added to carts"),
		metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}

	return m, provider.Shutdown, nil
}

// RecordRequest records one completed HTTP request.
func (m *AppMetrics) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	m.HTTPRequestsTotal.Add(ctx, 1, attrs)
	if status >= 400 {
		m.HTTPRequestsErrors.Add(ctx, 1, attrs)
	}
	m.HTTPRequestDuration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}

func (m *AppMetrics) RecordOrderCreated(ctx context.Context, total float64) {
	if m == nil {
		return
	}
	m.OrdersCreated.Add(ctx, 1)
	m.RevenueTotal.Add(ctx, total)
}

func (m *AppMetrics) RecordProductViewed(ctx context.Context, productID uint) {
	if m == nil {
		return
	}
	m.ProductsViewed.Add(ctx, 1, metric.WithAttributes(attribute.Int64("product_id", int64(productID))))
}

func (m *AppMetrics) RecordCartItemAdded(ctx context.Context, quantity int) {
	if m == nil {
		return
	}
	m.CartItemsAdded.Add(ctx, int64(quantity))
}
