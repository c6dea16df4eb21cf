package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Metric label keys shared by the HTTP middleware and the postgres store.
var (
	AttrHTTPMethod  = semconv.HTTPRequestMethodKey
	AttrHTTPStatus  = semconv.HTTPResponseStatusCodeKey
	AttrHTTPRoute   = semconv.HTTPRouteKey
	AttrDBSystem    = semconv.DBSystemNameKey
	AttrDBOperation = semconv.DBOperationNameKey
	AttrResult      = attribute.Key("result")
)

// Metrics holds the instruments recorded per HTTP request and per store
// operation.
type Metrics struct {
	ServerRequestDuration  metric.Float64Histogram
	ServerRequestTotal     metric.Int64Counter
	StoreOperationDuration metric.Float64Histogram
	StoreOperationTotal    metric.Int64Counter
}

// NewMetrics registers the instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var (
		m    Metrics
		errs []error
	)

	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of task list API requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Task list API requests served", "{request}")
	m.StoreOperationDuration = histogram("db.client.operation.duration", "Duration of task store operations")
	m.StoreOperationTotal = counter("db.client.operation.total", "Task store operations performed", "{operation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}
