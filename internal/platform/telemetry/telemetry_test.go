package telemetry_test

import (
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/telemetry"
)

// Tests that call Setup with telemetry enabled replace global providers and
// do not run in parallel.

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(t.Context(), config.TelemetryConfig{Enabled: false, ServiceName: "tasklists-service"})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Tracer != nil || p.Meter != nil {
		t.Error("providers created although telemetry is disabled")
	}
	if p.Metrics == nil {
		t.Fatal("Metrics is nil")
	}
	p.Metrics.ServerRequestTotal.Add(t.Context(), 1)
	if err := p.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestSetup_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{"stdout", telemetry.ExporterStdout, ""},
		{"otlp http", telemetry.ExporterOTLP, "http://localhost:4318"},
		{"otlp https", telemetry.ExporterOTLP, "https://collector.example.com"},
		{"otlp bare host", telemetry.ExporterOTLP, "localhost:4318"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := telemetry.Setup(t.Context(), config.TelemetryConfig{
				Enabled:     true,
				Exporter:    tt.exporter,
				Endpoint:    tt.endpoint,
				ServiceName: "tasklists-service",
			})
			if err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			// No collector runs in unit tests, so OTLP flushes may fail.
			t.Cleanup(func() { _ = p.Shutdown(t.Context()) })

			if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
				t.Fatalf("Setup() = %+v, want every provider set", p)
			}
			if otel.GetTracerProvider() != p.Tracer {
				t.Error("tracer provider not installed globally")
			}
			if len(otel.GetTextMapPropagator().Fields()) == 0 {
				t.Error("propagator not installed")
			}
		})
	}
}

func TestSetup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{"unknown exporter", config.TelemetryConfig{Enabled: true, Exporter: "zipkin", ServiceName: "svc"}},
		{"otlp without endpoint", config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP, ServiceName: "svc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := telemetry.Setup(t.Context(), tt.cfg); err == nil {
				t.Error("Setup() error = nil, want error")
			}
		})
	}
}

func TestProviders_ShutdownNil(t *testing.T) {
	t.Parallel()

	var p *telemetry.Providers
	if err := p.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown() on nil = %v", err)
	}
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "tasklists-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	if m.ServerRequestDuration == nil || m.ServerRequestTotal == nil ||
		m.StoreOperationDuration == nil || m.StoreOperationTotal == nil {
		t.Fatalf("NewMetrics() left an instrument nil: %+v", m)
	}

	m.StoreOperationTotal.Add(t.Context(), 1)
	m.StoreOperationDuration.Record(t.Context(), 0.01)
}
