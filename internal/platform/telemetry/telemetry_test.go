package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
)

func TestInitTracer_Stdout(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer(stdout) error = %v", err)
	}
	t.Cleanup(func() {
		if err := tp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	if tp == nil {
		t.Fatal("InitTracer(stdout) returned nil TracerProvider")
	}
}

func TestInitTracer_OTLP(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterOTLP, "http://localhost:4318")
	if err != nil {
		t.Fatalf("InitTracer(otlp) error = %v", err)
	}
	t.Cleanup(func() {
		// Shutdown may fail when no collector is running; this is expected in unit tests.
		_ = tp.Shutdown(ctx)
	})

	if tp == nil {
		t.Fatal("InitTracer(otlp) returned nil TracerProvider")
	}
}

func TestInitTracer_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}
	t.Cleanup(func() {
		if err := tp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	prop := otel.GetTextMapPropagator()
	if _, ok := prop.(propagation.TraceContext); ok {
		// Single TraceContext is fine but we expect a composite.
		return
	}
	// Composite propagator should have non-empty Fields().
	if len(prop.Fields()) == 0 {
		t.Error("global propagator has no fields, want TraceContext + Baggage fields")
	}
}

func TestInitTracer_UnsupportedExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := telemetry.InitTracer(ctx, "test-service", "invalid", "")
	if err == nil {
		t.Fatal("InitTracer with unsupported exporter should return error")
	}
}

func TestInitTracer_OTLPEmptyEndpoint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterOTLP, "")
	if err == nil {
		t.Fatal("InitTracer with otlp and empty endpoint should return error")
	}
}

func TestInitMeter_Stdout(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "test-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitMeter(stdout) error = %v", err)
	}
	t.Cleanup(func() {
		if err := mp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	if mp == nil {
		t.Fatal("InitMeter(stdout) returned nil MeterProvider")
	}
}

func TestInitMeter_OTLP(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "test-service", telemetry.ExporterOTLP, "http://localhost:4318")
	if err != nil {
		t.Fatalf("InitMeter(otlp) error = %v", err)
	}
	t.Cleanup(func() {
		// Shutdown may fail when no collector is running; this is expected in unit tests.
		_ = mp.Shutdown(ctx)
	})

	if mp == nil {
		t.Fatal("InitMeter(otlp) returned nil MeterProvider")
	}
}

func TestInitMeter_UnsupportedExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := telemetry.InitMeter(ctx, "test-service", "invalid", "")
	if err == nil {
		t.Fatal("InitMeter with unsupported exporter should return error")
	}
}

func TestInitMeter_OTLPEmptyEndpoint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := telemetry.InitMeter(ctx, "test-service", telemetry.ExporterOTLP, "")
	if err == nil {
		t.Fatal("InitMeter with otlp and empty endpoint should return error")
	}
}

func TestNewMetrics(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "test-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitMeter error = %v", err)
	}
	t.Cleanup(func() {
		if err := mp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	if metrics.ServerRequestDuration == nil {
		t.Error("ServerRequestDuration is nil")
	}
	if metrics.ServerRequestTotal == nil {
		t.Error("ServerRequestTotal is nil")
	}
	if metrics.ClientRequestDuration == nil {
		t.Error("ClientRequestDuration is nil")
	}
	if metrics.ClientRequestTotal == nil {
		t.Error("ClientRequestTotal is nil")
	}
	if metrics.SubmissionTotal == nil {
		t.Error("SubmissionTotal is nil")
	}
	if metrics.SubmissionDuration == nil {
		t.Error("SubmissionDuration is nil")
	}
	if metrics.FormSessions == nil {
		t.Error("FormSessions is nil")
	}
	if metrics.SchedulingEvents == nil {
		t.Error("SchedulingEvents is nil")
	}
}

// collectSum returns the summed data points of the named int64 sum, per
// value of attribute key. An empty key sums everything under "".
func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string, key attribute.Key) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s data = %T, want Sum[int64]", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				label := ""
				if key != "" {
					v, _ := dp.Attributes.Value(key)
					label = v.Emit()
				}
				out[label] += dp.Value
			}
		}
	}
	return out
}

func newManualMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	return metrics, reader
}

func TestRecordSubmission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	metrics, reader := newManualMetrics(t)

	metrics.RecordSubmission(ctx, "newsletter", telemetry.ResultAlreadySubscribed, 0.02)
	metrics.RecordSubmission(ctx, "newsletter", telemetry.ResultAlreadySubscribed, 0.03)
	metrics.RecordSubmission(ctx, "contact", telemetry.ResultSuccess, 0.04)

	got := collectSum(t, reader, "site.submission.total", telemetry.AttrResult)
	if got[telemetry.ResultAlreadySubscribed] != 2 {
		t.Errorf("already_subscribed = %d, want 2", got[telemetry.ResultAlreadySubscribed])
	}
	if got[telemetry.ResultSuccess] != 1 {
		t.Errorf("success = %d, want 1", got[telemetry.ResultSuccess])
	}
}

func TestAddFormSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	metrics, reader := newManualMetrics(t)

	metrics.AddFormSessions(ctx, "contact", 1)
	metrics.AddFormSessions(ctx, "contact", 1)
	metrics.AddFormSessions(ctx, "newsletter", 1)
	metrics.AddFormSessions(ctx, "contact", -1)

	got := collectSum(t, reader, "site.form.sessions", telemetry.AttrForm)
	if got["contact"] != 1 {
		t.Errorf("contact sessions = %d, want 1", got["contact"])
	}
	if got["newsletter"] != 1 {
		t.Errorf("newsletter sessions = %d, want 1", got["newsletter"])
	}
}

func TestRecordSchedulingEvent_BucketsUnknownEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	metrics, reader := newManualMetrics(t)

	metrics.RecordSchedulingEvent(ctx, "calendly.event_scheduled", true, true)
	metrics.RecordSchedulingEvent(ctx, "calendly.page_height", true, false)
	metrics.RecordSchedulingEvent(ctx, "calendly.something_new", false, false)
	metrics.RecordSchedulingEvent(ctx, "calendly.another_new_one", false, false)

	got := collectSum(t, reader, "site.scheduling.events", telemetry.AttrEvent)
	want := map[string]int64{
		"calendly.event_scheduled": 1,
		"calendly.page_height":     1,
		"other":                    2,
	}
	if len(got) != len(want) {
		t.Fatalf("event labels = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("events[%q] = %d, want %d", k, got[k], v)
		}
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var metrics *telemetry.Metrics
	ctx := context.Background()
	metrics.RecordSubmission(ctx, "contact", telemetry.ResultSuccess, 0.1)
	metrics.AddFormSessions(ctx, "contact", 1)
	metrics.RecordSchedulingEvent(ctx, "calendly.event_scheduled", true, true)
}
