package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("tlskit")
	if cfg.ServiceName != "tlskit" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("tlskit")
	if cfg.Interval != 15*time.Second {
		t.Errorf("Interval = %v", cfg.Interval)
	}
}

func TestNewClientMetricsOnNoopMeter(t *testing.T) {
	// Without an initialized provider the global meter is a no-op, which
	// still hands out working instruments.
	metrics, err := NewClientMetrics(Meter("test"))
	if err != nil {
		t.Fatalf("NewClientMetrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordRequest(ctx, "GET", 200, 120*time.Millisecond)
	metrics.RecordHandshake(ctx, "leaf_pinned", true)
	metrics.RecordError(ctx, "identity_invalid")
}

func TestSetSpanErrorWithoutSpanIsNoop(t *testing.T) {
	SetSpanError(context.Background(), errors.New("boom"))
}
