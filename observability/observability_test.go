package observability

import (
	"context"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %v", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected interval 15s, got %v", cfg.Interval)
	}
	if cfg.ServiceName != "langflow-gateway" {
		t.Errorf("expected default service name, got %s", cfg.ServiceName)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled passes anything", Config{Enabled: false, SampleRate: 9}, false},
		{"enabled valid", Config{Enabled: true, Endpoint: "localhost:4318", SampleRate: 0.5}, false},
		{"bad sample rate", Config{Enabled: true, Endpoint: "localhost:4318", SampleRate: 2}, true},
		{"missing endpoint", Config{Enabled: true, SampleRate: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInit_DisabledReturnsNil(t *testing.T) {
	tel, err := Init(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tel != nil {
		t.Error("expected nil Telemetry when disabled")
	}
	// Shutdown on a nil Telemetry must be a no-op.
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("nil Shutdown should not error: %v", err)
	}
}

func TestNewUpstreamMetrics_GlobalMeter(t *testing.T) {
	m, err := NewUpstreamMetrics(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recording against the noop global meter must not panic.
	m.RecordRequest(context.Background(), "GET", "/api/v1/flows/", "ok", 10*time.Millisecond)
	m.RecordRetry(context.Background(), "GET", "/api/v1/flows/")
}

func TestStartSpan_NoopProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.span")
	defer span.End()

	SetSpanError(ctx, context.DeadlineExceeded)
}
