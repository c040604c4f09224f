package log_test

import (
	"context"
	"testing"

	"farmpower-chat/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-123")
	if got := log.RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInitFallsBackOnInvalidLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "loud", Mode: "development", Encoding: "console"})
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	// Must not panic with or without a request id.
	l.Info(context.Background(), "hello")
	l.Infof(log.WithRequestID(context.Background(), "r1"), "hello %s", "world")
}
