// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/canonical/tenant-seed/internal/logging"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("expected noop span to carry an invalid span context")
	}

	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewConfig(t *testing.T) {
	logger := logging.NewNoopLogger()
	cfg := NewConfig(true, "localhost:4317", "", logger)

	if !cfg.Enabled {
		t.Error("expected tracing to be enabled")
	}

	if cfg.OtelGRPCEndpoint != "localhost:4317" {
		t.Errorf("unexpected grpc endpoint %q", cfg.OtelGRPCEndpoint)
	}

	if NewNoopConfig().Enabled {
		t.Error("expected noop config to be disabled")
	}
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(time.Second)

	if c.Timeout != time.Second {
		t.Errorf("expected timeout of 1s, got %s", c.Timeout)
	}
	if c.Transport == nil || c.Transport == http.DefaultTransport {
		t.Error("expected an instrumented transport")
	}
}
