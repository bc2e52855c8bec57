// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"testing"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/tracing"
)

func TestConfig_ApiURL(t *testing.T) {
	testCases := []struct {
		scheme   string
		host     string
		expected string
	}{
		{scheme: "https", host: "fga.example.com", expected: "https://fga.example.com"},
		{scheme: "", host: "localhost:8080", expected: "http://localhost:8080"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			cfg := NewConfig(tc.scheme, tc.host, "store", "token", "", false, nil, nil, nil)

			if got := cfg.ApiURL(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNoopClient_WriteTuples(t *testing.T) {
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("tenant-seed"), logging.NewNoopLogger())

	if err := c.WriteTuple(context.Background(), "user:1", "owner", "tenant:1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
