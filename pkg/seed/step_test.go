// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
)

// recordingMonitor keeps the step label of every recorded duration.
type recordingMonitor struct {
	*monitoring.NoopMonitor

	mu    sync.Mutex
	steps []string
}

func newRecordingMonitor() *recordingMonitor {
	return &recordingMonitor{NoopMonitor: monitoring.NewNoopMonitor("tenant-seed")}
}

func (m *recordingMonitor) SetStepDurationMetric(labels map[string]string, _ float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, labels["step"])
	return nil
}

func (m *recordingMonitor) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.steps...)
}

func newObservedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logging.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestStepTimer_Run(t *testing.T) {
	monitor := newRecordingMonitor()
	logger, logs := newObservedLogger()
	steps := &stepTimer{monitor: monitor, logger: logger}

	for _, name := range []string{"tenant Tenant 1", "tenant Tenant 2"} {
		if err := steps.run("tenant", name, func() error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := monitor.recorded(); !reflect.DeepEqual(got, []string{"tenant", "tenant"}) {
		t.Errorf("expected one duration per tenant under a single label, got %v", got)
	}
	if n := logs.FilterMessageSnippet("tenant Tenant 2 done in").Len(); n != 1 {
		t.Errorf("expected the tenant name in the log, got %d matching entries", n)
	}
}

func TestStepTimer_NestedFailureLoggedOnce(t *testing.T) {
	monitor := newRecordingMonitor()
	logger, logs := newObservedLogger()
	steps := &stepTimer{monitor: monitor, logger: logger}

	boom := errors.New("duplicate key")

	err := steps.run("seed", "seed", func() error {
		return steps.run("tenants", "tenants", func() error {
			return steps.run("tenant", "tenant Tenant 1", func() error {
				return boom
			})
		})
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if err.Error() != boom.Error() {
		t.Errorf("expected message %q, got %q", boom.Error(), err.Error())
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != "tenant Tenant 1" {
		t.Errorf("expected the innermost step to own the error, got %v", err)
	}

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errorLogs) != 1 {
		t.Fatalf("expected a single error log, got %d", len(errorLogs))
	}
	if !strings.HasPrefix(errorLogs[0].Message, "tenant Tenant 1 failed") {
		t.Errorf("expected the innermost step to log, got %q", errorLogs[0].Message)
	}

	if got := monitor.recorded(); len(got) != 0 {
		t.Errorf("expected no durations for failed steps, got %v", got)
	}
}
