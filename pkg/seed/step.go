// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"errors"
	"time"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
)

// StepError is returned by a failed step once it has been logged. Enclosing
// steps pass it through without logging it again.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// stepTimer logs and records the duration of the seeding steps.
type stepTimer struct {
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// run times fn. step is the metric label and must come from a fixed set;
// name identifies the run in logs.
func (t *stepTimer) run(step, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if err != nil {
		var logged *StepError
		if errors.As(err, &logged) {
			return err
		}

		t.logger.Errorf("%s failed after %s: %v", name, elapsed, err)
		return &StepError{Step: name, Err: err}
	}

	t.logger.Infof("%s done in %s", name, elapsed)
	if mErr := t.monitor.SetStepDurationMetric(map[string]string{"step": step}, elapsed.Seconds()); mErr != nil {
		t.logger.Debugf("failed to record step duration: %v", mErr)
	}

	return nil
}
