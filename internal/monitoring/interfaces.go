// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import "context"

type MonitorInterface interface {
	GetService() string
	// SetStepDurationMetric records how long a seeding step took, in seconds.
	SetStepDurationMetric(map[string]string, float64) error
	// IncCreatedRecords counts a persisted record of the labelled kind.
	IncCreatedRecords(map[string]string) error
	SetDependencyAvailability(map[string]string, float64) error
	Push(context.Context) error
}
