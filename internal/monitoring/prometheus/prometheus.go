// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/tracing"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	registry       *prometheus.Registry
	stepDuration   *prometheus.HistogramVec
	createdRecords *prometheus.CounterVec
	dependencies   *prometheus.GaugeVec

	pushURL string

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetStepDurationMetric(tags map[string]string, value float64) error {
	o, err := m.stepDuration.GetMetricWith(m.withService(tags))
	if err != nil {
		return fmt.Errorf("failed to get step duration metric: %w", err)
	}

	o.Observe(value)
	return nil
}

func (m *Monitor) IncCreatedRecords(tags map[string]string) error {
	c, err := m.createdRecords.GetMetricWith(m.withService(tags))
	if err != nil {
		return fmt.Errorf("failed to get created records metric: %w", err)
	}

	c.Inc()
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	g, err := m.dependencies.GetMetricWith(m.withService(tags))
	if err != nil {
		return fmt.Errorf("failed to get dependency availability metric: %w", err)
	}

	g.Set(value)
	return nil
}

// Push sends the collected metrics to the Pushgateway, if one is configured.
func (m *Monitor) Push(ctx context.Context) error {
	if m.pushURL == "" {
		return nil
	}

	if err := push.New(m.pushURL, m.service).
		Client(tracing.NewHTTPClient(10 * time.Second)).
		Gatherer(m.registry).
		PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}

	m.logger.Debugf("metrics pushed to %s", m.pushURL)
	return nil
}

// Registry exposes the underlying registry, mostly for inspection in tests.
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}
	return labels
}

func (m *Monitor) registerMetrics() {
	m.stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seed_step_duration_seconds",
			Help:    "Duration of each seeding step",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"service", "step"},
	)

	m.createdRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_created_records_total",
			Help: "Records created during seeding, by kind",
		},
		[]string{"service", "kind"},
	)

	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seed_dependency_available",
			Help: "Availability of an external dependency, 1 when reachable",
		},
		[]string{"service", "component"},
	)

	m.registry.MustRegister(m.stepDuration, m.createdRecords, m.dependencies)
}

func NewMonitor(service, pushURL string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.pushURL = pushURL
	m.registry = prometheus.NewRegistry()
	m.logger = logger

	m.registerMetrics()

	return m
}
