// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	authorizationDecisions *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return errors.New("metric not instantiated")
	}

	observer, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	observer.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return errors.New("metric not instantiated")
	}

	gauge, err := m.dependencyAvailability.GetMetricWith(tags)
	if err != nil {
		return err
	}

	gauge.Set(value)

	return nil
}

// IncAuthorizationDecision counts authorization outcomes, tags must carry "action" and "effect"
func (m *Monitor) IncAuthorizationDecision(tags map[string]string) error {
	if m.authorizationDecisions == nil {
		return errors.New("metric not instantiated")
	}

	counter, err := m.authorizationDecisions.GetMetricWith(tags)
	if err != nil {
		return err
	}

	counter.Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.register(m.responseTime)
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.register(m.dependencyAvailability)
}

func (m *Monitor) registerCounters() {
	m.authorizationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "authorization_decisions_total",
			Help:        "authorization_decisions_total",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"action", "effect"},
	)

	m.register(m.authorizationDecisions)
}

func (m *Monitor) register(c prometheus.Collector) {
	err := prometheus.Register(c)

	var are prometheus.AlreadyRegisteredError
	if err != nil && !errors.As(err, &are) {
		m.logger.Errorf("failed to register metric: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
