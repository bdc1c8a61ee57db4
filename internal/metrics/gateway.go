// Package metrics instruments gateway operations with prometheus counters
// and latency histograms.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/servetdekorasyon/website/gateway"
)

// GatewayMetrics holds the collectors shared by every instrumented gateway.
type GatewayMetrics struct {
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewGatewayMetrics builds and registers the gateway collectors.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "gateway",
			Name:      "operations_total",
			Help:      "Gateway operations by collection and operation.",
		}, []string{"op", "collection"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "gateway",
			Name:      "failures_total",
			Help:      "Failed gateway operations by collection and operation.",
		}, []string{"op", "collection"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "site",
			Subsystem: "gateway",
			Name:      "operation_duration_seconds",
			Help:      "Gateway operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "collection"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.failures, m.duration)
	}
	return m
}

// Instrument wraps a gateway so every operation is counted and timed.
func (m *GatewayMetrics) Instrument(inner gateway.Service) gateway.Service {
	return &instrumentedGateway{inner: inner, metrics: m}
}

type instrumentedGateway struct {
	inner   gateway.Service
	metrics *GatewayMetrics
}

var _ gateway.Service = (*instrumentedGateway)(nil)

func (g *instrumentedGateway) Mode() gateway.Mode { return g.inner.Mode() }

func (g *instrumentedGateway) FetchCollection(ctx context.Context, name string, query gateway.Query) ([]gateway.Record, error) {
	done := g.metrics.observe("fetch", name)
	records, err := g.inner.FetchCollection(ctx, name, query)
	done(err)
	return records, err
}

func (g *instrumentedGateway) InsertRecord(ctx context.Context, name string, fields map[string]any) (*gateway.Record, error) {
	done := g.metrics.observe("insert", name)
	record, err := g.inner.InsertRecord(ctx, name, fields)
	done(err)
	return record, err
}

func (g *instrumentedGateway) UpdateRecord(ctx context.Context, name, id string, fields map[string]any) error {
	done := g.metrics.observe("update", name)
	err := g.inner.UpdateRecord(ctx, name, id, fields)
	done(err)
	return err
}

func (g *instrumentedGateway) DeleteRecord(ctx context.Context, name, id string) error {
	done := g.metrics.observe("delete", name)
	err := g.inner.DeleteRecord(ctx, name, id)
	done(err)
	return err
}

func (g *instrumentedGateway) ResolveOne(ctx context.Context, name, matchField string, matchValue any) (*gateway.Record, error) {
	done := g.metrics.observe("resolve", name)
	record, err := g.inner.ResolveOne(ctx, name, matchField, matchValue)
	if gateway.IsNotFound(err) {
		// Absence is an answer, not a failure.
		done(nil)
	} else {
		done(err)
	}
	return record, err
}

func (m *GatewayMetrics) observe(op, collection string) func(error) {
	start := time.Now()
	return func(err error) {
		m.operations.WithLabelValues(op, collection).Inc()
		if err != nil {
			m.failures.WithLabelValues(op, collection).Inc()
		}
		m.duration.WithLabelValues(op, collection).Observe(time.Since(start).Seconds())
	}
}
