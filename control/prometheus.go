// control/prometheus.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus export of build telemetry. Accessors and registries report
// through a resource.Observer; this file maps those reports onto counters,
// a duration histogram, and a ready gauge.

package control

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/momentics/lazyres/resource"
)

// PromConfig configures the Prometheus build-telemetry exporter.
type PromConfig struct {
	// Namespace is the metrics namespace (default: "lazyres").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// PromOption configures the exporter.
type PromOption func(*PromConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) PromOption {
	return func(c *PromConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) PromOption {
	return func(c *PromConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) PromOption {
	return func(c *PromConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) PromOption {
	return func(c *PromConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) PromOption {
	return func(c *PromConfig) {
		c.Registry = registry
	}
}

func defaultPromConfig() PromConfig {
	return PromConfig{
		Namespace: "lazyres",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// PromExporter holds the Prometheus metrics for build telemetry.
type PromExporter struct {
	buildsTotal   *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	readyTotal    prometheus.Gauge
}

// NewPromExporter registers the metric set and returns the exporter.
func NewPromExporter(opts ...PromOption) *PromExporter {
	cfg := defaultPromConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &PromExporter{
		buildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "builds_total",
			Help:        "Total number of resource build attempts",
			ConstLabels: cfg.ConstLabels,
		}, []string{"resource", "outcome"}),

		buildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Resource build duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"resource"}),

		readyTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "resources_ready",
			Help:        "Number of resources currently in the ready state",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Observer adapts the exporter into a resource.Observer.
func (pe *PromExporter) Observer() resource.Observer {
	return func(rep resource.BuildReport) {
		name := rep.Name
		if name == "" {
			name = "unnamed"
		}
		outcome := "ok"
		if rep.Err != nil {
			outcome = "error"
		} else {
			pe.readyTotal.Inc()
		}
		pe.buildsTotal.WithLabelValues(name, outcome).Inc()
		pe.buildDuration.WithLabelValues(name).Observe(rep.Duration.Seconds())
	}
}
