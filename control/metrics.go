// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for accessor and registry telemetry.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/lazyres/resource"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Add increments an int64 metric key, creating it at zero if absent.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	mr.mu.Lock()
	cur, _ := mr.metrics[key].(int64)
	mr.metrics[key] = cur + delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Observer adapts the registry into a resource.Observer so accessors feed
// build telemetry here without importing this package.
func (mr *MetricsRegistry) Observer() resource.Observer {
	return func(rep resource.BuildReport) {
		name := rep.Name
		if name == "" {
			name = "unnamed"
		}
		if rep.Err != nil {
			mr.Add("builds_failed."+name, 1)
		} else {
			mr.Add("builds_ok."+name, 1)
		}
		mr.Set("build_duration_ns."+name, rep.Duration.Nanoseconds())
	}
}
