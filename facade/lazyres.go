// File: facade/lazyres.go
// Unified facade layer for the lazyres library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Lazyres struct, which aggregates the core services
// of the library behind a single facade: control interface, warmup executor,
// Prometheus build telemetry, structured logging, and debug probes. The
// facade exposes methods to start/stop the system, submit background tasks,
// and obtain a composite build observer that feeds every telemetry sink.

package facade

import (
	"io"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/momentics/lazyres/adapters"
	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/control"
	"github.com/momentics/lazyres/internal/concurrency"
	"github.com/momentics/lazyres/resource"
)

// Config holds parameters immutable per run.
// All fields influence the initialization of internal components and cannot
// be changed at runtime except via the Control interface.
type Config struct {
	NumWorkers       int                   // Number of warmup executor goroutines
	EnableMetrics    bool                  // Whether to register Prometheus metrics
	EnableDebug      bool                  // Whether to register debug probes
	MetricsNamespace string                // Prometheus namespace for exported metrics
	MetricsRegistry  prometheus.Registerer // Target Prometheus registry
	LogLevel         string                // zerolog level: debug, info, warn, error, disabled
	LogOutput        io.Writer             // Destination for structured logs
}

// DefaultConfig returns default configuration values.
// These sane defaults support typical use cases without extensive tuning.
func DefaultConfig() *Config {
	return &Config{
		NumWorkers:       4,                            // Four warmup workers
		EnableMetrics:    true,                         // Enable built-in metrics
		EnableDebug:      true,                         // Enable debug probes
		MetricsNamespace: "lazyres",                    // Default Prometheus namespace
		MetricsRegistry:  prometheus.DefaultRegisterer, // Global registry
		LogLevel:         "info",                       // Informational logging
		LogOutput:        os.Stderr,                    // Log to stderr
	}
}

// Lazyres is the main facade type.
// It implements api.GracefulShutdown to allow unified shutdown logic.
type Lazyres struct {
	control  *adapters.ControlAdapter
	executor *concurrency.Executor
	prom     *control.PromExporter
	logger   zerolog.Logger

	config  *Config      // Immutable configuration
	mu      sync.RWMutex // Protects started flag
	started bool         // Indicates whether Start() has been called
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*Lazyres)(nil)

// New constructs Lazyres with the given configuration. It initializes the
// control adapter, warmup executor, structured logger, and, when enabled,
// the Prometheus exporter. NumWorkers zero means "pick a default"; a
// negative count is misuse and is rejected.
func New(cfg *Config) (*Lazyres, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.NumWorkers < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative worker count").
			WithContext("num_workers", cfg.NumWorkers)
	}
	h := &Lazyres{config: cfg}

	h.control = adapters.NewControlAdapter()
	h.executor = concurrency.NewExecutor(cfg.NumWorkers)
	h.logger = newLogger(cfg)

	if cfg.EnableMetrics {
		reg := cfg.MetricsRegistry
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		h.prom = control.NewPromExporter(
			control.WithNamespace(cfg.MetricsNamespace),
			control.WithRegistry(reg),
		)
	}

	// Expose configuration values via Control for observability.
	h.control.SetConfig(map[string]any{
		"num_workers":     cfg.NumWorkers,
		"metrics.enabled": cfg.EnableMetrics,
		"debug.enabled":   cfg.EnableDebug,
	})

	return h, nil
}

// newLogger builds the facade logger from config.
func newLogger(cfg *Config) zerolog.Logger {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("component", "lazyres").
		Logger()
}

// Start marks the facade as running. Subsequent calls have no effect.
func (h *Lazyres) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return nil
	}
	h.logger.Info().Int("workers", h.executor.NumWorkers()).Msg("lazyres started")
	h.started = true
	return nil
}

// Stop closes the warmup executor and marks the facade as not started.
// Calling Stop() on a non-started facade is a no-op.
func (h *Lazyres) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.started {
		return nil
	}
	h.executor.Close()
	h.logger.Info().Msg("lazyres stopped")
	h.started = false
	return nil
}

// Shutdown implements api.GracefulShutdown by delegating to Stop().
func (h *Lazyres) Shutdown() error {
	return h.Stop()
}

// GetControl returns the Control interface for dynamic config and metrics.
func (h *Lazyres) GetControl() api.Control {
	return h.control
}

// GetDebugAPI returns the Debug interface over the facade's probe registry.
func (h *Lazyres) GetDebugAPI() api.Debug {
	return adapters.NewDebugAdapter(h.control.Debug())
}

// Logger returns the facade's structured logger.
func (h *Lazyres) Logger() zerolog.Logger {
	return h.logger
}

// Submit dispatches a task to the warmup executor for asynchronous execution.
func (h *Lazyres) Submit(task func()) error {
	return h.executor.Submit(task)
}

// Executor exposes the warmup executor for registry Warmers.
func (h *Lazyres) Executor() *concurrency.Executor {
	return h.executor
}

// Observer returns a composite build observer that feeds the control metrics
// registry, the Prometheus exporter when enabled, and the structured log.
// Attach it to accessors and registries created outside the facade helpers.
// The "metrics.enabled" config key is consulted per report, so telemetry can
// be toggled at runtime through the Control interface.
func (h *Lazyres) Observer() resource.Observer {
	metricsObs := h.control.Metrics().Observer()
	var promObs resource.Observer
	if h.prom != nil {
		promObs = h.prom.Observer()
	}
	return func(rep resource.BuildReport) {
		if h.control.Config().GetBool("metrics.enabled", true) {
			metricsObs(rep)
			if promObs != nil {
				promObs(rep)
			}
		}
		evt := h.logger.Debug()
		if rep.Err != nil {
			evt = h.logger.Warn().Err(rep.Err)
		}
		evt.Str("resource", rep.Name).Dur("build_duration", rep.Duration).Msg("resource build finished")
	}
}
