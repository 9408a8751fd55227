// File: resource/options.go
// Package resource defines functional options shared by accessor types.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resource

import "time"

// BuildReport describes one completed build attempt.
type BuildReport struct {
	Name     string        // accessor name, empty if unnamed
	Duration time.Duration // wall time spent in the builder
	Err      error         // nil on success
}

// Observer receives the outcome of the single build attempt. Metrics and
// logging layers hook in here; the accessor itself never blocks on it.
type Observer func(BuildReport)

type settings struct {
	name     string
	observer Observer
}

// Option customizes accessor initialization.
type Option func(*settings)

// WithName attaches a stable name used in errors, probes, and metrics labels.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithObserver registers a hook invoked once, after the build completes.
func WithObserver(obs Observer) Option {
	return func(s *settings) {
		s.observer = obs
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
