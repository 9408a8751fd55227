// File: facade/accessors.go
// Accessor and registry constructors bound to a facade instance.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Go methods cannot introduce their own type parameters, so these helpers
// are package-level generic functions taking the facade as first argument.

package facade

import (
	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/registry"
	"github.com/momentics/lazyres/resource"
)

// NewLazy creates a lazy accessor wired to the facade: its build outcome
// flows into metrics and logs, and its state/build-count become debug probes.
func NewLazy[T any](h *Lazyres, name string, builder api.Builder[T], opts ...resource.Option) (*resource.Lazy[T], error) {
	all := append([]resource.Option{
		resource.WithName(name),
		resource.WithObserver(h.Observer()),
	}, opts...)
	lazy, err := resource.NewLazy(builder, all...)
	if err != nil {
		return nil, err
	}
	if h.config.EnableDebug {
		h.control.Debug().RegisterAccessorProbes(name,
			func() string { return lazy.State().String() },
			lazy.BuildCount,
		)
	}
	return lazy, nil
}

// NewEager creates an eager accessor wired to the facade. The build runs
// inside this call; telemetry is reported before it returns.
func NewEager[T any](h *Lazyres, name string, builder api.Builder[T], opts ...resource.Option) (*resource.Eager[T], error) {
	all := append([]resource.Option{
		resource.WithName(name),
		resource.WithObserver(h.Observer()),
	}, opts...)
	eager, err := resource.NewEager(builder, all...)
	if err != nil {
		return nil, err
	}
	if h.config.EnableDebug {
		h.control.Debug().RegisterAccessorProbes(name,
			func() string { return eager.State().String() },
			eager.BuildCount,
		)
	}
	return eager, nil
}

// NewRegistry creates a keyed registry wired to the facade observer.
func NewRegistry[T any](h *Lazyres, factory registry.BuilderFactory[T]) (*registry.Registry[T], error) {
	return registry.New(factory, registry.WithObserver[T](h.Observer()))
}

// Prewarm builds the given keys in the background through the facade
// executor and logs each outcome. It blocks until all builds complete.
func Prewarm[T any](h *Lazyres, reg *registry.Registry[T], keys ...string) []registry.BuildOutcome {
	warmer := registry.NewWarmer(reg, h.executor)
	warmer.Enqueue(keys...)
	outcomes := warmer.Drain()
	for _, o := range outcomes {
		if o.Err != nil {
			h.logger.Warn().Err(o.Err).Str("key", o.Key).Msg("warmup build failed")
		} else {
			h.logger.Debug().Str("key", o.Key).Msg("warmup build ready")
		}
	}
	return outcomes
}
