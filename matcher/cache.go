// File: matcher/cache.go
// Package matcher provides a keyed cache of compiled patterns.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package matcher

import (
	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/registry"
	"github.com/momentics/lazyres/resource"
)

// PatternCache compiles each distinct expression at most once and shares the
// result. Invalid expressions are cached as terminal failures, so repeated
// lookups of a bad pattern never recompile it.
type PatternCache struct {
	reg *registry.Registry[*Pattern]
}

// NewPatternCache creates an empty cache.
func NewPatternCache(opts ...registry.Option[*Pattern]) *PatternCache {
	reg, err := registry.New(func(expr string) api.Builder[*Pattern] {
		return func() (*Pattern, error) {
			return Compile(expr)
		}
	}, opts...)
	if err != nil {
		// Unreachable: the factory above is never nil.
		panic(err)
	}
	return &PatternCache{reg: reg}
}

// Get returns the compiled pattern for expr, compiling on first access.
func (c *PatternCache) Get(expr string) (*Pattern, error) {
	return c.reg.Get(expr)
}

// Check compiles (or reuses) expr and matches s against it.
func (c *PatternCache) Check(expr, s string) (bool, error) {
	p, err := c.Get(expr)
	if err != nil {
		return false, err
	}
	return p.Check(s), nil
}

// Registry exposes the underlying keyed store for warmup and stats.
func (c *PatternCache) Registry() *registry.Registry[*Pattern] {
	return c.reg
}

// Observer forwards build telemetry options; convenience for callers that
// construct the cache with metrics attached.
func WithObserver(obs resource.Observer) registry.Option[*Pattern] {
	return registry.WithObserver[*Pattern](obs)
}
