// File: registry/registry.go
// Package registry implements the keyed construct-once store.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package registry

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/resource"
)

// BuilderFactory derives a construction recipe from a key. It is called at
// most once per key over the registry's lifetime.
type BuilderFactory[T any] func(key string) api.Builder[T]

// Registry is a concurrent map of construct-once resources. Every key obeys
// the accessor contract: one build attempt, identical value to all callers,
// terminal failure.
type Registry[T any] struct {
	factory  BuilderFactory[T]
	observer resource.Observer

	mu      sync.RWMutex
	entries map[string]api.Result[T]
	flight  singleflight.Group
	closed  int32 // atomic flag: 1 if closed
	builds  int64 // total build attempts across keys
}

// Option customizes registry initialization.
type Option[T any] func(*Registry[T])

// WithObserver registers a hook invoked after each per-key build completes.
func WithObserver[T any](obs resource.Observer) Option[T] {
	return func(r *Registry[T]) {
		r.observer = obs
	}
}

// New creates a Registry around factory.
func New[T any](factory BuilderFactory[T], opts ...Option[T]) (*Registry[T], error) {
	if factory == nil {
		return nil, api.ErrInvalidArgument
	}
	r := &Registry[T]{
		factory: factory,
		entries: make(map[string]api.Result[T]),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Get returns the resource for key, building it on first access. Concurrent
// first callers for the same key share one build; distinct keys build
// independently. A failed build is cached and replayed forever.
func (r *Registry[T]) Get(key string) (T, error) {
	var zero T
	if atomic.LoadInt32(&r.closed) == 1 {
		return zero, api.ErrRegistryClosed
	}

	r.mu.RLock()
	res, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return res.Value, res.Err
	}

	v, err, _ := r.flight.Do(key, func() (any, error) {
		// Recheck under flight: a previous winner may have stored the
		// entry between our RUnlock and Do.
		r.mu.RLock()
		res, ok := r.entries[key]
		r.mu.RUnlock()
		if ok {
			return res.Value, res.Err
		}
		return r.buildKey(key)
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// buildKey runs the single build attempt for key and caches the outcome.
func (r *Registry[T]) buildKey(key string) (any, error) {
	atomic.AddInt64(&r.builds, 1)
	start := time.Now()

	value, err := r.factory(key)()
	if err != nil {
		err = &api.ConstructionError{Name: key, Cause: err}
		var zero T
		value = zero
	}

	r.mu.Lock()
	r.entries[key] = api.Result[T]{Value: value, Err: err}
	r.mu.Unlock()

	if r.observer != nil {
		r.observer(resource.BuildReport{Name: key, Duration: time.Since(start), Err: err})
	}
	return value, err
}

// Contains reports whether key has a cached outcome, success or failure.
func (r *Registry[T]) Contains(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Keys returns all keys with a cached outcome.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of cached keys.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// BuildCount returns the total number of build attempts across all keys.
func (r *Registry[T]) BuildCount() int64 {
	return atomic.LoadInt64(&r.builds)
}

// Stats returns registry metrics for control-plane export.
func (r *Registry[T]) Stats() map[string]int64 {
	r.mu.RLock()
	var failed int64
	for _, res := range r.entries {
		if !res.Ok() {
			failed++
		}
	}
	size := int64(len(r.entries))
	r.mu.RUnlock()
	return map[string]int64{
		"keys":           size,
		"failed_keys":    failed,
		"build_attempts": atomic.LoadInt64(&r.builds),
	}
}

// Close marks the registry closed. Subsequent Get calls fail with
// api.ErrRegistryClosed; already-returned resources stay valid, their
// lifetime is the process, not the registry.
func (r *Registry[T]) Close() error {
	atomic.StoreInt32(&r.closed, 1)
	return nil
}

// Shutdown implements api.GracefulShutdown by delegating to Close.
func (r *Registry[T]) Shutdown() error { return r.Close() }
