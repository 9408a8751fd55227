// File: resource/lazy.go
// Package resource implements the single-flight lazy accessor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lazy defers construction to the first Get. The state word moves
// uninitialized -> constructing -> ready|failed; the transition out of
// uninitialized is claimed by exactly one caller via CAS, and the done
// channel publishes the outcome to every follower.

package resource

import (
	"sync/atomic"
	"time"

	"github.com/momentics/lazyres/api"
)

// Lazy is a construct-on-first-use accessor with single-flight semantics.
// The zero value is not usable; create instances with NewLazy.
type Lazy[T any] struct {
	name     string
	builder  api.Builder[T]
	observer Observer

	state  atomic.Int32  // api.InitState
	builds atomic.Int64  // builder invocations, 0 or 1
	done   chan struct{} // closed once the build outcome is published
	res    api.Result[T] // written once, before done is closed
}

// Compile-time contract check.
var _ api.Accessor[int] = (*Lazy[int])(nil)

// NewLazy creates a lazy accessor around builder. The builder captures the
// full construction recipe; it runs at most once, on the first Get.
func NewLazy[T any](builder api.Builder[T], opts ...Option) (*Lazy[T], error) {
	if builder == nil {
		return nil, api.ErrNilBuilder
	}
	s := applyOptions(opts)
	return &Lazy[T]{
		name:     s.name,
		builder:  builder,
		observer: s.observer,
		done:     make(chan struct{}),
	}, nil
}

// Get returns the shared resource, building it on first call. Concurrent
// callers during the build block until the one attempt completes and then
// observe the identical outcome. After completion Get never blocks.
func (l *Lazy[T]) Get() (T, error) {
	// Fast path: the atomic state load pairs with the store in build,
	// so a Ready/Failed observation guarantees res is visible.
	if st := api.InitState(l.state.Load()); st == api.StateReady || st == api.StateFailed {
		return l.res.Value, l.res.Err
	}
	if l.state.CompareAndSwap(int32(api.StateUninitialized), int32(api.StateConstructing)) {
		l.build()
		return l.res.Value, l.res.Err
	}
	// Follower: await the winner's outcome.
	<-l.done
	return l.res.Value, l.res.Err
}

// build runs the single construction attempt and publishes its outcome.
// Only the CAS winner reaches here.
func (l *Lazy[T]) build() {
	l.builds.Add(1)
	start := time.Now()
	value, err := l.builder()
	if err != nil {
		var zero T
		value, err = zero, &api.ConstructionError{Name: l.name, Cause: err}
	}
	l.res = api.Result[T]{Value: value, Err: err}

	next := api.StateFailed
	if l.res.Ok() {
		next = api.StateReady
	}
	l.state.Store(int32(next))
	close(l.done)

	if l.observer != nil {
		l.observer(BuildReport{Name: l.name, Duration: time.Since(start), Err: err})
	}
}

// MustGet returns the resource or panics on construction failure. Intended
// for process-init call sites where a bad recipe is a programming error.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// State reports the current lifecycle state.
func (l *Lazy[T]) State() api.InitState {
	return api.InitState(l.state.Load())
}

// BuildCount returns how many times the builder ran (0 before first Get, 1 after).
func (l *Lazy[T]) BuildCount() int64 {
	return l.builds.Load()
}

// Name returns the accessor name, empty if unnamed.
func (l *Lazy[T]) Name() string { return l.name }
