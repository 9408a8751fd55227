// File: resource/eager.go
// Package resource implements the eager accessor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resource

import (
	"time"

	"github.com/momentics/lazyres/api"
)

// Eager builds the resource inside NewEager, before any Get can run, so it
// needs no synchronization at all: the fields are immutable after creation.
// Use it when the construction cost is paid regardless, e.g. under a Warmer.
type Eager[T any] struct {
	name   string
	res    api.Result[T]
	state  api.InitState
	builds int64
}

var _ api.Accessor[int] = (*Eager[int])(nil)

// NewEager runs builder immediately and captures its outcome. A failed build
// still yields a usable accessor: every Get replays the same
// ConstructionError, matching the lazy accessor's terminal-failure policy.
func NewEager[T any](builder api.Builder[T], opts ...Option) (*Eager[T], error) {
	if builder == nil {
		return nil, api.ErrNilBuilder
	}
	s := applyOptions(opts)
	e := &Eager[T]{name: s.name, builds: 1}

	start := time.Now()
	value, err := builder()
	if err != nil {
		err = &api.ConstructionError{Name: s.name, Cause: err}
		e.res = api.Result[T]{Err: err}
		e.state = api.StateFailed
	} else {
		e.res = api.Result[T]{Value: value}
		e.state = api.StateReady
	}
	if s.observer != nil {
		s.observer(BuildReport{Name: s.name, Duration: time.Since(start), Err: err})
	}
	return e, nil
}

// Get returns the resource built at creation time, or the terminal
// construction error. It never blocks.
func (e *Eager[T]) Get() (T, error) {
	return e.res.Value, e.res.Err
}

// MustGet returns the resource or panics on construction failure.
func (e *Eager[T]) MustGet() T {
	if e.res.Err != nil {
		panic(e.res.Err)
	}
	return e.res.Value
}

// State reports StateReady or StateFailed; an Eager accessor is never
// observable in any other state.
func (e *Eager[T]) State() api.InitState { return e.state }

// BuildCount always returns 1: the builder ran exactly once, in NewEager.
func (e *Eager[T]) BuildCount() int64 { return e.builds }

// Name returns the accessor name, empty if unnamed.
func (e *Eager[T]) Name() string { return e.name }
