// Package api
// Author: momentics@gmail.com
//
// Generic result propagation for one-shot build outcomes.

package api

// Result carries the outcome of a single build attempt to followers that
// awaited it. Exactly one of Value/Err is meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the build succeeded.
func (r Result[T]) Ok() bool { return r.Err == nil }
