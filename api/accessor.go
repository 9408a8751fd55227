// File: api/accessor.go
// Package api defines the cached-resource accessor contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Builder produces the resource value. It captures the full construction
// recipe at accessor-creation time; the accessor never supplies arguments.
// A Builder must be safe to call once; accessors guarantee at-most-once
// invocation over their lifetime.
type Builder[T any] func() (T, error)

// InitState describes the lifecycle of a cached resource.
// Ready and Failed are terminal: no transition ever leaves them.
type InitState int32

const (
	// StateUninitialized means no construction attempt has started.
	StateUninitialized InitState = iota
	// StateConstructing means exactly one caller is running the builder.
	StateConstructing
	// StateReady means the resource was built and is shared read-only.
	StateReady
	// StateFailed means the single build attempt failed permanently.
	StateFailed
)

// String returns a human-readable state name for probes and logs.
func (s InitState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConstructing:
		return "constructing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Accessor owns a single expensive immutable value and hands the identical
// instance to every caller. Implementations must tolerate parallel Get calls;
// contention is allowed only around the one-time construction.
type Accessor[T any] interface {
	// Get returns the shared resource, building it on first use if the
	// implementation is lazy. After a failed build every call returns the
	// same *ConstructionError; the builder is never retried.
	Get() (T, error)

	// State reports the current lifecycle state.
	State() InitState

	// BuildCount returns the number of builder invocations so far.
	// It can only ever be 0 or 1.
	BuildCount() int64
}
