// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync/atomic"
	"time"
)

// FakeBuilder is a controllable builder for accessor tests. It counts
// invocations, can fail deterministically, and can hold the build open on a
// gate channel so tests can pile up concurrent callers.
type FakeBuilder[T any] struct {
	Value T             // returned on success
	Err   error         // returned instead, when non-nil
	Delay time.Duration // optional sleep inside the build
	Gate  chan struct{} // when non-nil, the build blocks until the gate closes

	calls int64
}

// Build satisfies api.Builder[T]; pass fb.Build to the accessor.
func (fb *FakeBuilder[T]) Build() (T, error) {
	atomic.AddInt64(&fb.calls, 1)
	if fb.Gate != nil {
		<-fb.Gate
	}
	if fb.Delay > 0 {
		time.Sleep(fb.Delay)
	}
	if fb.Err != nil {
		var zero T
		return zero, fb.Err
	}
	return fb.Value, nil
}

// Calls returns how many times Build ran.
func (fb *FakeBuilder[T]) Calls() int64 {
	return atomic.LoadInt64(&fb.calls)
}
