// File: registry/warmup.go
// Package registry implements background prewarming of keyed resources.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package registry

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/lazyres/internal/concurrency"
)

// BuildOutcome reports the warmup result for one key.
type BuildOutcome struct {
	Key string
	Err error // nil when the key is Ready
}

// Warmer accumulates keys in FIFO order and builds them through an executor
// so first callers find the resources already Ready. A failed key does not
// abort the drain; its terminal error is reported in the outcomes.
type Warmer[T any] struct {
	reg  *Registry[T]
	exec *concurrency.Executor

	mu      sync.Mutex
	pending *queue.Queue
}

// NewWarmer creates a Warmer over reg using exec for background builds.
func NewWarmer[T any](reg *Registry[T], exec *concurrency.Executor) *Warmer[T] {
	return &Warmer[T]{
		reg:     reg,
		exec:    exec,
		pending: queue.New(),
	}
}

// Enqueue appends keys to the warmup FIFO. Duplicate keys are harmless: the
// registry collapses them into one build anyway.
func (w *Warmer[T]) Enqueue(keys ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, k := range keys {
		w.pending.Add(k)
	}
}

// Pending returns the number of keys not yet drained.
func (w *Warmer[T]) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending.Length()
}

// Drain submits every pending key to the executor and blocks until all
// builds complete, returning one outcome per submitted key. Keys are
// dispatched in enqueue order; completion order depends on the workers.
func (w *Warmer[T]) Drain() []BuildOutcome {
	w.mu.Lock()
	keys := make([]string, 0, w.pending.Length())
	for w.pending.Length() > 0 {
		keys = append(keys, w.pending.Remove().(string))
	}
	w.mu.Unlock()

	outcomes := make([]BuildOutcome, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		i, key := i, key // per-iteration copies; module builds with Go 1.21 loop semantics
		wg.Add(1)
		err := w.exec.Submit(func() {
			defer wg.Done()
			_, err := w.reg.Get(key)
			outcomes[i] = BuildOutcome{Key: key, Err: err}
		})
		if err != nil {
			// Executor already closed: record synchronously.
			outcomes[i] = BuildOutcome{Key: key, Err: err}
			wg.Done()
		}
	}
	wg.Wait()
	return outcomes
}
