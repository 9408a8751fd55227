// File: internal/concurrency/executor.go
// Package concurrency implements the warmup task executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/lazyres/api"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

// Executor manages a pool of worker goroutines draining a shared queue.
type Executor struct {
	tasks   chan TaskFunc
	closeCh chan struct{}
	closed  int32        // atomic flag: 1 if closed
	mu      sync.RWMutex // orders in-flight Submits against Close
	wg      sync.WaitGroup

	// statistics
	totalTasks     int64
	completedTasks int64
	numWorkers     int32
}

// NewExecutor creates an Executor with the given number of workers.
// If numWorkers <= 0, defaults to runtime.NumCPU().
func NewExecutor(numWorkers int) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		tasks:      make(chan TaskFunc, numWorkers*4),
		closeCh:    make(chan struct{}),
		numWorkers: int32(numWorkers),
	}
	for i := 0; i < numWorkers; i++ {
		e.wg.Add(1)
		go e.run()
	}
	return e
}

// Submit enqueues a task for execution, returning api.ErrExecutorClosed if
// the executor is closed. Submit blocks while the queue is full.
// The read lock pairs with the write lock in Close: a Submit that passed the
// closed check finishes its enqueue before closeCh can be closed, so every
// accepted task is drained by the workers.
func (e *Executor) Submit(task TaskFunc) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if atomic.LoadInt32(&e.closed) == 1 {
		return api.ErrExecutorClosed
	}
	atomic.AddInt64(&e.totalTasks, 1)
	// closeCh cannot close while the read lock is held, so a plain send
	// suffices; workers keep draining until after this enqueue lands.
	e.tasks <- task
	return nil
}

// NumWorkers returns the number of worker goroutines.
func (e *Executor) NumWorkers() int {
	return int(atomic.LoadInt32(&e.numWorkers))
}

// Close shuts down the executor and waits for workers to exit. Tasks already
// queued are drained before the workers stop. The write lock waits out
// in-flight Submits so none of their accepted tasks can land after the
// workers have drained.
func (e *Executor) Close() {
	if atomic.CompareAndSwapInt32(&e.closed, 0, 1) {
		e.mu.Lock()
		close(e.closeCh)
		e.mu.Unlock()
		e.wg.Wait()
	}
}

// Stats returns basic executor metrics.
func (e *Executor) Stats() map[string]int64 {
	return map[string]int64{
		"total_tasks":     atomic.LoadInt64(&e.totalTasks),
		"completed_tasks": atomic.LoadInt64(&e.completedTasks),
		"pending_tasks":   atomic.LoadInt64(&e.totalTasks) - atomic.LoadInt64(&e.completedTasks),
		"num_workers":     int64(atomic.LoadInt32(&e.numWorkers)),
	}
}

// run is the main loop for a worker goroutine. On shutdown the worker drains
// whatever is still queued before exiting.
func (e *Executor) run() {
	defer e.wg.Done()
	for {
		select {
		case task := <-e.tasks:
			e.executeTask(task)
		case <-e.closeCh:
			for {
				select {
				case task := <-e.tasks:
					e.executeTask(task)
				default:
					return
				}
			}
		}
	}
}

// executeTask runs the task and updates statistics, recovering from panics
// so a faulty builder cannot kill a worker.
func (e *Executor) executeTask(task TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			// swallow panic to keep worker alive
		}
		atomic.AddInt64(&e.completedTasks, 1)
	}()
	task()
}
