// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Internal worker-pool executor used for background resource warmup. Tasks
// are builder invocations: potentially slow, never latency-critical, so a
// plain buffered channel feeds a fixed set of workers.
package concurrency
