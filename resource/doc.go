// Package resource
// Author: momentics <momentics@gmail.com>
//
// Construct-once accessors for expensive immutable values.
//
// Two policies are provided. Eager builds the value at accessor creation and
// is the simpler choice when the cost is always paid anyway. Lazy defers the
// build to the first Get and guarantees single-flight semantics under
// concurrent first access: exactly one caller runs the builder, followers
// await the identical outcome, and no caller ever observes a partial value.
//
// Both policies treat build failure as terminal. The recipe is fixed when the
// accessor is created, so a failed build is replayed to every later caller
// instead of being retried.
//
// See lazy.go and eager.go for implementation details.
package resource
