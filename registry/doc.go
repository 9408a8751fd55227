// Package registry
// Author: momentics <momentics@gmail.com>
//
// Keyed construct-once resources. A Registry maps string keys to resources
// produced by a builder factory; concurrent first access to the same key is
// collapsed into a single build via singleflight, and build failures are
// cached terminally per key, matching the accessor policy in resource/.
//
// Warmer drains a FIFO of keys through the internal executor so resources
// are Ready before the first caller needs them.
package registry
