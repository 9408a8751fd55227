// Package matcher
// Author: momentics <momentics@gmail.com>
//
// Compiled pattern matchers as cached resources. A Pattern is the canonical
// expensive-immutable value this library exists for: costly to compile,
// trivially shareable, safe for unlocked concurrent use afterwards.
package matcher
