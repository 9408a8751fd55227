// File: matcher/pattern.go
// Package matcher wraps compiled regular expressions as immutable resources.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package matcher

import (
	"regexp"

	"github.com/momentics/lazyres/resource"
)

// Pattern is an immutable compiled matcher. Once built it is shared freely
// across goroutines; regexp matching needs no external locking.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile builds a Pattern from expr. This is the expensive step the
// accessors exist to run at most once.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Pattern{expr: expr, re: re}, nil
}

// Check reports whether s matches the pattern.
func (p *Pattern) Check(s string) bool {
	return p.re.MatchString(s)
}

// Expr returns the source expression.
func (p *Pattern) Expr() string { return p.expr }

// NewLazyPattern returns a lazy accessor that compiles expr on first Get.
// The accessor is named after the expression unless overridden via options.
func NewLazyPattern(expr string, opts ...resource.Option) *resource.Lazy[*Pattern] {
	all := append([]resource.Option{resource.WithName(expr)}, opts...)
	lazy, err := resource.NewLazy(func() (*Pattern, error) {
		return Compile(expr)
	}, all...)
	if err != nil {
		// Unreachable: the builder above is never nil.
		panic(err)
	}
	return lazy
}

// NewEagerPattern compiles expr immediately and returns the accessor.
func NewEagerPattern(expr string, opts ...resource.Option) *resource.Eager[*Pattern] {
	all := append([]resource.Option{resource.WithName(expr)}, opts...)
	eager, err := resource.NewEager(func() (*Pattern, error) {
		return Compile(expr)
	}, all...)
	if err != nil {
		panic(err)
	}
	return eager
}
