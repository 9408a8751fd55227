// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/lazyres/resource"
)

// FakeObserver records build reports for assertions.
type FakeObserver struct {
	mu      sync.Mutex
	reports []resource.BuildReport
}

// Observe satisfies resource.Observer; pass fo.Observe to the accessor.
func (fo *FakeObserver) Observe(rep resource.BuildReport) {
	fo.mu.Lock()
	fo.reports = append(fo.reports, rep)
	fo.mu.Unlock()
}

// Reports returns a copy of everything observed so far.
func (fo *FakeObserver) Reports() []resource.BuildReport {
	fo.mu.Lock()
	defer fo.mu.Unlock()
	out := make([]resource.BuildReport, len(fo.reports))
	copy(out, fo.reports)
	return out
}
