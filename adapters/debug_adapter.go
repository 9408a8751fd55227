// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Debug adapter exposing control.DebugProbes through the api.Debug contract.

package adapters

import (
	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/control"
)

type DebugAdapter struct {
	probes *control.DebugProbes
}

func NewDebugAdapter(probes *control.DebugProbes) *DebugAdapter {
	return &DebugAdapter{probes: probes}
}

var _ api.Debug = (*DebugAdapter)(nil)

func (d *DebugAdapter) DumpState() map[string]any {
	return d.probes.DumpState()
}

func (d *DebugAdapter) RegisterProbe(name string, fn func() any) {
	d.probes.RegisterProbe(name, fn)
}
