// Package control tests config, metrics, probes, and Prometheus export.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/momentics/lazyres/resource"
)

func TestConfigStore_SnapshotAndTypedGet(t *testing.T) {
	cs := NewConfigStore()
	cs.SetConfig(map[string]any{"metrics.enabled": true, "workers": 4})

	snap := cs.GetSnapshot()
	if snap["workers"] != 4 {
		t.Errorf("snapshot workers = %v, want 4", snap["workers"])
	}
	if !cs.GetBool("metrics.enabled", false) {
		t.Error("GetBool should return stored true")
	}
	if cs.GetBool("missing", true) != true {
		t.Error("GetBool should fall back to default")
	}
	if cs.GetBool("workers", false) {
		t.Error("GetBool on mistyped key should fall back to default")
	}
}

func TestConfigStore_ReloadListener(t *testing.T) {
	cs := NewConfigStore()
	var mu sync.Mutex
	called := false
	cs.OnReload(func() {
		mu.Lock()
		called = true
		mu.Unlock()
	})
	cs.SetConfig(map[string]any{"x": 1})
	time.Sleep(10 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if !called {
		t.Error("reload listener not invoked")
	}
}

func TestMetricsRegistry_ObserverCountsOutcomes(t *testing.T) {
	mr := NewMetricsRegistry()
	obs := mr.Observer()

	obs(resource.BuildReport{Name: "db", Duration: time.Millisecond})
	obs(resource.BuildReport{Name: "db", Duration: time.Millisecond})
	obs(resource.BuildReport{Name: "bad", Err: fmt.Errorf("boom")})
	obs(resource.BuildReport{})

	snap := mr.GetSnapshot()
	if snap["builds_ok.db"] != int64(2) {
		t.Errorf("builds_ok.db = %v, want 2", snap["builds_ok.db"])
	}
	if snap["builds_failed.bad"] != int64(1) {
		t.Errorf("builds_failed.bad = %v, want 1", snap["builds_failed.bad"])
	}
	if snap["builds_ok.unnamed"] != int64(1) {
		t.Errorf("builds_ok.unnamed = %v, want 1", snap["builds_ok.unnamed"])
	}
}

func TestDebugProbes_AccessorProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterAccessorProbes("validator",
		func() string { return "ready" },
		func() int64 { return 1 },
	)
	state := dp.DumpState()
	if state["accessor.validator.state"] != "ready" {
		t.Errorf("state probe = %v", state["accessor.validator.state"])
	}
	if state["accessor.validator.builds"] != int64(1) {
		t.Errorf("builds probe = %v", state["accessor.validator.builds"])
	}
}

func TestPlatformProbes_Registered(t *testing.T) {
	dp := NewDebugProbes()
	RegisterPlatformProbes(dp)
	state := dp.DumpState()
	cpus, ok := state["platform.cpus"].(int)
	if !ok || cpus <= 0 {
		t.Errorf("platform.cpus = %v, want positive int", state["platform.cpus"])
	}
}

func TestPromExporter_ObserverMovesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	pe := NewPromExporter(WithRegistry(reg), WithNamespace("testns"))
	obs := pe.Observer()

	obs(resource.BuildReport{Name: "db", Duration: 5 * time.Millisecond})
	obs(resource.BuildReport{Name: "db", Err: fmt.Errorf("boom")})

	if got := testutil.ToFloat64(pe.buildsTotal.WithLabelValues("db", "ok")); got != 1 {
		t.Errorf("builds_total{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pe.buildsTotal.WithLabelValues("db", "error")); got != 1 {
		t.Errorf("builds_total{error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pe.readyTotal); got != 1 {
		t.Errorf("resources_ready = %v, want 1", got)
	}
}
