// Package resource_test covers the eager accessor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resource_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/fake"
	"github.com/momentics/lazyres/resource"
)

func TestEager_BuildsAtCreation(t *testing.T) {
	fb := &fake.FakeBuilder[*string]{Value: ptr("compiled")}
	eager, err := resource.NewEager(fb.Build, resource.WithName("eager"))
	if err != nil {
		t.Fatal(err)
	}
	if fb.Calls() != 1 {
		t.Fatalf("expected build during NewEager, got %d calls", fb.Calls())
	}
	if eager.State() != api.StateReady {
		t.Errorf("expected ready state, got %v", eager.State())
	}

	first, err := eager.Get()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		v, err := eager.Get()
		if err != nil {
			t.Fatal(err)
		}
		if v != first {
			t.Fatal("Get returned a different instance")
		}
	}
	if fb.Calls() != 1 {
		t.Errorf("expected exactly 1 build, got %d", fb.Calls())
	}
	if eager.BuildCount() != 1 {
		t.Errorf("BuildCount = %d, want 1", eager.BuildCount())
	}
}

func TestEager_FailureIsTerminal(t *testing.T) {
	boom := fmt.Errorf("recipe rejected")
	fb := &fake.FakeBuilder[*string]{Err: boom}
	eager, err := resource.NewEager(fb.Build, resource.WithName("bad"))
	if err != nil {
		t.Fatal(err)
	}
	if eager.State() != api.StateFailed {
		t.Errorf("expected failed state, got %v", eager.State())
	}

	_, err1 := eager.Get()
	_, err2 := eager.Get()
	if err1 == nil || err2 == nil {
		t.Fatal("expected both calls to fail")
	}
	if err1 != err2 {
		t.Error("subsequent calls must replay the identical error")
	}
	var ce *api.ConstructionError
	if !errors.As(err1, &ce) {
		t.Fatalf("expected ConstructionError, got %T", err1)
	}
	if !errors.Is(err1, boom) {
		t.Error("ConstructionError must wrap the builder error")
	}
	if fb.Calls() != 1 {
		t.Errorf("build attempts = %d, want 1 (no retry)", fb.Calls())
	}
}

func TestEager_NilBuilderRejected(t *testing.T) {
	_, err := resource.NewEager[int](nil)
	if !errors.Is(err, api.ErrNilBuilder) {
		t.Fatalf("expected ErrNilBuilder, got %v", err)
	}
}

func TestEager_ObserverReceivesReport(t *testing.T) {
	fo := &fake.FakeObserver{}
	_, err := resource.NewEager(
		func() (int, error) { return 0, fmt.Errorf("bad recipe") },
		resource.WithName("observed"),
		resource.WithObserver(fo.Observe),
	)
	if err != nil {
		t.Fatal(err)
	}
	reports := fo.Reports()
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].Err == nil {
		t.Error("report should carry the construction error")
	}
}
