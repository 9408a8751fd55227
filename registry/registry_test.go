// Package registry_test covers keyed construct-once semantics.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package registry_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/momentics/lazyres/api"
	"github.com/momentics/lazyres/registry"
)

// countingFactory builds one *string per key and counts builds per key.
func countingFactory(counts *sync.Map) registry.BuilderFactory[*string] {
	return func(key string) api.Builder[*string] {
		return func() (*string, error) {
			n, _ := counts.LoadOrStore(key, new(int64))
			atomic.AddInt64(n.(*int64), 1)
			if strings.HasPrefix(key, "bad") {
				return nil, fmt.Errorf("invalid recipe %q", key)
			}
			v := "built:" + key
			return &v, nil
		}
	}
}

func TestRegistry_NilFactoryRejected(t *testing.T) {
	_, err := registry.New[int](nil)
	if !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRegistry_BuildsOncePerKey(t *testing.T) {
	var counts sync.Map
	reg, err := registry.New(countingFactory(&counts))
	if err != nil {
		t.Fatal(err)
	}

	first, err := reg.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		v, err := reg.Get("a")
		if err != nil {
			t.Fatal(err)
		}
		if v != first {
			t.Fatal("Get returned a different instance for the same key")
		}
	}
	if _, err := reg.Get("b"); err != nil {
		t.Fatal(err)
	}

	n, _ := counts.Load("a")
	if got := atomic.LoadInt64(n.(*int64)); got != 1 {
		t.Errorf("key a built %d times, want 1", got)
	}
	if reg.BuildCount() != 2 {
		t.Errorf("total build attempts = %d, want 2", reg.BuildCount())
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d, want 2", reg.Len())
	}
}

func TestRegistry_ConcurrentFirstAccessSingleBuild(t *testing.T) {
	var counts sync.Map
	reg, err := registry.New(countingFactory(&counts))
	if err != nil {
		t.Fatal(err)
	}

	const callers = 32
	results := make([]*string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := reg.Get("shared")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent callers observed different instances")
		}
	}
	n, _ := counts.Load("shared")
	if got := atomic.LoadInt64(n.(*int64)); got != 1 {
		t.Errorf("shared key built %d times, want 1", got)
	}
}

func TestRegistry_FailedKeyIsTerminal(t *testing.T) {
	var counts sync.Map
	reg, err := registry.New(countingFactory(&counts))
	if err != nil {
		t.Fatal(err)
	}

	_, err1 := reg.Get("bad-key")
	_, err2 := reg.Get("bad-key")
	if err1 == nil || err2 == nil {
		t.Fatal("expected both lookups to fail")
	}
	var ce *api.ConstructionError
	if !errors.As(err1, &ce) {
		t.Fatalf("expected ConstructionError, got %T", err1)
	}
	if ce.Name != "bad-key" {
		t.Errorf("error name = %q, want %q", ce.Name, "bad-key")
	}

	n, _ := counts.Load("bad-key")
	if got := atomic.LoadInt64(n.(*int64)); got != 1 {
		t.Errorf("bad key built %d times, want 1 (no retry)", got)
	}
	if !reg.Contains("bad-key") {
		t.Error("failed key should stay cached")
	}

	stats := reg.Stats()
	if stats["failed_keys"] != 1 {
		t.Errorf("failed_keys = %d, want 1", stats["failed_keys"])
	}
}

func TestRegistry_CloseRejectsLookups(t *testing.T) {
	var counts sync.Map
	reg, err := registry.New(countingFactory(&counts))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Get("a"); err != nil {
		t.Fatal(err)
	}
	if err := reg.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Get("a"); !errors.Is(err, api.ErrRegistryClosed) {
		t.Fatalf("expected ErrRegistryClosed, got %v", err)
	}
}

func TestRegistry_KeysListsCachedOutcomes(t *testing.T) {
	var counts sync.Map
	reg, err := registry.New(countingFactory(&counts))
	if err != nil {
		t.Fatal(err)
	}
	reg.Get("a")
	reg.Get("bad-b")

	keys := reg.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys len = %d, want 2", len(keys))
	}
}
