package status

import (
	"strings"
	"testing"
)

func TestMetricMap_GetCachesPointer(t *testing.T) {
	r := NewRegistry()

	first := r.Ints.Get("sim.ticks")
	first.Store(42)

	second := r.Ints.Get("sim.ticks")
	if first != second {
		t.Error("Expected repeated Get to return the cached pointer")
	}
	if second.Load() != 42 {
		t.Errorf("Expected 42, got %d", second.Load())
	}

	if !r.Ints.Has("sim.ticks") {
		t.Error("Expected Has to see registered key")
	}
	if r.Ints.Has("sim.missing") {
		t.Error("Expected Has to miss unknown key")
	}
}

func TestMetricMap_RangeSortedOrder(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get("c").Set(3)
	r.Floats.Get("a").Set(1)
	r.Floats.Get("b").Set(2)

	var keys []string
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		keys = append(keys, key)
	})

	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %d to be %q, got %q", i, want[i], keys[i])
		}
	}
}

func TestAtomicFloat_Add(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0.0, got %v", f.Get())
	}

	f.Set(1.5)
	got := f.Add(0.25)
	if got != 1.75 {
		t.Errorf("Expected Add to return 1.75, got %v", got)
	}
	if f.Get() != 1.75 {
		t.Errorf("Expected stored 1.75, got %v", f.Get())
	}
}

func TestAtomicString_TruncatesLongValues(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected zero value empty string, got %q", s.Load())
	}

	s.Store("session-1234")
	if s.Load() != "session-1234" {
		t.Errorf("Expected round-trip, got %q", s.Load())
	}

	long := strings.Repeat("x", MaxStringLen+10)
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("sim.running").Store(true)
	r.Ints.Get("sim.ticks").Store(120)
	r.Floats.Get("cook.avg_doneness").Set(0.5)
	r.Strings.Get("sim.session").Store("abc")

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(snap))
	}
	if snap["sim.running"] != true {
		t.Errorf("Expected sim.running true, got %v", snap["sim.running"])
	}
	if snap["sim.ticks"] != int64(120) {
		t.Errorf("Expected sim.ticks 120, got %v", snap["sim.ticks"])
	}
	if snap["cook.avg_doneness"] != 0.5 {
		t.Errorf("Expected cook.avg_doneness 0.5, got %v", snap["cook.avg_doneness"])
	}
	if snap["sim.session"] != "abc" {
		t.Errorf("Expected sim.session abc, got %v", snap["sim.session"])
	}

	if r.TotalCount() != 4 {
		t.Errorf("Expected TotalCount 4, got %d", r.TotalCount())
	}
}
