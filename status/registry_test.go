package status

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestMetricMapReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	p1 := r.Ints.Get(KeyCollisions)
	p2 := r.Ints.Get(KeyCollisions)
	if p1 != p2 {
		t.Fatal("Get should return the same pointer for the same key")
	}
	p1.Add(3)
	if got := r.Ints.Get(KeyCollisions).Load(); got != 3 {
		t.Errorf("collisions = %d, want 3", got)
	}
	if !r.Ints.Has(KeyCollisions) || r.Ints.Has(KeyPushes) {
		t.Error("Has reports wrong registration state")
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 4000 {
		t.Errorf("sum = %f, want 4000", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should be empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if got := len(s.Load()); got != MaxStringLen {
		t.Errorf("stored length = %d, want %d", got, MaxStringLen)
	}
}

func TestRegistryLineSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyPushes).Store(4)
	r.Ints.Get(KeyFrames).Store(120)
	r.Floats.Get(KeyFrameDelta).Set(0.016)
	r.Strings.Get(KeyLastEvent).Store("collision")

	want := "engine.dt=0.016 engine.frames=120 match.last_event=collision match.pushes=4"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q\nwant     %q", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount = %d, want 4", r.TotalCount())
	}
}

func TestAtomicStringKeepsRunesWhole(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("é", MaxStringLen)) // 2 bytes per rune
	got := s.Load()
	if len(got) > MaxStringLen || !utf8.ValidString(got) {
		t.Errorf("truncated to invalid or oversized string: %q (%d bytes)", got, len(got))
	}
}

func TestResetMatchKeepsEngineCounters(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFrames).Store(500)
	r.Ints.Get(KeyPushes).Store(9)
	r.Ints.Get(KeyKnockouts).Store(2)

	r.ResetMatch()

	if got := r.Ints.Get(KeyFrames).Load(); got != 500 {
		t.Errorf("frames = %d, want 500", got)
	}
	if r.Ints.Get(KeyPushes).Load() != 0 || r.Ints.Get(KeyKnockouts).Load() != 0 {
		t.Error("match counters not reset")
	}
}
