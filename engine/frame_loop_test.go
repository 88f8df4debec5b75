package engine

import (
	"testing"
	"time"
)

func newTestLoop() (*Loop, *MockTimeProvider) {
	tp := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewLoop(tp), tp
}

func TestLoop_RunsInRequestOrder(t *testing.T) {
	loop, _ := newTestLoop()

	var got []int
	for i := 1; i <= 3; i++ {
		i := i
		loop.Request(func(time.Time) { got = append(got, i) })
	}

	if ran := loop.Tick(); ran != 3 {
		t.Errorf("Tick() ran %d callbacks, want 3", ran)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", got)
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d after tick, want 0", loop.Pending())
	}
}

func TestLoop_HandlesAreUniqueAndNonZero(t *testing.T) {
	loop, _ := newTestLoop()
	h1 := loop.Request(func(time.Time) {})
	h2 := loop.Request(func(time.Time) {})
	if h1 == 0 || h2 == 0 || h1 == h2 {
		t.Errorf("handles = %d, %d; want distinct non-zero", h1, h2)
	}
}

func TestLoop_CancelBeforeTick(t *testing.T) {
	loop, _ := newTestLoop()

	called := false
	h := loop.Request(func(time.Time) { called = true })
	loop.Cancel(h)
	loop.Cancel(h) // idempotent

	if ran := loop.Tick(); ran != 0 {
		t.Errorf("Tick() ran %d, want 0", ran)
	}
	if called {
		t.Error("cancelled callback ran")
	}
}

func TestLoop_CancelDuringTick(t *testing.T) {
	loop, _ := newTestLoop()

	var second Handle
	secondRan := false
	loop.Request(func(time.Time) { loop.Cancel(second) })
	second = loop.Request(func(time.Time) { secondRan = true })

	loop.Tick()
	if secondRan {
		t.Error("callback cancelled by an earlier callback in the same tick still ran")
	}
}

func TestLoop_RequestDuringTickDefers(t *testing.T) {
	loop, _ := newTestLoop()

	count := 0
	var step FrameCallback
	step = func(time.Time) {
		count++
		loop.Request(step)
	}
	loop.Request(step)

	for i := 1; i <= 3; i++ {
		loop.Tick()
		if count != i {
			t.Fatalf("after tick %d count = %d, want %d", i, count, i)
		}
	}
	if loop.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", loop.Frames())
	}
}

func TestLoop_PassesProviderTime(t *testing.T) {
	loop, tp := newTestLoop()
	tp.AdvanceMillis(32)

	var seen time.Time
	loop.Request(func(now time.Time) { seen = now })
	loop.Tick()

	if !seen.Equal(tp.Now()) {
		t.Errorf("callback time = %v, want %v", seen, tp.Now())
	}
}
