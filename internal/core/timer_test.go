package core

import (
	"testing"
	"time"
)

func TestFixedStepUnpaced(t *testing.T) {
	fs := NewFixedStep(0)
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatal("unpaced step must always be due")
		}
	}
	if fs.Until() != 0 || fs.TPS() != 0 {
		t.Fatal("unpaced step must report no wait")
	}
}

func TestFixedStepPaced(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first step is due immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second step before the interval elapsed")
	}
	if got := fs.Until(); got != 100*time.Millisecond {
		t.Fatalf("Until = %v", got)
	}

	clock = clock.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("step due after one interval")
	}
	if fs.TPS() != 10 {
		t.Fatalf("TPS = %d", fs.TPS())
	}
}
