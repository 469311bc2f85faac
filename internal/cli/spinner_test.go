package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	for _, tty := range []bool{false, true} {
		s := newSpinner("Drawing pearls...")
		s.tty = tty
		s.Start()
		time.Sleep(20 * time.Millisecond)

		done := make(chan struct{})
		go func() {
			s.Stop()
			s.Stop() // idempotent
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("Stop() blocked (tty=%v)", tty)
		}
	}
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "Rendering frames...")
	s.Start()

	if s.Cancelled() {
		t.Fatal("spinner cancelled before its context")
	}
	cancel()
	if !s.Cancelled() {
		t.Error("spinner should report cancellation after its context is cancelled")
	}
	s.Stop()
}

func TestSpinnerStopWithStatus(t *testing.T) {
	s := newSpinner("Encoding...")
	s.Start()
	s.StopWithSuccess("Encoded")

	s = newSpinner("Encoding...")
	s.Start()
	s.StopWithError("Encoding failed")
}
