package progress

import (
	"testing"
	"time"

	"github.com/ryanfowler/huh/internal/core"
)

func testPrinter() *core.Printer {
	return core.NewHandle(core.ColorOff).Stderr()
}

func TestSpinnerStartStop(t *testing.T) {
	s := NewSpinner(testPrinter(), "Analyzing...")
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSpinnerImmediateStop(t *testing.T) {
	// Stopping before the first frame renders must not hang.
	s := NewSpinner(testPrinter(), "Analyzing...")
	s.Stop()
}
