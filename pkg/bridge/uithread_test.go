package bridge

import (
	"sync"
	"testing"
)

func TestUIThreadPinning(t *testing.T) {
	captured := quietMisuse(t)
	cfg := config
	cfg.Validation.EnforceUIThread = true
	config = cfg
	ResetUIThread()
	t.Cleanup(ResetUIThread)

	// First guarded call pins this goroutine; repeat calls are fine.
	h := NewContext(nil)
	DropContext(h)
	if len(*captured) != 0 {
		t.Fatalf("same-goroutine calls reported %d errors", len(*captured))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		NewContext(nil)
	}()
	wg.Wait()

	if len(*captured) == 0 {
		t.Error("cross-goroutine call was not reported")
	}
}

func TestUIThreadUnenforcedByDefault(t *testing.T) {
	captured := quietMisuse(t)
	ResetUIThread()
	t.Cleanup(ResetUIThread)

	var wg sync.WaitGroup
	wg.Add(1)
	var h Handle
	go func() {
		defer wg.Done()
		h = NewContext(nil)
	}()
	wg.Wait()
	DropContext(h)

	if len(*captured) != 0 {
		t.Errorf("unguarded cross-goroutine calls reported %d errors", len(*captured))
	}
}
