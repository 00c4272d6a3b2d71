package bridge

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/go-drift/bridge/pkg/errors"
)

// uiGoroutine is the pinned UI goroutine ID, or 0 before the first guarded
// call.
var uiGoroutine atomic.Int64

// checkThread enforces the single-UI-thread contract when configured. The
// first guarded call pins its goroutine; later calls from other goroutines
// are misuse.
func checkThread(op string) {
	if !config.Validation.EnforceUIThread {
		return
	}
	gid := goid.Get()
	if uiGoroutine.CompareAndSwap(0, gid) {
		return
	}
	if pinned := uiGoroutine.Load(); pinned != gid {
		err := &errors.BridgeError{
			Op:   op,
			Kind: errors.KindMisuse,
			Err:  fmt.Errorf("called from goroutine %d, UI thread is goroutine %d", gid, pinned),
		}
		errors.Report(err)
		if config.Validation.Mode == ValidationPanic {
			panic(err)
		}
	}
}

// ResetUIThread unpins the UI goroutine. The next guarded call pins its
// own goroutine. Intended for tests and for hosts that tear the tree down
// and rebuild it on a different thread.
func ResetUIThread() {
	uiGoroutine.Store(0)
}
