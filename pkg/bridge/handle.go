package bridge

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/bridge/pkg/errors"
)

// Handle is an opaque token standing in for a native value owned across the
// embedding boundary. The zero Handle is the null/failure sentinel.
type Handle uintptr

// handleKind tags a registry entry with the bridged type it carries.
type handleKind uint8

const (
	kindInvalid handleKind = iota
	kindView
	kindAction
	kindBinding
	kindComputed
	kindContext
	kindSubscription
	kindAnimation
	kindViewList
	kindMetadata
	kindString
)

func (k handleKind) String() string {
	switch k {
	case kindView:
		return "view"
	case kindAction:
		return "action"
	case kindBinding:
		return "binding"
	case kindComputed:
		return "computed"
	case kindContext:
		return "context"
	case kindSubscription:
		return "subscription"
	case kindAnimation:
		return "animation"
	case kindViewList:
		return "view list"
	case kindMetadata:
		return "metadata"
	case kindString:
		return "string"
	default:
		return "invalid"
	}
}

// entry is one live handle's registry record.
type entry struct {
	kind  handleKind
	value any
	// stack is the creation site, captured only when leak tracking is on.
	stack string
}

// handles maps live Handle values to their entries. Handle values are
// minted from an atomic counter starting at 1 so zero stays reserved for
// null. The map's synchronization exists so misuse detection stays sound
// even when a host breaks the single-thread contract; it is not a license
// for concurrent use.
var (
	handles   sync.Map // map[Handle]*entry
	handleSeq uintptr
)

// newHandle registers value and returns a fresh handle owning it.
func newHandle(kind handleKind, value any) Handle {
	h := Handle(atomic.AddUintptr(&handleSeq, 1))
	e := &entry{kind: kind, value: value}
	if config.Validation.TrackLeaks {
		e.stack = errors.CaptureStack()
	}
	handles.Store(h, e)
	return h
}

// lookup resolves a live handle of the expected kind. A missing or
// wrong-kind handle is contract misuse.
func lookup(op string, h Handle, kind handleKind) (any, bool) {
	v, ok := handles.Load(h)
	if !ok {
		misuse(op, h, kind, "destroyed")
		return nil, false
	}
	e := v.(*entry)
	if e.kind != kind {
		misuse(op, h, kind, e.kind.String())
		return nil, false
	}
	return e.value, true
}

// release resolves a live handle of the expected kind and removes it from
// the registry, transferring ownership of the value back to the caller.
func release(op string, h Handle, kind handleKind) (any, bool) {
	v, ok := handles.Load(h)
	if !ok {
		misuse(op, h, kind, "destroyed")
		return nil, false
	}
	e := v.(*entry)
	if e.kind != kind {
		misuse(op, h, kind, e.kind.String())
		return nil, false
	}
	handles.Delete(h)
	return e.value, true
}

// misuse reports a handle contract violation and, in panic mode, fails fast
// on the native side. It never unwinds across the boundary: exported
// trampolines do not recover, so a panicking process dies loudly here
// rather than corrupting the host.
func misuse(op string, h Handle, want handleKind, got string) {
	err := &errors.BridgeError{
		Op:     op,
		Kind:   errors.KindMisuse,
		Handle: uintptr(h),
		Err:    &errors.MisuseError{Handle: uintptr(h), Want: want.String(), Got: got},
	}
	if config.Errors.Verbose {
		err.StackTrace = errors.CaptureStack()
	}
	errors.Report(err)
	if config.Validation.Mode == ValidationPanic {
		panic(err)
	}
}

// Outstanding returns the number of live handles. Intended for leak checks
// in tests and shutdown diagnostics.
func Outstanding() int {
	n := 0
	handles.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// OutstandingByKind returns a census of live handles per bridged type.
func OutstandingByKind() map[string]int {
	out := make(map[string]int)
	handles.Range(func(_, v any) bool {
		out[v.(*entry).kind.String()]++
		return true
	})
	return out
}

// LeakReport lists the creation sites of all live handles. Sites are only
// known when Validation.TrackLeaks was enabled at creation time.
func LeakReport() []string {
	var out []string
	handles.Range(func(h, v any) bool {
		e := v.(*entry)
		site := e.stack
		if site == "" {
			site = "(creation site not tracked)"
		}
		out = append(out, fmt.Sprintf("handle 0x%x [%s]\n%s", h.(Handle), e.kind, site))
		return true
	})
	return out
}
