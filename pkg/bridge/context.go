package bridge

import (
	"github.com/go-drift/bridge/pkg/env"
)

// contextBox is the reference-counted environment shared by every handle
// cloned from the same root. refs counts live handles; the box's
// environment is released when the last one is dropped.
type contextBox struct {
	env  *env.Environment
	refs int
}

// NewContext creates a root execution context around e. Passing nil creates
// a fresh empty environment; this is the only place a tree's environment
// originates.
func NewContext(e *env.Environment) Handle {
	checkThread("bridge.NewContext")
	if e == nil {
		e = env.New()
	}
	return newHandle(kindContext, &contextBox{env: e, refs: 1})
}

// CloneContext bumps the shared reference count and returns a new handle to
// the same environment. The clone is independently droppable.
func CloneContext(h Handle) Handle {
	checkThread("bridge.CloneContext")
	v, ok := lookup("bridge.CloneContext", h, kindContext)
	if !ok {
		return 0
	}
	box := v.(*contextBox)
	box.refs++
	return newHandle(kindContext, box)
}

// DeriveContext creates a new root context whose environment extends the
// given one with capability (keyed by its dynamic type). The parent context
// is unaffected; derivation never mutates shared data in place.
func DeriveContext(h Handle, capability any) Handle {
	checkThread("bridge.DeriveContext")
	v, ok := lookup("bridge.DeriveContext", h, kindContext)
	if !ok {
		return 0
	}
	box := v.(*contextBox)
	return newHandle(kindContext, &contextBox{env: box.env.With(capability), refs: 1})
}

// ContextEnv returns the environment behind a context handle, borrowed:
// the context keeps ownership.
func ContextEnv(h Handle) *env.Environment {
	v, ok := lookup("bridge.ContextEnv", h, kindContext)
	if !ok {
		return nil
	}
	return v.(*contextBox).env
}

// ContextRefs returns the number of live handles sharing the environment
// behind h. Intended for tests and shutdown diagnostics.
func ContextRefs(h Handle) int {
	v, ok := lookup("bridge.ContextRefs", h, kindContext)
	if !ok {
		return 0
	}
	return v.(*contextBox).refs
}

// DropContext destroys a context handle. The shared environment is released
// when the last handle cloned from the same root is dropped.
func DropContext(h Handle) {
	checkThread("bridge.DropContext")
	v, ok := release("bridge.DropContext", h, kindContext)
	if !ok {
		return
	}
	box := v.(*contextBox)
	box.refs--
	if box.refs == 0 {
		box.env = nil
	}
}
