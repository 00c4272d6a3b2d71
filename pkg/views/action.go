package views

import "github.com/go-drift/bridge/pkg/env"

// Action is a type-erased event handler. It takes the ambient environment of
// the tree that triggered it and returns nothing; failures inside a handler
// are the handler's own concern.
type Action struct {
	fn func(*env.Environment)
}

// NewAction wraps a handler function. A nil fn yields an action that does
// nothing when invoked.
func NewAction(fn func(*env.Environment)) *Action {
	return &Action{fn: fn}
}

// Invoke runs the handler synchronously on the calling thread with the given
// environment. Any bindings the handler mutates notify their watchers before
// Invoke returns.
func (a *Action) Invoke(e *env.Environment) {
	if a == nil || a.fn == nil {
		return
	}
	a.fn(e)
}
