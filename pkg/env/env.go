// Package env provides the ambient environment threaded through a view tree.
//
// An Environment is a capability-keyed value map: each entry is keyed by the
// dynamic type of the value stored under it, the same way inherited
// configuration is looked up by widget type elsewhere in the framework.
// Environments are immutable; adding a capability derives a new Environment
// that shares the rest of the chain with its parent, so derivation is cheap
// and concurrent reads need no locking.
//
// One Environment is created per view-tree root and shared by every
// descendant. Sharing across the embedding boundary is reference-counted by
// the bridge's context carrier, not here.
package env

import "reflect"

// Environment is an immutable set of ambient capabilities.
// The zero value is not valid; use New.
type Environment struct {
	parent *Environment
	key    reflect.Type
	value  any
}

// New returns an empty root environment.
func New() *Environment {
	return &Environment{}
}

// With derives a new environment containing value, keyed by value's dynamic
// type. A capability of the same type closer to the derived end shadows any
// older entry. The receiver is unchanged.
func (e *Environment) With(value any) *Environment {
	if value == nil {
		return e
	}
	return &Environment{
		parent: e,
		key:    reflect.TypeOf(value),
		value:  value,
	}
}

// lookup walks the chain from the derived end toward the root and returns
// the first entry of the given type.
func (e *Environment) lookup(key reflect.Type) (any, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.key == key {
			return cur.value, true
		}
	}
	return nil, false
}

// Lookup returns the capability of type T, if present.
func Lookup[T any](e *Environment) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v, ok := e.lookup(reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// LookupOr returns the capability of type T, or fallback if absent.
func LookupOr[T any](e *Environment, fallback T) T {
	if v, ok := Lookup[T](e); ok {
		return v
	}
	return fallback
}

// Has reports whether a capability of type T is present.
func Has[T any](e *Environment) bool {
	_, ok := Lookup[T](e)
	return ok
}

// Capabilities returns the effective entries of the environment, derived end
// winning over shadowed parents. Intended for diagnostics dumps.
func (e *Environment) Capabilities() map[string]any {
	out := make(map[string]any)
	for cur := e; cur != nil; cur = cur.parent {
		if cur.key == nil {
			continue
		}
		name := cur.key.String()
		if _, seen := out[name]; !seen {
			out[name] = cur.value
		}
	}
	return out
}
