package bridge

import (
	"fmt"

	"github.com/go-drift/bridge/pkg/animation"
	"github.com/go-drift/bridge/pkg/errors"
	"github.com/go-drift/bridge/pkg/reactive"
)

// Binding and computed handles.
//
// A binding handle is a non-owning accessor to a cell the native reactive
// graph retains; dropping the handle severs the host's access without
// touching the cell. The surface is monomorphic per element type (bool,
// int64, float64, string) because the boundary cannot carry Go type
// parameters.

// bindingOf resolves a binding handle to its typed cell. A binding handle
// of a different element type is contract misuse, same as a wrong-kind
// handle.
func bindingOf[T any](op string, h Handle) *reactive.Binding[T] {
	v, ok := lookup(op, h, kindBinding)
	if !ok {
		return nil
	}
	b, ok := v.(*reactive.Binding[T])
	if !ok {
		misuse(op, h, kindBinding, fmt.Sprintf("%T", v))
		return nil
	}
	return b
}

// computedOf resolves a computed handle to its typed cell.
func computedOf[T any](op string, h Handle) *reactive.Computed[T] {
	v, ok := lookup(op, h, kindComputed)
	if !ok {
		return nil
	}
	c, ok := v.(*reactive.Computed[T])
	if !ok {
		misuse(op, h, kindComputed, fmt.Sprintf("%T", v))
		return nil
	}
	return c
}

// LowerBindingBool hands a bool cell out as a binding handle.
func LowerBindingBool(b *reactive.Binding[bool]) Handle {
	return newHandle(kindBinding, b)
}

// LowerBindingInt64 hands an int64 cell out as a binding handle.
func LowerBindingInt64(b *reactive.Binding[int64]) Handle {
	return newHandle(kindBinding, b)
}

// LowerBindingFloat64 hands a float64 cell out as a binding handle.
func LowerBindingFloat64(b *reactive.Binding[float64]) Handle {
	return newHandle(kindBinding, b)
}

// LowerBindingString hands a string cell out as a binding handle.
func LowerBindingString(b *reactive.Binding[string]) Handle {
	return newHandle(kindBinding, b)
}

// BindingBoolValue reads the current value of a bool binding handle.
func BindingBoolValue(h Handle) bool {
	b := bindingOf[bool]("bridge.BindingBoolValue", h)
	if b == nil {
		return false
	}
	return b.Value()
}

// BindingBoolSet writes a bool binding. Watchers fire synchronously before
// this returns.
func BindingBoolSet(h Handle, v bool) {
	checkThread("bridge.BindingBoolSet")
	if b := bindingOf[bool]("bridge.BindingBoolSet", h); b != nil {
		b.Set(v)
	}
}

// BindingInt64Value reads the current value of an int64 binding handle.
func BindingInt64Value(h Handle) int64 {
	b := bindingOf[int64]("bridge.BindingInt64Value", h)
	if b == nil {
		return 0
	}
	return b.Value()
}

// BindingInt64Set writes an int64 binding.
func BindingInt64Set(h Handle, v int64) {
	checkThread("bridge.BindingInt64Set")
	if b := bindingOf[int64]("bridge.BindingInt64Set", h); b != nil {
		b.Set(v)
	}
}

// BindingInt64SetAnimated writes an int64 binding with an animation hint.
// The animation handle is consumed.
func BindingInt64SetAnimated(h Handle, v int64, anim Handle) {
	checkThread("bridge.BindingInt64SetAnimated")
	meta := liftAnimationMeta("bridge.BindingInt64SetAnimated", anim)
	if b := bindingOf[int64]("bridge.BindingInt64SetAnimated", h); b != nil {
		b.SetAnimated(v, meta)
	}
}

// BindingFloat64Value reads the current value of a float64 binding handle.
func BindingFloat64Value(h Handle) float64 {
	b := bindingOf[float64]("bridge.BindingFloat64Value", h)
	if b == nil {
		return 0
	}
	return b.Value()
}

// BindingFloat64Set writes a float64 binding.
func BindingFloat64Set(h Handle, v float64) {
	checkThread("bridge.BindingFloat64Set")
	if b := bindingOf[float64]("bridge.BindingFloat64Set", h); b != nil {
		b.Set(v)
	}
}

// BindingStringValue reads a string binding into a fresh string handle
// owned by the caller.
func BindingStringValue(h Handle) Handle {
	b := bindingOf[string]("bridge.BindingStringValue", h)
	if b == nil {
		return 0
	}
	return LowerString(b.Value())
}

// BindingStringSet writes a string binding.
func BindingStringSet(h Handle, v string) {
	checkThread("bridge.BindingStringSet")
	if b := bindingOf[string]("bridge.BindingStringSet", h); b != nil {
		b.Set(v)
	}
}

// DropBinding destroys a binding handle. The underlying cell stays with
// the native graph.
func DropBinding(h Handle) {
	checkThread("bridge.DropBinding")
	release("bridge.DropBinding", h, kindBinding)
}

// LowerComputedInt64 hands a derived int64 out as a computed handle.
func LowerComputedInt64(c *reactive.Computed[int64]) Handle {
	return newHandle(kindComputed, c)
}

// LowerComputedString hands a derived string out as a computed handle.
func LowerComputedString(c *reactive.Computed[string]) Handle {
	return newHandle(kindComputed, c)
}

// ComputedInt64Value reads the current derived int64 value.
func ComputedInt64Value(h Handle) int64 {
	c := computedOf[int64]("bridge.ComputedInt64Value", h)
	if c == nil {
		return 0
	}
	return c.Value()
}

// ComputedStringValue reads the current derived string into a fresh string
// handle owned by the caller.
func ComputedStringValue(h Handle) Handle {
	c := computedOf[string]("bridge.ComputedStringValue", h)
	if c == nil {
		return 0
	}
	return LowerString(c.Value())
}

// DropComputed destroys a computed handle. The derived cell itself stays
// with the native graph; disposing it is the native producer's call.
func DropComputed(h Handle) {
	checkThread("bridge.DropComputed")
	release("bridge.DropComputed", h, kindComputed)
}

// NewAnimation constructs an animation hint handle for use with the
// animated setters.
func NewAnimation(a *animation.Animation) Handle {
	if a == nil {
		errors.Report(&errors.BridgeError{
			Op:   "bridge.NewAnimation",
			Kind: errors.KindConvert,
			Err:  &errors.ConvertError{Type: "animation.Animation", Direction: "lower", Err: fmt.Errorf("nil animation")},
		})
		return 0
	}
	return newHandle(kindAnimation, a)
}

// DropAnimation destroys an unused animation handle. Animated setters
// consume their animation handle themselves.
func DropAnimation(h Handle) {
	release("bridge.DropAnimation", h, kindAnimation)
}

// liftAnimationMeta consumes an animation handle into change metadata.
// The null sentinel means an unanimated change.
func liftAnimationMeta(op string, h Handle) reactive.Metadata {
	if h == 0 {
		return reactive.Metadata{}
	}
	v, ok := release(op, h, kindAnimation)
	if !ok {
		return reactive.Metadata{}
	}
	return reactive.Animated(v.(*animation.Animation))
}
