package bridge

import (
	"fmt"
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/go-drift/bridge/pkg/animation"
	"github.com/go-drift/bridge/pkg/errors"
)

// The C-callable surface.
//
// VTable packs every exported entry point as a C function pointer created
// with purego.NewCallback, so a host that embeds the Go runtime as a shared
// library can bind the whole surface from one struct. Layout and calling
// conventions are part of the stable ABI:
//
//   - every argument and result is pointer-sized; float64 values travel as
//     their IEEE-754 bit patterns (math.Float64bits),
//   - 0 is the null/failure sentinel for handles and the false branch of
//     boolean results,
//   - out-parameters are host-allocated structs the entry point fills,
//   - trampolines never unwind into the host: contract misuse in panic mode
//     takes the process down on the native side instead.
//
// Host callbacks registered through the Connect entries are raw C function
// pointers invoked with purego.SyscallN as
//
//	void watcher(uintptr_t value, uintptr_t metadata, void *user_data);
//
// where value carries the lowered new value (scalar, bits, or handle per
// the source's element type).

// VTable is the exported C function table.
type VTable struct {
	// View carrier. C: drift_any_view_id, drift_force_as_button,
	// drift_force_as_toggle, drift_force_as_text, drift_force_as_vstack,
	// drift_describe_view, drift_drop_any_view.
	AnyViewID     uintptr
	ForceAsButton uintptr
	ForceAsToggle uintptr
	ForceAsText   uintptr
	ForceAsVStack uintptr
	DescribeView  uintptr
	DropAnyView   uintptr

	// View lists. C: drift_view_list_len, drift_view_list_get.
	ViewListLen uintptr
	ViewListGet uintptr

	// Bindings. C: drift_binding_bool_get, drift_binding_bool_set,
	// drift_binding_i64_get, drift_binding_i64_set,
	// drift_binding_i64_set_animated, drift_binding_f64_get,
	// drift_binding_f64_set, drift_binding_string_get,
	// drift_binding_string_set, drift_drop_binding.
	BindingBoolGet          uintptr
	BindingBoolSet          uintptr
	BindingInt64Get         uintptr
	BindingInt64Set         uintptr
	BindingInt64SetAnimated uintptr
	BindingFloat64Get       uintptr
	BindingFloat64Set       uintptr
	BindingStringGet        uintptr
	BindingStringSet        uintptr
	DropBinding             uintptr

	// Computed values. C: drift_computed_i64_get,
	// drift_computed_string_get, drift_drop_computed.
	ComputedInt64Get  uintptr
	ComputedStringGet uintptr
	DropComputed      uintptr

	// Watchers. C: drift_connect_binding_bool, drift_connect_binding_i64,
	// drift_connect_binding_string, drift_connect_computed_i64,
	// drift_connect_dynamic, drift_drop_subscription,
	// drift_metadata_describe.
	ConnectBindingBool   uintptr
	ConnectBindingInt64  uintptr
	ConnectBindingString uintptr
	ConnectComputedInt64 uintptr
	ConnectDynamic       uintptr
	DropSubscription     uintptr
	MetadataDescribe     uintptr

	// Actions. C: drift_call_action, drift_drop_action.
	CallAction uintptr
	DropAction uintptr

	// Contexts. C: drift_new_context, drift_clone_context,
	// drift_describe_context, drift_drop_context.
	NewContext      uintptr
	CloneContext    uintptr
	DescribeContext uintptr
	DropContext     uintptr

	// Animation hints. C: drift_animation_new, drift_drop_animation.
	AnimationNew  uintptr
	DropAnimation uintptr

	// Strings. C: drift_string_len, drift_string_copy, drift_drop_string.
	StringLen  uintptr
	StringCopy uintptr
	DropString uintptr
}

var (
	vtableOnce sync.Once
	vtable     *VTable
)

// Exports returns the process-wide export table. The table and its
// callbacks are created once and never released.
func Exports() *VTable {
	vtableOnce.Do(func() {
		vtable = newVTable()
	})
	return vtable
}

// callbackInvoker lets tests observe raw-pointer callback dispatch without
// a real C host. Production always goes through purego.
var callbackInvoker = func(cb uintptr, args ...uintptr) {
	purego.SyscallN(cb, args...)
}

// invokeWatcher calls a host watcher function pointer.
func invokeWatcher(cb uintptr, value uintptr, metadata Handle, user uintptr) {
	callbackInvoker(cb, value, uintptr(metadata), user)
}

// connectPtr adapts a raw host callback pointer into a Go watcher func.
func connectPtr(op string, cb, user uintptr) func(value uintptr, metadata Handle) {
	if cb == 0 {
		errors.Report(&errors.BridgeError{
			Op:   op,
			Kind: errors.KindCallback,
			Err:  fmt.Errorf("nil callback pointer"),
		})
		return nil
	}
	return func(value uintptr, metadata Handle) {
		invokeWatcher(cb, value, metadata, user)
	}
}

// goString copies n bytes at ptr into a Go string.
func goString(ptr, n uintptr) string {
	if ptr == 0 || n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
}

// copyOut copies src into the host buffer (buf, cap) and returns the number
// of bytes the full payload needs. A zero buf queries the needed size.
func copyOut(src []byte, buf, bufCap uintptr) uintptr {
	if buf != 0 && bufCap != 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(buf)), bufCap), src)
	}
	return uintptr(len(src))
}

func newVTable() *VTable {
	return &VTable{
		AnyViewID: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(AnyViewID(Handle(h)))
		}),
		ForceAsButton: purego.NewCallback(func(h, out uintptr) uintptr {
			r, ok := ForceAsButton(Handle(h))
			if !ok || out == 0 {
				return 0
			}
			*(*ButtonRepr)(unsafe.Pointer(out)) = r
			return 1
		}),
		ForceAsToggle: purego.NewCallback(func(h, out uintptr) uintptr {
			r, ok := ForceAsToggle(Handle(h))
			if !ok || out == 0 {
				return 0
			}
			*(*ToggleRepr)(unsafe.Pointer(out)) = r
			return 1
		}),
		ForceAsText: purego.NewCallback(func(h, out uintptr) uintptr {
			r, ok := ForceAsText(Handle(h))
			if !ok || out == 0 {
				return 0
			}
			*(*TextRepr)(unsafe.Pointer(out)) = r
			return 1
		}),
		ForceAsVStack: purego.NewCallback(func(h, out uintptr) uintptr {
			r, ok := ForceAsVStack(Handle(h))
			if !ok || out == 0 {
				return 0
			}
			*(*VStackRepr)(unsafe.Pointer(out)) = r
			return 1
		}),
		DescribeView: purego.NewCallback(func(h, buf, bufCap uintptr) uintptr {
			data, err := DescribeView(Handle(h))
			if err != nil {
				return 0
			}
			return copyOut(data, buf, bufCap)
		}),
		DropAnyView: purego.NewCallback(func(h uintptr) uintptr {
			DropAnyView(Handle(h))
			return 0
		}),

		ViewListLen: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(ViewListLen(Handle(h)))
		}),
		ViewListGet: purego.NewCallback(func(h, i uintptr) uintptr {
			return uintptr(ViewListGet(Handle(h), int(i)))
		}),

		BindingBoolGet: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(LowerBool(BindingBoolValue(Handle(h))))
		}),
		BindingBoolSet: purego.NewCallback(func(h, v uintptr) uintptr {
			BindingBoolSet(Handle(h), v != 0)
			return 0
		}),
		BindingInt64Get: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(BindingInt64Value(Handle(h)))
		}),
		BindingInt64Set: purego.NewCallback(func(h, v uintptr) uintptr {
			BindingInt64Set(Handle(h), int64(v))
			return 0
		}),
		BindingInt64SetAnimated: purego.NewCallback(func(h, v, anim uintptr) uintptr {
			BindingInt64SetAnimated(Handle(h), int64(v), Handle(anim))
			return 0
		}),
		BindingFloat64Get: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(math.Float64bits(BindingFloat64Value(Handle(h))))
		}),
		BindingFloat64Set: purego.NewCallback(func(h, bits uintptr) uintptr {
			BindingFloat64Set(Handle(h), math.Float64frombits(uint64(bits)))
			return 0
		}),
		BindingStringGet: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(BindingStringValue(Handle(h)))
		}),
		BindingStringSet: purego.NewCallback(func(h, ptr, n uintptr) uintptr {
			BindingStringSet(Handle(h), goString(ptr, n))
			return 0
		}),
		DropBinding: purego.NewCallback(func(h uintptr) uintptr {
			DropBinding(Handle(h))
			return 0
		}),

		ComputedInt64Get: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(ComputedInt64Value(Handle(h)))
		}),
		ComputedStringGet: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(ComputedStringValue(Handle(h)))
		}),
		DropComputed: purego.NewCallback(func(h uintptr) uintptr {
			DropComputed(Handle(h))
			return 0
		}),

		ConnectBindingBool: purego.NewCallback(func(h, cb, user uintptr) uintptr {
			fn := connectPtr("bridge.ConnectBindingBool", cb, user)
			if fn == nil {
				return 0
			}
			return uintptr(ConnectBindingBool(Handle(h), func(v bool, mh Handle) {
				fn(uintptr(LowerBool(v)), mh)
			}))
		}),
		ConnectBindingInt64: purego.NewCallback(func(h, cb, user uintptr) uintptr {
			fn := connectPtr("bridge.ConnectBindingInt64", cb, user)
			if fn == nil {
				return 0
			}
			return uintptr(ConnectBindingInt64(Handle(h), func(v int64, mh Handle) {
				fn(uintptr(v), mh)
			}))
		}),
		ConnectBindingString: purego.NewCallback(func(h, cb, user uintptr) uintptr {
			fn := connectPtr("bridge.ConnectBindingString", cb, user)
			if fn == nil {
				return 0
			}
			return uintptr(ConnectBindingString(Handle(h), func(v Handle, mh Handle) {
				fn(uintptr(v), mh)
			}))
		}),
		ConnectComputedInt64: purego.NewCallback(func(h, cb, user uintptr) uintptr {
			fn := connectPtr("bridge.ConnectComputedInt64", cb, user)
			if fn == nil {
				return 0
			}
			return uintptr(ConnectComputedInt64(Handle(h), func(v int64, mh Handle) {
				fn(uintptr(v), mh)
			}))
		}),
		ConnectDynamic: purego.NewCallback(func(h, cb, user uintptr) uintptr {
			fn := connectPtr("bridge.ConnectDynamic", cb, user)
			if fn == nil {
				return 0
			}
			return uintptr(ConnectDynamic(Handle(h), func(subtree Handle, mh Handle) {
				fn(uintptr(subtree), mh)
			}))
		}),
		DropSubscription: purego.NewCallback(func(h uintptr) uintptr {
			DropSubscription(Handle(h))
			return 0
		}),
		MetadataDescribe: purego.NewCallback(func(mh, buf, bufCap uintptr) uintptr {
			data, err := DescribeMetadata(Handle(mh))
			if err != nil {
				return 0
			}
			return copyOut(data, buf, bufCap)
		}),

		CallAction: purego.NewCallback(func(action, context uintptr) uintptr {
			CallAction(Handle(action), Handle(context))
			return 0
		}),
		DropAction: purego.NewCallback(func(h uintptr) uintptr {
			DropAction(Handle(h))
			return 0
		}),

		NewContext: purego.NewCallback(func() uintptr {
			return uintptr(NewContext(nil))
		}),
		CloneContext: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(CloneContext(Handle(h)))
		}),
		DescribeContext: purego.NewCallback(func(h, buf, bufCap uintptr) uintptr {
			data, err := DescribeContext(Handle(h))
			if err != nil {
				return 0
			}
			return copyOut(data, buf, bufCap)
		}),
		DropContext: purego.NewCallback(func(h uintptr) uintptr {
			DropContext(Handle(h))
			return 0
		}),

		AnimationNew: purego.NewCallback(func(curve, durationMs, delayMs uintptr) uintptr {
			a := &animation.Animation{
				Curve:    curveFromCode(uint32(curve)),
				Duration: time.Duration(durationMs) * time.Millisecond,
				Delay:    time.Duration(delayMs) * time.Millisecond,
			}
			return uintptr(NewAnimation(a))
		}),
		DropAnimation: purego.NewCallback(func(h uintptr) uintptr {
			DropAnimation(Handle(h))
			return 0
		}),

		StringLen: purego.NewCallback(func(h uintptr) uintptr {
			return uintptr(StringLen(Handle(h)))
		}),
		StringCopy: purego.NewCallback(func(h, buf, bufCap uintptr) uintptr {
			if buf == 0 || bufCap == 0 {
				return 0
			}
			return uintptr(CopyString(Handle(h), unsafe.Slice((*byte)(unsafe.Pointer(buf)), bufCap)))
		}),
		DropString: purego.NewCallback(func(h uintptr) uintptr {
			DropString(Handle(h))
			return 0
		}),
	}
}

// curveFromCode maps the ABI curve code to its native curve name.
// Codes are part of the stable ABI; never reorder them.
func curveFromCode(code uint32) animation.Curve {
	switch code {
	case 1:
		return animation.CurveLinear
	case 2:
		return animation.CurveEaseIn
	case 3:
		return animation.CurveEaseOut
	case 4:
		return animation.CurveEaseInOut
	case 5:
		return animation.CurveSpring
	default:
		return animation.CurveDefault
	}
}
