package bridge

import (
	"fmt"

	"github.com/go-drift/bridge/pkg/animation"
	"github.com/go-drift/bridge/pkg/errors"
	"github.com/go-drift/bridge/pkg/reactive"
	"github.com/go-drift/bridge/pkg/views"
)

// The watcher bridge adapts native change subscriptions to host callbacks.
//
// A connect call wraps the host callback in a native watcher and returns a
// subscription handle. The subscription is the owned resource: dropping it
// is the only way to stop notifications, and it must be dropped before the
// context it was registered under. On every effective change the bridge
// lowers the new value, mints a metadata handle, invokes the callback, and
// invalidates the metadata handle before returning to the mutator.

// subscription is the native adapter owning one registration.
type subscription struct {
	cancel func()
}

// withMetadata runs fn with a metadata handle scoped to the call. The
// handle is dead by the time withMetadata returns, whatever fn did.
func withMetadata(meta reactive.Metadata, fn func(mh Handle)) {
	mh := newHandle(kindMetadata, &meta)
	defer handles.Delete(mh)
	fn(mh)
}

// MetadataAnimation returns the animation hint carried by a live metadata
// handle, or nil for an unanimated change. The returned hint is borrowed;
// it must not be retained past the callback the handle was delivered to.
func MetadataAnimation(mh Handle) *animation.Animation {
	v, ok := lookup("bridge.MetadataAnimation", mh, kindMetadata)
	if !ok {
		return nil
	}
	return v.(*reactive.Metadata).Animation
}

// ConnectBindingBool subscribes fn to a bool binding handle.
func ConnectBindingBool(h Handle, fn func(value bool, metadata Handle)) Handle {
	checkThread("bridge.ConnectBindingBool")
	b := bindingOf[bool]("bridge.ConnectBindingBool", h)
	if b == nil || fn == nil {
		return 0
	}
	cancel := b.AddWatcher(func(v bool, meta reactive.Metadata) {
		withMetadata(meta, func(mh Handle) { fn(v, mh) })
	})
	return newHandle(kindSubscription, &subscription{cancel: cancel})
}

// ConnectBindingInt64 subscribes fn to an int64 binding handle.
func ConnectBindingInt64(h Handle, fn func(value int64, metadata Handle)) Handle {
	checkThread("bridge.ConnectBindingInt64")
	b := bindingOf[int64]("bridge.ConnectBindingInt64", h)
	if b == nil || fn == nil {
		return 0
	}
	cancel := b.AddWatcher(func(v int64, meta reactive.Metadata) {
		withMetadata(meta, func(mh Handle) { fn(v, mh) })
	})
	return newHandle(kindSubscription, &subscription{cancel: cancel})
}

// ConnectBindingString subscribes fn to a string binding handle. Each
// notification lowers the new value into a fresh string handle owned by the
// callback's receiver.
func ConnectBindingString(h Handle, fn func(value Handle, metadata Handle)) Handle {
	checkThread("bridge.ConnectBindingString")
	b := bindingOf[string]("bridge.ConnectBindingString", h)
	if b == nil || fn == nil {
		return 0
	}
	cancel := b.AddWatcher(func(v string, meta reactive.Metadata) {
		withMetadata(meta, func(mh Handle) { fn(LowerString(v), mh) })
	})
	return newHandle(kindSubscription, &subscription{cancel: cancel})
}

// ConnectComputedInt64 subscribes fn to a derived int64 handle.
func ConnectComputedInt64(h Handle, fn func(value int64, metadata Handle)) Handle {
	checkThread("bridge.ConnectComputedInt64")
	c := computedOf[int64]("bridge.ConnectComputedInt64", h)
	if c == nil || fn == nil {
		return 0
	}
	cancel := c.AddWatcher(func(v int64, meta reactive.Metadata) {
		withMetadata(meta, func(mh Handle) { fn(v, mh) })
	})
	return newHandle(kindSubscription, &subscription{cancel: cancel})
}

// ConnectDynamic subscribes fn to a Dynamic view handle. Each notification
// rebuilds the subtree and lowers it into a fresh view handle owned by the
// callback's receiver.
func ConnectDynamic(h Handle, fn func(subtree Handle, metadata Handle)) Handle {
	checkThread("bridge.ConnectDynamic")
	v, ok := lookup("bridge.ConnectDynamic", h, kindView)
	if !ok {
		return 0
	}
	carrier := v.(*anyView)
	if carrier.kind != views.KindDynamic {
		misuse("bridge.ConnectDynamic", h, kindView, carrier.kind.String()+" view")
		return 0
	}
	dyn := carrier.view.(views.Dynamic)
	if dyn.Source == nil || dyn.Build == nil || fn == nil {
		errors.Report(&errors.BridgeError{
			Op:   "bridge.ConnectDynamic",
			Kind: errors.KindCallback,
			Err:  fmt.Errorf("dynamic view has no source or build function"),
		})
		return 0
	}
	cancel := dyn.Source.Watch(func(meta reactive.Metadata) {
		subtree := NewAnyView(dyn.Build())
		withMetadata(meta, func(mh Handle) { fn(subtree, mh) })
	})
	return newHandle(kindSubscription, &subscription{cancel: cancel})
}

// DropSubscription destroys a subscription handle, severing the native
// registration. No notifications fire after this returns.
func DropSubscription(h Handle) {
	checkThread("bridge.DropSubscription")
	v, ok := release("bridge.DropSubscription", h, kindSubscription)
	if !ok {
		return
	}
	v.(*subscription).cancel()
}
