package bridge

import (
	"fmt"

	"github.com/go-drift/bridge/pkg/errors"
	"github.com/go-drift/bridge/pkg/views"
)

// anyView is the type-erased carrier behind a view handle. The tag is
// captured once at wrap time and never changes; repr is the lowered
// fixed-layout form of the concrete config, built eagerly so every query
// observes the same nested handles.
type anyView struct {
	kind views.Kind
	view views.View
	repr any
}

// NewAnyView wraps a concrete view behind a type-erased view handle,
// transferring ownership of the view (and of its lowered fields) to the
// returned handle.
func NewAnyView(v views.View) Handle {
	checkThread("bridge.NewAnyView")
	if v == nil {
		errors.Report(&errors.BridgeError{
			Op:   "bridge.NewAnyView",
			Kind: errors.KindConvert,
			Err:  &errors.ConvertError{Type: "views.View", Direction: "lower", Err: fmt.Errorf("nil view")},
		})
		return 0
	}
	carrier := &anyView{kind: v.Kind(), view: v, repr: lowerViewRepr(v)}
	return newHandle(kindView, carrier)
}

// lowerViewRepr lowers a concrete view's fields into its repr struct.
// Kinds without foreign-readable fields (Spacer, Dynamic) have no repr.
func lowerViewRepr(v views.View) any {
	switch cv := v.(type) {
	case views.Button:
		r := ButtonRepr{
			Label:    LowerString(cv.Label),
			Disabled: LowerBool(cv.Disabled),
		}
		if cv.Action != nil {
			r.Action = newHandle(kindAction, cv.Action)
		}
		return r
	case views.Toggle:
		r := ToggleRepr{
			Label:    LowerString(cv.Label),
			Disabled: LowerBool(cv.Disabled),
		}
		if cv.IsOn != nil {
			r.IsOn = LowerBindingBool(cv.IsOn)
		}
		return r
	case views.Text:
		return TextRepr{Content: LowerString(cv.Content)}
	case views.VStack:
		children := make([]Handle, 0, len(cv.Children))
		for _, child := range cv.Children {
			children = append(children, NewAnyView(child))
		}
		return VStackRepr{
			Children: newHandle(kindViewList, children),
			Spacing:  cv.Spacing,
		}
	default:
		return nil
	}
}

// AnyViewID returns the concrete type tag of a view handle. Total: every
// live view handle has a tag.
func AnyViewID(h Handle) views.Kind {
	v, ok := lookup("bridge.AnyViewID", h, kindView)
	if !ok {
		return views.KindInvalid
	}
	return v.(*anyView).kind
}

// ForceAsButton narrows a view handle to its Button representation. A
// non-button view yields the zero repr and false; the handle is unaffected
// either way.
func ForceAsButton(h Handle) (ButtonRepr, bool) {
	v, ok := lookup("bridge.ForceAsButton", h, kindView)
	if !ok {
		return ButtonRepr{}, false
	}
	carrier := v.(*anyView)
	if carrier.kind != views.KindButton {
		return ButtonRepr{}, false
	}
	return carrier.repr.(ButtonRepr), true
}

// ForceAsToggle narrows a view handle to its Toggle representation.
func ForceAsToggle(h Handle) (ToggleRepr, bool) {
	v, ok := lookup("bridge.ForceAsToggle", h, kindView)
	if !ok {
		return ToggleRepr{}, false
	}
	carrier := v.(*anyView)
	if carrier.kind != views.KindToggle {
		return ToggleRepr{}, false
	}
	return carrier.repr.(ToggleRepr), true
}

// ForceAsText narrows a view handle to its Text representation.
func ForceAsText(h Handle) (TextRepr, bool) {
	v, ok := lookup("bridge.ForceAsText", h, kindView)
	if !ok {
		return TextRepr{}, false
	}
	carrier := v.(*anyView)
	if carrier.kind != views.KindText {
		return TextRepr{}, false
	}
	return carrier.repr.(TextRepr), true
}

// ForceAsVStack narrows a view handle to its VStack representation.
func ForceAsVStack(h Handle) (VStackRepr, bool) {
	v, ok := lookup("bridge.ForceAsVStack", h, kindView)
	if !ok {
		return VStackRepr{}, false
	}
	carrier := v.(*anyView)
	if carrier.kind != views.KindVStack {
		return VStackRepr{}, false
	}
	return carrier.repr.(VStackRepr), true
}

// DropAnyView destroys a view handle, releasing its lowered fields per the
// concrete kind: nested strings, actions, bindings, and child views go with
// it.
func DropAnyView(h Handle) {
	checkThread("bridge.DropAnyView")
	v, ok := release("bridge.DropAnyView", h, kindView)
	if !ok {
		return
	}
	dropViewRepr("bridge.DropAnyView", v.(*anyView).repr)
}

// LiftView transfers the wrapped view back to native code, consuming the
// handle and every nested handle minted when it was wrapped.
func LiftView(h Handle) views.View {
	checkThread("bridge.LiftView")
	v, ok := release("bridge.LiftView", h, kindView)
	if !ok {
		return nil
	}
	carrier := v.(*anyView)
	dropViewRepr("bridge.LiftView", carrier.repr)
	return carrier.view
}

// dropViewRepr releases the handles a repr owns on behalf of op.
func dropViewRepr(op string, repr any) {
	switch r := repr.(type) {
	case ButtonRepr:
		DropString(r.Label)
		if r.Action != 0 {
			DropAction(r.Action)
		}
	case ToggleRepr:
		DropString(r.Label)
		if r.IsOn != 0 {
			DropBinding(r.IsOn)
		}
	case TextRepr:
		DropString(r.Content)
	case VStackRepr:
		if children, ok := release(op, r.Children, kindViewList); ok {
			for _, child := range children.([]Handle) {
				DropAnyView(child)
			}
		}
	}
}

// ViewListLen returns the number of views in a view list handle.
func ViewListLen(h Handle) int {
	v, ok := lookup("bridge.ViewListLen", h, kindViewList)
	if !ok {
		return 0
	}
	return len(v.([]Handle))
}

// ViewListGet returns the i-th view handle in the list, borrowed: the list
// keeps ownership. Out-of-range indices yield the null sentinel.
func ViewListGet(h Handle, i int) Handle {
	v, ok := lookup("bridge.ViewListGet", h, kindViewList)
	if !ok {
		return 0
	}
	children := v.([]Handle)
	if i < 0 || i >= len(children) {
		return 0
	}
	return children[i]
}
