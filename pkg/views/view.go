// Package views defines the concrete view configurations that cross the
// embedding bridge.
//
// Views here are pure data bearers: immutable descriptions of a node in the
// view tree (a button's label and action, a toggle's binding, a stack's
// children). Rendering, layout, and styling belong to the host's renderer;
// nothing in this package draws.
//
// Every view carries a stable Kind tag. The bridge's type-erased carrier
// captures the tag at wrap time and uses it to answer identity queries and
// to check forced downcasts.
package views

// Kind identifies the concrete type of a view.
// Kind values are part of the stable embedding ABI; never reorder them.
type Kind uint32

const (
	// KindInvalid is the reserved zero tag. No constructed view carries it.
	KindInvalid Kind = iota
	// KindButton is a tappable button with a label and an action.
	KindButton
	// KindToggle is an on/off switch bound to a bool cell.
	KindToggle
	// KindText is a static text run.
	KindText
	// KindVStack is a vertical sequence of child views.
	KindVStack
	// KindSpacer is flexible empty space inside a stack.
	KindSpacer
	// KindDynamic is a subtree rebuilt from a reactive source.
	KindDynamic
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "Button"
	case KindToggle:
		return "Toggle"
	case KindText:
		return "Text"
	case KindVStack:
		return "VStack"
	case KindSpacer:
		return "Spacer"
	case KindDynamic:
		return "Dynamic"
	default:
		return "Invalid"
	}
}

// View is any displayable node in the view tree.
type View interface {
	// Kind returns the concrete type tag. It is fixed per concrete type.
	Kind() Kind
}
