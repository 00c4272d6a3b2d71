package views

import "github.com/go-drift/bridge/pkg/reactive"

// VStack lays out its children vertically.
type VStack struct {
	// Children are the contained views, top to bottom.
	Children []View
	// Spacing is the gap between adjacent children, in points.
	Spacing float64
}

func (VStack) Kind() Kind { return KindVStack }

// VStackOf creates a vertical stack with the given children and no spacing.
func VStackOf(children ...View) VStack {
	return VStack{Children: children}
}

// Spacer is flexible empty space inside a stack.
type Spacer struct{}

func (Spacer) Kind() Kind { return KindSpacer }

// Dynamic is a subtree rebuilt from a reactive source. Whenever Source
// reports a change, Build produces the replacement subtree.
type Dynamic struct {
	// Source drives the rebuilds.
	Source reactive.Watchable
	// Build returns the current subtree. Called once per source change
	// plus whenever the current subtree is first needed.
	Build func() View
}

func (Dynamic) Kind() Kind { return KindDynamic }
