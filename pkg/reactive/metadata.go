package reactive

import "github.com/go-drift/bridge/pkg/animation"

// Metadata is the contextual information accompanying a single change
// notification. It is valid only for the duration of the watcher callback
// it is delivered to and must not be retained past it.
type Metadata struct {
	// Animation is the suggested transition for this change, or nil.
	Animation *animation.Animation
}

// Animated returns metadata carrying the given animation hint.
func Animated(a *animation.Animation) Metadata {
	return Metadata{Animation: a}
}

// Watchable is any reactive source that can report untyped change events:
// a Binding, a Computed, or anything composed from them.
type Watchable interface {
	// Watch registers fn to run on every effective change of the source.
	// The returned cancel function severs the registration.
	Watch(fn func(Metadata)) (cancel func())
}
