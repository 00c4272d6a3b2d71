// Package reactive provides the value cells and derived values that drive
// view updates: Binding (two-way mutable state) and Computed (read-only
// derived state), plus the watcher registration both expose.
//
// Cells are NOT thread-safe. The framework runs a single cooperative UI
// thread and notifications fire synchronously on the thread that performs
// the mutation, before Set returns. A watcher that mutates its own source
// re-enters notification on the same call stack; the package does not
// coalesce or deduplicate.
//
// Equality suppression is part of the contract: a cell only notifies when
// its equality function reports the value actually changed. Cells built
// with NewBinding use ==; NewBindingWithEquality accepts a custom function,
// and a nil function disables suppression entirely.
package reactive

// watcher is a single registered change subscriber.
type watcher[T any] struct {
	fn      func(T, Metadata)
	removed bool
}

// Binding is a mutable reactive value cell. Reads see the current value;
// writes notify registered watchers in registration order.
type Binding[T any] struct {
	value    T
	equals   func(a, b T) bool
	watchers []*watcher[T]
}

// NewBinding creates a binding with == equality suppression.
func NewBinding[T comparable](initial T) *Binding[T] {
	return &Binding[T]{
		value:  initial,
		equals: func(a, b T) bool { return a == b },
	}
}

// NewBindingWithEquality creates a binding with a custom equality function.
// A nil equals disables suppression: every Set notifies.
func NewBindingWithEquality[T any](initial T, equals func(a, b T) bool) *Binding[T] {
	return &Binding[T]{value: initial, equals: equals}
}

// Value returns the current value.
func (b *Binding[T]) Value() T {
	return b.value
}

// Set updates the value and notifies watchers, with no animation hint.
// Suppressed if the equality function reports no change.
func (b *Binding[T]) Set(v T) {
	b.set(v, Metadata{})
}

// SetAnimated updates the value and notifies watchers with the given
// animation hint attached to the change.
func (b *Binding[T]) SetAnimated(v T, meta Metadata) {
	b.set(v, meta)
}

func (b *Binding[T]) set(v T, meta Metadata) {
	if b.equals != nil && b.equals(b.value, v) {
		return
	}
	b.value = v
	notify(b.watchers, b.value, meta)
}

// AddWatcher registers fn to run on every effective change, receiving the
// new value and the change metadata. The returned cancel function removes
// the registration; it is safe to call during a notification.
func (b *Binding[T]) AddWatcher(fn func(T, Metadata)) (cancel func()) {
	return addWatcher(&b.watchers, fn)
}

// AddListener registers a value-only listener. Shorthand for watchers that
// ignore change metadata.
func (b *Binding[T]) AddListener(fn func(T)) (cancel func()) {
	return b.AddWatcher(func(v T, _ Metadata) { fn(v) })
}

// Watch implements Watchable.
func (b *Binding[T]) Watch(fn func(Metadata)) (cancel func()) {
	return b.AddWatcher(func(_ T, meta Metadata) { fn(meta) })
}

// addWatcher appends a watcher entry and returns its cancel function.
func addWatcher[T any](list *[]*watcher[T], fn func(T, Metadata)) func() {
	w := &watcher[T]{fn: fn}
	*list = append(*list, w)
	return func() {
		if w.removed {
			return
		}
		w.removed = true
		for i, cur := range *list {
			if cur == w {
				*list = append((*list)[:i], (*list)[i+1:]...)
				break
			}
		}
	}
}

// notify invokes every live watcher with the new value. It iterates a
// snapshot so watchers may register or cancel subscriptions mid-dispatch;
// entries cancelled mid-dispatch are skipped.
func notify[T any](watchers []*watcher[T], v T, meta Metadata) {
	snapshot := make([]*watcher[T], len(watchers))
	copy(snapshot, watchers)
	for _, w := range snapshot {
		if w.removed {
			continue
		}
		w.fn(v, meta)
	}
}
