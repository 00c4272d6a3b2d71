package reactive

// Computed is a read-only value derived from one or more reactive sources.
// It recomputes when any source changes and notifies its own watchers only
// when the computed result actually changes (per its equality function).
//
// A Computed holds live subscriptions on its sources; call Dispose when the
// derived value is no longer needed, otherwise the sources keep it
// reachable and keep invoking its computation.
type Computed[T any] struct {
	compute  func() T
	equals   func(a, b T) bool
	value    T
	watchers []*watcher[T]
	cancels  []func()
	disposed bool
}

// NewComputed creates a derived value over the given sources using ==
// equality suppression. The computation runs once immediately to establish
// the initial value, then once per source change.
func NewComputed[T comparable](compute func() T, sources ...Watchable) *Computed[T] {
	return NewComputedWithEquality(compute, func(a, b T) bool { return a == b }, sources...)
}

// NewComputedWithEquality is NewComputed with a custom equality function.
// A nil equals disables suppression.
func NewComputedWithEquality[T any](compute func() T, equals func(a, b T) bool, sources ...Watchable) *Computed[T] {
	c := &Computed[T]{
		compute: compute,
		equals:  equals,
		value:   compute(),
	}
	for _, src := range sources {
		c.cancels = append(c.cancels, src.Watch(c.sourceChanged))
	}
	return c
}

// sourceChanged recomputes and propagates the triggering change's metadata
// to downstream watchers when the result differs.
func (c *Computed[T]) sourceChanged(meta Metadata) {
	if c.disposed {
		return
	}
	v := c.compute()
	if c.equals != nil && c.equals(c.value, v) {
		return
	}
	c.value = v
	notify(c.watchers, c.value, meta)
}

// Value returns the current derived value.
func (c *Computed[T]) Value() T {
	return c.value
}

// AddWatcher registers fn to run when the derived value changes.
func (c *Computed[T]) AddWatcher(fn func(T, Metadata)) (cancel func()) {
	return addWatcher(&c.watchers, fn)
}

// AddListener registers a value-only listener.
func (c *Computed[T]) AddListener(fn func(T)) (cancel func()) {
	return c.AddWatcher(func(v T, _ Metadata) { fn(v) })
}

// Watch implements Watchable.
func (c *Computed[T]) Watch(fn func(Metadata)) (cancel func()) {
	return c.AddWatcher(func(_ T, meta Metadata) { fn(meta) })
}

// Dispose severs the source subscriptions and drops all watchers. The last
// computed value remains readable; further source changes are ignored.
func (c *Computed[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
	c.watchers = nil
}
