package reactive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/bridge/pkg/animation"
)

func TestBinding(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewBinding(0)
		assert.Equal(t, 0, count.Value())

		count.Set(10)
		assert.Equal(t, 10, count.Value())
	})

	t.Run("notifies watchers in order", func(t *testing.T) {
		count := NewBinding(0)
		var order []string
		count.AddListener(func(int) { order = append(order, "first") })
		count.AddListener(func(int) { order = append(order, "second") })

		count.Set(1)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("suppresses equal writes", func(t *testing.T) {
		count := NewBinding(5)
		calls := 0
		count.AddListener(func(int) { calls++ })

		count.Set(5)
		assert.Equal(t, 0, calls)

		count.Set(6)
		count.Set(6)
		assert.Equal(t, 1, calls)
	})

	t.Run("custom equality", func(t *testing.T) {
		type user struct {
			ID   int
			Name string
		}
		u := NewBindingWithEquality(user{ID: 1, Name: "Alice"}, func(a, b user) bool {
			return a.ID == b.ID
		})
		var seen []string
		u.AddListener(func(v user) { seen = append(seen, v.Name) })

		u.Set(user{ID: 1, Name: "Alice Updated"})
		u.Set(user{ID: 2, Name: "Bob"})
		assert.Equal(t, []string{"Bob"}, seen)
	})

	t.Run("nil equality always notifies", func(t *testing.T) {
		b := NewBindingWithEquality(1, nil)
		calls := 0
		b.AddListener(func(int) { calls++ })

		b.Set(1)
		b.Set(1)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancel stops notifications", func(t *testing.T) {
		count := NewBinding(0)
		calls := 0
		cancel := count.AddListener(func(int) { calls++ })

		count.Set(1)
		cancel()
		cancel() // idempotent
		count.Set(2)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancel during dispatch skips pending watcher", func(t *testing.T) {
		count := NewBinding(0)
		var cancelSecond func()
		firstCalls, secondCalls := 0, 0
		count.AddListener(func(int) {
			firstCalls++
			cancelSecond()
		})
		cancelSecond = count.AddListener(func(int) { secondCalls++ })

		count.Set(1)
		assert.Equal(t, 1, firstCalls)
		assert.Equal(t, 0, secondCalls)
	})

	t.Run("reentrant set nests on the same stack", func(t *testing.T) {
		count := NewBinding(0)
		var seen []int
		count.AddListener(func(v int) {
			seen = append(seen, v)
			if v < 3 {
				count.Set(v + 1)
			}
		})

		count.Set(1)
		assert.Equal(t, []int{1, 2, 3}, seen)
		assert.Equal(t, 3, count.Value())
	})
}

func TestBindingMetadata(t *testing.T) {
	t.Run("plain set carries no animation", func(t *testing.T) {
		b := NewBinding(0)
		var got Metadata
		b.AddWatcher(func(_ int, meta Metadata) { got = meta })

		b.Set(1)
		assert.Nil(t, got.Animation)
	})

	t.Run("animated set carries the hint", func(t *testing.T) {
		b := NewBinding(0)
		var got Metadata
		b.AddWatcher(func(_ int, meta Metadata) { got = meta })

		hint := animation.EaseInOut(120 * time.Millisecond)
		b.SetAnimated(1, Animated(hint))
		assert.Same(t, hint, got.Animation)
	})
}

func TestComputed(t *testing.T) {
	t.Run("initial value", func(t *testing.T) {
		a := NewBinding(2)
		b := NewBinding(3)
		sum := NewComputed(func() int { return a.Value() + b.Value() }, a, b)
		assert.Equal(t, 5, sum.Value())
	})

	t.Run("recomputes on source change", func(t *testing.T) {
		a := NewBinding(2)
		double := NewComputed(func() int { return a.Value() * 2 }, a)
		var seen []int
		double.AddListener(func(v int) { seen = append(seen, v) })

		a.Set(5)
		a.Set(7)
		assert.Equal(t, []int{10, 14}, seen)
		assert.Equal(t, 14, double.Value())
	})

	t.Run("suppresses unchanged results", func(t *testing.T) {
		a := NewBinding(4)
		even := NewComputed(func() int { return a.Value() / 2 }, a)
		calls := 0
		even.AddListener(func(int) { calls++ })

		a.Set(5) // 5/2 == 4/2 == 2
		assert.Equal(t, 0, calls)

		a.Set(6)
		assert.Equal(t, 1, calls)
	})

	t.Run("propagates metadata from the triggering change", func(t *testing.T) {
		a := NewBinding(0)
		derived := NewComputed(func() int { return a.Value() + 1 }, a)
		var got Metadata
		derived.AddWatcher(func(_ int, meta Metadata) { got = meta })

		hint := animation.Spring(0.8)
		a.SetAnimated(1, Animated(hint))
		assert.Same(t, hint, got.Animation)
	})

	t.Run("dispose severs sources", func(t *testing.T) {
		a := NewBinding(1)
		derived := NewComputed(func() int { return a.Value() }, a)
		calls := 0
		derived.AddListener(func(int) { calls++ })

		derived.Dispose()
		a.Set(2)
		assert.Equal(t, 0, calls)
		assert.Equal(t, 1, derived.Value(), "last value remains readable")
	})

	t.Run("chains through computed sources", func(t *testing.T) {
		a := NewBinding(1)
		double := NewComputed(func() int { return a.Value() * 2 }, a)
		quad := NewComputed(func() int { return double.Value() * 2 }, double)

		a.Set(3)
		assert.Equal(t, 12, quad.Value())
	})
}
