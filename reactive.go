// Package reactive.go implements watched widget attributes. A reactive
// stores a value plus the pipeline stages a write invalidates; watchers run
// synchronously on the executor after the value changes.

package schirmwerk

// ReactiveFlags declares the impact a reactive write has on the pipeline.
type ReactiveFlags uint8

const (
	InvalidatesStyle ReactiveFlags = 1 << iota
	InvalidatesLayout
	Repaints
	BindingsChanged
	Recomposes
)

// Reactive is a watched attribute of a widget. Writes through Set run the
// watchers and mark the owning widget dirty according to the declared
// flags. The zero Reactive is usable but detached; NewReactive attaches
// one to its owner.
type Reactive[T comparable] struct {
	value    T
	owner    Widget
	flags    ReactiveFlags
	watchers []func(old, new T)
}

// NewReactive creates a reactive attribute owned by the given widget.
func NewReactive[T comparable](owner Widget, initial T, flags ReactiveFlags) Reactive[T] {
	return Reactive[T]{value: initial, owner: owner, flags: flags}
}

// Get returns the current value.
func (r *Reactive[T]) Get() T {
	return r.value
}

// Set stores a new value. If the value changed, the watchers run and the
// owner is invalidated per the reactive's flags.
func (r *Reactive[T]) Set(value T) {
	if r.value == value {
		return
	}
	old := r.value
	r.value = value
	for _, watcher := range r.watchers {
		watcher(old, value)
	}
	r.invalidateOwner()
}

// SetNoWatch stores a value without running watchers or invalidating.
func (r *Reactive[T]) SetNoWatch(value T) {
	r.value = value
}

// Watch registers a callback that runs after every value change.
func (r *Reactive[T]) Watch(fn func(old, new T)) {
	r.watchers = append(r.watchers, fn)
}

// DetachWatchers drops all watchers; called when the owner unmounts so
// callbacks cannot outlive their widget.
func (r *Reactive[T]) DetachWatchers() {
	r.watchers = nil
}

func (r *Reactive[T]) invalidateOwner() {
	if r.owner == nil {
		return
	}
	var flags dirtyFlags
	if r.flags&InvalidatesStyle != 0 {
		flags |= dirtyStyle
	}
	if r.flags&InvalidatesLayout != 0 {
		flags |= dirtyLayout
	}
	if r.flags&Repaints != 0 {
		flags |= dirtyPaint
	}
	if r.flags&BindingsChanged != 0 {
		flags |= dirtyBindings
	}
	if r.flags&Recomposes != 0 {
		flags |= dirtyCompose
	}
	if flags != 0 {
		r.owner.Base().Invalidate(flags)
	}
}
