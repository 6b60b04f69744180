package fsm

import "time"

// TimeExceeds is true once the active state has lasted at least d
// The bound is inclusive: a 2s guard passes on the update that reaches exactly 2s
func (m *Machine[T]) TimeExceeds(d time.Duration) GuardFunc[T] {
	return func(T) bool {
		return m.timeInState >= d
	}
}

// Not inverts a guard
func Not[T any](g GuardFunc[T]) GuardFunc[T] {
	return func(ctx T) bool {
		return !g(ctx)
	}
}

// All combines guards with logical AND
func All[T any](gs ...GuardFunc[T]) GuardFunc[T] {
	return func(ctx T) bool {
		for _, g := range gs {
			if !g(ctx) {
				return false
			}
		}
		return true
	}
}
