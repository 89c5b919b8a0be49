package filteriterator

import "iter"

// New returns a Range over [first, last) that yields the elements accepted by the predicate.
// The Range takes ownership of the predicate,
// and every Cursor derived from the Range will call this very predicate value.
func New[P ForwardPosition[P, T], T any](first, last P, predicate Predicate[T]) *Range[P, T] {
	return &Range[P, T]{first: first, last: last, predicate: predicate}
}

// Filter is New for plain predicate functions.
func Filter[P ForwardPosition[P, T], T any](first, last P, fn func(T) bool) *Range[P, T] {
	return New[P, T](first, last, PredicateFunc[T](fn))
}

// Range is a lazily filtered view over the [first, last) positions of a sequence.
//
// The Range doesn't remember previous traversals.
// Each call to Begin searches for the first accepted element again,
// so the side effects of a stateful predicate repeat with every traversal.
//
// Range is not safe for concurrent use when its predicate isn't.
type Range[P ForwardPosition[P, T], T any] struct {
	first     P
	last      P
	predicate Predicate[T]
}

// Begin returns a Cursor at the first accepted element of the range.
func (r *Range[P, T]) Begin() Cursor[P, T] {
	return NewCursor[P, T](r.first, r.last, r.predicate)
}

// End returns the terminal Cursor of the range.
// Creating it never calls the predicate.
func (r *Range[P, T]) End() Cursor[P, T] {
	return Cursor[P, T]{current: r.last, last: r.last, predicate: r.predicate}
}

// All returns an iterator over the accepted elements.
// Each iteration is a new traversal starting from Begin.
func (r *Range[P, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := r.Begin(), r.End(); !c.Equal(end); c.Advance() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}
