// Package filteriterator provides a lazy filtering adapter over forward traversable sequences.
//
// # Summary
//
// A Range wraps the first and last position of an underlying sequence together with a Predicate,
// and exposes a view that yields, in the original order, only the elements the Predicate accepts.
// Nothing is copied and no intermediate sequence is materialised:
// a Cursor skips over the rejected elements while it is advanced.
//
//	values := []int{6, 9, 0, 1, 2, 3}
//	first, last := positions.SliceBounds(values)
//	r := filteriterator.Filter(first, last, func(n int) bool { return n > 2 })
//	for c := r.Begin(); !c.Equal(r.End()); c.Advance() {
//		fmt.Println(c.Value()) // 6, 9, 3
//	}
//
// # Positions
//
// The adapter works with any position type that satisfies ForwardPosition.
// A position can be dereferenced, compared and advanced,
// where advancing returns the following position as a new value and leaves the receiver intact.
// That makes every position a saved point of a multi-pass traversal.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.cppreference.com/w/cpp/iterator/forward_iterator
package filteriterator

// ForwardPosition is the constraint for the positions of a forward traversable sequence.
//
// A position type is admitted when it
//   - returns the logically next position from Next, without altering the receiver,
//   - yields the element at the position with Value,
//   - compares itself with another position of the same sequence using Equal,
//   - declares forward traversal by embedding ForwardTraversal.
//
// A type that fails any of these is rejected at compile time where the adapter is instantiated.
type ForwardPosition[P, T any] interface {
	// Next returns the position after the receiver.
	// Calling Next on the last position of a sequence is a precondition violation.
	Next() P
	// Value returns the element at the position.
	Value() T
	// Equal reports whether the two positions point to the same place in the sequence.
	Equal(oth P) bool

	forwardTraversal()
}

// ForwardTraversal is embedded by position types to declare that they support forward traversal.
// Forward traversal means a position can be copied and each copy can be advanced independently,
// so the same sequence can be walked more than once.
// A single-pass stream, which consumes its values while it is read, must not embed it.
type ForwardTraversal struct{}

func (ForwardTraversal) forwardTraversal() {}

// Predicate decides whether an element belongs to the filtered view.
//
// A Predicate may carry state, for example an invocation counter.
// Every cursor derived from a Range calls the same Predicate value,
// so a stateful Predicate should be a pointer or a closure for its state to be shared.
type Predicate[T any] interface {
	Match(v T) bool
}

// PredicateFunc enables to use anonymous functions as a Predicate.
type PredicateFunc[T any] func(v T) bool

// Match proxy the call to the wrapped function.
func (fn PredicateFunc[T]) Match(v T) bool {
	return fn(v)
}
