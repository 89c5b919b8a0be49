package filteriterator

// NewCursor returns a Cursor over [current, last) that only stops at elements accepted by the predicate.
// The returned Cursor is already positioned on the first accepted element,
// or on last when there is none.
func NewCursor[P ForwardPosition[P, T], T any](current, last P, predicate Predicate[T]) Cursor[P, T] {
	c := Cursor[P, T]{current: current, last: last, predicate: predicate}
	c.skip()
	return c
}

// Cursor is a position in a filtered view.
//
// Whenever the Cursor is not at the end of its range, the element under it satisfies the predicate.
// A Cursor does not own its predicate, it shares the predicate of the Range it was derived from.
// Copies of a Cursor move independently, but they all call the same predicate,
// thus advancing cursors from multiple goroutines is only safe with a predicate that is safe for concurrent use.
//
// Cursor satisfies ForwardPosition itself, so a filtered view can be the source of another filter.
type Cursor[P ForwardPosition[P, T], T any] struct {
	ForwardTraversal

	current   P
	last      P
	predicate Predicate[T]
}

// Value returns the element under the cursor.
// Calling Value on a terminal cursor panics with ErrTerminalCursor.
func (c Cursor[P, T]) Value() T {
	if c.Done() {
		panic(ErrTerminalCursor)
	}
	return c.current.Value()
}

// Advance moves the cursor to the next accepted element, or to the end of the range.
// On a terminal cursor Advance is a no-op.
func (c *Cursor[P, T]) Advance() {
	if c.Done() {
		return
	}
	c.current = c.current.Next()
	c.skip()
}

// PostAdvance advances the cursor and returns a copy of its state from before the move.
// The copy and the cursor still share the same predicate.
func (c *Cursor[P, T]) PostAdvance() Cursor[P, T] {
	snapshot := *c
	c.Advance()
	return snapshot
}

// Next returns an advanced copy of the cursor and leaves the receiver untouched.
func (c Cursor[P, T]) Next() Cursor[P, T] {
	c.Advance()
	return c
}

// Equal reports whether the two cursors are at the same source position.
//
// The predicate is not part of the comparison.
// Two cursors of different ranges over the same sequence compare equal when their positions do,
// the same way as the underlying positions would.
func (c Cursor[P, T]) Equal(oth Cursor[P, T]) bool {
	return c.current.Equal(oth.current)
}

// Done reports whether the cursor reached the end of its range.
func (c Cursor[P, T]) Done() bool {
	return c.current.Equal(c.last)
}

// Position returns the underlying source position of the cursor.
func (c Cursor[P, T]) Position() P {
	return c.current
}

// skip moves current forward until it reaches an accepted element or last.
func (c *Cursor[P, T]) skip() {
	for !c.current.Equal(c.last) && !c.predicate.Match(c.current.Value()) {
		c.current = c.current.Next()
	}
}
