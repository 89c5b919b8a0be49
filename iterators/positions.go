package iterators

import filteriterator "github.com/laplasian/filteriterator-tttask"

// FromPositions returns an Iterator over the [first, last) positions.
// Passing the Begin and End cursors of a filtered range iterates over its accepted elements.
//
// The iterator moves the underlying position only when Next is called,
// so a stateful predicate observes the same calls as with a manual cursor walk.
func FromPositions[P filteriterator.ForwardPosition[P, T], T any](first, last P) *PositionsIter[P, T] {
	return &PositionsIter[P, T]{current: first, last: last}
}

type PositionsIter[P filteriterator.ForwardPosition[P, T], T any] struct {
	current P
	last    P

	started bool
	closed  bool
	err     error
	value   T
}

func (i *PositionsIter[P, T]) Close() error {
	i.closed = true
	return nil
}

func (i *PositionsIter[P, T]) Err() error {
	return i.err
}

func (i *PositionsIter[P, T]) Next() bool {
	if i.closed {
		i.err = ErrClosed
		return false
	}
	if i.current.Equal(i.last) {
		return false
	}
	if i.started {
		i.current = i.current.Next()
		if i.current.Equal(i.last) {
			return false
		}
	}
	i.started = true
	i.value = i.current.Value()
	return true
}

func (i *PositionsIter[P, T]) Value() T {
	return i.value
}
