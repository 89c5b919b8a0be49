// Package iterators bridges positions and filtered ranges into pull style iterators,
// the kind that can hide a resource behind it and therefore has to be closed.
package iterators

import "io"

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation.
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[T any] interface {
	// Closer is required to make it able to cancel iterators where resource being used behind the scene.
	// When there is nothing to release, it should simply return nil.
	io.Closer
	// Next will ensure that Value returns the next item when it is executed.
	Next() bool
	// Err return the cause if for some reason Next returned false before the end of the elements.
	Err() error
	// Value returns the current value of the iteration.
	Value() T
}
