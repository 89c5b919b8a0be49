// Package positions provides ForwardPosition implementations for common sequence types,
// so they can be used as the source of a filteriterator.Range.
//
// Every constructor returns the first and the last (one past the end) position of the sequence.
// A sequence must not be modified while positions derived from it are in use.
package positions

import (
	"unsafe"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

// SliceBounds returns the first and the one past the end position of a slice.
// Fixed size arrays can be used through slicing them: SliceBounds(arr[:]).
func SliceBounds[T any](vs []T) (first, last Slice[T]) {
	return Slice[T]{values: vs, index: 0}, Slice[T]{values: vs, index: len(vs)}
}

// Slice is a position in a slice.
// Positions are equal when they share the backing array and have the same index.
type Slice[T any] struct {
	filteriterator.ForwardTraversal

	values []T
	index  int
}

func (p Slice[T]) Next() Slice[T] {
	p.index++
	return p
}

func (p Slice[T]) Value() T {
	return p.values[p.index]
}

func (p Slice[T]) Equal(oth Slice[T]) bool {
	return p.index == oth.index && unsafe.SliceData(p.values) == unsafe.SliceData(oth.values)
}

// Index returns the offset of the position in the slice.
func (p Slice[T]) Index() int {
	return p.index
}
