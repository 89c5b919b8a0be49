package positions

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

// ArrayList returns the bounds of a gods array list.
// The elements of the list must be of type T.
func ArrayList[T any](l *arraylist.List) (first, last ArrayListPosition[T]) {
	return godsBounds[T, arraylist.Iterator](l, l.Iterator(), l.Size())
}

// SinglyLinkedList returns the bounds of a gods singly linked list.
// The elements of the list must be of type T.
func SinglyLinkedList[T any](l *singlylinkedlist.List) (first, last SinglyLinkedListPosition[T]) {
	return godsBounds[T, singlylinkedlist.Iterator](l, l.Iterator(), l.Size())
}

// DoublyLinkedList returns the bounds of a gods doubly linked list.
// The elements of the list must be of type T.
func DoublyLinkedList[T any](l *doublylinkedlist.List) (first, last DoublyLinkedListPosition[T]) {
	return godsBounds[T, doublylinkedlist.Iterator](l, l.Iterator(), l.Size())
}

type (
	ArrayListPosition[T any]        = Container[T, arraylist.Iterator, *arraylist.Iterator]
	SinglyLinkedListPosition[T any] = Container[T, singlylinkedlist.Iterator, *singlylinkedlist.Iterator]
	DoublyLinkedListPosition[T any] = Container[T, doublylinkedlist.Iterator, *doublylinkedlist.Iterator]
)

// indexedIterator is the method set of a gods list iterator, held by value as I.
type indexedIterator[I any] interface {
	*I
	Next() bool
	Value() interface{}
}

// Container is a position over the value iterator of a gods container.
//
// gods iterators are stateful, but their state is a plain struct,
// so a copy of an iterator can be advanced without affecting the original.
// Container relies on this to provide forward traversal.
// Positions are equal when they belong to the same container and have the same index.
type Container[T any, I any, PI indexedIterator[I]] struct {
	filteriterator.ForwardTraversal

	container interface{}
	iter      I
	index     int
}

func godsBounds[T any, I any, PI indexedIterator[I]](container interface{}, it I, size int) (first, last Container[T, I, PI]) {
	PI(&it).Next()
	return Container[T, I, PI]{container: container, iter: it, index: 0},
		Container[T, I, PI]{container: container, index: size}
}

func (p Container[T, I, PI]) Next() Container[T, I, PI] {
	PI(&p.iter).Next()
	p.index++
	return p
}

func (p Container[T, I, PI]) Value() T {
	return PI(&p.iter).Value().(T)
}

func (p Container[T, I, PI]) Equal(oth Container[T, I, PI]) bool {
	return p.container == oth.container && p.index == oth.index
}
