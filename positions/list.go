package positions

import filteriterator "github.com/laplasian/filteriterator-tttask"

// List is an append-only singly linked list.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *listNode[T]
	tail   *listNode[T]
	length int
}

type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// NewList returns a List holding vs in order.
func NewList[T any](vs ...T) *List[T] {
	l := &List[T]{}
	l.Append(vs...)
	return l
}

// Append adds elements to the end of the list.
// Positions taken before the call stay valid,
// but an End taken earlier no longer marks the end of the list.
func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		n := &listNode[T]{value: v}
		if l.tail == nil {
			l.head = n
		} else {
			l.tail.next = n
		}
		l.tail = n
		l.length++
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Begin returns the position of the first element.
func (l *List[T]) Begin() ListPosition[T] {
	return ListPosition[T]{list: l, node: l.head}
}

// End returns the position after the last element.
func (l *List[T]) End() ListPosition[T] {
	return ListPosition[T]{list: l}
}

// ListPosition is a position in a List.
// Positions are equal when they belong to the same List and point to the same node.
type ListPosition[T any] struct {
	filteriterator.ForwardTraversal

	list *List[T]
	node *listNode[T]
}

func (p ListPosition[T]) Next() ListPosition[T] {
	p.node = p.node.next
	return p
}

func (p ListPosition[T]) Value() T {
	return p.node.value
}

func (p ListPosition[T]) Equal(oth ListPosition[T]) bool {
	return p.list == oth.list && p.node == oth.node
}
