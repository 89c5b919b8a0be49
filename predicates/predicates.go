// Package predicates is a collection of reusable filteriterator.Predicate implementations.
package predicates

import (
	"golang.org/x/exp/constraints"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

type Predicate[T any] = filteriterator.Predicate[T]

type PredicateFunc[T any] = filteriterator.PredicateFunc[T]

// Counter wraps a Predicate and counts how many times it was called.
// Counter is not safe for concurrent use.
type Counter[T any] struct {
	Predicate Predicate[T]

	calls int
}

func (c *Counter[T]) Match(v T) bool {
	c.calls++
	return c.Predicate.Match(v)
}

// Count returns the number of Match calls so far.
func (c *Counter[T]) Count() int {
	return c.calls
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return !p.Match(v) })
}

// And accepts a value when every predicate accepts it.
// It stops at the first rejection, and accepts everything when ps is empty.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(v T) bool {
		for _, p := range ps {
			if !p.Match(v) {
				return false
			}
		}
		return true
	})
}

// Or accepts a value when any of the predicates accepts it.
// It stops at the first acceptance, and rejects everything when ps is empty.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(v T) bool {
		for _, p := range ps {
			if p.Match(v) {
				return true
			}
		}
		return false
	})
}

func Equal[T comparable](exp T) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return v == exp })
}

func GreaterThan[T constraints.Ordered](n T) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return v > n })
}

func LessThan[T constraints.Ordered](n T) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return v < n })
}

// Between accepts values from the closed [min, max] interval.
func Between[T constraints.Ordered](min, max T) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return min <= v && v <= max })
}

// DivisibleBy accepts multiples of n.
// A zero n rejects every value.
func DivisibleBy[T constraints.Integer](n T) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return n != 0 && v%n == 0 })
}

func Even[T constraints.Integer]() Predicate[T] {
	return DivisibleBy[T](2)
}

func Odd[T constraints.Integer]() Predicate[T] {
	return Not(Even[T]())
}
