package positionscontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

// Forward is the contract of a ForwardPosition implementation.
// Every position type that is meant to be the source of a filtered range should pass it.
type Forward[P filteriterator.ForwardPosition[P, T], T any] struct {
	// Make builds a sequence that holds values in order, and returns its first and last position.
	Make func(tb testing.TB, values []T) (first, last P)
	// MakeValue returns an element for the sequence.
	MakeValue func(tb testing.TB) T
}

func (c Forward[P, T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Forward[P, T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

type bounds[P any] struct {
	First, Last P
}

func (c Forward[P, T]) Spec(s *testcase.Spec) {
	var (
		values = testcase.Let(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(1, 7), func() T {
				return c.MakeValue(t)
			})
		})
		subject = testcase.Let(s, func(t *testcase.T) bounds[P] {
			first, last := c.Make(t, values.Get(t))
			return bounds[P]{First: first, Last: last}
		})
	)

	s.Test("walking from first to last yields the values in order", func(t *testcase.T) {
		b := subject.Get(t)
		var got []T
		for p := b.First; !p.Equal(b.Last); p = p.Next() {
			got = append(got, p.Value())
		}
		assert.Must(t).Equal(values.Get(t), got)
	})

	s.Test("the distance between first and last is the number of values", func(t *testcase.T) {
		b := subject.Get(t)
		assert.Must(t).Equal(len(values.Get(t)), filteriterator.Distance[P, T](b.First, b.Last))
	})

	s.Test("Next leaves the receiver at its position", func(t *testcase.T) {
		b := subject.Get(t)
		p := b.First
		next := p.Next()
		assert.Must(t).True(p.Equal(b.First))
		assert.Must(t).False(p.Equal(next))
		assert.Must(t).Equal(values.Get(t)[0], p.Value())
	})

	s.Test("Equal is reflexive", func(t *testcase.T) {
		b := subject.Get(t)
		assert.Must(t).True(b.First.Equal(b.First))
		assert.Must(t).True(b.Last.Equal(b.Last))
		assert.Must(t).False(b.First.Equal(b.Last))
	})

	s.Test("a saved position can be traversed again", func(t *testcase.T) {
		b := subject.Get(t)
		saved := b.First.Next()
		first := filteriterator.Collect[P, T](saved, b.Last)
		second := filteriterator.Collect[P, T](saved, b.Last)
		assert.Must(t).Equal(append([]T(nil), values.Get(t)[1:]...), first)
		assert.Must(t).Equal(first, second)
	})

	s.Test("a copy advances independently from the original", func(t *testcase.T) {
		b := subject.Get(t)
		a, c := b.First, b.First
		for !c.Equal(b.Last) {
			c = c.Next()
		}
		assert.Must(t).True(a.Equal(b.First))
		assert.Must(t).True(c.Equal(b.Last))
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		values.LetValue(s, nil)

		s.Then("first and last are equal", func(t *testcase.T) {
			b := subject.Get(t)
			assert.Must(t).True(b.First.Equal(b.Last))
		})

		s.Then("a filtered range over it is empty", func(t *testcase.T) {
			b := subject.Get(t)
			r := filteriterator.Filter(b.First, b.Last, func(T) bool { return true })
			assert.Must(t).True(r.Begin().Equal(r.End()))
		})
	})

	s.Describe("as the source of a filtered range", func(s *testcase.Spec) {
		s.Then("accepting everything yields every value", func(t *testcase.T) {
			b := subject.Get(t)
			r := filteriterator.Filter(b.First, b.Last, func(T) bool { return true })
			assert.Equal(t, values.Get(t), filteriterator.Collect(r.Begin(), r.End()))
		})

		s.Then("rejecting everything yields nothing", func(t *testcase.T) {
			b := subject.Get(t)
			r := filteriterator.Filter(b.First, b.Last, func(T) bool { return false })
			assert.Must(t).True(r.Begin().Equal(r.End()))
		})

		s.Then("the predicate is called once per value during a traversal", func(t *testcase.T) {
			b := subject.Get(t)
			var calls int
			r := filteriterator.Filter(b.First, b.Last, func(T) bool {
				calls++
				return t.Random.Bool()
			})
			for c := r.Begin(); !c.Equal(r.End()); c.Advance() {
			}
			assert.Must(t).Equal(len(values.Get(t)), calls)
		})
	})
}
