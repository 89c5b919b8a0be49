package predicates_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	filteriterator "github.com/laplasian/filteriterator-tttask"
	"github.com/laplasian/filteriterator-tttask/positions"
	"github.com/laplasian/filteriterator-tttask/predicates"
)

func ExampleCounter() {
	values := []int{1, 2, 3, 4, 5, 6}
	counter := &predicates.Counter[int]{Predicate: predicates.GreaterThan(2)}

	first, last := positions.SliceBounds(values)
	r := filteriterator.New[positions.Slice[int], int](first, last, counter)
	fmt.Println(filteriterator.Collect(r.Begin(), r.End()), counter.Count())
	// Output: [3 4 5 6] 6
}

func matches[T any](p predicates.Predicate[T], vs ...T) []T {
	first, last := positions.SliceBounds(vs)
	r := filteriterator.New[positions.Slice[T], T](first, last, p)
	return filteriterator.Collect(r.Begin(), r.End())
}

func TestComparisons(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("GreaterThan", func(t *testcase.T) {
		assert.Must(t).Equal([]int{6, 9, 3}, matches(predicates.GreaterThan(2), 6, 9, 0, 1, 2, 3))
		assert.Must(t).Equal([]float64{6.1, 9.2, 3.5}, matches(predicates.GreaterThan(2.0), 6.1, 9.2, 0.3, 1.4, 2.0, 3.5))
	})

	s.Test("LessThan", func(t *testcase.T) {
		assert.Must(t).Equal([]int{0, 1}, matches(predicates.LessThan(2), 6, 9, 0, 1, 2, 3))
	})

	s.Test("Between includes both ends", func(t *testcase.T) {
		assert.Must(t).Equal([]int{2, 3, 4}, matches(predicates.Between(2, 4), 1, 2, 3, 4, 5))
	})

	s.Test("Equal", func(t *testcase.T) {
		assert.Must(t).Equal([]string{"b", "b"}, matches(predicates.Equal("b"), "a", "b", "c", "b"))
	})

	s.Test("DivisibleBy", func(t *testcase.T) {
		assert.Must(t).Equal([]int{10, 20}, matches(predicates.DivisibleBy(10), 10, 1, 2, 3, 20))
		assert.Must(t).Equal([]int{-4, 0, 8}, matches(predicates.DivisibleBy(4), -4, 0, 3, 8))
	})

	s.Test("DivisibleBy zero rejects everything", func(t *testcase.T) {
		assert.Must(t).Empty(matches(predicates.DivisibleBy(0), 0, 1, 2))
	})

	s.Test("Even and Odd", func(t *testcase.T) {
		assert.Must(t).Equal([]uint8{2, 4}, matches(predicates.Even[uint8](), 1, 2, 3, 4, 5))
		assert.Must(t).Equal([]int64{1, 3, 5}, matches(predicates.Odd[int64](), 1, 2, 3, 4, 5))
	})
}

func TestCombinators(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		even     = predicates.Even[int]()
		positive = predicates.GreaterThan(0)
	)

	s.Test("Not inverts the decision", func(t *testcase.T) {
		assert.Must(t).Equal([]int{-1, 1}, matches(predicates.Not(even), -2, -1, 0, 1, 2))
	})

	s.Test("And requires every predicate", func(t *testcase.T) {
		assert.Must(t).Equal([]int{2}, matches(predicates.And(even, positive), -2, -1, 0, 1, 2))
	})

	s.Test("Or requires any predicate", func(t *testcase.T) {
		assert.Must(t).Equal([]int{-2, 0, 1, 2}, matches(predicates.Or(even, positive), -2, -1, 0, 1, 2))
	})

	s.Test("empty And accepts and empty Or rejects", func(t *testcase.T) {
		assert.Must(t).True(predicates.And[int]().Match(t.Random.Int()))
		assert.Must(t).False(predicates.Or[int]().Match(t.Random.Int()))
	})

	s.Test("And stops at the first rejection", func(t *testcase.T) {
		counter := &predicates.Counter[int]{Predicate: positive}
		assert.Must(t).False(predicates.And[int](even, counter).Match(1))
		assert.Must(t).Equal(0, counter.Count())
	})
}

func TestCounter(t *testing.T) {
	s := testcase.NewSpec(t)

	counter := testcase.Let(s, func(t *testcase.T) *predicates.Counter[int] {
		return &predicates.Counter[int]{Predicate: predicates.GreaterThan(2)}
	})

	s.Test("every call is counted and the wrapped decision is returned", func(t *testcase.T) {
		c := counter.Get(t)
		assert.Must(t).False(c.Match(1))
		assert.Must(t).True(c.Match(3))
		assert.Must(t).Equal(2, c.Count())
	})

	s.Test("the count is shared by every cursor of a range", func(t *testcase.T) {
		c := counter.Get(t)
		values := []int{1, 2, 3, 4, 5, 6}
		first, last := positions.SliceBounds(values)
		r := filteriterator.New[positions.Slice[int], int](first, last, c)

		b1 := r.Begin()
		assert.Must(t).Equal(3, c.Count())
		b2 := r.Begin()
		assert.Must(t).Equal(6, c.Count())

		b1.Advance()
		assert.Must(t).Equal(7, c.Count())
		b2.Advance()
		assert.Must(t).Equal(8, c.Count())
		assert.Must(t).True(b1.Equal(b2))
	})
}

func TestLogged(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("decisions are passed through and logged", func(t *testcase.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		p := predicates.Logged(zap.New(core), predicates.GreaterThan(2))

		assert.Equal(t, []int{3}, matches(p, 1, 3))

		entries := logs.FilterMessage("predicate evaluated").AllUntimed()
		assert.Must(t).Equal(2, len(entries))
		assert.Must(t).Equal(false, entries[0].ContextMap()["accepted"])
		assert.Must(t).Equal(true, entries[1].ContextMap()["accepted"])
		assert.Must(t).Equal(int64(3), entries[1].ContextMap()["value"])
	})

	s.Test("nothing is logged above debug level", func(t *testcase.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		p := predicates.Logged(zap.New(core), predicates.GreaterThan(2))

		assert.Must(t).Equal([]int{3}, matches(p, 1, 3))
		assert.Must(t).Equal(0, logs.Len())
	})
}
