package positions_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	filteriterator "github.com/laplasian/filteriterator-tttask"
	"github.com/laplasian/filteriterator-tttask/internal/fixtures"
	"github.com/laplasian/filteriterator-tttask/positions"
	"github.com/laplasian/filteriterator-tttask/positions/positionscontract"
)

var _ filteriterator.ForwardPosition[positions.Slice[int], int] = positions.Slice[int]{}

func TestSlice(t *testing.T) {
	t.Run("int", positionscontract.Forward[positions.Slice[int], int]{
		Make: func(tb testing.TB, values []int) (first, last positions.Slice[int]) {
			return positions.SliceBounds(values)
		},
		MakeValue: fixtures.Int,
	}.Test)

	t.Run("record", positionscontract.Forward[positions.Slice[fixtures.Person], fixtures.Person]{
		Make: func(tb testing.TB, values []fixtures.Person) (first, last positions.Slice[fixtures.Person]) {
			return positions.SliceBounds(values)
		},
		MakeValue: func(testing.TB) fixtures.Person { return fixtures.NewPerson() },
	}.Test)
}

func TestSliceBounds(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("fixed size arrays are usable through slicing", func(t *testcase.T) {
		arr := [6]float64{6.1, 9.2, 0.3, 1.4, 2.0, 3.5}
		first, last := positions.SliceBounds(arr[:])
		assert.Must(t).Equal(0, first.Index())
		assert.Must(t).Equal(len(arr), last.Index())
		assert.Must(t).Equal(6.1, first.Value())
		assert.Must(t).Equal(9.2, first.Next().Value())
	})

	s.Test("nil slice has equal bounds", func(t *testcase.T) {
		first, last := positions.SliceBounds[string](nil)
		assert.Must(t).True(first.Equal(last))
	})

	s.Test("dereferencing the last position panics", func(t *testcase.T) {
		_, last := positions.SliceBounds([]int{1, 2, 3})
		assert.Must(t).Panic(func() { last.Value() })
	})

	s.Test("positions of different slices are not equal at the same index", func(t *testcase.T) {
		a, _ := positions.SliceBounds([]int{1, 2, 3})
		b, _ := positions.SliceBounds([]int{1, 2, 3})
		assert.Must(t).False(a.Equal(b))
		assert.Must(t).False(a.Next().Equal(b.Next()))
	})

	s.Test("positions of the same backing array are equal at the same index", func(t *testcase.T) {
		vs := []int{1, 2, 3}
		a, _ := positions.SliceBounds(vs)
		b, _ := positions.SliceBounds(vs)
		assert.Must(t).True(a.Next().Equal(b.Next()))
	})
}
