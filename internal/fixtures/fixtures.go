// Package fixtures makes random test data for the sequences used in the test suites.
package fixtures

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

// Person is a user defined record type for the element type suites.
type Person struct {
	ID   string
	Name string
	Age  int
}

func NewPerson() Person {
	return Person{
		ID:   uuid.NewV4().String(),
		Name: randomdata.FullName(randomdata.RandomGender),
		Age:  randomdata.Number(1, 100),
	}
}

func People(n int) []Person {
	ps := make([]Person, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, NewPerson())
	}
	return ps
}

// Ints returns n random integers from the [min, max) interval.
func Ints(n, min, max int) []int {
	vs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, randomdata.Number(min, max))
	}
	return vs
}

// Int matches the MakeValue signature of the contracts.
func Int(testing.TB) int {
	return randomdata.Number(0, 1000)
}

// Word matches the MakeValue signature of the contracts.
func Word(testing.TB) string {
	return randomdata.SillyName()
}
