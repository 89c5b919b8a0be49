// Package doubles holds gomock test doubles for the interfaces of the module.
package doubles

import (
	"reflect"

	"github.com/golang/mock/gomock"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

var _ filteriterator.Predicate[int] = (*MockPredicate[int])(nil)

// MockPredicate is a mock of the filteriterator.Predicate interface
type MockPredicate[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockPredicateMockRecorder[T]
}

// MockPredicateMockRecorder is the mock recorder for MockPredicate
type MockPredicateMockRecorder[T any] struct {
	mock *MockPredicate[T]
}

// NewMockPredicate creates a new mock instance
func NewMockPredicate[T any](ctrl *gomock.Controller) *MockPredicate[T] {
	mock := &MockPredicate[T]{ctrl: ctrl}
	mock.recorder = &MockPredicateMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockPredicate[T]) EXPECT() *MockPredicateMockRecorder[T] {
	return m.recorder
}

// Match mocks base method
func (m *MockPredicate[T]) Match(v T) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Match", v)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Match indicates an expected call of Match
func (mr *MockPredicateMockRecorder[T]) Match(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Match", reflect.TypeOf((*MockPredicate[T])(nil).Match), v)
}
