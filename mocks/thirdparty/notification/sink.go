package notification

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// Sink is a mock type for the Sink type
type Sink struct {
	mock.Mock
}

// NewOrder provides a mock function with given fields: ctx, buyerID
func (_m *Sink) NewOrder(ctx context.Context, buyerID uint64) error {
	ret := _m.Called(ctx, buyerID)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// AccountRegistered provides a mock function with given fields: ctx, accountID
func (_m *Sink) AccountRegistered(ctx context.Context, accountID uint64) error {
	ret := _m.Called(ctx, accountID)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewSink creates a new instance of Sink. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *Sink {
	mock := &Sink{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
