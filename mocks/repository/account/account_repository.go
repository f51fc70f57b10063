package account

import (
	"context"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// AccountRepository is a mock type for the AccountRepository type
type AccountRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *AccountRepository) Create(ctx context.Context, req *model.AccountEntity) (*model.AccountEntity, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.AccountEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.AccountEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, filter
func (_m *AccountRepository) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	ret := _m.Called(ctx, filter)

	var r0 *model.AccountEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.AccountEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, data
func (_m *AccountRepository) Update(ctx context.Context, data *model.AccountEntity) error {
	ret := _m.Called(ctx, data)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// Activate provides a mock function with given fields: ctx, id
func (_m *AccountRepository) Activate(ctx context.Context, id uint64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAccountRepository creates a new instance of AccountRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountRepository {
	mock := &AccountRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
