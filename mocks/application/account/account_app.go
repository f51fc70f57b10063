package account

import (
	"context"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// AccountApp is a mock type for the AccountApp type
type AccountApp struct {
	mock.Mock
}

// Register provides a mock function with given fields: ctx, req
func (_m *AccountApp) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.RegisterResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.RegisterResponse)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// IssueConfirmationToken provides a mock function with given fields: ctx, accountID
func (_m *AccountApp) IssueConfirmationToken(ctx context.Context, accountID uint64) (string, error) {
	ret := _m.Called(ctx, accountID)

	r0 := ret.Get(0).(string)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ConfirmAccount provides a mock function with given fields: ctx, req
func (_m *AccountApp) ConfirmAccount(ctx context.Context, req *model.ConfirmRequest) error {
	ret := _m.Called(ctx, req)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// Login provides a mock function with given fields: ctx, req
func (_m *AccountApp) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.LoginResponse)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Logout provides a mock function with given fields: ctx, tokenString
func (_m *AccountApp) Logout(ctx context.Context, tokenString string) error {
	ret := _m.Called(ctx, tokenString)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// Authenticate provides a mock function with given fields: ctx, tokenString
func (_m *AccountApp) Authenticate(ctx context.Context, tokenString string) (*model.Identity, error) {
	ret := _m.Called(ctx, tokenString)

	var r0 *model.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Identity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetAccount provides a mock function with given fields: ctx, accountID
func (_m *AccountApp) GetAccount(ctx context.Context, accountID uint64) (*model.AccountResponse, error) {
	ret := _m.Called(ctx, accountID)

	var r0 *model.AccountResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.AccountResponse)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateAccount provides a mock function with given fields: ctx, accountID, req
func (_m *AccountApp) UpdateAccount(ctx context.Context, accountID uint64, req *model.UpdateAccountRequest) error {
	ret := _m.Called(ctx, accountID, req)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAccountApp creates a new instance of AccountApp. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAccountApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountApp {
	mock := &AccountApp{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
