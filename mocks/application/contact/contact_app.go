package contact

import (
	"context"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// ContactApp is a mock type for the ContactApp type
type ContactApp struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, accountID
func (_m *ContactApp) List(ctx context.Context, accountID uint64) ([]model.ContactEntity, error) {
	ret := _m.Called(ctx, accountID)

	var r0 []model.ContactEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ContactEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, accountID, req
func (_m *ContactApp) Create(ctx context.Context, accountID uint64, req *model.CreateContactRequest) (*model.ContactEntity, error) {
	ret := _m.Called(ctx, accountID, req)

	var r0 *model.ContactEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ContactEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, accountID, req
func (_m *ContactApp) Update(ctx context.Context, accountID uint64, req *model.UpdateContactRequest) error {
	ret := _m.Called(ctx, accountID, req)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, accountID, contactID
func (_m *ContactApp) Delete(ctx context.Context, accountID uint64, contactID uint64) error {
	ret := _m.Called(ctx, accountID, contactID)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewContactApp creates a new instance of ContactApp. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContactApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactApp {
	mock := &ContactApp{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
