package contact

import (
	"context"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// ContactRepository is a mock type for the ContactRepository type
type ContactRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, accountIDs
func (_m *ContactRepository) List(ctx context.Context, accountIDs ...uint64) ([]model.ContactEntity, error) {
	_ca := []interface{}{ctx}
	for _, _v := range accountIDs {
		_ca = append(_ca, _v)
	}
	ret := _m.Called(_ca...)

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

// CountByType provides a mock function with given fields: ctx, accountID, contactType
func (_m *ContactRepository) CountByType(ctx context.Context, accountID uint64, contactType constant.ContactType) (int64, error) {
	ret := _m.Called(ctx, accountID, contactType)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, data
func (_m *ContactRepository) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	ret := _m.Called(ctx, data)

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

// UpdateValue provides a mock function with given fields: ctx, id, accountID, value
func (_m *ContactRepository) UpdateValue(ctx context.Context, id uint64, accountID uint64, value string) (int64, error) {
	ret := _m.Called(ctx, id, accountID, value)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id, accountID
func (_m *ContactRepository) Delete(ctx context.Context, id uint64, accountID uint64) (int64, error) {
	ret := _m.Called(ctx, id, accountID)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewContactRepository creates a new instance of ContactRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContactRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactRepository {
	mock := &ContactRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
