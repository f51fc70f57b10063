package order

import (
	"context"
	"encoding/json"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// OrderApp is a mock type for the OrderApp type
type OrderApp struct {
	mock.Mock
}

// AddItems provides a mock function with given fields: ctx, buyerID, items
func (_m *OrderApp) AddItems(ctx context.Context, buyerID uint64, items []json.RawMessage) (int, error) {
	ret := _m.Called(ctx, buyerID, items)

	r0 := ret.Get(0).(int)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateItems provides a mock function with given fields: ctx, buyerID, items
func (_m *OrderApp) UpdateItems(ctx context.Context, buyerID uint64, items []json.RawMessage) (int, error) {
	ret := _m.Called(ctx, buyerID, items)

	r0 := ret.Get(0).(int)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RemoveItems provides a mock function with given fields: ctx, buyerID, ids
func (_m *OrderApp) RemoveItems(ctx context.Context, buyerID uint64, ids []any) (int, error) {
	ret := _m.Called(ctx, buyerID, ids)

	r0 := ret.Get(0).(int)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ViewBasket provides a mock function with given fields: ctx, buyerID
func (_m *OrderApp) ViewBasket(ctx context.Context, buyerID uint64) ([]model.OrderView, error) {
	ret := _m.Called(ctx, buyerID)

	var r0 []model.OrderView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderView)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PlaceOrder provides a mock function with given fields: ctx, buyerID, orderID
func (_m *OrderApp) PlaceOrder(ctx context.Context, buyerID uint64, orderID uint64) error {
	ret := _m.Called(ctx, buyerID, orderID)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// ListBuyerOrders provides a mock function with given fields: ctx, buyerID
func (_m *OrderApp) ListBuyerOrders(ctx context.Context, buyerID uint64) ([]model.OrderView, error) {
	ret := _m.Called(ctx, buyerID)

	var r0 []model.OrderView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderView)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListSellerOrders provides a mock function with given fields: ctx, sellerID
func (_m *OrderApp) ListSellerOrders(ctx context.Context, sellerID uint64) ([]model.OrderView, error) {
	ret := _m.Called(ctx, sellerID)

	var r0 []model.OrderView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderView)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderApp creates a new instance of OrderApp. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderApp {
	mock := &OrderApp{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
