package order

import (
	"context"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

// GetOrder provides a mock function with given fields: ctx, filter
func (_m *OrderRepository) GetOrder(ctx context.Context, filter *model.OrderFilter) (*model.OrderEntity, error) {
	ret := _m.Called(ctx, filter)

	var r0 *model.OrderEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.OrderEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InsertOrder provides a mock function with given fields: ctx, req
func (_m *OrderRepository) InsertOrder(ctx context.Context, req *model.OrderEntity) (uint64, error) {
	ret := _m.Called(ctx, req)

	r0 := ret.Get(0).(uint64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOrderStatus provides a mock function with given fields: ctx, orderID, accountID, from, to
func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID uint64, accountID uint64, from constant.OrderStatus, to constant.OrderStatus) (int64, error) {
	ret := _m.Called(ctx, orderID, accountID, from, to)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListOrders provides a mock function with given fields: ctx, filter
func (_m *OrderRepository) ListOrders(ctx context.Context, filter *model.OrderListFilter) ([]model.OrderEntity, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.OrderEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InsertOrderItem provides a mock function with given fields: ctx, item
func (_m *OrderRepository) InsertOrderItem(ctx context.Context, item *model.OrderItemEntity) (uint64, error) {
	ret := _m.Called(ctx, item)

	r0 := ret.Get(0).(uint64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOrderItemQuantity provides a mock function with given fields: ctx, orderID, itemID, quantity
func (_m *OrderRepository) UpdateOrderItemQuantity(ctx context.Context, orderID uint64, itemID uint64, quantity int64) (int64, error) {
	ret := _m.Called(ctx, orderID, itemID, quantity)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteOrderItem provides a mock function with given fields: ctx, orderID, itemID
func (_m *OrderRepository) DeleteOrderItem(ctx context.Context, orderID uint64, itemID uint64) (int64, error) {
	ret := _m.Called(ctx, orderID, itemID)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListOrderItems provides a mock function with given fields: ctx, orderIDs
func (_m *OrderRepository) ListOrderItems(ctx context.Context, orderIDs []uint64) ([]model.OrderItemEntity, error) {
	ret := _m.Called(ctx, orderIDs)

	var r0 []model.OrderItemEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderItemEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	mock := &OrderRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
