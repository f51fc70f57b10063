package catalog

import (
	"context"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// CatalogApp is a mock type for the CatalogApp type
type CatalogApp struct {
	mock.Mock
}

// ImportCatalog provides a mock function with given fields: ctx, sellerID, req
func (_m *CatalogApp) ImportCatalog(ctx context.Context, sellerID uint64, req *model.ImportRequest) error {
	ret := _m.Called(ctx, sellerID, req)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// ListShops provides a mock function with given fields: ctx, page, perPage
func (_m *CatalogApp) ListShops(ctx context.Context, page int, perPage int) (*model.ShopListResponse, error) {
	ret := _m.Called(ctx, page, perPage)

	var r0 *model.ShopListResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ShopListResponse)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListCategories provides a mock function with given fields: ctx, page, perPage
func (_m *CatalogApp) ListCategories(ctx context.Context, page int, perPage int) (*model.CategoryListResponse, error) {
	ret := _m.Called(ctx, page, perPage)

	var r0 *model.CategoryListResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.CategoryListResponse)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListProducts provides a mock function with given fields: ctx, filter, page, perPage
func (_m *CatalogApp) ListProducts(ctx context.Context, filter *model.ProductFilter, page int, perPage int) (*model.ProductListResponse, error) {
	ret := _m.Called(ctx, filter, page, perPage)

	var r0 *model.ProductListResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductListResponse)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetSellerShop provides a mock function with given fields: ctx, sellerID
func (_m *CatalogApp) GetSellerShop(ctx context.Context, sellerID uint64) (*model.ShopEntity, error) {
	ret := _m.Called(ctx, sellerID)

	var r0 *model.ShopEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ShopEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetShopStatus provides a mock function with given fields: ctx, sellerID, status
func (_m *CatalogApp) SetShopStatus(ctx context.Context, sellerID uint64, status bool) error {
	ret := _m.Called(ctx, sellerID, status)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewCatalogApp creates a new instance of CatalogApp. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogApp {
	mock := &CatalogApp{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
