package catalog

import (
	"context"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"

	mock "github.com/stretchr/testify/mock"
)

// CatalogRepository is a mock type for the CatalogRepository type
type CatalogRepository struct {
	mock.Mock
}

// GetShop provides a mock function with given fields: ctx, filter
func (_m *CatalogRepository) GetShop(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error) {
	ret := _m.Called(ctx, filter)

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

// CreateShop provides a mock function with given fields: ctx, data
func (_m *CatalogRepository) CreateShop(ctx context.Context, data *model.ShopEntity) (*model.ShopEntity, error) {
	ret := _m.Called(ctx, data)

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

// UpdateShopStatus provides a mock function with given fields: ctx, accountID, status
func (_m *CatalogRepository) UpdateShopStatus(ctx context.Context, accountID uint64, status bool) (int64, error) {
	ret := _m.Called(ctx, accountID, status)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListShops provides a mock function with given fields: ctx, page, perPage
func (_m *CatalogRepository) ListShops(ctx context.Context, page int, perPage int) ([]model.ShopEntity, int64, error) {
	ret := _m.Called(ctx, page, perPage)

	var r0 []model.ShopEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ShopEntity)
	}

	r1 := ret.Get(1).(int64)

	var r2 error
	if ret.Get(2) != nil {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetCategory provides a mock function with given fields: ctx, id, name
func (_m *CatalogRepository) GetCategory(ctx context.Context, id uint64, name string) (*model.CategoryEntity, error) {
	ret := _m.Called(ctx, id, name)

	var r0 *model.CategoryEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.CategoryEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateCategory provides a mock function with given fields: ctx, data
func (_m *CatalogRepository) CreateCategory(ctx context.Context, data *model.CategoryEntity) error {
	ret := _m.Called(ctx, data)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// AddCategoryShop provides a mock function with given fields: ctx, categoryID, shopID
func (_m *CatalogRepository) AddCategoryShop(ctx context.Context, categoryID uint64, shopID uint64) error {
	ret := _m.Called(ctx, categoryID, shopID)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// ListCategories provides a mock function with given fields: ctx, page, perPage
func (_m *CatalogRepository) ListCategories(ctx context.Context, page int, perPage int) ([]model.CategoryEntity, int64, error) {
	ret := _m.Called(ctx, page, perPage)

	var r0 []model.CategoryEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.CategoryEntity)
	}

	r1 := ret.Get(1).(int64)

	var r2 error
	if ret.Get(2) != nil {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// ListCategoryShops provides a mock function with given fields: ctx, categoryIDs
func (_m *CatalogRepository) ListCategoryShops(ctx context.Context, categoryIDs []uint64) ([]model.CategoryShop, error) {
	ret := _m.Called(ctx, categoryIDs)

	var r0 []model.CategoryShop
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.CategoryShop)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetProduct provides a mock function with given fields: ctx, name, categoryID
func (_m *CatalogRepository) GetProduct(ctx context.Context, name string, categoryID uint64) (*model.ProductEntity, error) {
	ret := _m.Called(ctx, name, categoryID)

	var r0 *model.ProductEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateProduct provides a mock function with given fields: ctx, data
func (_m *CatalogRepository) CreateProduct(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	ret := _m.Called(ctx, data)

	var r0 *model.ProductEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteShopListingsTx provides a mock function with given fields: ctx, tx, shopID
func (_m *CatalogRepository) DeleteShopListingsTx(ctx context.Context, tx *sqlx.Tx, shopID uint64) (int64, error) {
	ret := _m.Called(ctx, tx, shopID)

	r0 := ret.Get(0).(int64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateListing provides a mock function with given fields: ctx, data
func (_m *CatalogRepository) CreateListing(ctx context.Context, data *model.ProductInfoEntity) (*model.ProductInfoEntity, error) {
	ret := _m.Called(ctx, data)

	var r0 *model.ProductInfoEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductInfoEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetListing provides a mock function with given fields: ctx, id
func (_m *CatalogRepository) GetListing(ctx context.Context, id uint64) (*model.ProductInfoEntity, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.ProductInfoEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductInfoEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListListings provides a mock function with given fields: ctx, filter, page, perPage
func (_m *CatalogRepository) ListListings(ctx context.Context, filter *model.ProductFilter, page int, perPage int) ([]model.ListingRow, int64, error) {
	ret := _m.Called(ctx, filter, page, perPage)

	var r0 []model.ListingRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ListingRow)
	}

	r1 := ret.Get(1).(int64)

	var r2 error
	if ret.Get(2) != nil {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetListingsByIDs provides a mock function with given fields: ctx, ids
func (_m *CatalogRepository) GetListingsByIDs(ctx context.Context, ids []uint64) ([]model.ListingRow, error) {
	ret := _m.Called(ctx, ids)

	var r0 []model.ListingRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ListingRow)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetParameter provides a mock function with given fields: ctx, name
func (_m *CatalogRepository) GetParameter(ctx context.Context, name string) (*model.ParameterEntity, error) {
	ret := _m.Called(ctx, name)

	var r0 *model.ParameterEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ParameterEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateParameter provides a mock function with given fields: ctx, data
func (_m *CatalogRepository) CreateParameter(ctx context.Context, data *model.ParameterEntity) (*model.ParameterEntity, error) {
	ret := _m.Called(ctx, data)

	var r0 *model.ParameterEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ParameterEntity)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateProductParameter provides a mock function with given fields: ctx, data
func (_m *CatalogRepository) CreateProductParameter(ctx context.Context, data *model.ProductParameterEntity) error {
	ret := _m.Called(ctx, data)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// ListParameters provides a mock function with given fields: ctx, listingIDs
func (_m *CatalogRepository) ListParameters(ctx context.Context, listingIDs []uint64) ([]model.ParameterRow, error) {
	ret := _m.Called(ctx, listingIDs)

	var r0 []model.ParameterRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ParameterRow)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCatalogRepository creates a new instance of CatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	mock := &CatalogRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
