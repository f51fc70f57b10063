package order_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/constant"
	sinkmocks "github.com/muhammadheryan/marketplace/mocks/thirdparty/notification"
	"github.com/muhammadheryan/marketplace/model"
	catalogrepo "github.com/muhammadheryan/marketplace/repository/catalog"
	contactrepo "github.com/muhammadheryan/marketplace/repository/contact"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	"github.com/muhammadheryan/marketplace/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type marketplace struct {
	db       *sqlx.DB
	app      apporder.OrderApp
	sink     *sinkmocks.Sink
	buyerID  uint64
	sellerID uint64
	cableID  uint64
	plugID   uint64
}

// newMarketplace seeds one seller shop with two listings priced 10.10 and
// 3.20 and one buyer with a phone contact.
func newMarketplace(t *testing.T) *marketplace {
	db := testdb.New(t)
	now := time.Now().UTC()

	insertAccount := `INSERT INTO account (email, password_hash, first_name, last_name, account_type, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	sellerID := testdb.Exec(t, db, insertAccount, "seller@example.com", "x", "Sam", "Seller", "seller", true, now)
	buyerID := testdb.Exec(t, db, insertAccount, "buyer@example.com", "x", "Bea", "Buyer", "buyer", true, now)
	testdb.Exec(t, db, `INSERT INTO contact (account_id, type, value) VALUES (?, ?, ?)`, buyerID, "phone", "+100200300")

	shopID := testdb.Exec(t, db, `INSERT INTO shop (name, url, account_id, status) VALUES (?, ?, ?, ?)`, "Connect", "", sellerID, true)
	testdb.Exec(t, db, `INSERT INTO category (id, name) VALUES (?, ?)`, 15, "Accessories")
	cable := testdb.Exec(t, db, `INSERT INTO product (name, category_id) VALUES (?, ?)`, "Cable", 15)
	plug := testdb.Exec(t, db, `INSERT INTO product (name, category_id) VALUES (?, ?)`, "Plug", 15)

	insertListing := `INSERT INTO product_info (product_id, shop_id, quantity, price, price_rrc) VALUES (?, ?, ?, ?, ?)`
	cableID := testdb.Exec(t, db, insertListing, cable, shopID, 10, "10.10", "12.00")
	plugID := testdb.Exec(t, db, insertListing, plug, shopID, 10, "3.20", "4.00")

	sink := sinkmocks.NewSink(t)
	app := apporder.NewOrderApp(
		orderrepo.NewOrderRepository(db),
		catalogrepo.NewCatalogRepository(db),
		contactrepo.NewContactRepository(db),
		sink,
	)

	return &marketplace{
		db:       db,
		app:      app,
		sink:     sink,
		buyerID:  uint64(buyerID),
		sellerID: uint64(sellerID),
		cableID:  uint64(cableID),
		plugID:   uint64(plugID),
	}
}

func (m *marketplace) fillBasket(t *testing.T) model.OrderView {
	t.Helper()
	ctx := context.Background()

	created, err := m.app.AddItems(ctx, m.buyerID, rawItems(t,
		model.BasketItemRequest{ListingID: m.cableID, Quantity: 3},
		model.BasketItemRequest{ListingID: m.plugID, Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, 2, created)

	baskets, err := m.app.ViewBasket(ctx, m.buyerID)
	require.NoError(t, err)
	require.Len(t, baskets, 1)
	return baskets[0]
}

func TestOrderLifecycle_BasketTotalIsExact(t *testing.T) {
	m := newMarketplace(t)

	basket := m.fillBasket(t)
	assert.Equal(t, "33.50", basket.TotalSum.StringFixed(2))
	assert.Equal(t, constant.OrderStatusBasket, basket.Status)
	require.Len(t, basket.Items, 2)
	assert.Equal(t, "Cable", basket.Items[0].Listing.Product.Name)
	assert.Equal(t, "Accessories", basket.Items[0].Listing.Product.Category)
}

func TestOrderLifecycle_PlaceOrderIsMonotonic(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	basket := m.fillBasket(t)

	m.sink.On("NewOrder", mock.Anything, m.buyerID).Return(nil).Once()

	require.NoError(t, m.app.PlaceOrder(ctx, m.buyerID, basket.ID))

	err := m.app.PlaceOrder(ctx, m.buyerID, basket.ID)
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrNotFound)

	var status string
	require.NoError(t, m.db.Get(&status, "SELECT status FROM `order` WHERE id = ?", basket.ID))
	assert.Equal(t, string(constant.OrderStatusNew), status)

	baskets, err := m.app.ViewBasket(ctx, m.buyerID)
	require.NoError(t, err)
	assert.Empty(t, baskets)

	orders, err := m.app.ListBuyerOrders(ctx, m.buyerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "33.50", orders[0].TotalSum.StringFixed(2))
	assert.Nil(t, orders[0].Buyer)
}

func TestOrderLifecycle_PlaceOrderOfAnotherBuyer(t *testing.T) {
	m := newMarketplace(t)
	basket := m.fillBasket(t)

	err := m.app.PlaceOrder(context.Background(), m.sellerID, basket.ID)
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestOrderLifecycle_UpdateItemsStopsAtFirstMiss(t *testing.T) {
	m := newMarketplace(t)
	basket := m.fillBasket(t)

	updated, err := m.app.UpdateItems(context.Background(), m.buyerID, rawItems(t,
		model.UpdateItemRequest{ID: basket.Items[0].ID, Quantity: 5},
		model.UpdateItemRequest{ID: 999, Quantity: 1},
		model.UpdateItemRequest{ID: basket.Items[1].ID, Quantity: 7},
	))
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrNotFound)
	assert.Equal(t, 1, updated)

	var quantities []int64
	require.NoError(t, m.db.Select(&quantities, `SELECT quantity FROM order_item ORDER BY id`))
	assert.Equal(t, []int64{5, 1}, quantities)
}

func TestOrderLifecycle_DuplicateLineIsConstraintViolation(t *testing.T) {
	m := newMarketplace(t)
	m.fillBasket(t)

	created, err := m.app.AddItems(context.Background(), m.buyerID, rawItems(t,
		model.BasketItemRequest{ListingID: m.cableID, Quantity: 1},
	))
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrConstraintViolation)
	assert.Equal(t, 0, created)
}

func TestOrderLifecycle_AddItemsKeepsEntriesBeforeMalformedOne(t *testing.T) {
	m := newMarketplace(t)

	created, err := m.app.AddItems(context.Background(), m.buyerID, rawItems(t,
		model.BasketItemRequest{ListingID: m.cableID, Quantity: 1},
		model.BasketItemRequest{ListingID: m.plugID, Quantity: 2},
		json.RawMessage(`{"listing_id":"x","quantity":1}`),
	))
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrValidation)
	assert.Equal(t, 2, created)

	baskets, err := m.app.ViewBasket(context.Background(), m.buyerID)
	require.NoError(t, err)
	require.Len(t, baskets, 1)
	assert.Len(t, baskets[0].Items, 2)
	assert.Equal(t, "16.50", baskets[0].TotalSum.StringFixed(2))
}

func TestOrderLifecycle_SellerTotalCountsOwnLinesOnly(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	now := time.Now().UTC()

	otherSeller := testdb.Exec(t, m.db, `INSERT INTO account (email, password_hash, first_name, last_name, account_type, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"tv@example.com", "x", "Tom", "Vendor", "seller", true, now)
	otherShop := testdb.Exec(t, m.db, `INSERT INTO shop (name, url, account_id, status) VALUES (?, ?, ?, ?)`, "Screens", "", otherSeller, true)
	tv := testdb.Exec(t, m.db, `INSERT INTO product (name, category_id) VALUES (?, ?)`, "TV", 15)
	tvID := testdb.Exec(t, m.db, `INSERT INTO product_info (product_id, shop_id, quantity, price, price_rrc) VALUES (?, ?, ?, ?, ?)`,
		tv, otherShop, 5, "1000.00", "1100.00")

	created, err := m.app.AddItems(ctx, m.buyerID, rawItems(t,
		model.BasketItemRequest{ListingID: m.cableID, Quantity: 1},
		model.BasketItemRequest{ListingID: uint64(tvID), Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, 2, created)

	baskets, err := m.app.ViewBasket(ctx, m.buyerID)
	require.NoError(t, err)
	require.Len(t, baskets, 1)
	assert.Equal(t, "1010.10", baskets[0].TotalSum.StringFixed(2))

	m.sink.On("NewOrder", mock.Anything, m.buyerID).Return(nil).Once()
	require.NoError(t, m.app.PlaceOrder(ctx, m.buyerID, baskets[0].ID))

	orders, err := m.app.ListSellerOrders(ctx, m.sellerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)
	assert.Equal(t, "10.10", orders[0].TotalSum.StringFixed(2))

	orders, err = m.app.ListSellerOrders(ctx, uint64(otherSeller))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1000.00", orders[0].TotalSum.StringFixed(2))

	orders, err = m.app.ListBuyerOrders(ctx, m.buyerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1010.10", orders[0].TotalSum.StringFixed(2))
}

func TestOrderLifecycle_RemoveItems(t *testing.T) {
	m := newMarketplace(t)
	basket := m.fillBasket(t)

	removed, err := m.app.RemoveItems(context.Background(), m.buyerID, []any{float64(basket.Items[0].ID), "x"})
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrValidation)
	assert.Equal(t, 1, removed)

	baskets, err := m.app.ViewBasket(context.Background(), m.buyerID)
	require.NoError(t, err)
	require.Len(t, baskets, 1)
	require.Len(t, baskets[0].Items, 1)
	assert.Equal(t, "3.20", baskets[0].TotalSum.StringFixed(2))
}

func TestOrderLifecycle_SellerSeesOrdersWithBuyerContacts(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	basket := m.fillBasket(t)

	orders, err := m.app.ListSellerOrders(ctx, m.sellerID)
	require.NoError(t, err)
	assert.Empty(t, orders, "baskets are not visible to sellers")

	m.sink.On("NewOrder", mock.Anything, m.buyerID).Return(nil).Once()
	require.NoError(t, m.app.PlaceOrder(ctx, m.buyerID, basket.ID))

	orders, err = m.app.ListSellerOrders(ctx, m.sellerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, constant.OrderStatusNew, orders[0].Status)
	assert.Equal(t, "33.50", orders[0].TotalSum.StringFixed(2))
	require.NotNil(t, orders[0].Buyer)
	assert.Equal(t, m.buyerID, orders[0].Buyer.ID)
	require.Len(t, orders[0].Buyer.Contacts, 1)
	assert.Equal(t, constant.ContactTypePhone, orders[0].Buyer.Contacts[0].Type)
}
