package order

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	catalogrepo "github.com/muhammadheryan/marketplace/repository/catalog"
	contactrepo "github.com/muhammadheryan/marketplace/repository/contact"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	"github.com/muhammadheryan/marketplace/thirdparty/notification"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	opAdd    = "add"
	opUpdate = "update"
	opRemove = "remove"
)

// OrderApp manages the buyer's basket and the orders placed from it.
// Basket mutations process items in order and stop at the first failure,
// returning how many items were applied; applied items are not rolled back.
type OrderApp interface {
	AddItems(ctx context.Context, buyerID uint64, items []json.RawMessage) (int, error)
	UpdateItems(ctx context.Context, buyerID uint64, items []json.RawMessage) (int, error)
	RemoveItems(ctx context.Context, buyerID uint64, ids []any) (int, error)
	ViewBasket(ctx context.Context, buyerID uint64) ([]model.OrderView, error)
	PlaceOrder(ctx context.Context, buyerID, orderID uint64) error
	ListBuyerOrders(ctx context.Context, buyerID uint64) ([]model.OrderView, error)
	ListSellerOrders(ctx context.Context, sellerID uint64) ([]model.OrderView, error)
}

type orderAppImpl struct {
	orderRepo   orderrepo.OrderRepository
	catalogRepo catalogrepo.CatalogRepository
	contactRepo contactrepo.ContactRepository
	sink        notification.Sink
}

func NewOrderApp(orderRepo orderrepo.OrderRepository, catalogRepo catalogrepo.CatalogRepository, contactRepo contactrepo.ContactRepository, sink notification.Sink) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo, catalogRepo: catalogRepo, contactRepo: contactRepo, sink: sink}
}

// AddItems decodes each entry on its own, so a malformed entry stops the
// loop at its position like any other invalid item.
func (s *orderAppImpl) AddItems(ctx context.Context, buyerID uint64, items []json.RawMessage) (int, error) {
	if len(items) == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	basket, err := s.getOrCreateBasket(ctx, buyerID, "[AddItems]")
	if err != nil {
		return 0, err
	}

	created := 0
	defer func() { recordItemOps(opAdd, created, len(items)) }()

	for i, raw := range items {
		var item model.BasketItemRequest
		if err := json.Unmarshal(raw, &item); err != nil {
			return created, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: listing_id and quantity must be integers.", i+1)
		}
		if item.ListingID == 0 {
			return created, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: listing_id must be a positive integer.", i+1)
		}
		if item.Quantity <= 0 {
			return created, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: quantity must be greater than zero.", i+1)
		}

		listing, err := s.catalogRepo.GetListing(ctx, item.ListingID)
		if err != nil {
			logger.Error("[AddItems] err catalogRepo.GetListing", zap.String("error", err.Error()))
			return created, errors.SetCustomError(constant.ErrInternal)
		}
		if listing == nil {
			return created, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: invalid listing_id %d, object does not exist.", i+1, item.ListingID)
		}

		_, err = s.orderRepo.InsertOrderItem(ctx, &model.OrderItemEntity{
			OrderID:       basket.ID,
			ProductInfoID: item.ListingID,
			Quantity:      item.Quantity,
		})
		if err != nil {
			return created, dberr.Classify("[AddItems] err orderRepo.InsertOrderItem", err)
		}
		created++
	}

	return created, nil
}

func (s *orderAppImpl) UpdateItems(ctx context.Context, buyerID uint64, items []json.RawMessage) (int, error) {
	if len(items) == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	basket, err := s.getOrCreateBasket(ctx, buyerID, "[UpdateItems]")
	if err != nil {
		return 0, err
	}

	updated := 0
	defer func() { recordItemOps(opUpdate, updated, len(items)) }()

	for i, raw := range items {
		var item model.UpdateItemRequest
		if err := json.Unmarshal(raw, &item); err != nil {
			return updated, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: id and quantity must be integers.", i+1)
		}
		if item.ID == 0 {
			return updated, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: id must be a positive integer.", i+1)
		}
		if item.Quantity <= 0 {
			return updated, errors.SetCustomErrorf(constant.ErrValidation, "Item %d: quantity must be greater than zero.", i+1)
		}

		affected, err := s.orderRepo.UpdateOrderItemQuantity(ctx, basket.ID, item.ID, item.Quantity)
		if err != nil {
			return updated, dberr.Classify("[UpdateItems] err orderRepo.UpdateOrderItemQuantity", err)
		}
		if affected == 0 {
			return updated, errors.SetCustomError(constant.ErrNotFound)
		}
		updated++
	}

	return updated, nil
}

// RemoveItems takes the raw decoded elements so that the position of a
// non-integer entry can be reported.
func (s *orderAppImpl) RemoveItems(ctx context.Context, buyerID uint64, ids []any) (int, error) {
	if len(ids) == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	basket, err := s.getOrCreateBasket(ctx, buyerID, "[RemoveItems]")
	if err != nil {
		return 0, err
	}

	removed := 0
	defer func() { recordItemOps(opRemove, removed, len(ids)) }()

	for i, raw := range ids {
		id, ok := asInteger(raw)
		if !ok {
			return removed, errors.SetCustomErrorf(constant.ErrValidation, "The %dth element in list is not an integer.", i+1)
		}
		if id <= 0 {
			return removed, errors.SetCustomErrorf(constant.ErrNotFound, "The %dth element is not in the database. Data error.", i+1)
		}

		affected, err := s.orderRepo.DeleteOrderItem(ctx, basket.ID, uint64(id))
		if err != nil {
			return removed, dberr.Classify("[RemoveItems] err orderRepo.DeleteOrderItem", err)
		}
		if affected == 0 {
			return removed, errors.SetCustomErrorf(constant.ErrNotFound, "The %dth element is not in the database. Data error.", i+1)
		}
		removed++
	}

	return removed, nil
}

// ViewBasket returns the buyer's basket as a list holding zero or one order.
func (s *orderAppImpl) ViewBasket(ctx context.Context, buyerID uint64) ([]model.OrderView, error) {
	basket, err := s.orderRepo.GetOrder(ctx, &model.OrderFilter{AccountID: buyerID, Status: constant.OrderStatusBasket})
	if err != nil {
		logger.Error("[ViewBasket] err orderRepo.GetOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if basket == nil {
		return []model.OrderView{}, nil
	}

	return s.buildViews(ctx, "[ViewBasket]", []model.OrderEntity{*basket}, 0)
}

// PlaceOrder moves the buyer's basket to new. The notification is sent
// after the status change and its failure never reaches the caller.
func (s *orderAppImpl) PlaceOrder(ctx context.Context, buyerID, orderID uint64) error {
	affected, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, buyerID, constant.OrderStatusBasket, constant.OrderStatusNew)
	if err != nil {
		logger.Error("[PlaceOrder] err orderRepo.UpdateOrderStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	metrics.OrdersPlaced.Inc()

	if err := s.sink.NewOrder(ctx, buyerID); err != nil {
		logger.Error("[PlaceOrder] err sink.NewOrder", zap.String("error", err.Error()), zap.Uint64("order_id", orderID))
		metrics.Notifications.WithLabelValues(string(constant.EventNewOrder), metrics.ResultFailure).Inc()
		return nil
	}
	metrics.Notifications.WithLabelValues(string(constant.EventNewOrder), metrics.ResultSuccess).Inc()

	return nil
}

func (s *orderAppImpl) ListBuyerOrders(ctx context.Context, buyerID uint64) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListOrders(ctx, &model.OrderListFilter{
		AccountID:     buyerID,
		ExcludeStatus: constant.OrderStatusBasket,
	})
	if err != nil {
		logger.Error("[ListBuyerOrders] err orderRepo.ListOrders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.buildViews(ctx, "[ListBuyerOrders]", orders, 0)
}

func (s *orderAppImpl) ListSellerOrders(ctx context.Context, sellerID uint64) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListOrders(ctx, &model.OrderListFilter{
		SellerID:      sellerID,
		ExcludeStatus: constant.OrderStatusBasket,
	})
	if err != nil {
		logger.Error("[ListSellerOrders] err orderRepo.ListOrders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.buildViews(ctx, "[ListSellerOrders]", orders, sellerID)
}

func (s *orderAppImpl) getOrCreateBasket(ctx context.Context, buyerID uint64, method string) (*model.OrderEntity, error) {
	basket, err := s.orderRepo.GetOrder(ctx, &model.OrderFilter{AccountID: buyerID, Status: constant.OrderStatusBasket})
	if err != nil {
		logger.Error(method+" err orderRepo.GetOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if basket != nil {
		return basket, nil
	}

	basket = &model.OrderEntity{
		AccountID: buyerID,
		Status:    constant.OrderStatusBasket,
		CreatedAt: time.Now().UTC(),
	}
	basket.ID, err = s.orderRepo.InsertOrder(ctx, basket)
	if err != nil {
		return nil, dberr.Classify(method+" err orderRepo.InsertOrder", err)
	}
	return basket, nil
}

// buildViews loads items, listings and parameters for the given orders and
// computes each total as the exact sum of quantity times listing price.
// A non-zero sellerID adds the buyer's contacts and limits each total to the
// lines sold by that seller; the item list stays complete.
func (s *orderAppImpl) buildViews(ctx context.Context, method string, orders []model.OrderEntity, sellerID uint64) ([]model.OrderView, error) {
	withBuyer := sellerID != 0

	views := make([]model.OrderView, 0, len(orders))
	if len(orders) == 0 {
		return views, nil
	}

	orderIDs := make([]uint64, 0, len(orders))
	buyerIDs := make([]uint64, 0, len(orders))
	seenBuyer := make(map[uint64]bool, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		if !seenBuyer[o.AccountID] {
			seenBuyer[o.AccountID] = true
			buyerIDs = append(buyerIDs, o.AccountID)
		}
	}

	items, err := s.orderRepo.ListOrderItems(ctx, orderIDs)
	if err != nil {
		logger.Error(method+" err orderRepo.ListOrderItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	listingIDs := make([]uint64, 0, len(items))
	for _, it := range items {
		listingIDs = append(listingIDs, it.ProductInfoID)
	}

	listings, err := s.catalogRepo.GetListingsByIDs(ctx, listingIDs)
	if err != nil {
		logger.Error(method+" err catalogRepo.GetListingsByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	params, err := s.catalogRepo.ListParameters(ctx, listingIDs)
	if err != nil {
		logger.Error(method+" err catalogRepo.ListParameters", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	grouped := model.GroupParameters(params)
	listingByID := make(map[uint64]model.ListingView, len(listings))
	sellerListing := make(map[uint64]bool, len(listings))
	for _, l := range listings {
		listingByID[l.ID] = l.View(grouped[l.ID])
		sellerListing[l.ID] = !withBuyer || (l.ShopOwnerID != nil && *l.ShopOwnerID == sellerID)
	}

	itemsByOrder := make(map[uint64][]model.OrderItemView, len(orders))
	totals := make(map[uint64]decimal.Decimal, len(orders))
	for _, it := range items {
		listing := listingByID[it.ProductInfoID]
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], model.OrderItemView{
			ID:       it.ID,
			Quantity: it.Quantity,
			Listing:  listing,
		})
		if sellerListing[it.ProductInfoID] {
			totals[it.OrderID] = totals[it.OrderID].Add(listing.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}
	}

	var contacts map[uint64][]model.ContactEntity
	if withBuyer {
		rows, err := s.contactRepo.List(ctx, buyerIDs...)
		if err != nil {
			logger.Error(method+" err contactRepo.List", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		contacts = make(map[uint64][]model.ContactEntity, len(buyerIDs))
		for _, c := range rows {
			contacts[c.AccountID] = append(contacts[c.AccountID], c)
		}
	}

	for _, o := range orders {
		view := model.OrderView{
			ID:        o.ID,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			Items:     itemsByOrder[o.ID],
			TotalSum:  totals[o.ID],
		}
		if view.Items == nil {
			view.Items = []model.OrderItemView{}
		}
		if withBuyer {
			buyerContacts := contacts[o.AccountID]
			if buyerContacts == nil {
				buyerContacts = []model.ContactEntity{}
			}
			view.Buyer = &model.BuyerView{ID: o.AccountID, Contacts: buyerContacts}
		}
		views = append(views, view)
	}

	return views, nil
}

// asInteger accepts the number representations produced by encoding/json
// and plain Go integers.
func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || n >= 1<<63 || n < -(1<<63) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func recordItemOps(op string, done, total int) {
	metrics.BasketItemOps.WithLabelValues(op, metrics.ResultSuccess).Add(float64(done))
	if done < total {
		metrics.BasketItemOps.WithLabelValues(op, metrics.ResultFailure).Inc()
	}
}
