package model

import (
	"encoding/json"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type OrderEntity struct {
	ID        uint64               `db:"id"`
	AccountID uint64               `db:"account_id"`
	Status    constant.OrderStatus `db:"status"`
	CreatedAt time.Time            `db:"created_at"`
}

type OrderFilter struct {
	ID        uint64
	AccountID uint64
	Status    constant.OrderStatus
}

// OrderListFilter selects orders either by owner or by the seller whose
// listings appear in them. ExcludeStatus drops one status from the result.
type OrderListFilter struct {
	AccountID     uint64
	SellerID      uint64
	Status        constant.OrderStatus
	ExcludeStatus constant.OrderStatus
}

type OrderItemEntity struct {
	ID            uint64 `db:"id"`
	OrderID       uint64 `db:"order_id"`
	ProductInfoID uint64 `db:"product_info_id"`
	Quantity      int64  `db:"quantity"`
}

type BasketItemRequest struct {
	ListingID uint64 `json:"listing_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// AddItemsRequest keeps each entry raw so that a malformed entry is reported
// at its position after the preceding entries were already added.
type AddItemsRequest struct {
	Items []json.RawMessage `json:"items" validate:"required,min=1" swaggertype:"array,object"`
}

type UpdateItemRequest struct {
	ID       uint64 `json:"id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type UpdateItemsRequest struct {
	Items []json.RawMessage `json:"items" validate:"required,min=1" swaggertype:"array,object"`
}

// RemoveItemsRequest keeps the raw elements so that a non-integer entry is
// reported at its position after the preceding ids were already removed.
type RemoveItemsRequest struct {
	Items []any `json:"items" validate:"required,min=1"`
}

type PlaceOrderRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

type OrderItemView struct {
	ID       uint64      `json:"id"`
	Quantity int64       `json:"quantity"`
	Listing  ListingView `json:"product_info"`
}

type BuyerView struct {
	ID       uint64          `json:"id"`
	Contacts []ContactEntity `json:"contacts"`
}

type OrderView struct {
	ID        uint64               `json:"id"`
	Status    constant.OrderStatus `json:"status"`
	CreatedAt time.Time            `json:"dt"`
	Items     []OrderItemView      `json:"ordered_items"`
	TotalSum  decimal.Decimal      `json:"total_sum"`
	Buyer     *BuyerView           `json:"user,omitempty"`
}
