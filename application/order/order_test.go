package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	apporder "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/constant"
	catalogmocks "github.com/muhammadheryan/marketplace/mocks/repository/catalog"
	contactmocks "github.com/muhammadheryan/marketplace/mocks/repository/contact"
	ordermocks "github.com/muhammadheryan/marketplace/mocks/repository/order"
	sinkmocks "github.com/muhammadheryan/marketplace/mocks/thirdparty/notification"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	orderRepo   *ordermocks.OrderRepository
	catalogRepo *catalogmocks.CatalogRepository
	contactRepo *contactmocks.ContactRepository
	sink        *sinkmocks.Sink
}

func newFields(t *testing.T) fields {
	return fields{
		orderRepo:   ordermocks.NewOrderRepository(t),
		catalogRepo: catalogmocks.NewCatalogRepository(t),
		contactRepo: contactmocks.NewContactRepository(t),
		sink:        sinkmocks.NewSink(t),
	}
}

func (f fields) app() apporder.OrderApp {
	return apporder.NewOrderApp(f.orderRepo, f.catalogRepo, f.contactRepo, f.sink)
}

var basketFilter = &model.OrderFilter{AccountID: 7, Status: constant.OrderStatusBasket}

func existingBasket(f fields) {
	f.orderRepo.On("GetOrder", mock.Anything, basketFilter).
		Return(&model.OrderEntity{ID: 3, AccountID: 7, Status: constant.OrderStatusBasket}, nil).Once()
}

// rawItems encodes each value the way it arrives inside a request body.
func rawItems(t *testing.T, v ...any) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(v))
	for _, item := range v {
		b, err := json.Marshal(item)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

func TestOrderApp_AddItems(t *testing.T) {
	type args struct {
		ctx     context.Context
		buyerID uint64
		items   []json.RawMessage
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: basket created lazily",
			args: args{
				ctx:     context.Background(),
				buyerID: 7,
				items:   rawItems(t, model.BasketItemRequest{ListingID: 10, Quantity: 2}, model.BasketItemRequest{ListingID: 11, Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, basketFilter).Return(nil, nil).Once()
				f.orderRepo.On("InsertOrder", mock.Anything, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.AccountID == 7 && o.Status == constant.OrderStatusBasket && !o.CreatedAt.IsZero()
				})).Return(uint64(3), nil).Once()

				f.catalogRepo.On("GetListing", mock.Anything, uint64(10)).Return(&model.ProductInfoEntity{ID: 10}, nil).Once()
				f.catalogRepo.On("GetListing", mock.Anything, uint64(11)).Return(&model.ProductInfoEntity{ID: 11}, nil).Once()
				f.orderRepo.On("InsertOrderItem", mock.Anything, &model.OrderItemEntity{OrderID: 3, ProductInfoID: 10, Quantity: 2}).Return(uint64(1), nil).Once()
				f.orderRepo.On("InsertOrderItem", mock.Anything, &model.OrderItemEntity{OrderID: 3, ProductInfoID: 11, Quantity: 1}).Return(uint64(2), nil).Once()
			},
			want: 2,
		},
		{
			name:    "error: empty items",
			args:    args{ctx: context.Background(), buyerID: 7},
			want:    0,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: second item has zero quantity, first is kept",
			args: args{
				ctx:     context.Background(),
				buyerID: 7,
				items:   rawItems(t, model.BasketItemRequest{ListingID: 10, Quantity: 2}, model.BasketItemRequest{ListingID: 11, Quantity: 0}, model.BasketItemRequest{ListingID: 12, Quantity: 1}),
			},
			mockCall: func(f fields) {
				existingBasket(f)
				f.catalogRepo.On("GetListing", mock.Anything, uint64(10)).Return(&model.ProductInfoEntity{ID: 10}, nil).Once()
				f.orderRepo.On("InsertOrderItem", mock.Anything, mock.Anything).Return(uint64(1), nil).Once()
			},
			want:    1,
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: third entry is not an object of integers, first two are kept",
			args: args{
				ctx:     context.Background(),
				buyerID: 7,
				items:   rawItems(t, model.BasketItemRequest{ListingID: 10, Quantity: 2}, model.BasketItemRequest{ListingID: 11, Quantity: 1}, json.RawMessage(`{"listing_id":"x","quantity":1}`)),
			},
			mockCall: func(f fields) {
				existingBasket(f)
				f.catalogRepo.On("GetListing", mock.Anything, uint64(10)).Return(&model.ProductInfoEntity{ID: 10}, nil).Once()
				f.catalogRepo.On("GetListing", mock.Anything, uint64(11)).Return(&model.ProductInfoEntity{ID: 11}, nil).Once()
				f.orderRepo.On("InsertOrderItem", mock.Anything, mock.Anything).Return(uint64(1), nil).Twice()
			},
			want:    2,
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: unknown listing",
			args: args{
				ctx:     context.Background(),
				buyerID: 7,
				items:   rawItems(t, model.BasketItemRequest{ListingID: 99, Quantity: 1}),
			},
			mockCall: func(f fields) {
				existingBasket(f)
				f.catalogRepo.On("GetListing", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			want:    0,
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: listing already in basket",
			args: args{
				ctx:     context.Background(),
				buyerID: 7,
				items:   rawItems(t, model.BasketItemRequest{ListingID: 10, Quantity: 1}),
			},
			mockCall: func(f fields) {
				existingBasket(f)
				f.catalogRepo.On("GetListing", mock.Anything, uint64(10)).Return(&model.ProductInfoEntity{ID: 10}, nil).Once()
				f.orderRepo.On("InsertOrderItem", mock.Anything, mock.Anything).
					Return(uint64(0), &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '3-10' for key 'uq_order_item'"}).Once()
			},
			want:    0,
			wantErr: true,
			errCode: constant.ErrConstraintViolation,
		},
		{
			name: "error: basket lookup fails",
			args: args{
				ctx:     context.Background(),
				buyerID: 7,
				items:   rawItems(t, model.BasketItemRequest{ListingID: 10, Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, basketFilter).Return(nil, errors.New("db down")).Once()
			},
			want:    0,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().AddItems(tt.args.ctx, tt.args.buyerID, tt.args.items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddItems() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("AddItems() created = %d, want %d", got, tt.want)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_UpdateItems(t *testing.T) {
	tests := []struct {
		name     string
		items    []json.RawMessage
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			items: rawItems(t, model.UpdateItemRequest{ID: 1, Quantity: 5}),
			mockCall: func(f fields) {
				existingBasket(f)
				f.orderRepo.On("UpdateOrderItemQuantity", mock.Anything, uint64(3), uint64(1), int64(5)).Return(int64(1), nil).Once()
			},
			want: 1,
		},
		{
			name:  "error: second item not in basket",
			items: rawItems(t, model.UpdateItemRequest{ID: 1, Quantity: 5}, model.UpdateItemRequest{ID: 8, Quantity: 1}, model.UpdateItemRequest{ID: 2, Quantity: 1}),
			mockCall: func(f fields) {
				existingBasket(f)
				f.orderRepo.On("UpdateOrderItemQuantity", mock.Anything, uint64(3), uint64(1), int64(5)).Return(int64(1), nil).Once()
				f.orderRepo.On("UpdateOrderItemQuantity", mock.Anything, uint64(3), uint64(8), int64(1)).Return(int64(0), nil).Once()
			},
			want:    1,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: malformed second entry",
			items: rawItems(t, model.UpdateItemRequest{ID: 1, Quantity: 5}, json.RawMessage(`[1,2]`)),
			mockCall: func(f fields) {
				existingBasket(f)
				f.orderRepo.On("UpdateOrderItemQuantity", mock.Anything, uint64(3), uint64(1), int64(5)).Return(int64(1), nil).Once()
			},
			want:    1,
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:  "error: negative quantity",
			items: rawItems(t, model.UpdateItemRequest{ID: 1, Quantity: -1}),
			mockCall: func(f fields) {
				existingBasket(f)
			},
			want:    0,
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().UpdateItems(context.Background(), 7, tt.items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateItems() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("UpdateItems() updated = %d, want %d", got, tt.want)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_RemoveItems(t *testing.T) {
	tests := []struct {
		name     string
		ids      []any
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success: json numbers",
			ids:  []any{json.Number("1"), json.Number("2")},
			mockCall: func(f fields) {
				existingBasket(f)
				f.orderRepo.On("DeleteOrderItem", mock.Anything, uint64(3), uint64(1)).Return(int64(1), nil).Once()
				f.orderRepo.On("DeleteOrderItem", mock.Anything, uint64(3), uint64(2)).Return(int64(1), nil).Once()
			},
			want: 2,
		},
		{
			name: "error: second element is a string",
			ids:  []any{float64(1), "two"},
			mockCall: func(f fields) {
				existingBasket(f)
				f.orderRepo.On("DeleteOrderItem", mock.Anything, uint64(3), uint64(1)).Return(int64(1), nil).Once()
			},
			want:    1,
			wantErr: true,
			errCode: constant.ErrValidation,
			errMsg:  "The 2th element in list is not an integer.",
		},
		{
			name: "error: fractional number",
			ids:  []any{json.Number("1.5")},
			mockCall: func(f fields) {
				existingBasket(f)
			},
			want:    0,
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: id not in basket",
			ids:  []any{json.Number("42")},
			mockCall: func(f fields) {
				existingBasket(f)
				f.orderRepo.On("DeleteOrderItem", mock.Anything, uint64(3), uint64(42)).Return(int64(0), nil).Once()
			},
			want:    0,
			wantErr: true,
			errCode: constant.ErrNotFound,
			errMsg:  "The 1th element is not in the database. Data error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().RemoveItems(context.Background(), 7, tt.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveItems() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("RemoveItems() removed = %d, want %d", got, tt.want)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				if tt.errMsg != "" {
					assert.Equal(t, tt.errMsg, err.Error())
				}
			}
		})
	}
}

func TestOrderApp_PlaceOrder(t *testing.T) {
	tests := []struct {
		name     string
		orderID  uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success",
			orderID: 3,
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(3), uint64(7), constant.OrderStatusBasket, constant.OrderStatusNew).Return(int64(1), nil).Once()
				f.sink.On("NewOrder", mock.Anything, uint64(7)).Return(nil).Once()
			},
		},
		{
			name:    "success: sink failure is not surfaced",
			orderID: 3,
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(3), uint64(7), constant.OrderStatusBasket, constant.OrderStatusNew).Return(int64(1), nil).Once()
				f.sink.On("NewOrder", mock.Anything, uint64(7)).Return(errors.New("broker unreachable")).Once()
			},
		},
		{
			name:    "error: not a basket of this buyer",
			orderID: 4,
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(4), uint64(7), constant.OrderStatusBasket, constant.OrderStatusNew).Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: store failure",
			orderID: 3,
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(3), uint64(7), constant.OrderStatusBasket, constant.OrderStatusNew).Return(int64(0), errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := f.app().PlaceOrder(context.Background(), 7, tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PlaceOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_ViewBasket(t *testing.T) {
	t.Run("no basket yields empty list", func(t *testing.T) {
		f := newFields(t)
		f.orderRepo.On("GetOrder", mock.Anything, basketFilter).Return(nil, nil).Once()

		got, err := f.app().ViewBasket(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("total is the exact sum", func(t *testing.T) {
		f := newFields(t)
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		f.orderRepo.On("GetOrder", mock.Anything, basketFilter).
			Return(&model.OrderEntity{ID: 3, AccountID: 7, Status: constant.OrderStatusBasket, CreatedAt: created}, nil).Once()
		f.orderRepo.On("ListOrderItems", mock.Anything, []uint64{3}).Return([]model.OrderItemEntity{
			{ID: 1, OrderID: 3, ProductInfoID: 10, Quantity: 3},
			{ID: 2, OrderID: 3, ProductInfoID: 11, Quantity: 1},
		}, nil).Once()
		f.catalogRepo.On("GetListingsByIDs", mock.Anything, []uint64{10, 11}).Return([]model.ListingRow{
			{ID: 10, ShopID: 1, Price: decimal.RequireFromString("10.10"), ProductName: "Cable", CategoryName: "Accessories"},
			{ID: 11, ShopID: 1, Price: decimal.RequireFromString("3.20"), ProductName: "Plug", CategoryName: "Accessories"},
		}, nil).Once()
		f.catalogRepo.On("ListParameters", mock.Anything, []uint64{10, 11}).Return([]model.ParameterRow{
			{ProductInfoID: 10, Parameter: "Length", Value: "1m"},
		}, nil).Once()

		got, err := f.app().ViewBasket(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "33.50", got[0].TotalSum.StringFixed(2))
		assert.Equal(t, constant.OrderStatusBasket, got[0].Status)
		require.Len(t, got[0].Items, 2)
		assert.Equal(t, []model.ParameterValue{{Parameter: "Length", Value: "1m"}}, got[0].Items[0].Listing.Parameters)
		assert.Empty(t, got[0].Items[1].Listing.Parameters)
		assert.Nil(t, got[0].Buyer)
	})
}

func TestOrderApp_ListSellerOrders(t *testing.T) {
	f := newFields(t)
	f.orderRepo.On("ListOrders", mock.Anything, &model.OrderListFilter{SellerID: 2, ExcludeStatus: constant.OrderStatusBasket}).
		Return([]model.OrderEntity{{ID: 5, AccountID: 7, Status: constant.OrderStatusNew}}, nil).Once()
	f.orderRepo.On("ListOrderItems", mock.Anything, []uint64{5}).Return([]model.OrderItemEntity{
		{ID: 1, OrderID: 5, ProductInfoID: 10, Quantity: 2},
		{ID: 2, OrderID: 5, ProductInfoID: 20, Quantity: 1},
	}, nil).Once()
	seller, other := uint64(2), uint64(9)
	f.catalogRepo.On("GetListingsByIDs", mock.Anything, []uint64{10, 20}).Return([]model.ListingRow{
		{ID: 10, ShopID: 1, ShopOwnerID: &seller, Price: decimal.RequireFromString("1.25")},
		{ID: 20, ShopID: 4, ShopOwnerID: &other, Price: decimal.RequireFromString("1000.00")},
	}, nil).Once()
	f.catalogRepo.On("ListParameters", mock.Anything, []uint64{10, 20}).Return([]model.ParameterRow{}, nil).Once()
	f.contactRepo.On("List", mock.Anything, uint64(7)).Return([]model.ContactEntity{
		{ID: 1, AccountID: 7, Type: constant.ContactTypePhone, Value: "+100200300"},
	}, nil).Once()

	got, err := f.app().ListSellerOrders(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2.50", got[0].TotalSum.StringFixed(2))
	assert.Len(t, got[0].Items, 2)
	require.NotNil(t, got[0].Buyer)
	assert.Equal(t, uint64(7), got[0].Buyer.ID)
	require.Len(t, got[0].Buyer.Contacts, 1)
	assert.Equal(t, "+100200300", got[0].Buyer.Contacts[0].Value)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%v), want %s", ce.ErrorCode(), err, constant.ErrorTypeCode[want])
	}
}
