package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// ViewBasket handler
// @Summary The buyer's basket with totals
// @Tags Basket
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.OrderView
// @Router /api/v1/basket [get]
func (s *RestHandler) ViewBasket(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.OrderApp.ViewBasket(r.Context(), buyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddBasketItems handler
// @Summary Add items to the basket
// @Description Items are added in order; on failure the response reports how many were created
// @Tags Basket
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.AddItemsRequest true "Items"
// @Router /api/v1/basket [post]
func (s *RestHandler) AddBasketItems(w http.ResponseWriter, r *http.Request) {
	var req model.AddItemsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Items) == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	buyerID, _ := utilsContext.GetAccountID(r.Context())
	created, err := s.OrderApp.AddItems(r.Context(), buyerID, req.Items)
	if err != nil {
		writeCounterError(w, err, counterCreated, created)
		return
	}

	writeCounter(w, counterCreated, created)
}

// UpdateBasketItems handler
// @Summary Change item quantities
// @Tags Basket
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.UpdateItemsRequest true "Items"
// @Router /api/v1/basket [patch]
func (s *RestHandler) UpdateBasketItems(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateItemsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Items) == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	buyerID, _ := utilsContext.GetAccountID(r.Context())
	updated, err := s.OrderApp.UpdateItems(r.Context(), buyerID, req.Items)
	if err != nil {
		writeCounterError(w, err, counterUpdated, updated)
		return
	}

	writeCounter(w, counterUpdated, updated)
}

// RemoveBasketItems handler
// @Summary Remove items from the basket
// @Tags Basket
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.RemoveItemsRequest true "Item ids"
// @Router /api/v1/basket [delete]
func (s *RestHandler) RemoveBasketItems(w http.ResponseWriter, r *http.Request) {
	var req model.RemoveItemsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Items) == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	buyerID, _ := utilsContext.GetAccountID(r.Context())
	removed, err := s.OrderApp.RemoveItems(r.Context(), buyerID, req.Items)
	if err != nil {
		writeCounterError(w, err, counterDeleted, removed)
		return
	}

	writeCounter(w, counterDeleted, removed)
}

// ListBuyerOrders handler
// @Summary The buyer's placed orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.OrderView
// @Router /api/v1/orders [get]
func (s *RestHandler) ListBuyerOrders(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.OrderApp.ListBuyerOrders(r.Context(), buyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PlaceOrder handler
// @Summary Place the basket as a new order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.PlaceOrderRequest true "Basket id"
// @Router /api/v1/orders [patch]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	buyerID, _ := utilsContext.GetAccountID(r.Context())
	if err := s.OrderApp.PlaceOrder(r.Context(), buyerID, req.ID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListSellerOrders handler
// @Summary Orders containing the seller's listings
// @Tags Partner
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.OrderView
// @Router /api/v1/partner/orders [get]
func (s *RestHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.OrderApp.ListSellerOrders(r.Context(), sellerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
