package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
)

// ListShops handler
// @Summary List shops
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ShopListResponse
// @Router /api/v1/shops [get]
func (s *RestHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.ListShops(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories with their shops
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.CategoryListResponse
// @Router /api/v1/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.ListCategories(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List listings of shops accepting orders
// @Tags Catalog
// @Produce json
// @Param category_id query int false "Category"
// @Param product_id query int false "Product"
// @Param shop_id query int false "Shop"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ProductListResponse
// @Router /api/v1/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var filter model.ProductFilter
	for key, dst := range map[string]*uint64{
		"category_id": &filter.CategoryID,
		"product_id":  &filter.ProductID,
		"shop_id":     &filter.ShopID,
	} {
		if *dst, err = queryUint(r, key); err != nil {
			writeError(w, err)
			return
		}
	}

	res, err := s.CatalogApp.ListProducts(r.Context(), &filter, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ImportCatalog handler
// @Summary Import the seller's price list
// @Description Fetches the YAML price list at url and replaces the shop's listings
// @Tags Partner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ImportRequest true "Price list URL"
// @Router /api/v1/partner/update [post]
func (s *RestHandler) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	var req model.ImportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sellerID, _ := utilsContext.GetAccountID(r.Context())
	if err := s.CatalogApp.ImportCatalog(r.Context(), sellerID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetSellerShop handler
// @Summary The seller's shop
// @Tags Partner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.ShopEntity
// @Router /api/v1/partner/shop [get]
func (s *RestHandler) GetSellerShop(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.CatalogApp.GetSellerShop(r.Context(), sellerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetShopStatus handler
// @Summary Open or close the shop for orders
// @Tags Partner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ShopStatusRequest true "Status"
// @Router /api/v1/partner/shop [patch]
func (s *RestHandler) SetShopStatus(w http.ResponseWriter, r *http.Request) {
	var req model.ShopStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sellerID, _ := utilsContext.GetAccountID(r.Context())
	if err := s.CatalogApp.SetShopStatus(r.Context(), sellerID, *req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func pageParams(r *http.Request) (int, int, error) {
	page, err := queryUint(r, "page")
	if err != nil {
		return 0, 0, err
	}
	perPage, err := queryUint(r, "per_page")
	if err != nil {
		return 0, 0, err
	}
	return int(page), int(perPage), nil
}

// queryUint returns zero for an absent parameter.
func queryUint(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Query parameter %s must be a positive integer.", key)
	}
	return v, nil
}
