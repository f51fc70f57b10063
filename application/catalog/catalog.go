package catalog

import (
	"context"
	"net/url"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	catalogrepo "github.com/muhammadheryan/marketplace/repository/catalog"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/pricelist"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type CatalogApp interface {
	ImportCatalog(ctx context.Context, sellerID uint64, req *model.ImportRequest) error
	ListShops(ctx context.Context, page, perPage int) (*model.ShopListResponse, error)
	ListCategories(ctx context.Context, page, perPage int) (*model.CategoryListResponse, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter, page, perPage int) (*model.ProductListResponse, error)
	GetSellerShop(ctx context.Context, sellerID uint64) (*model.ShopEntity, error)
	SetShopStatus(ctx context.Context, sellerID uint64, status bool) error
}

type catalogAppImpl struct {
	txRepo      txrepo.TxRepository
	catalogRepo catalogrepo.CatalogRepository
	fetcher     pricelist.Fetcher
}

func NewCatalogApp(txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository, fetcher pricelist.Fetcher) CatalogApp {
	return &catalogAppImpl{txRepo: txRepo, catalogRepo: catalogRepo, fetcher: fetcher}
}

// ImportCatalog replaces the seller's listings with the content of the price
// list at req.URL. Every step commits on its own, so a failure part way
// through leaves the earlier steps in place.
func (s *catalogAppImpl) ImportCatalog(ctx context.Context, sellerID uint64, req *model.ImportRequest) (err error) {
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultFailure
		}
		metrics.CatalogImports.WithLabelValues(result).Inc()
	}()

	if err := validateURL(req.URL); err != nil {
		return err
	}

	body, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		logger.Warn("[ImportCatalog] fetch price list", zap.String("url", req.URL), zap.Error(err))
		return errors.SetCustomErrorf(constant.ErrFetch, "Unable to fetch price list: %s", err.Error())
	}

	doc, err := parseDocument(body)
	if err != nil {
		return err
	}

	shop, err := s.importShop(ctx, sellerID, req.URL, doc)
	if err != nil {
		return err
	}

	if err := s.importCategories(ctx, shop.ID, doc); err != nil {
		return err
	}

	err = s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		deleted, err := s.catalogRepo.DeleteShopListingsTx(ctx, tx, shop.ID)
		if err != nil {
			return err
		}
		logger.Debug("[ImportCatalog] previous listings removed", zap.Uint64("shop_id", shop.ID), zap.Int64("count", deleted))
		return nil
	})
	if err != nil {
		return dberr.Classify("[ImportCatalog] delete listings", err)
	}

	return s.importGoods(ctx, shop.ID, doc)
}

func (s *catalogAppImpl) importShop(ctx context.Context, sellerID uint64, sourceURL string, doc node) (*model.ShopEntity, error) {
	name, err := doc.String("shop")
	if err != nil {
		return nil, err
	}

	shop, err := s.catalogRepo.GetShop(ctx, &model.ShopFilter{Name: name, AccountID: sellerID})
	if err != nil {
		return nil, dberr.Classify("[ImportCatalog] get shop", err)
	}
	if shop != nil {
		return shop, nil
	}

	owner := sellerID
	shop, err = s.catalogRepo.CreateShop(ctx, &model.ShopEntity{
		Name:      name,
		URL:       sourceURL,
		AccountID: &owner,
		Status:    true,
	})
	if err != nil {
		return nil, dberr.Classify("[ImportCatalog] create shop", err)
	}
	return shop, nil
}

func (s *catalogAppImpl) importCategories(ctx context.Context, shopID uint64, doc node) error {
	categories, err := doc.Seq("categories")
	if err != nil {
		return err
	}

	for _, c := range categories {
		id, err := c.Uint("id")
		if err != nil {
			return err
		}
		name, err := c.String("name")
		if err != nil {
			return err
		}

		category, err := s.catalogRepo.GetCategory(ctx, id, name)
		if err != nil {
			return dberr.Classify("[ImportCatalog] get category", err)
		}
		if category == nil {
			if err := s.catalogRepo.CreateCategory(ctx, &model.CategoryEntity{ID: id, Name: name}); err != nil {
				return dberr.Classify("[ImportCatalog] create category", err)
			}
		}

		if err := s.catalogRepo.AddCategoryShop(ctx, id, shopID); err != nil {
			return dberr.Classify("[ImportCatalog] link category shop", err)
		}
	}
	return nil
}

func (s *catalogAppImpl) importGoods(ctx context.Context, shopID uint64, doc node) error {
	goods, err := doc.Seq("goods")
	if err != nil {
		return err
	}

	for _, g := range goods {
		name, err := g.String("name")
		if err != nil {
			return err
		}
		categoryID, err := g.Uint("category")
		if err != nil {
			return err
		}

		product, err := s.catalogRepo.GetProduct(ctx, name, categoryID)
		if err != nil {
			return dberr.Classify("[ImportCatalog] get product", err)
		}
		if product == nil {
			product, err = s.catalogRepo.CreateProduct(ctx, &model.ProductEntity{Name: name, CategoryID: categoryID})
			if err != nil {
				return dberr.Classify("[ImportCatalog] create product", err)
			}
		}

		listing := &model.ProductInfoEntity{ProductID: product.ID, ShopID: shopID}
		if listing.Price, err = g.Decimal("price"); err != nil {
			return err
		}
		if listing.PriceRRC, err = g.Decimal("price_rrc"); err != nil {
			return err
		}
		if listing.Quantity, err = g.Int("quantity"); err != nil {
			return err
		}

		listing, err = s.catalogRepo.CreateListing(ctx, listing)
		if err != nil {
			return dberr.Classify("[ImportCatalog] create listing", err)
		}
		metrics.ImportedListings.Inc()

		params, err := g.Parameters("parameters")
		if err != nil {
			return err
		}
		for _, p := range params {
			if err := s.importParameter(ctx, listing.ID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *catalogAppImpl) importParameter(ctx context.Context, listingID uint64, p parameterEntry) error {
	parameter, err := s.catalogRepo.GetParameter(ctx, p.name)
	if err != nil {
		return dberr.Classify("[ImportCatalog] get parameter", err)
	}
	if parameter == nil {
		parameter, err = s.catalogRepo.CreateParameter(ctx, &model.ParameterEntity{Name: p.name})
		if err != nil {
			return dberr.Classify("[ImportCatalog] create parameter", err)
		}
	}

	err = s.catalogRepo.CreateProductParameter(ctx, &model.ProductParameterEntity{
		ProductInfoID: listingID,
		ParameterID:   parameter.ID,
		Value:         p.value,
	})
	if err != nil {
		return dberr.Classify("[ImportCatalog] create product parameter", err)
	}
	return nil
}

func (s *catalogAppImpl) ListShops(ctx context.Context, page, perPage int) (*model.ShopListResponse, error) {
	page, perPage = normalizePage(page, perPage)

	shops, total, err := s.catalogRepo.ListShops(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListShops] err catalogRepo.ListShops", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ShopListResponse{
		Items:      shops,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context, page, perPage int) (*model.CategoryListResponse, error) {
	page, perPage = normalizePage(page, perPage)

	categories, total, err := s.catalogRepo.ListCategories(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListCategories] err catalogRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ids := make([]uint64, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	links, err := s.catalogRepo.ListCategoryShops(ctx, ids)
	if err != nil {
		logger.Error("[ListCategories] err catalogRepo.ListCategoryShops", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	shops := make(map[uint64][]model.ShopEntity, len(categories))
	for _, l := range links {
		shops[l.CategoryID] = append(shops[l.CategoryID], model.ShopEntity{
			ID:     l.ShopID,
			Name:   l.ShopName,
			Status: l.ShopStatus,
		})
	}

	items := make([]model.CategoryView, 0, len(categories))
	for _, c := range categories {
		view := model.CategoryView{ID: c.ID, Name: c.Name, Shops: shops[c.ID]}
		if view.Shops == nil {
			view.Shops = []model.ShopEntity{}
		}
		items = append(items, view)
	}

	return &model.CategoryListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter, page, perPage int) (*model.ProductListResponse, error) {
	page, perPage = normalizePage(page, perPage)

	rows, total, err := s.catalogRepo.ListListings(ctx, filter, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] err catalogRepo.ListListings", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ids := make([]uint64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	params, err := s.catalogRepo.ListParameters(ctx, ids)
	if err != nil {
		logger.Error("[ListProducts] err catalogRepo.ListParameters", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	grouped := model.GroupParameters(params)

	items := make([]model.ListingView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.View(grouped[r.ID]))
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *catalogAppImpl) GetSellerShop(ctx context.Context, sellerID uint64) (*model.ShopEntity, error) {
	shop, err := s.catalogRepo.GetShop(ctx, &model.ShopFilter{AccountID: sellerID})
	if err != nil {
		logger.Error("[GetSellerShop] err catalogRepo.GetShop", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if shop == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return shop, nil
}

func (s *catalogAppImpl) SetShopStatus(ctx context.Context, sellerID uint64, status bool) error {
	affected, err := s.catalogRepo.UpdateShopStatus(ctx, sellerID, status)
	if err != nil {
		logger.Error("[SetShopStatus] err catalogRepo.UpdateShopStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func validateURL(raw string) error {
	if err := validatorx.ValidateVar(raw, "required,url"); err != nil {
		return errors.SetCustomErrorf(constant.ErrValidation, "Enter a valid URL.")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.SetCustomErrorf(constant.ErrValidation, "Enter a valid URL.")
	}
	return nil
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
