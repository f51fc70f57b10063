package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

// CatalogRepository covers shops, categories, products, listings and their
// parameters. Get methods return nil, nil when nothing matches.
type CatalogRepository interface {
	GetShop(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error)
	CreateShop(ctx context.Context, data *model.ShopEntity) (*model.ShopEntity, error)
	UpdateShopStatus(ctx context.Context, accountID uint64, status bool) (int64, error)
	ListShops(ctx context.Context, page, perPage int) ([]model.ShopEntity, int64, error)

	GetCategory(ctx context.Context, id uint64, name string) (*model.CategoryEntity, error)
	CreateCategory(ctx context.Context, data *model.CategoryEntity) error
	AddCategoryShop(ctx context.Context, categoryID, shopID uint64) error
	ListCategories(ctx context.Context, page, perPage int) ([]model.CategoryEntity, int64, error)
	ListCategoryShops(ctx context.Context, categoryIDs []uint64) ([]model.CategoryShop, error)

	GetProduct(ctx context.Context, name string, categoryID uint64) (*model.ProductEntity, error)
	CreateProduct(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)

	DeleteShopListingsTx(ctx context.Context, tx *sqlx.Tx, shopID uint64) (int64, error)
	CreateListing(ctx context.Context, data *model.ProductInfoEntity) (*model.ProductInfoEntity, error)
	GetListing(ctx context.Context, id uint64) (*model.ProductInfoEntity, error)
	ListListings(ctx context.Context, filter *model.ProductFilter, page, perPage int) ([]model.ListingRow, int64, error)
	GetListingsByIDs(ctx context.Context, ids []uint64) ([]model.ListingRow, error)

	GetParameter(ctx context.Context, name string) (*model.ParameterEntity, error)
	CreateParameter(ctx context.Context, data *model.ParameterEntity) (*model.ParameterEntity, error)
	CreateProductParameter(ctx context.Context, data *model.ProductParameterEntity) error
	ListParameters(ctx context.Context, listingIDs []uint64) ([]model.ParameterRow, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	getShopBase        = `SELECT id, name, url, account_id, status FROM shop WHERE 1 = 1`
	insertShopQuery    = `INSERT INTO shop (name, url, account_id, status) VALUES (?, ?, ?, ?)`
	updateShopStatus   = `UPDATE shop SET status = ? WHERE account_id = ?`
	listShopsQuery     = `SELECT id, name, url, account_id, status FROM shop ORDER BY name, id LIMIT ? OFFSET ?`
	countShopsQuery    = `SELECT COUNT(*) FROM shop`
	getCategoryQuery   = `SELECT id, name FROM category WHERE id = ? AND name = ?`
	insertCategory     = `INSERT INTO category (id, name) VALUES (?, ?)`
	countCategoryShop  = `SELECT COUNT(*) FROM category_shop WHERE category_id = ? AND shop_id = ?`
	insertCategoryShop = `INSERT INTO category_shop (category_id, shop_id) VALUES (?, ?)`
	listCategories     = `SELECT id, name FROM category ORDER BY name, id LIMIT ? OFFSET ?`
	countCategories    = `SELECT COUNT(*) FROM category`
	listCategoryShops  = `SELECT cs.category_id, s.id AS shop_id, s.name AS shop_name, s.status AS shop_status
FROM category_shop cs
JOIN shop s ON s.id = cs.shop_id
WHERE cs.category_id IN (?)
ORDER BY s.name, s.id`
	getProductQuery    = `SELECT id, name, category_id FROM product WHERE name = ? AND category_id = ? ORDER BY id LIMIT 1`
	insertProductQuery = `INSERT INTO product (name, category_id) VALUES (?, ?)`

	deleteShopParameters = `DELETE FROM product_parameter WHERE product_info_id IN (SELECT id FROM product_info WHERE shop_id = ?)`
	deleteShopOrderItems = `DELETE FROM order_item WHERE product_info_id IN (SELECT id FROM product_info WHERE shop_id = ?)`
	deleteShopListings   = `DELETE FROM product_info WHERE shop_id = ?`
	insertListingQuery   = `INSERT INTO product_info (product_id, shop_id, quantity, price, price_rrc) VALUES (?, ?, ?, ?, ?)`
	getListingQuery      = `SELECT id, product_id, shop_id, quantity, price, price_rrc FROM product_info WHERE id = ?`

	listingSelect = `SELECT pi.id, pi.shop_id, s.account_id AS shop_account_id, pi.quantity, pi.price, pi.price_rrc, p.name AS product_name, c.name AS category_name
FROM product_info pi
JOIN product p ON p.id = pi.product_id
JOIN category c ON c.id = p.category_id
JOIN shop s ON s.id = pi.shop_id`
	listingCount = `SELECT COUNT(*)
FROM product_info pi
JOIN product p ON p.id = pi.product_id
JOIN shop s ON s.id = pi.shop_id`

	getParameterQuery       = `SELECT id, name FROM parameter WHERE name = ?`
	insertParameterQuery    = `INSERT INTO parameter (name) VALUES (?)`
	insertProductParamQuery = `INSERT INTO product_parameter (product_info_id, parameter_id, value) VALUES (?, ?, ?)`
	listParametersQuery     = `SELECT pp.product_info_id, pa.name AS parameter, pp.value
FROM product_parameter pp
JOIN parameter pa ON pa.id = pp.parameter_id
WHERE pp.product_info_id IN (?)
ORDER BY pp.value, pp.id`
)

func (s *SQL) GetShop(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error) {
	query := getShopBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.AccountID != 0 {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.Name != "" {
		query += " AND name = ?"
		args = append(args, filter.Name)
	}
	query += " ORDER BY id LIMIT 1"

	var entity model.ShopEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateShop(ctx context.Context, data *model.ShopEntity) (*model.ShopEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertShopQuery, data.Name, data.URL, data.AccountID, data.Status)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) UpdateShopStatus(ctx context.Context, accountID uint64, status bool) (int64, error) {
	res, err := s.conn.ExecContext(ctx, updateShopStatus, status, accountID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) ListShops(ctx context.Context, page, perPage int) ([]model.ShopEntity, int64, error) {
	items := make([]model.ShopEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listShopsQuery, perPage, (page-1)*perPage); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countShopsQuery); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetCategory(ctx context.Context, id uint64, name string) (*model.CategoryEntity, error) {
	var entity model.CategoryEntity
	if err := s.conn.GetContext(ctx, &entity, getCategoryQuery, id, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateCategory(ctx context.Context, data *model.CategoryEntity) error {
	_, err := s.conn.ExecContext(ctx, insertCategory, data.ID, data.Name)
	return err
}

// AddCategoryShop links a shop to a category; an existing link is left alone.
func (s *SQL) AddCategoryShop(ctx context.Context, categoryID, shopID uint64) error {
	var n int64
	if err := s.conn.GetContext(ctx, &n, countCategoryShop, categoryID, shopID); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err := s.conn.ExecContext(ctx, insertCategoryShop, categoryID, shopID)
	return err
}

func (s *SQL) ListCategories(ctx context.Context, page, perPage int) ([]model.CategoryEntity, int64, error) {
	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listCategories, perPage, (page-1)*perPage); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countCategories); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) ListCategoryShops(ctx context.Context, categoryIDs []uint64) ([]model.CategoryShop, error) {
	rows := make([]model.CategoryShop, 0)
	if len(categoryIDs) == 0 {
		return rows, nil
	}
	query, args, err := sqlx.In(listCategoryShops, categoryIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &rows, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SQL) GetProduct(ctx context.Context, name string, categoryID uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := s.conn.GetContext(ctx, &entity, getProductQuery, name, categoryID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateProduct(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertProductQuery, data.Name, data.CategoryID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

// DeleteShopListingsTx removes every listing of the shop together with the
// parameter values and order lines that reference those listings.
func (s *SQL) DeleteShopListingsTx(ctx context.Context, tx *sqlx.Tx, shopID uint64) (int64, error) {
	if _, err := tx.ExecContext(ctx, deleteShopParameters, shopID); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, deleteShopOrderItems, shopID); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, deleteShopListings, shopID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) CreateListing(ctx context.Context, data *model.ProductInfoEntity) (*model.ProductInfoEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertListingQuery,
		data.ProductID, data.ShopID, data.Quantity, data.Price.StringFixed(2), data.PriceRRC.StringFixed(2))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) GetListing(ctx context.Context, id uint64) (*model.ProductInfoEntity, error) {
	var entity model.ProductInfoEntity
	if err := s.conn.GetContext(ctx, &entity, getListingQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListListings(ctx context.Context, filter *model.ProductFilter, page, perPage int) ([]model.ListingRow, int64, error) {
	where := " WHERE s.status = ?"
	args := []any{true}

	if filter != nil {
		if filter.CategoryID != 0 {
			where += " AND p.category_id = ?"
			args = append(args, filter.CategoryID)
		}
		if filter.ProductID != 0 {
			where += " AND pi.product_id = ?"
			args = append(args, filter.ProductID)
		}
		if filter.ShopID != 0 {
			where += " AND pi.shop_id = ?"
			args = append(args, filter.ShopID)
		}
	}

	items := make([]model.ListingRow, 0)
	query := listingSelect + where + " ORDER BY p.name, pi.id LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), perPage, (page-1)*perPage)
	if err := s.conn.SelectContext(ctx, &items, query, pageArgs...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, listingCount+where, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetListingsByIDs(ctx context.Context, ids []uint64) ([]model.ListingRow, error) {
	rows := make([]model.ListingRow, 0)
	if len(ids) == 0 {
		return rows, nil
	}
	query, args, err := sqlx.In(listingSelect+" WHERE pi.id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &rows, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SQL) GetParameter(ctx context.Context, name string) (*model.ParameterEntity, error) {
	var entity model.ParameterEntity
	if err := s.conn.GetContext(ctx, &entity, getParameterQuery, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateParameter(ctx context.Context, data *model.ParameterEntity) (*model.ParameterEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertParameterQuery, data.Name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) CreateProductParameter(ctx context.Context, data *model.ProductParameterEntity) error {
	res, err := s.conn.ExecContext(ctx, insertProductParamQuery, data.ProductInfoID, data.ParameterID, data.Value)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	data.ID = uint64(id)
	return nil
}

func (s *SQL) ListParameters(ctx context.Context, listingIDs []uint64) ([]model.ParameterRow, error) {
	rows := make([]model.ParameterRow, 0)
	if len(listingIDs) == 0 {
		return rows, nil
	}
	query, args, err := sqlx.In(listParametersQuery, listingIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &rows, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return rows, nil
}
