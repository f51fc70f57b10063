package model

import "github.com/shopspring/decimal"

type ShopEntity struct {
	ID        uint64  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	URL       string  `db:"url" json:"url,omitempty"`
	AccountID *uint64 `db:"account_id" json:"-"`
	Status    bool    `db:"status" json:"status"`
}

type ShopFilter struct {
	ID        uint64
	AccountID uint64
	Name      string
}

type CategoryEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CategoryShop struct {
	CategoryID uint64 `db:"category_id"`
	ShopID     uint64 `db:"shop_id"`
	ShopName   string `db:"shop_name"`
	ShopStatus bool   `db:"shop_status"`
}

type CategoryView struct {
	ID    uint64       `json:"id"`
	Name  string       `json:"name"`
	Shops []ShopEntity `json:"shops"`
}

type ProductEntity struct {
	ID         uint64 `db:"id"`
	Name       string `db:"name"`
	CategoryID uint64 `db:"category_id"`
}

// ProductInfoEntity is a listing: one shop's price and stock for one product.
type ProductInfoEntity struct {
	ID        uint64          `db:"id"`
	ProductID uint64          `db:"product_id"`
	ShopID    uint64          `db:"shop_id"`
	Quantity  int64           `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	PriceRRC  decimal.Decimal `db:"price_rrc"`
}

type ParameterEntity struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

type ProductParameterEntity struct {
	ID            uint64 `db:"id"`
	ProductInfoID uint64 `db:"product_info_id"`
	ParameterID   uint64 `db:"parameter_id"`
	Value         string `db:"value"`
}

// ListingRow is a listing joined with its product and category names and
// the account owning its shop.
type ListingRow struct {
	ID           uint64          `db:"id"`
	ShopID       uint64          `db:"shop_id"`
	ShopOwnerID  *uint64         `db:"shop_account_id"`
	Quantity     int64           `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
	PriceRRC     decimal.Decimal `db:"price_rrc"`
	ProductName  string          `db:"product_name"`
	CategoryName string          `db:"category_name"`
}

type ParameterRow struct {
	ProductInfoID uint64 `db:"product_info_id"`
	Parameter     string `db:"parameter"`
	Value         string `db:"value"`
}

type ProductFilter struct {
	CategoryID uint64
	ProductID  uint64
	ShopID     uint64
}

type ProductView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ParameterValue struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
}

type ListingView struct {
	ID         uint64           `json:"id"`
	ShopID     uint64           `json:"shop"`
	Quantity   int64            `json:"quantity"`
	Price      decimal.Decimal  `json:"price"`
	PriceRRC   decimal.Decimal  `json:"price_rrc"`
	Product    ProductView      `json:"product"`
	Parameters []ParameterValue `json:"product_parameters"`
}

type ProductListResponse struct {
	Items      []ListingView `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}

type ShopListResponse struct {
	Items      []ShopEntity `json:"items"`
	TotalCount int64        `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

type CategoryListResponse struct {
	Items      []CategoryView `json:"items"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
}

type ImportRequest struct {
	URL string `json:"url" validate:"required"`
}

type ShopStatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

// View renders the listing with its parameter values.
func (r ListingRow) View(params []ParameterValue) ListingView {
	if params == nil {
		params = []ParameterValue{}
	}
	return ListingView{
		ID:       r.ID,
		ShopID:   r.ShopID,
		Quantity: r.Quantity,
		Price:    r.Price,
		PriceRRC: r.PriceRRC,
		Product: ProductView{
			Name:     r.ProductName,
			Category: r.CategoryName,
		},
		Parameters: params,
	}
}

// GroupParameters indexes parameter rows by listing id.
func GroupParameters(rows []ParameterRow) map[uint64][]ParameterValue {
	grouped := make(map[uint64][]ParameterValue, len(rows))
	for _, row := range rows {
		grouped[row.ProductInfoID] = append(grouped[row.ProductInfoID], ParameterValue{
			Parameter: row.Parameter,
			Value:     row.Value,
		})
	}
	return grouped
}
