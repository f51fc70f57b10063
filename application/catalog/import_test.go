package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appcatalog "github.com/muhammadheryan/marketplace/application/catalog"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	catalogrepo "github.com/muhammadheryan/marketplace/repository/catalog"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/pricelist"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPriceList = `shop: Connect
categories:
  - id: 224
    name: Smartphones
  - id: 15
    name: Accessories
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Smartphone Apple iPhone XS Max 512GB (gold)
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Diagonal (inch)": 6.5
      "Resolution (px)": 2688x1242
      "Color": gold
  - id: 4216313
    category: 224
    model: apple/iphone/xs-max
    name: Smartphone Apple iPhone XS Max 256GB (silver)
    price: 89990.99
    price_rrc: 96990
    quantity: 9
    parameters:
      "Diagonal (inch)": 6.5
      "Color": silver
  - id: 4672670
    category: 15
    model: apple/airpods
    name: Headphones Apple AirPods
    price: 12490.50
    price_rrc: 13990
    quantity: 40
    parameters:
      "Color": white
`

// the third good has no price
const brokenPriceList = `shop: Connect
categories:
  - id: 224
    name: Smartphones
goods:
  - category: 224
    name: Phone A
    price: 100
    price_rrc: 120
    quantity: 1
    parameters:
      Color: black
  - category: 224
    name: Phone B
    price: 200
    price_rrc: 220
    quantity: 2
    parameters:
      Color: white
  - category: 224
    name: Phone C
    price_rrc: 320
    quantity: 3
    parameters:
      Color: red
`

type priceListServer struct {
	mu   sync.Mutex
	docs map[string]string
}

func newPriceListServer(t *testing.T, docs map[string]string) *httptest.Server {
	p := &priceListServer{docs: docs}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		doc, ok := p.docs[r.URL.Path]
		p.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newImportApp(t *testing.T) (appcatalog.CatalogApp, *sqlx.DB, uint64) {
	db := testdb.New(t)
	sellerID := testdb.Exec(t, db,
		`INSERT INTO account (email, password_hash, first_name, last_name, account_type, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"seller@example.com", "x", "Sam", "Seller", "seller", true, time.Now().UTC())

	app := appcatalog.NewCatalogApp(
		txrepo.NewTxRepository(db),
		catalogrepo.NewCatalogRepository(db),
		pricelist.NewHTTPFetcher(5*time.Second),
	)
	return app, db, uint64(sellerID)
}

func count(t *testing.T, db *sqlx.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, query, args...))
	return n
}

func TestImportCatalog_ReplacesPreviousListings(t *testing.T) {
	app, db, sellerID := newImportApp(t)
	srv := newPriceListServer(t, map[string]string{"/shop.yaml": fullPriceList})
	ctx := context.Background()

	require.NoError(t, app.ImportCatalog(ctx, sellerID, &model.ImportRequest{URL: srv.URL + "/shop.yaml"}))

	firstListings := count(t, db, `SELECT COUNT(*) FROM product_info`)
	firstParams := count(t, db, `SELECT COUNT(*) FROM product_parameter`)
	assert.Equal(t, 3, firstListings)
	assert.Equal(t, 6, firstParams)

	require.NoError(t, app.ImportCatalog(ctx, sellerID, &model.ImportRequest{URL: srv.URL + "/shop.yaml"}))

	assert.Equal(t, firstListings, count(t, db, `SELECT COUNT(*) FROM product_info`))
	assert.Equal(t, firstParams, count(t, db, `SELECT COUNT(*) FROM product_parameter`))
	assert.Equal(t, 1, count(t, db, `SELECT COUNT(*) FROM shop`))
	assert.Equal(t, 3, count(t, db, `SELECT COUNT(*) FROM product`))
	assert.Equal(t, 3, count(t, db, `SELECT COUNT(*) FROM parameter`))
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM category_shop`))

	var shop model.ShopEntity
	require.NoError(t, db.Get(&shop, `SELECT id, name, url, account_id, status FROM shop`))
	assert.Equal(t, "Connect", shop.Name)
	assert.Equal(t, srv.URL+"/shop.yaml", shop.URL)
	require.NotNil(t, shop.AccountID)
	assert.Equal(t, sellerID, *shop.AccountID)

	res, err := app.ListProducts(ctx, &model.ProductFilter{CategoryID: 224}, 1, 20)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(2), res.TotalCount)

	var silver model.ListingView
	for _, it := range res.Items {
		if it.Product.Name == "Smartphone Apple iPhone XS Max 256GB (silver)" {
			silver = it
		}
	}
	assert.True(t, silver.Price.Equal(decimal.RequireFromString("89990.99")), "price = %s", silver.Price)
	assert.Equal(t, "Smartphones", silver.Product.Category)
	assert.ElementsMatch(t, []model.ParameterValue{
		{Parameter: "Diagonal (inch)", Value: "6.5"},
		{Parameter: "Color", Value: "silver"},
	}, silver.Parameters)
}

func TestImportCatalog_PartialFailureKeepsEarlierGoods(t *testing.T) {
	app, db, sellerID := newImportApp(t)
	srv := newPriceListServer(t, map[string]string{"/broken.yaml": brokenPriceList})

	err := app.ImportCatalog(context.Background(), sellerID, &model.ImportRequest{URL: srv.URL + "/broken.yaml"})
	require.Error(t, err)
	assert.True(t, cerr.IsType(err, constant.ErrSchema), "err = %v", err)
	assert.Contains(t, err.Error(), "price")

	var names []string
	require.NoError(t, db.Select(&names, `SELECT p.name FROM product_info pi JOIN product p ON p.id = pi.product_id ORDER BY p.name`))
	assert.Equal(t, []string{"Phone A", "Phone B"}, names)
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM product_parameter`))
}

func TestImportCatalog_FetchErrors(t *testing.T) {
	app, db, sellerID := newImportApp(t)
	srv := newPriceListServer(t, map[string]string{})

	err := app.ImportCatalog(context.Background(), sellerID, &model.ImportRequest{URL: srv.URL + "/missing.yaml"})
	require.Error(t, err)
	assert.True(t, cerr.IsType(err, constant.ErrFetch), "err = %v", err)
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM shop`))
}

func TestImportCatalog_ClosedShopHiddenFromProducts(t *testing.T) {
	app, _, sellerID := newImportApp(t)
	srv := newPriceListServer(t, map[string]string{"/shop.yaml": fullPriceList})
	ctx := context.Background()

	require.NoError(t, app.ImportCatalog(ctx, sellerID, &model.ImportRequest{URL: srv.URL + "/shop.yaml"}))
	require.NoError(t, app.SetShopStatus(ctx, sellerID, false))

	res, err := app.ListProducts(ctx, nil, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	shop, err := app.GetSellerShop(ctx, sellerID)
	require.NoError(t, err)
	assert.False(t, shop.Status)

	categories, err := app.ListCategories(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, categories.Items, 2)
	for _, c := range categories.Items {
		require.Len(t, c.Shops, 1)
		assert.Equal(t, "Connect", c.Shops[0].Name)
	}
}
