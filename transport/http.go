package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	accountapp "github.com/muhammadheryan/marketplace/application/account"
	catalogapp "github.com/muhammadheryan/marketplace/application/catalog"
	contactapp "github.com/muhammadheryan/marketplace/application/contact"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const apiPrefix = "/api/v1"

type RestHandler struct {
	AccountApp accountapp.AccountApp
	ContactApp contactapp.ContactApp
	CatalogApp catalogapp.CatalogApp
	OrderApp   orderapp.OrderApp
}

type Options struct {
	// InternalAPIKey guards /internal/ endpoints; empty disables them.
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()

	sellerOnly := RequireAccountType(constant.AccountTypeSeller)
	buyerOnly := RequireAccountType(constant.AccountTypeBuyer)

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Internal
	mux.Handle("/internal/metrics", InternalMiddleware(opts.InternalAPIKey)(promhttp.Handler())).Methods(http.MethodGet)

	api := mux.PathPrefix(apiPrefix).Subrouter()

	// Account
	api.HandleFunc("/account/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/account/confirm", rh.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/account/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/account/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/account", rh.GetAccount).Methods(http.MethodGet)
	api.HandleFunc("/account", rh.UpdateAccount).Methods(http.MethodPatch)

	// Contacts
	api.HandleFunc("/contacts", rh.ListContacts).Methods(http.MethodGet)
	api.HandleFunc("/contacts", rh.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/contacts", rh.UpdateContact).Methods(http.MethodPatch)
	api.HandleFunc("/contacts", rh.DeleteContact).Methods(http.MethodDelete)

	// Catalog
	api.HandleFunc("/shops", rh.ListShops).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)

	// Buyer
	api.HandleFunc("/basket", buyerOnly(rh.ViewBasket)).Methods(http.MethodGet)
	api.HandleFunc("/basket", buyerOnly(rh.AddBasketItems)).Methods(http.MethodPost)
	api.HandleFunc("/basket", buyerOnly(rh.UpdateBasketItems)).Methods(http.MethodPatch)
	api.HandleFunc("/basket", buyerOnly(rh.RemoveBasketItems)).Methods(http.MethodDelete)
	api.HandleFunc("/orders", buyerOnly(rh.ListBuyerOrders)).Methods(http.MethodGet)
	api.HandleFunc("/orders", buyerOnly(rh.PlaceOrder)).Methods(http.MethodPatch)

	// Seller
	api.HandleFunc("/partner/update", sellerOnly(rh.ImportCatalog)).Methods(http.MethodPost)
	api.HandleFunc("/partner/shop", sellerOnly(rh.GetSellerShop)).Methods(http.MethodGet)
	api.HandleFunc("/partner/shop", sellerOnly(rh.SetShopStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/partner/orders", sellerOnly(rh.ListSellerOrders)).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.AccountApp))

	return mux
}
