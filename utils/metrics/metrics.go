package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// CatalogImports counts price list imports by outcome.
	CatalogImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_catalog_imports_total",
		Help: "Total number of catalog imports by result",
	}, []string{"result"})

	// ImportedListings counts listings created by imports.
	ImportedListings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_imported_listings_total",
		Help: "Total number of listings created by catalog imports",
	})

	// BasketItemOps counts basket item mutations, one increment per affected line.
	BasketItemOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_basket_item_operations_total",
		Help: "Total number of basket line mutations by operation and result",
	}, []string{"op", "result"})

	// OrdersPlaced counts basket to new transitions.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_orders_placed_total",
		Help: "Total number of orders placed",
	})

	// Notifications counts events handed to the notification sink.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_notifications_total",
		Help: "Total number of notification events by type and result",
	}, []string{"event", "result"})

	// HTTPRequestDuration tracks request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "marketplace_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
