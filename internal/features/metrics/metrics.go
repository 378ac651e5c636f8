package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Number of orders placed through the storefront.",
	})

	ordersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_deleted_total",
		Help: "Number of orders removed through the admin console.",
	})

	orderedQuantityTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_ordered_quantity_total",
		Help: "Sum of item quantities across all placed orders.",
	})
)

// Handler exposes the default prometheus registry, mounted at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
