package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckoutMetrics counts the checkout funnel: orders placed, payments
// confirmed, gateway session failures, duplicate confirmation callbacks.
type CheckoutMetrics struct {
	OrdersPlaced       prometheus.Counter
	OrdersConfirmed    prometheus.Counter
	GatewayFailures    prometheus.Counter
	DuplicateCallbacks prometheus.Counter
}

func NewCheckoutMetrics() *CheckoutMetrics {
	m := &CheckoutMetrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "orders_placed_total",
			Help:      "Orders that reached PendingPayment.",
		}),
		OrdersConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "orders_confirmed_total",
			Help:      "Orders finalized by a payment confirmation.",
		}),
		GatewayFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "gateway_session_failures_total",
			Help:      "Payment session requests rejected by the gateway.",
		}),
		DuplicateCallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "duplicate_confirmations_total",
			Help:      "Confirmation callbacks that matched no pending order.",
		}),
	}
	prometheus.MustRegister(m.OrdersPlaced, m.OrdersConfirmed, m.GatewayFailures, m.DuplicateCallbacks)
	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}
