package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Calls to the bookstore API by endpoint and status code.",
	}, []string{"endpoint", "code"})

	cartActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_actions_total",
		Help:      "Cart mutations by action.",
	}, []string{"action"})

	wishlistToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlist_toggles_total",
		Help:      "Wishlist toggles by outcome.",
	}, []string{"outcome"})
)

// Upstream records one bookstore API call; code 0 means a transport error.
func Upstream(endpoint string, code int) {
	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
}

func CartAction(action string) {
	cartActions.WithLabelValues(action).Inc()
}

func WishlistToggle(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "reverted"
	}
	wishlistToggles.WithLabelValues(outcome).Inc()
}
