package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_rate_limit_rejected_total",
		Help: "Portal requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)
