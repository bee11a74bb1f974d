package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DemoFallbackTotal считает ответы, отданные из демо-набора вместо бэкенда.
	DemoFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_demo_fallback_total",
			Help: "Reads served from demo data after a backend failure",
		},
		[]string{"operation"},
	)

	TrackingScreensMounted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_tracking_screens_mounted",
			Help: "Tracking screens with an active polling tracker",
		},
	)

	LocationPingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_location_pings_total",
			Help: "Shipment location events by processing outcome",
		},
		[]string{"outcome"},
	)
)
