package metoffice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metoffice_api_calls_total",
			Help: "Total Met Office API calls",
		},
		[]string{"endpoint", "status"},
	)

	apiLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metoffice_api_latency_seconds",
			Help:    "Met Office API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	forecastCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metoffice_forecast_cache_total",
			Help: "Forecast cache lookups by result",
		},
		[]string{"endpoint", "result"},
	)
)
