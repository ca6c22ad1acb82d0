package refresh

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fxrates",
		Subsystem: "refresh",
		Name:      "duration_seconds",
		Help:      "Time spent on one fetch-parse-store cycle",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	})

	ratesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fxrates",
		Subsystem: "refresh",
		Name:      "rates_loaded",
		Help:      "Quotes in the most recently parsed table",
	})
)
