package rates

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var skippedLiterals = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fxrates",
	Subsystem: "parser",
	Name:      "skipped_literals_total",
	Help:      "Matched rate literals dropped because they did not convert to a float",
})
