package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_submitted_total",
			Help: "Lead submissions by outcome",
		},
		[]string{"result"},
	)

	catalogFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_fallback_total",
			Help: "Catalog reads answered with the built-in fallback products",
		},
	)
)
