package verify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpkernel_verify_checks_total",
			Help: "The total number of verification checks run, by outcome",
		},
		[]string{"check", "status"},
	)
	checkCases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpkernel_verify_cases_total",
			Help: "The total number of cases evaluated by verification checks",
		},
		[]string{"check"},
	)
	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mpkernel_verify_check_duration_seconds",
			Help: "The duration of verification checks in seconds",
		},
		[]string{"check"},
	)
)
