package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EscrowAuthorizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timetrack_escrow_authorized_total",
		Help: "Total number of escrow holds successfully authorized.",
	})

	EscrowReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timetrack_escrow_released_total",
		Help: "Total number of escrows released to providers.",
	})

	PaymentErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timetrack_payment_errors_total",
		Help: "Total number of payment API call failures.",
	},
		[]string{"action"},
	)
)
