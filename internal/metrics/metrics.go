// Package metrics exposes Prometheus instruments for the payment ledger.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ridepay"

// Metrics holds the ledger instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	payments       *prometheus.CounterVec
	paymentAmount  *prometheus.HistogramVec
	receiptsIssued prometheus.Counter
	fareQuotes     prometheus.Counter
}

// New creates the ledger instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Payments resolved by the ledger, by method and final status.",
		}, []string{"method", "status"}),
		paymentAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_amount",
			Help:      "Amount of completed payments.",
			Buckets:   []float64{50, 100, 200, 300, 500, 1000, 2000},
		}, []string{"method"}),
		receiptsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receipts_issued_total",
			Help:      "Receipts generated for completed payments.",
		}),
		fareQuotes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fare_quotes_total",
			Help:      "Fare breakdowns quoted for rides.",
		}),
	}

	reg.MustRegister(m.payments, m.paymentAmount, m.receiptsIssued, m.fareQuotes)
	return m
}

// Handler returns the HTTP handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// PaymentResolved records a payment reaching a terminal status.
func (m *Metrics) PaymentResolved(method, status string, amount float64, completed bool) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(method, status).Inc()
	if completed {
		m.paymentAmount.WithLabelValues(method).Observe(amount)
	}
}

// ReceiptIssued records a newly generated receipt.
func (m *Metrics) ReceiptIssued() {
	if m == nil {
		return
	}
	m.receiptsIssued.Inc()
}

// FareQuoted records a fare breakdown served to a caller.
func (m *Metrics) FareQuoted() {
	if m == nil {
		return
	}
	m.fareQuotes.Inc()
}
