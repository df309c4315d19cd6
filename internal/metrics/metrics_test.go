package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_PaymentResolved(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.PaymentResolved("CARD", "COMPLETED", 278.48, true)
	m.PaymentResolved("CARD", "COMPLETED", 120, true)
	m.PaymentResolved("UPI", "FAILED", 99, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.payments.WithLabelValues("CARD", "COMPLETED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("UPI", "FAILED")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.paymentAmount))
}

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ReceiptIssued()
	m.FareQuoted()
	m.FareQuoted()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.receiptsIssued))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.fareQuotes))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.PaymentResolved("CASH", "COMPLETED", 10, true)
		m.ReceiptIssued()
		m.FareQuoted()
	})
}
