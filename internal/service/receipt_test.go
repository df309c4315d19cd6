package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
	"github.com/Abinaya503/my-cab-payment/internal/repository/memory"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

func TestGenerateReceipt_NewPayment(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed)
	ctx := context.Background()

	payment, err := l.payments.ProcessPayment(ctx, ride001Request())
	require.NoError(t, err)

	receipt, err := l.receipts.GenerateReceipt(ctx, payment.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.ID, "receipt-"))
	assert.Equal(t, payment.ID, receipt.PaymentID)
	assert.Equal(t, "ride-001", receipt.RideID)
	assert.Equal(t, "user-001", receipt.RiderID)
	assert.Equal(t, "driver-001", receipt.DriverID)
	assert.Equal(t, "Airport Terminal 1", receipt.PickupLocation)
	assert.Equal(t, "City Center Mall", receipt.DropoffLocation)
	assert.Equal(t, 15.5, receipt.DistanceKm)
	assert.Equal(t, 25.0, receipt.DurationMin)
	assert.Equal(t, domain.PaymentMethodCard, receipt.Method)
	assert.Equal(t, payment.Amount, receipt.Amount)
	assert.Equal(t, payment.CreatedAt, receipt.PaidAt)

	assert.Equal(t, 50.0, receipt.Fare.BaseFare)
	assert.InDelta(t, 186.0, receipt.Fare.DistanceFare, 1e-9)
	assert.Zero(t, receipt.Fare.TimeFare)
	assert.InDelta(t, 42.48, receipt.Fare.Tax, 1e-9)
	assert.InDelta(t, 278.48, receipt.Fare.Total, 1e-9)
	assert.Equal(t, "INR", receipt.Fare.Currency)

	stored, err := l.payments.GetPayment(ctx, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Receipt)
	assert.Equal(t, receipt.ID, stored.Receipt.ID)

	fetched, err := l.receipts.GetReceipt(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, receipt, fetched)
}

func TestGenerateReceipt_Idempotent(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed)
	ctx := context.Background()

	payment, err := l.payments.ProcessPayment(ctx, ride001Request())
	require.NoError(t, err)

	first, err := l.receipts.GenerateReceipt(ctx, payment.ID)
	require.NoError(t, err)
	second, err := l.receipts.GenerateReceipt(ctx, payment.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	ready := 0
	for _, n := range l.notifier.Sent() {
		if n.Type == service.NotificationReceiptReady {
			ready++
		}
	}
	assert.Equal(t, 1, ready)
}

func TestGenerateReceipt_SeededPayment(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed)

	receipt, err := l.receipts.GenerateReceipt(context.Background(), "pay-001")
	require.NoError(t, err)

	assert.Equal(t, "receipt-001", receipt.ID)
	assert.Equal(t, 285.4, receipt.Fare.Total)
}

func TestGenerateReceipt_Errors(t *testing.T) {
	t.Parallel()

	processing := domain.Payment{
		ID: "pay-p", RideID: "ride-001", RiderID: "user-001",
		Amount: 100, Method: domain.PaymentMethodCash, Status: domain.PaymentStatusProcessing,
	}
	failed := processing
	failed.ID, failed.Status = "pay-f", domain.PaymentStatusFailed
	orphan := processing
	orphan.ID, orphan.RideID, orphan.Status = "pay-o", "ride-gone", domain.PaymentStatusCompleted

	seed := memory.DefaultSeed()
	seed.Payments = append(seed.Payments, processing, failed, orphan)

	tests := []struct {
		name      string
		paymentID string
		wantErr   error
	}{
		{"empty id", "", service.ErrInvalidPaymentID},
		{"unknown payment", "nonexistent", service.ErrPaymentNotFound},
		{"processing payment", "pay-p", service.ErrPaymentNotCompleted},
		{"failed payment", "pay-f", service.ErrPaymentNotCompleted},
		{"missing ride", "pay-o", service.ErrRideNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(seed, service.AlwaysSucceed)

			receipt, err := l.receipts.GenerateReceipt(context.Background(), tt.paymentID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, receipt)
		})
	}
}

func TestGenerateReceipt_NotFoundIsRepositoryNotFound(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed)

	_, err := l.receipts.GenerateReceipt(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGenerateReceipt_WaitsReceiptDelay(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed, service.WithLatency(service.Latency{Receipt: 500 * time.Millisecond}))

	_, err := l.receipts.GenerateReceipt(context.Background(), "pay-002")
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{500 * time.Millisecond}, l.clock.Delays())
}

func TestGenerateReceipt_CancelledDuringDelay(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed,
		service.WithClock(clockz.NewFakeClockAt(testNow)),
		service.WithLatency(service.Latency{Receipt: time.Second}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	receipt, err := l.receipts.GenerateReceipt(ctx, "pay-001")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, receipt)
}

func TestGenerateReceipt_NotificationFailureIsLogged(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.WarnLevel)
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed,
		service.WithNotifier(failingNotifier{err: errors.New("push gateway down")}),
		service.WithLogger(zap.New(core)),
	)

	receipt, err := l.receipts.GenerateReceipt(context.Background(), "pay-002")
	require.NoError(t, err)

	entries := logs.FilterMessage("failed to send notification").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, receipt.ID, fields["receipt_id"])
	assert.Equal(t, "pay-002", fields["payment_id"])
	assert.Equal(t, "push gateway down", fields["error"])
}

func TestGetReceipt(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed)
	ctx := context.Background()

	receipt, err := l.receipts.GetReceipt(ctx, "pay-001")
	require.NoError(t, err)
	assert.Equal(t, "receipt-001", receipt.ID)

	_, err = l.receipts.GetReceipt(ctx, "pay-002")
	assert.ErrorIs(t, err, service.ErrReceiptNotFound)

	_, err = l.receipts.GetReceipt(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidPaymentID)
}

func TestFormatReceipt(t *testing.T) {
	t.Parallel()
	l := newLedger(memory.DefaultSeed(), service.AlwaysSucceed)

	receipt, err := l.receipts.GenerateReceipt(context.Background(), "pay-002")
	require.NoError(t, err)

	text := l.receipts.FormatReceipt(receipt)

	assert.Contains(t, text, "RIDE RECEIPT")
	assert.Contains(t, text, "Payment ID: pay-002")
	assert.Contains(t, text, "Pickup:   Central Railway Station")
	assert.Contains(t, text, "Dropoff:  Tech Park")
	assert.Contains(t, text, "Distance: 8.20 km")
	assert.Contains(t, text, "Duration: 18 min")
	assert.Contains(t, text, "Base Fare:     INR 50.00")
	assert.Contains(t, text, "Distance Fare: INR 98.40")
	assert.Contains(t, text, "Tax:           INR 26.71")
	assert.Contains(t, text, "TOTAL:         INR 175.11")
	assert.Contains(t, text, "Method: UPI")
	assert.Contains(t, text, "Paid:   INR 178.20")
	assert.Contains(t, text, "Thank you for riding with us!")
}
