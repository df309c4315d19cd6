package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// ReceiptService handles receipt generation.
type ReceiptService struct {
	paymentRepo repository.PaymentRepository
	receiptRepo repository.ReceiptRepository
	rideRepo    repository.RideRepository
	calculator  *FareCalculator
	settings
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(
	paymentRepo repository.PaymentRepository,
	receiptRepo repository.ReceiptRepository,
	rideRepo repository.RideRepository,
	calculator *FareCalculator,
	opts ...Option,
) *ReceiptService {
	return &ReceiptService{
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		rideRepo:    rideRepo,
		calculator:  calculator,
		settings:    newSettings(opts),
	}
}

// GenerateReceipt issues the receipt for a completed payment.
//
// The fare is recomputed from the ride, so the breakdown reflects the current
// tariff rather than the stored payment amount. A payment that already has a
// receipt gets the existing one back.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if payment.Status != domain.PaymentStatusCompleted {
		return nil, fmt.Errorf("%w: status %s", ErrPaymentNotCompleted, payment.Status)
	}

	if payment.Receipt != nil {
		if err := s.wait(ctx, s.latency.Receipt); err != nil {
			return nil, err
		}
		return payment.Receipt, nil
	}

	ride, err := s.rideRepo.GetByID(ctx, payment.RideID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, err
	}

	receipt := &domain.Receipt{
		ID:              newReceiptID(),
		PaymentID:       payment.ID,
		RideID:          payment.RideID,
		RiderID:         payment.RiderID,
		DriverID:        ride.DriverID,
		Amount:          payment.Amount,
		Method:          payment.Method,
		Fare:            s.calculator.Calculate(ride),
		PickupLocation:  ride.PickupLocation,
		DropoffLocation: ride.DropoffLocation,
		DistanceKm:      ride.DistanceKm,
		DurationMin:     ride.DurationMin,
		PaidAt:          payment.CreatedAt,
		IssuedAt:        s.clock.Now(),
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Lost a race with a concurrent request for the same payment.
			return s.receiptRepo.GetByPaymentID(ctx, paymentID)
		}
		return nil, err
	}

	if err := s.paymentRepo.AttachReceipt(ctx, payment.ID, receipt); err != nil {
		return nil, err
	}

	s.logger.Info("receipt issued",
		zap.String("receipt_id", receipt.ID),
		zap.String("payment_id", receipt.PaymentID),
		zap.Float64("total", receipt.Fare.Total),
	)
	s.metrics.ReceiptIssued()
	if s.notifier != nil {
		if err := s.notifier.NotifyReceiptReady(ctx, receipt); err != nil {
			s.logger.Warn("failed to send notification",
				zap.String("receipt_id", receipt.ID),
				zap.String("payment_id", receipt.PaymentID),
				zap.Error(err),
			)
		}
	}

	if err := s.wait(ctx, s.latency.Receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

// GetReceipt retrieves the receipt issued for a payment.
func (s *ReceiptService) GetReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	if err := s.wait(ctx, s.latency.Lookup); err != nil {
		return nil, err
	}

	receipt, err := s.receiptRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}
	return receipt, nil
}

// FormatReceipt formats the receipt as a string (for email/print).
func (s *ReceiptService) FormatReceipt(receipt *domain.Receipt) string {
	currency := receipt.Fare.Currency

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("=====================================")
	line("            RIDE RECEIPT")
	line("=====================================")
	line("Receipt ID: %s", receipt.ID)
	line("Payment ID: %s", receipt.PaymentID)
	line("Ride ID:    %s", receipt.RideID)
	line("Date:       %s", receipt.PaidAt.Format("Jan 02, 2006 3:04 PM"))
	line("")
	line("TRIP DETAILS")
	line("-------------------------------------")
	line("Pickup:   %s", receipt.PickupLocation)
	line("Dropoff:  %s", receipt.DropoffLocation)
	line("Distance: %s km", formatAmount(receipt.DistanceKm))
	line("Duration: %s min", decimal.NewFromFloat(receipt.DurationMin).String())
	line("Driver:   %s", receipt.DriverID)
	line("")
	line("FARE BREAKDOWN")
	line("-------------------------------------")
	line("Base Fare:     %s %s", currency, formatAmount(receipt.Fare.BaseFare))
	line("Distance Fare: %s %s", currency, formatAmount(receipt.Fare.DistanceFare))
	line("Time Fare:     %s %s", currency, formatAmount(receipt.Fare.TimeFare))
	line("Tax:           %s %s", currency, formatAmount(receipt.Fare.Tax))
	line("-------------------------------------")
	line("TOTAL:         %s %s", currency, formatAmount(receipt.Fare.Total))
	line("")
	line("PAYMENT")
	line("-------------------------------------")
	line("Method: %s", receipt.Method)
	line("Paid:   %s %s", currency, formatAmount(receipt.Amount))
	line("")
	line("=====================================")
	line("     Thank you for riding with us!")
	line("=====================================")

	return b.String()
}

// formatAmount renders an amount with two decimal places, rounding half away from zero.
func formatAmount(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

func newReceiptID() string {
	return "receipt-" + uuid.NewString()
}
