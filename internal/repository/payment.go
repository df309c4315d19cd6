package repository

import (
	"context"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by ID.
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetByRiderID retrieves all payments made by a rider, oldest first.
	// Returns an empty slice if the rider has none.
	GetByRiderID(ctx context.Context, riderID string) ([]*domain.Payment, error)

	// AttachReceipt links an issued receipt to its payment.
	AttachReceipt(ctx context.Context, paymentID string, receipt *domain.Receipt) error
}
