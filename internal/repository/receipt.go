package repository

import (
	"context"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
)

// ReceiptRepository defines the persistence operations for receipts.
type ReceiptRepository interface {
	// Create persists a new receipt.
	// Returns ErrAlreadyExists if the payment already has a receipt.
	Create(ctx context.Context, receipt *domain.Receipt) error

	// GetByPaymentID retrieves the receipt issued for a payment.
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Receipt, error)
}
