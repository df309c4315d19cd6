package memory

import (
	"context"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// Ensure interfaces are satisfied.
var (
	_ repository.RideRepository    = (*RideRepository)(nil)
	_ repository.PaymentRepository = (*PaymentRepository)(nil)
	_ repository.ReceiptRepository = (*ReceiptRepository)(nil)
)

// RideRepository is an in-memory implementation of repository.RideRepository.
type RideRepository struct {
	store *Store
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ride, ok := r.store.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *ride
	return &c, nil
}

// GetAll retrieves all rides in seed order.
func (r *RideRepository) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rides := make([]*domain.Ride, 0, len(r.store.rideOrder))
	for _, id := range r.store.rideOrder {
		c := *r.store.rides[id]
		rides = append(rides, &c)
	}
	return rides, nil
}

// PaymentRepository is an in-memory implementation of repository.PaymentRepository.
type PaymentRepository struct {
	store *Store
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.payments[payment.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.store.payments[payment.ID] = copyPayment(payment)
	r.store.paymentOrder = append(r.store.paymentOrder, payment.ID)
	return nil
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payment, ok := r.store.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyPayment(payment), nil
}

// GetByRiderID retrieves all payments made by a rider, oldest first.
func (r *PaymentRepository) GetByRiderID(ctx context.Context, riderID string) ([]*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := make([]*domain.Payment, 0)
	for _, id := range r.store.paymentOrder {
		if p := r.store.payments[id]; p.RiderID == riderID {
			payments = append(payments, copyPayment(p))
		}
	}
	return payments, nil
}

// AttachReceipt links an issued receipt to its payment.
func (r *PaymentRepository) AttachReceipt(ctx context.Context, paymentID string, receipt *domain.Receipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payment, ok := r.store.payments[paymentID]
	if !ok {
		return repository.ErrNotFound
	}
	c := *receipt
	payment.Receipt = &c
	return nil
}

// ReceiptRepository is an in-memory implementation of repository.ReceiptRepository.
type ReceiptRepository struct {
	store *Store
}

// Create persists a new receipt. A payment holds at most one receipt.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.receipts[receipt.PaymentID]; ok {
		return repository.ErrAlreadyExists
	}
	c := *receipt
	r.store.receipts[receipt.PaymentID] = &c
	return nil
}

// GetByPaymentID retrieves the receipt issued for a payment.
func (r *ReceiptRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	receipt, ok := r.store.receipts[paymentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *receipt
	return &c, nil
}
