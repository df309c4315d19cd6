// Package memory holds the in-process ledger: rides, payments and receipts
// kept in memory for the lifetime of the process.
package memory

import (
	"sync"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
)

// Store is the shared state behind the memory repositories. A Store is created
// once per process and passed to whichever repositories need it.
type Store struct {
	mu       sync.RWMutex
	rides    map[string]*domain.Ride
	payments map[string]*domain.Payment
	receipts map[string]*domain.Receipt // keyed by payment ID

	// insertion order, so listings are stable
	rideOrder    []string
	paymentOrder []string
}

// Seed is the initial content of a Store.
type Seed struct {
	Rides    []domain.Ride
	Payments []domain.Payment
	Receipts []domain.Receipt
}

// NewStore creates a Store populated with the given seed. Receipts are
// attached to their payments when the payment is part of the seed.
func NewStore(seed Seed) *Store {
	s := &Store{
		rides:    make(map[string]*domain.Ride, len(seed.Rides)),
		payments: make(map[string]*domain.Payment, len(seed.Payments)),
		receipts: make(map[string]*domain.Receipt, len(seed.Receipts)),
	}

	for i := range seed.Rides {
		ride := seed.Rides[i]
		if _, ok := s.rides[ride.ID]; !ok {
			s.rideOrder = append(s.rideOrder, ride.ID)
		}
		s.rides[ride.ID] = &ride
	}

	for i := range seed.Payments {
		payment := seed.Payments[i]
		if _, ok := s.payments[payment.ID]; !ok {
			s.paymentOrder = append(s.paymentOrder, payment.ID)
		}
		s.payments[payment.ID] = &payment
	}

	for i := range seed.Receipts {
		receipt := seed.Receipts[i]
		s.receipts[receipt.PaymentID] = &receipt
		if payment, ok := s.payments[receipt.PaymentID]; ok {
			payment.Receipt = &receipt
		}
	}

	return s
}

// Rides returns the ride repository backed by this store.
func (s *Store) Rides() *RideRepository {
	return &RideRepository{store: s}
}

// Payments returns the payment repository backed by this store.
func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{store: s}
}

// Receipts returns the receipt repository backed by this store.
func (s *Store) Receipts() *ReceiptRepository {
	return &ReceiptRepository{store: s}
}

func copyPayment(p *domain.Payment) *domain.Payment {
	c := *p
	if p.Receipt != nil {
		r := *p.Receipt
		c.Receipt = &r
	}
	return &c
}
