package repository

import (
	"context"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
)

// RideRepository is the read-only ride data provider.
type RideRepository interface {
	// GetByID retrieves a ride by ID.
	// Returns ErrNotFound if no ride exists with the given ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetAll retrieves all rides.
	GetAll(ctx context.Context) ([]*domain.Ride, error)
}
