package service

import (
	"context"
	"errors"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// RideService serves ride details and fare quotes.
type RideService struct {
	rideRepo   repository.RideRepository
	calculator *FareCalculator
	settings
}

// NewRideService creates a new RideService.
func NewRideService(rideRepo repository.RideRepository, calculator *FareCalculator, opts ...Option) *RideService {
	return &RideService{
		rideRepo:   rideRepo,
		calculator: calculator,
		settings:   newSettings(opts),
	}
}

// FareQuote is a ride together with its computed fare.
type FareQuote struct {
	Ride *domain.Ride
	Fare domain.FareBreakdown
}

// GetRideDetails retrieves a ride by ID after the simulated lookup latency.
func (s *RideService) GetRideDetails(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	if err := s.wait(ctx, s.latency.RideLookup); err != nil {
		return nil, err
	}

	return s.lookupRide(ctx, rideID)
}

// ListRides retrieves all known rides.
func (s *RideService) ListRides(ctx context.Context) ([]*domain.Ride, error) {
	if err := s.wait(ctx, s.latency.RideLookup); err != nil {
		return nil, err
	}

	return s.rideRepo.GetAll(ctx)
}

// QuoteFare looks up a ride and prices it.
func (s *RideService) QuoteFare(ctx context.Context, rideID string) (*FareQuote, error) {
	ride, err := s.GetRideDetails(ctx, rideID)
	if err != nil {
		return nil, err
	}

	s.metrics.FareQuoted()

	return &FareQuote{
		Ride: ride,
		Fare: s.calculator.Calculate(ride),
	}, nil
}

// Tariff returns the rates rides are priced with.
func (s *RideService) Tariff() FareRates {
	return s.calculator.Rates()
}

func (s *RideService) lookupRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, err
	}
	return ride, nil
}
