package redis

import (
	"context"
	"time"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// RideCacheInterface defines the interface for ride cache operations.
type RideCacheInterface interface {
	GetRide(ctx context.Context, rideID string) (*domain.Ride, error)
	SetRide(ctx context.Context, ride *domain.Ride) error
	InvalidateRide(ctx context.Context, rideID string) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error)
	ReleaseRideLock(ctx context.Context, rideID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ RideCacheInterface        = (*CacheStore)(nil)
	_ LockStoreInterface        = (*LockStore)(nil)
	_ repository.RideRepository = (*CachedRideRepository)(nil)
)
