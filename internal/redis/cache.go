package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// RideCacheTTL bounds how stale a cached ride can be. Completed rides do not
// change, so the TTL only limits memory use.
const RideCacheTTL = 5 * time.Minute

const rideCachePrefix = "cache:ride:"

// ErrCorruptEntry is returned by GetRide when the cached value cannot be decoded.
var ErrCorruptEntry = errors.New("corrupt ride cache entry")

// CachedRide is the cached form of a completed ride.
type CachedRide struct {
	ID              string    `json:"id"`
	RiderID         string    `json:"rider_id"`
	DriverID        string    `json:"driver_id"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMin     float64   `json:"duration_min"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}

func toCachedRide(r *domain.Ride) *CachedRide {
	return &CachedRide{
		ID:              r.ID,
		RiderID:         r.RiderID,
		DriverID:        r.DriverID,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		DistanceKm:      r.DistanceKm,
		DurationMin:     r.DurationMin,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
	}
}

func (c *CachedRide) toDomain() *domain.Ride {
	return &domain.Ride{
		ID:              c.ID,
		RiderID:         c.RiderID,
		DriverID:        c.DriverID,
		PickupLocation:  c.PickupLocation,
		DropoffLocation: c.DropoffLocation,
		DistanceKm:      c.DistanceKm,
		DurationMin:     c.DurationMin,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
	}
}

// CacheStore handles ride caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// GetRide retrieves a ride from cache. A miss returns nil, nil.
func (s *CacheStore) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	data, err := s.client.Get(ctx, rideCachePrefix+rideID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var ride CachedRide
	if err := json.Unmarshal(data, &ride); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}
	return ride.toDomain(), nil
}

// SetRide stores a ride in cache.
func (s *CacheStore) SetRide(ctx context.Context, ride *domain.Ride) error {
	data, err := json.Marshal(toCachedRide(ride))
	if err != nil {
		return err
	}
	return s.client.Set(ctx, rideCachePrefix+ride.ID, data, RideCacheTTL).Err()
}

// InvalidateRide removes a ride from cache.
func (s *CacheStore) InvalidateRide(ctx context.Context, rideID string) error {
	return s.client.Del(ctx, rideCachePrefix+rideID).Err()
}

// CachedRideRepository serves ride lookups from Redis before falling back to
// the wrapped repository. Cache errors are logged and never fail a lookup.
type CachedRideRepository struct {
	next   repository.RideRepository
	cache  RideCacheInterface
	logger *zap.Logger
}

// NewCachedRideRepository wraps next with a read-through ride cache.
func NewCachedRideRepository(next repository.RideRepository, cache RideCacheInterface, logger *zap.Logger) *CachedRideRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedRideRepository{next: next, cache: cache, logger: logger}
}

// GetByID retrieves a ride, populating the cache on a miss. A corrupt entry is
// dropped before falling back to the wrapped repository.
func (r *CachedRideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	cached, err := r.cache.GetRide(ctx, id)
	if err != nil {
		r.logger.Warn("ride cache read failed", zap.String("ride_id", id), zap.Error(err))
		if errors.Is(err, ErrCorruptEntry) {
			if err := r.cache.InvalidateRide(ctx, id); err != nil {
				r.logger.Warn("ride cache invalidate failed", zap.String("ride_id", id), zap.Error(err))
			}
		}
	}
	if cached != nil {
		return cached, nil
	}

	ride, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetRide(ctx, ride); err != nil {
		r.logger.Warn("ride cache write failed", zap.String("ride_id", id), zap.Error(err))
	}
	return ride, nil
}

// GetAll lists rides from the wrapped repository.
func (r *CachedRideRepository) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	return r.next.GetAll(ctx)
}
