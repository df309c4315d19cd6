package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// ErrInvalidRide is returned for a stored ride that cannot be priced: its
// distance or duration is negative, NaN or infinite.
var ErrInvalidRide = errors.New("invalid ride record")

// RideRepository is a read-only PostgreSQL implementation of repository.RideRepository.
// Rides are written by the ride management system; this service only reads them.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

const rideColumns = `id, rider_id, driver_id, pickup_location, dropoff_location, distance_km, duration_min, start_time, end_time`

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return ride, nil
}

// GetAll retrieves the most recent rides.
func (r *RideRepository) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides ORDER BY start_time DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]*domain.Ride, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (*domain.Ride, error) {
	var ride domain.Ride
	var driverID sql.NullString
	var startTime, endTime sql.NullTime

	if err := row.Scan(
		&ride.ID,
		&ride.RiderID,
		&driverID,
		&ride.PickupLocation,
		&ride.DropoffLocation,
		&ride.DistanceKm,
		&ride.DurationMin,
		&startTime,
		&endTime,
	); err != nil {
		return nil, err
	}

	if driverID.Valid {
		ride.DriverID = driverID.String
	}
	if startTime.Valid {
		ride.StartTime = startTime.Time
	}
	if endTime.Valid {
		ride.EndTime = endTime.Time
	}

	if !validMeasure(ride.DistanceKm) {
		return nil, fmt.Errorf("ride %s: distance_km %v: %w", ride.ID, ride.DistanceKm, ErrInvalidRide)
	}
	if !validMeasure(ride.DurationMin) {
		return nil, fmt.Errorf("ride %s: duration_min %v: %w", ride.ID, ride.DurationMin, ErrInvalidRide)
	}

	return &ride, nil
}

// validMeasure rejects negative, NaN and infinite values.
func validMeasure(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
