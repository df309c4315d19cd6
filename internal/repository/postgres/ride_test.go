package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

var rideRowColumns = []string{
	"id", "rider_id", "driver_id", "pickup_location", "dropoff_location",
	"distance_km", "duration_min", "start_time", "end_time",
}

func newMockRepo(t *testing.T) (*RideRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRideRepository(db), mock
}

func TestRideRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides WHERE id = $1`)).
		WithArgs("ride-001").
		WillReturnRows(sqlmock.NewRows(rideRowColumns).
			AddRow("ride-001", "user-001", "driver-001", "Airport Terminal 1", "City Center Mall", 15.5, 25.0, start, start.Add(25*time.Minute)))

	ride, err := repo.GetByID(context.Background(), "ride-001")
	require.NoError(t, err)

	assert.Equal(t, "driver-001", ride.DriverID)
	assert.Equal(t, 15.5, ride.DistanceKm)
	assert.Equal(t, start, ride.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRideRepository_GetByID_NullableColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides WHERE id = $1`)).
		WithArgs("ride-009").
		WillReturnRows(sqlmock.NewRows(rideRowColumns).
			AddRow("ride-009", "user-009", nil, "A", "B", 1.0, 2.0, nil, nil))

	ride, err := repo.GetByID(context.Background(), "ride-009")
	require.NoError(t, err)

	assert.Empty(t, ride.DriverID)
	assert.True(t, ride.StartTime.IsZero())
	assert.True(t, ride.EndTime.IsZero())
}

func TestRideRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides WHERE id = $1`)).
		WithArgs("ride-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ride-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRideRepository_GetAll(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2024, time.January, 15, 16, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides ORDER BY start_time DESC LIMIT 100`)).
		WillReturnRows(sqlmock.NewRows(rideRowColumns).
			AddRow("ride-003", "user-003", "driver-003", "Residential Area", "Shopping Complex", 5.8, 12.0, start, start.Add(12*time.Minute)).
			AddRow("ride-002", "user-002", "driver-002", "Central Railway Station", "Tech Park", 8.2, 18.0, start, start))

	rides, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "ride-003", rides[0].ID)
	assert.Equal(t, "Tech Park", rides[1].DropoffLocation)
}

func TestRideRepository_GetAll_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides`)).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))

	rides, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rides)
	assert.Empty(t, rides)
}

func TestRideRepository_RejectsUnpriceableRides(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		duration float64
		wantMsg  string
	}{
		{"negative distance", -10, 25, "ride ride-bad: distance_km -10: invalid ride record"},
		{"NaN distance", math.NaN(), 25, "ride ride-bad: distance_km NaN: invalid ride record"},
		{"infinite distance", math.Inf(1), 25, "ride ride-bad: distance_km +Inf: invalid ride record"},
		{"negative duration", 15.5, -1, "ride ride-bad: duration_min -1: invalid ride record"},
		{"NaN duration", 15.5, math.NaN(), "ride ride-bad: duration_min NaN: invalid ride record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := []driver.Value{"ride-bad", "user-001", "driver-001", "A", "B", tt.distance, tt.duration, nil, nil}

			t.Run("GetByID", func(t *testing.T) {
				repo, mock := newMockRepo(t)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM rides WHERE id = $1`)).
					WithArgs("ride-bad").
					WillReturnRows(sqlmock.NewRows(rideRowColumns).AddRow(row...))

				ride, err := repo.GetByID(context.Background(), "ride-bad")
				assert.ErrorIs(t, err, ErrInvalidRide)
				assert.NotErrorIs(t, err, repository.ErrNotFound)
				assert.EqualError(t, err, tt.wantMsg)
				assert.Nil(t, ride)
			})

			t.Run("GetAll", func(t *testing.T) {
				repo, mock := newMockRepo(t)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM rides`)).
					WillReturnRows(sqlmock.NewRows(rideRowColumns).
						AddRow("ride-001", "user-001", "driver-001", "A", "B", 15.5, 25.0, nil, nil).
						AddRow(row...))

				rides, err := repo.GetAll(context.Background())
				assert.ErrorIs(t, err, ErrInvalidRide)
				assert.Nil(t, rides)
			})
		})
	}
}
