package memory

import (
	"time"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
)

// DefaultSeed returns the demo rides, payments and receipt the service starts
// with when no external ride source is configured.
func DefaultSeed() Seed {
	at := func(hour, minute int) time.Time {
		return time.Date(2024, time.January, 15, hour, minute, 0, 0, time.UTC)
	}

	receipt := domain.Receipt{
		ID:        "receipt-001",
		PaymentID: "pay-001",
		RideID:    "ride-001",
		RiderID:   "user-001",
		DriverID:  "driver-001",
		Amount:    285.4,
		Method:    domain.PaymentMethodCard,
		Fare: domain.FareBreakdown{
			BaseFare:     50,
			DistanceFare: 186,
			TimeFare:     50,
			Tax:          51.4,
			Total:        285.4,
			Currency:     "INR",
		},
		PickupLocation:  "Airport Terminal 1",
		DropoffLocation: "City Center Mall",
		DistanceKm:      15.5,
		DurationMin:     25,
		PaidAt:          at(10, 26),
		IssuedAt:        at(10, 26),
	}

	return Seed{
		Rides: []domain.Ride{
			{
				ID:              "ride-001",
				RiderID:         "user-001",
				DriverID:        "driver-001",
				PickupLocation:  "Airport Terminal 1",
				DropoffLocation: "City Center Mall",
				DistanceKm:      15.5,
				DurationMin:     25,
				StartTime:       at(10, 0),
				EndTime:         at(10, 25),
			},
			{
				ID:              "ride-002",
				RiderID:         "user-002",
				DriverID:        "driver-002",
				PickupLocation:  "Central Railway Station",
				DropoffLocation: "Tech Park",
				DistanceKm:      8.2,
				DurationMin:     18,
				StartTime:       at(14, 30),
				EndTime:         at(14, 48),
			},
			{
				ID:              "ride-003",
				RiderID:         "user-003",
				DriverID:        "driver-003",
				PickupLocation:  "Residential Area",
				DropoffLocation: "Shopping Complex",
				DistanceKm:      5.8,
				DurationMin:     12,
				StartTime:       at(16, 0),
				EndTime:         at(16, 12),
			},
		},
		Payments: []domain.Payment{
			{
				ID:        "pay-001",
				RideID:    "ride-001",
				RiderID:   "user-001",
				Amount:    285.4,
				Method:    domain.PaymentMethodCard,
				Status:    domain.PaymentStatusCompleted,
				CreatedAt: at(10, 26),
			},
			{
				ID:        "pay-002",
				RideID:    "ride-002",
				RiderID:   "user-002",
				Amount:    178.2,
				Method:    domain.PaymentMethodUPI,
				Status:    domain.PaymentStatusCompleted,
				CreatedAt: at(14, 49),
			},
		},
		Receipts: []domain.Receipt{receipt},
	}
}
