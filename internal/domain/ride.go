package domain

import "time"

// Ride holds the recorded details of a completed trip. It is the basis for
// fare computation and is never modified once created.
type Ride struct {
	ID              string
	RiderID         string
	DriverID        string
	PickupLocation  string
	DropoffLocation string
	DistanceKm      float64 // kilometers, >= 0
	DurationMin     float64 // minutes, >= 0
	StartTime       time.Time
	EndTime         time.Time
}

// FareBreakdown is the itemized fare for a ride.
type FareBreakdown struct {
	BaseFare     float64
	DistanceFare float64
	TimeFare     float64
	Tax          float64
	Total        float64
	Currency     string
}
