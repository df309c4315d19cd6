package domain

import "time"

// Receipt is issued for a completed payment. It joins the payment with the
// ride it paid for.
type Receipt struct {
	ID              string
	PaymentID       string
	RideID          string
	RiderID         string
	DriverID        string
	Amount          float64 // amount charged on the payment
	Method          PaymentMethod
	Fare            FareBreakdown
	PickupLocation  string
	DropoffLocation string
	DistanceKm      float64
	DurationMin     float64
	PaidAt          time.Time
	IssuedAt        time.Time
}
