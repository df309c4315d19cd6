package service

import "github.com/Abinaya503/my-cab-payment/internal/domain"

// FareRates are the tariff constants used to price a ride.
type FareRates struct {
	BaseFare  float64 // flat boarding fee
	PerKm     float64
	PerMinute float64 // carried for the tariff table; not charged
	TaxRate   float64 // e.g. 0.18 for 18% GST
	Currency  string
}

// DefaultFareRates returns the standard INR tariff.
func DefaultFareRates() FareRates {
	return FareRates{
		BaseFare:  50,
		PerKm:     12,
		PerMinute: 2,
		TaxRate:   0.18,
		Currency:  "INR",
	}
}

// FareCalculator prices rides.
type FareCalculator struct {
	rates FareRates
}

// NewFareCalculator creates a FareCalculator for the given rates.
func NewFareCalculator(rates FareRates) *FareCalculator {
	return &FareCalculator{rates: rates}
}

// Rates returns the tariff in use.
func (c *FareCalculator) Rates() FareRates {
	return c.rates
}

// Calculate returns the fare breakdown for a ride.
//
// Time is not charged: TimeFare is always zero and the subtotal is base plus
// distance. Amounts keep full float precision; rounding is left to display.
func (c *FareCalculator) Calculate(ride *domain.Ride) domain.FareBreakdown {
	baseFare := c.rates.BaseFare
	distanceFare := ride.DistanceKm * c.rates.PerKm
	subtotal := baseFare + distanceFare
	tax := subtotal * c.rates.TaxRate

	return domain.FareBreakdown{
		BaseFare:     baseFare,
		DistanceFare: distanceFare,
		TimeFare:     0,
		Tax:          tax,
		Total:        subtotal + tax,
		Currency:     c.rates.Currency,
	}
}
