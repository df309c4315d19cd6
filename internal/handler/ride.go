package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
	payee       service.UPIPayee
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService, payee service.UPIPayee) *RideHandler {
	return &RideHandler{
		rideService: rideService,
		payee:       payee,
	}
}

// RideResponse is the HTTP response for ride details.
type RideResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	DriverID        string  `json:"driver_id"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMin     float64 `json:"duration_min"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
}

// FareResponse is the HTTP response for a fare breakdown.
type FareResponse struct {
	BaseFare     float64 `json:"base_fare"`
	DistanceFare float64 `json:"distance_fare"`
	TimeFare     float64 `json:"time_fare"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
	Currency     string  `json:"currency"`
}

// FareQuoteResponse is the HTTP response for GET /v1/rides/:id/fare.
type FareQuoteResponse struct {
	Ride RideResponse `json:"ride"`
	Fare FareResponse `json:"fare"`
}

// TariffResponse is the HTTP response for GET /v1/fares/tariff.
type TariffResponse struct {
	BaseFare  float64 `json:"base_fare"`
	PerKm     float64 `json:"per_km"`
	PerMinute float64 `json:"per_minute"`
	TaxRate   float64 `json:"tax_rate"`
	Currency  string  `json:"currency"`
}

// UPIIntentResponse is the HTTP response for GET /v1/rides/:id/upi-intent.
type UPIIntentResponse struct {
	RideID string  `json:"ride_id"`
	Amount float64 `json:"amount"`
	URL    string  `json:"url"`
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideService.GetRideDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// GetAll handles GET /v1/rides
func (h *RideHandler) GetAll(c *gin.Context) {
	rides, err := h.rideService.ListRides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, toRideResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// GetFare handles GET /v1/rides/:id/fare
func (h *RideHandler) GetFare(c *gin.Context) {
	quote, err := h.rideService.QuoteFare(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, FareQuoteResponse{
		Ride: toRideResponse(quote.Ride),
		Fare: toFareResponse(quote.Fare),
	})
}

// GetUPIIntent handles GET /v1/rides/:id/upi-intent
func (h *RideHandler) GetUPIIntent(c *gin.Context) {
	quote, err := h.rideService.QuoteFare(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, UPIIntentResponse{
		RideID: quote.Ride.ID,
		Amount: quote.Fare.Total,
		URL:    service.UPIIntent(h.payee, quote.Ride.ID, quote.Fare.Total),
	})
}

// GetTariff handles GET /v1/fares/tariff
func (h *RideHandler) GetTariff(c *gin.Context) {
	rates := h.rideService.Tariff()
	respondJSON(c, http.StatusOK, TariffResponse{
		BaseFare:  rates.BaseFare,
		PerKm:     rates.PerKm,
		PerMinute: rates.PerMinute,
		TaxRate:   rates.TaxRate,
		Currency:  rates.Currency,
	})
}

func toRideResponse(r *domain.Ride) RideResponse {
	resp := RideResponse{
		ID:              r.ID,
		UserID:          r.RiderID,
		DriverID:        r.DriverID,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		DistanceKm:      r.DistanceKm,
		DurationMin:     r.DurationMin,
	}
	if !r.StartTime.IsZero() {
		resp.StartTime = r.StartTime.Format(time.RFC3339)
	}
	if !r.EndTime.IsZero() {
		resp.EndTime = r.EndTime.Format(time.RFC3339)
	}
	return resp
}

func toFareResponse(f domain.FareBreakdown) FareResponse {
	return FareResponse{
		BaseFare:     f.BaseFare,
		DistanceFare: f.DistanceFare,
		TimeFare:     f.TimeFare,
		Tax:          f.Tax,
		Total:        f.Total,
		Currency:     f.Currency,
	}
}
