package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

// ReceiptHandler handles HTTP requests for receipts.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// ReceiptResponse is the HTTP response for a receipt.
type ReceiptResponse struct {
	ID              string       `json:"id"`
	PaymentID       string       `json:"payment_id"`
	RideID          string       `json:"ride_id"`
	UserID          string       `json:"user_id"`
	DriverID        string       `json:"driver_id"`
	Amount          float64      `json:"amount"`
	Method          string       `json:"method"`
	Fare            FareResponse `json:"fare"`
	PickupLocation  string       `json:"pickup_location"`
	DropoffLocation string       `json:"dropoff_location"`
	DistanceKm      float64      `json:"distance_km"`
	DurationMin     float64      `json:"duration_min"`
	PaidAt          string       `json:"paid_at"`
	IssuedAt        string       `json:"issued_at"`
}

// GenerateReceipt handles POST /v1/payments/:id/receipt
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GenerateReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toReceiptResponse(receipt))
}

// GetReceipt handles GET /v1/payments/:id/receipt
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toReceiptResponse(receipt))
}

// GetReceiptText handles GET /v1/payments/:id/receipt/text
func (h *ReceiptHandler) GetReceiptText(c *gin.Context) {
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, h.receiptService.FormatReceipt(receipt))
}

func toReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:              r.ID,
		PaymentID:       r.PaymentID,
		RideID:          r.RideID,
		UserID:          r.RiderID,
		DriverID:        r.DriverID,
		Amount:          r.Amount,
		Method:          string(r.Method),
		Fare:            toFareResponse(r.Fare),
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		DistanceKm:      r.DistanceKm,
		DurationMin:     r.DurationMin,
		PaidAt:          r.PaidAt.Format(time.RFC3339),
		IssuedAt:        r.IssuedAt.Format(time.RFC3339),
	}
}
