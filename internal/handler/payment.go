package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ProcessPaymentRequest is the HTTP request body for processing a payment.
type ProcessPaymentRequest struct {
	RideID string  `json:"ride_id"`
	UserID string  `json:"user_id"`
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// CardRequest is the card form of a card payment.
type CardRequest struct {
	HolderName  string `json:"holder_name"`
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// CardPaymentRequest is the HTTP request body for POST /v1/payments/card.
type CardPaymentRequest struct {
	RideID string      `json:"ride_id"`
	UserID string      `json:"user_id"`
	Amount float64     `json:"amount"`
	Card   CardRequest `json:"card"`
}

// PaymentResponse is the HTTP response for payment operations.
type PaymentResponse struct {
	ID        string           `json:"id"`
	RideID    string           `json:"ride_id"`
	UserID    string           `json:"user_id"`
	Amount    float64          `json:"amount"`
	Method    string           `json:"method"`
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Receipt   *ReceiptResponse `json:"receipt,omitempty"`
}

// ProcessPayment handles POST /v1/payments
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.paymentService.ProcessPayment(c.Request.Context(), domain.PaymentRequest{
		RideID:  req.RideID,
		RiderID: req.UserID,
		Method:  domain.PaymentMethod(req.Method),
		Amount:  req.Amount,
	})
	h.respondPayment(c, payment, err)
}

// ProcessCardPayment handles POST /v1/payments/card
func (h *PaymentHandler) ProcessCardPayment(c *gin.Context) {
	var req CardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.paymentService.ProcessCardPayment(c.Request.Context(),
		domain.PaymentRequest{
			RideID:  req.RideID,
			RiderID: req.UserID,
			Amount:  req.Amount,
		},
		service.CardDetails{
			HolderName:  req.Card.HolderName,
			Number:      req.Card.Number,
			ExpiryMonth: req.Card.ExpiryMonth,
			ExpiryYear:  req.Card.ExpiryYear,
			CVV:         req.Card.CVV,
		},
	)
	h.respondPayment(c, payment, err)
}

// GetPayment handles GET /v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}

// GetUserPayments handles GET /v1/users/:id/payments
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	payments, err := h.paymentService.GetUserPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, toPaymentResponse(p))
	}

	respondJSON(c, http.StatusOK, response)
}

func (h *PaymentHandler) respondPayment(c *gin.Context, payment *domain.Payment, err error) {
	if errors.Is(err, service.ErrPaymentDeclined) && payment != nil {
		respondJSON(c, http.StatusPaymentRequired, DeclinedResponse{
			Error:   service.ErrPaymentDeclined.Error(),
			Payment: toPaymentResponse(payment),
		})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toPaymentResponse(payment))
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:        p.ID,
		RideID:    p.RideID,
		UserID:    p.RiderID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		Timestamp: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Receipt != nil {
		r := toReceiptResponse(p.Receipt)
		resp.Receipt = &r
	}
	return resp
}
