package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abinaya503/my-cab-payment/internal/repository"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

// statusClientClosedRequest is the nginx convention for a request abandoned by the client.
const statusClientClosedRequest = 499

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeclinedResponse is returned with 402 when the processor declines a charge.
type DeclinedResponse struct {
	Error   string          `json:"error"`
	Payment PaymentResponse `json:"payment"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Declined by the processor
	case errors.Is(err, service.ErrPaymentDeclined):
		return http.StatusPaymentRequired

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidRiderID),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidPaymentAmount),
		errors.Is(err, service.ErrInvalidPaymentID),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidCardholderName),
		errors.Is(err, service.ErrInvalidCardNumber),
		errors.Is(err, service.ErrInvalidExpiryMonth),
		errors.Is(err, service.ErrInvalidExpiryYear),
		errors.Is(err, service.ErrInvalidCVV),
		errors.Is(err, service.ErrCardExpired):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrPaymentNotCompleted),
		errors.Is(err, service.ErrPaymentInProgress):
		return http.StatusConflict

	// Client went away while the ledger was waiting
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
