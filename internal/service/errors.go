package service

import (
	"errors"
	"fmt"

	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

var (
	// ErrRideNotFound is returned when the referenced ride does not exist.
	ErrRideNotFound = fmt.Errorf("ride %w", repository.ErrNotFound)

	// ErrPaymentNotFound is returned when the referenced payment does not exist.
	ErrPaymentNotFound = fmt.Errorf("payment %w", repository.ErrNotFound)

	// ErrReceiptNotFound is returned when no receipt has been issued for a payment.
	ErrReceiptNotFound = fmt.Errorf("receipt %w", repository.ErrNotFound)

	// ErrPaymentDeclined is returned when the payment processor declines a charge.
	ErrPaymentDeclined = errors.New("payment processing failed")

	// ErrPaymentNotCompleted is returned when a receipt is requested for a payment that is not COMPLETED.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrPaymentInProgress is returned when another payment for the same ride is being processed.
	ErrPaymentInProgress = errors.New("payment already in progress for this ride")

	// ErrInvalidRideID is returned when ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidRiderID is returned when rider ID is empty.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidPaymentID is returned when payment ID is empty.
	ErrInvalidPaymentID = errors.New("invalid payment id")

	// ErrInvalidPaymentAmount is returned when payment amount is invalid.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrInvalidPaymentMethod is returned when payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Card form errors.
	ErrInvalidCardholderName = errors.New("please enter cardholder name")
	ErrInvalidCardNumber     = errors.New("please enter a valid card number")
	ErrInvalidExpiryMonth    = errors.New("please select expiry month")
	ErrInvalidExpiryYear     = errors.New("please select expiry year")
	ErrInvalidCVV            = errors.New("please enter a valid CVV")
	ErrCardExpired           = errors.New("card has expired")
)
