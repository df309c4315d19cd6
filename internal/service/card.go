package service

import (
	"strings"
	"time"
	"unicode"
)

// CardDetails is the card form submitted with a CARD payment. Card data is
// only validated; it is never stored.
type CardDetails struct {
	HolderName  string
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

// Card brands recognised by prefix.
const (
	CardBrandVisa       = "visa"
	CardBrandAmex       = "amex"
	CardBrandMastercard = "mastercard"
	CardBrandDiscover   = "discover"
	CardBrandTroy       = "troy"
)

const minCardNumberLength = 13

// CardBrand identifies the card network from the number prefix.
// Unknown prefixes are treated as visa.
func CardBrand(number string) string {
	n := stripSpaces(number)
	switch {
	case strings.HasPrefix(n, "4"):
		return CardBrandVisa
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return CardBrandAmex
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return CardBrandMastercard
	case strings.HasPrefix(n, "6011"):
		return CardBrandDiscover
	case strings.HasPrefix(n, "9792"):
		return CardBrandTroy
	default:
		return CardBrandVisa
	}
}

// ValidateCard checks the card form as of now. A card stays valid through the
// last day of its expiry month.
func ValidateCard(card CardDetails, now time.Time) error {
	if strings.TrimSpace(card.HolderName) == "" {
		return ErrInvalidCardholderName
	}

	number := stripSpaces(card.Number)
	maxLength := 16
	if CardBrand(number) == CardBrandAmex {
		maxLength = 15
	}
	if len(number) < minCardNumberLength || len(number) > maxLength || !isDigits(number) {
		return ErrInvalidCardNumber
	}

	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return ErrInvalidExpiryMonth
	}
	if card.ExpiryYear <= 0 {
		return ErrInvalidExpiryYear
	}

	if len(card.CVV) < 3 || len(card.CVV) > 4 || !isDigits(card.CVV) {
		return ErrInvalidCVV
	}

	// First instant after the expiry month, in the caller's location.
	expiresAt := time.Date(card.ExpiryYear, time.Month(card.ExpiryMonth)+1, 1, 0, 0, 0, 0, now.Location())
	if !now.Before(expiresAt) {
		return ErrCardExpired
	}

	return nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
