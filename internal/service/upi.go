package service

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// UPIPayee identifies the merchant collecting UPI payments.
type UPIPayee struct {
	VPA      string // virtual payment address, e.g. merchant@upi
	Name     string
	Currency string
}

// UPIIntent builds the upi://pay deep link a UPI app opens to pay amount for
// rideID. The amount is rendered with two decimals and spaces as %20.
func UPIIntent(payee UPIPayee, rideID string, amount float64) string {
	q := url.Values{}
	q.Set("pa", payee.VPA)
	q.Set("pn", payee.Name)
	q.Set("am", decimal.NewFromFloat(amount).StringFixed(2))
	q.Set("cu", payee.Currency)
	q.Set("tn", "Ride Payment "+rideID)

	u := url.URL{
		Scheme:   "upi",
		Host:     "pay",
		RawQuery: strings.ReplaceAll(q.Encode(), "+", "%20"),
	}
	return u.String()
}
