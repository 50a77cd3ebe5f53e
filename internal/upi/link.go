// Package upi handles the hand-off from a confirmed payment to an
// external UPI payment application: QR payload validation, deep-link
// construction, and the scan/fallback state machine.
package upi

import (
	"net/url"
	"strings"
)

// PaymentPrefix is the only QR payload shape the scanner accepts.
const PaymentPrefix = "upi://pay"

// IsPaymentURI reports whether a decoded QR payload is a UPI payment
// link.
func IsPaymentURI(data string) bool {
	return strings.HasPrefix(data, PaymentPrefix)
}

// WithAmount augments a UPI payment link with the requested amount (am)
// and currency (cu) parameters. Payloads that fail to parse as URLs get
// the parameters appended textually so the hand-off still carries them.
func WithAmount(link, amount, currency string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link + "&am=" + amount + "&cu=" + currency
	}

	q := u.Query()
	q.Set("am", amount)
	q.Set("cu", currency)
	u.RawQuery = q.Encode()
	return u.String()
}
