package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentKind distinguishes how a payment settles.
type PaymentKind string

const (
	// PaymentOnline debits the category and hands off to an external
	// payment application via a scanned QR code.
	PaymentOnline PaymentKind = "online"
	// PaymentOffline debits the category with no external hand-off.
	PaymentOffline PaymentKind = "offline"
)

// BalanceDirection selects how a balance mutation is applied server-side.
type BalanceDirection string

const (
	DirectionAdd      BalanceDirection = "add"
	DirectionSubtract BalanceDirection = "subtract"
)

// PaymentIntent is a validated payment selection ready for dispatch.
type PaymentIntent struct {
	Category      string
	Amount        decimal.Decimal
	Kind          PaymentKind
	IsLoanPayment bool
}

// RawAmount returns the amount formatted the way it travels to the
// external payment link.
func (p PaymentIntent) RawAmount() string {
	return p.Amount.String()
}

// Direction returns the balance direction for a non-loan mutation: loan
// balances grow, everything else is spent down.
func (p PaymentIntent) Direction() BalanceDirection {
	if strings.EqualFold(p.Category, CategoryLoan) {
		return DirectionAdd
	}
	return DirectionSubtract
}
