package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how a payment was made.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentAC     PaymentMode = "AC" // bank transfer
	PaymentUPI    PaymentMode = "UPI"
	PaymentCheque PaymentMode = "CHEQUE"
)

// Valid reports whether the payment mode is known.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentAC, PaymentUPI, PaymentCheque:
		return true
	}
	return false
}

// Payment is money received from or paid to a party. Immutable once created.
// AppliedToID optionally ties the payment to one specific loading, which is
// what the ageing computation applies per record.
type Payment struct {
	ID          string
	PartyType   PartyType
	PartyID     string
	PartyName   string
	AppliedToID string
	Date        time.Time
	Amount      decimal.Decimal
	Mode        PaymentMode
	Reference   string
	CreatedAt   time.Time
}
