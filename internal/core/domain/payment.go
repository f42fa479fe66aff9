package domain

import "github.com/shopspring/decimal"

// Account reference prefixes that select an event template.
const (
	RegistrationReferencePrefix = "REG-"
	DepositReferencePrefix      = "DEP-"
)

// PaymentConfirmed is published once an external mobile-money payment completes.
// Delivery is at-least-once.
type PaymentConfirmed struct {
	PaymentID        string          `json:"paymentID"`
	MemberID         string          `json:"memberID"`
	Amount           decimal.Decimal `json:"amount"`
	AccountReference string          `json:"accountReference"`
	ReceiptNumber    string          `json:"receiptNumber"`
}
