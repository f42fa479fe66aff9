package dto

import (
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentConfirmationRequest carries a completed mobile-money payment onto the notification stream.
type PaymentConfirmationRequest struct {
	PaymentID        string          `json:"paymentID" binding:"required"`
	MemberID         string          `json:"memberID" binding:"required,max=36"`
	Amount           decimal.Decimal `json:"amount"`
	AccountReference string          `json:"accountReference" binding:"required"`
	ReceiptNumber    string          `json:"receiptNumber"` // Falls back to paymentID when absent
}

// ToDomain converts the request into the published notification.
func (r PaymentConfirmationRequest) ToDomain() domain.PaymentConfirmed {
	return domain.PaymentConfirmed{
		PaymentID:        r.PaymentID,
		MemberID:         r.MemberID,
		Amount:           r.Amount,
		AccountReference: r.AccountReference,
		ReceiptNumber:    r.ReceiptNumber,
	}
}

// PaymentConfirmationResponse acknowledges that the notification was queued.
type PaymentConfirmationResponse struct {
	PaymentID string `json:"paymentID"`
	Status    string `json:"status"`
}
