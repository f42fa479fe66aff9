package services

import (
	"context"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
)

// PaymentConsumer is one named subscriber to payment confirmations.
// Implementations must tolerate redelivery of the same notification.
type PaymentConsumer interface {
	Name() string
	HandlePaymentConfirmed(ctx context.Context, n domain.PaymentConfirmed) error
}

// PaymentPublisher places payment confirmations onto the notification stream.
type PaymentPublisher interface {
	PublishPaymentConfirmed(ctx context.Context, n domain.PaymentConfirmed) error
}
