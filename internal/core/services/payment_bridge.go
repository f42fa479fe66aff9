package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
)

// LedgerBridgeName identifies the payment-to-ledger consumer in logs.
const LedgerBridgeName = "ledger-bridge"

// paymentBridge turns payment confirmations into template postings.
type paymentBridge struct {
	BaseService
	templates portssvc.TemplateSvc
}

// NewPaymentBridge creates the consumer that posts journal entries for confirmed payments.
func NewPaymentBridge(templates portssvc.TemplateSvc) portssvc.PaymentConsumer {
	return &paymentBridge{BaseService: newBaseService(), templates: templates}
}

var _ portssvc.PaymentConsumer = (*paymentBridge)(nil)

func (b *paymentBridge) Name() string { return LedgerBridgeName }

// HandlePaymentConfirmed dispatches on the account reference prefix. A duplicate
// reference means the notification was already processed and is not an error.
func (b *paymentBridge) HandlePaymentConfirmed(ctx context.Context, n domain.PaymentConfirmed) error {
	logger := b.GetLogger(ctx).With(
		slog.String("consumer", LedgerBridgeName),
		slog.String("payment_id", n.PaymentID),
		slog.String("account_reference", n.AccountReference),
	)

	receipt := strings.TrimSpace(n.ReceiptNumber)
	if receipt == "" {
		receipt = strings.TrimSpace(n.PaymentID)
	}

	var err error
	switch ref := strings.TrimSpace(n.AccountReference); {
	case strings.HasPrefix(ref, domain.RegistrationReferencePrefix):
		_, err = b.templates.PostRegistrationFee(ctx, n.MemberID, n.Amount, receipt)
	case strings.HasPrefix(ref, domain.DepositReferencePrefix):
		_, err = b.templates.PostSavingsDeposit(ctx, n.MemberID, n.Amount, receipt)
	default:
		logger.Info("No ledger template for account reference; ignoring")
		return nil
	}

	switch {
	case err == nil:
		logger.Info("Payment posted to ledger", slog.String("receipt", receipt))
		return nil
	case errors.Is(err, apperrors.ErrDuplicateReference):
		logger.Info("Payment already posted; skipping", slog.String("receipt", receipt))
		return nil
	default:
		logger.Error("Failed to post payment to ledger", slog.String("error", err.Error()))
		return err
	}
}
