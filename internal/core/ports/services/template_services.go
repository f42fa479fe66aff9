package services

import (
	"context"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TemplateSvc builds fixed-shape drafts for recurring business events and posts them.
type TemplateSvc interface {
	// PostRegistrationFee posts REG-<receipt>: debit clearing, credit registration income.
	PostRegistrationFee(ctx context.Context, memberID string, amount decimal.Decimal, receiptNumber string) (*domain.JournalEntry, error)

	// PostSavingsDeposit posts DEP-<receipt>: debit clearing, credit member savings.
	PostSavingsDeposit(ctx context.Context, memberID string, amount decimal.Decimal, receiptNumber string) (*domain.JournalEntry, error)
}
