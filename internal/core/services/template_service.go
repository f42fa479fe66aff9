package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
)

// TemplateAccounts names the account codes the event templates post against.
type TemplateAccounts struct {
	Clearing           string
	RegistrationIncome string
	MemberSavings      string
}

// DefaultTemplateAccounts matches the seeded chart of accounts.
var DefaultTemplateAccounts = TemplateAccounts{
	Clearing:           "1120",
	RegistrationIncome: "4210",
	MemberSavings:      "2210",
}

type templateService struct {
	BaseService
	poster   portssvc.JournalPosterSvc
	accounts TemplateAccounts
}

// TemplateServiceOption is a functional option for configuring the template service
type TemplateServiceOption func(*templateService)

// WithTemplateClock overrides the clock that supplies the transaction date.
func WithTemplateClock(now func() time.Time) TemplateServiceOption {
	return func(s *templateService) {
		s.Now = now
	}
}

// NewTemplateService creates the event template service posting through poster.
func NewTemplateService(poster portssvc.JournalPosterSvc, accounts TemplateAccounts, options ...TemplateServiceOption) portssvc.TemplateSvc {
	svc := &templateService{
		BaseService: newBaseService(),
		poster:      poster,
		accounts:    accounts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TemplateSvc = (*templateService)(nil)

func (s *templateService) PostRegistrationFee(ctx context.Context, memberID string, amount decimal.Decimal, receiptNumber string) (*domain.JournalEntry, error) {
	return s.post(ctx, memberID, receiptNumber, domain.RegistrationReferencePrefix, "Registration Fee via M-Pesa", amount,
		s.accounts.RegistrationIncome, "New Member Registration Fee")
}

func (s *templateService) PostSavingsDeposit(ctx context.Context, memberID string, amount decimal.Decimal, receiptNumber string) (*domain.JournalEntry, error) {
	return s.post(ctx, memberID, receiptNumber, domain.DepositReferencePrefix, "BOSA Savings Deposit via M-Pesa", amount,
		s.accounts.MemberSavings, "BOSA Savings Contribution")
}

// post builds the two-line draft shared by every template: debit the clearing
// account, credit creditCode, both annotated with the member.
func (s *templateService) post(ctx context.Context, memberID, receiptNumber, prefix, description string,
	amount decimal.Decimal, creditCode, creditDescription string) (*domain.JournalEntry, error) {
	receipt := strings.TrimSpace(receiptNumber)
	if receipt == "" {
		return nil, fmt.Errorf("%w: receipt number is required", apperrors.ErrValidation)
	}

	if n := utf8.RuneCountInString(prefix + receipt); n > domain.MaxReferenceLength {
		return nil, fmt.Errorf("%w: receipt number %q is too long for reference %s<receipt> (%d > %d characters)",
			apperrors.ErrValidation, receipt, prefix, n, domain.MaxReferenceLength)
	}

	var member *string
	if m := strings.TrimSpace(memberID); m != "" {
		if utf8.RuneCountInString(m) > domain.MaxMemberIDLength {
			return nil, fmt.Errorf("%w: member ID exceeds %d characters", apperrors.ErrValidation, domain.MaxMemberIDLength)
		}
		member = &m
	}

	draft := domain.JournalEntryDraft{
		TransactionDate: s.today(),
		ReferenceNumber: prefix + receipt,
		Description:     description,
		Lines: []domain.LineDraft{
			{
				AccountCode:  s.accounts.Clearing,
				MemberID:     member,
				DebitAmount:  amount,
				CreditAmount: decimal.Zero,
				Description:  "M-Pesa Receipt: " + receipt,
			},
			{
				AccountCode:  creditCode,
				MemberID:     member,
				DebitAmount:  decimal.Zero,
				CreditAmount: amount,
				Description:  creditDescription,
			},
		},
	}

	s.LogDebug(ctx, "Posting template entry", slog.String("reference", draft.ReferenceNumber), slog.String("member_id", memberID))
	return s.poster.PostEntry(ctx, draft, domain.SystemActor)
}
