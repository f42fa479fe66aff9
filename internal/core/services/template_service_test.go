package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/SscSPs/sacco_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pinnedClock() func() time.Time { return func() time.Time { return fixedNow } }

func TestPostRegistrationFee_BuildsDraft(t *testing.T) {
	poster := new(MockJournalPoster)
	svc := services.NewTemplateService(poster, services.DefaultTemplateAccounts, services.WithTemplateClock(pinnedClock()))
	ctx := context.Background()

	var draft domain.JournalEntryDraft
	poster.On("PostEntry", ctx, mock.Anything, domain.SystemActor).
		Run(func(args mock.Arguments) { draft = args.Get(1).(domain.JournalEntryDraft) }).
		Return(&domain.JournalEntry{ReferenceNumber: "REG-RCPT001"}, nil).Once()

	_, err := svc.PostRegistrationFee(ctx, "member-1", dec("1000"), "RCPT001")
	require.NoError(t, err)

	assert.Equal(t, "REG-RCPT001", draft.ReferenceNumber)
	assert.Equal(t, "Registration Fee via M-Pesa", draft.Description)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), draft.TransactionDate)
	require.Len(t, draft.Lines, 2)

	debit, credit := draft.Lines[0], draft.Lines[1]
	assert.Equal(t, "1120", debit.AccountCode)
	assert.True(t, debit.DebitAmount.Equal(dec("1000")))
	assert.True(t, debit.CreditAmount.IsZero())
	assert.Equal(t, "M-Pesa Receipt: RCPT001", debit.Description)
	assert.Equal(t, strPtr("member-1"), debit.MemberID)

	assert.Equal(t, "4210", credit.AccountCode)
	assert.True(t, credit.CreditAmount.Equal(dec("1000")))
	assert.True(t, credit.DebitAmount.IsZero())
	assert.Equal(t, "New Member Registration Fee", credit.Description)
	assert.Equal(t, strPtr("member-1"), credit.MemberID)
}

func TestPostSavingsDeposit_BuildsDraft(t *testing.T) {
	poster := new(MockJournalPoster)
	accounts := services.DefaultTemplateAccounts
	accounts.MemberSavings = "2299"
	svc := services.NewTemplateService(poster, accounts, services.WithTemplateClock(pinnedClock()))
	ctx := context.Background()

	poster.On("PostEntry", ctx, mock.MatchedBy(func(d domain.JournalEntryDraft) bool {
		return d.ReferenceNumber == "DEP-QX12" &&
			d.Description == "BOSA Savings Deposit via M-Pesa" &&
			d.Lines[0].AccountCode == "1120" &&
			d.Lines[1].AccountCode == "2299" &&
			d.Lines[1].Description == "BOSA Savings Contribution"
	}), domain.SystemActor).Return(&domain.JournalEntry{}, nil).Once()

	_, err := svc.PostSavingsDeposit(ctx, "member-2", dec("250.50"), " QX12 ")
	require.NoError(t, err)
	poster.AssertExpectations(t)
}

func TestTemplates_RejectBlankReceipt(t *testing.T) {
	poster := new(MockJournalPoster)
	svc := services.NewTemplateService(poster, services.DefaultTemplateAccounts)

	_, err := svc.PostRegistrationFee(context.Background(), "m", dec("1"), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.PostSavingsDeposit(context.Background(), "m", dec("1"), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	poster.AssertNotCalled(t, "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

// Replaying the same registration template against the real posting engine
// leaves exactly one entry.
func TestPostRegistrationFee_Idempotent(t *testing.T) {
	repo := newMemJournalRepo()
	journal := services.NewJournalService(repo, seededDirectory())
	svc := services.NewTemplateService(journal, services.DefaultTemplateAccounts)
	ctx := context.Background()

	first, err := svc.PostRegistrationFee(ctx, "member-1", dec("1000"), "RCPT001")
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, first.Status)

	_, err = svc.PostRegistrationFee(ctx, "member-1", dec("1000"), "RCPT001")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateReference)

	assert.Equal(t, 1, repo.count())
	stored, err := repo.FindEntryByReference(ctx, "REG-RCPT001")
	require.NoError(t, err)
	assert.Equal(t, first.JournalEntryID, stored.JournalEntryID)
}

func TestPostRegistrationFee_InactiveIncomeAccount(t *testing.T) {
	repo := newMemJournalRepo()
	dir := seededDirectory()
	income := dir["4210"]
	income.IsActive = false
	dir["4210"] = income
	svc := services.NewTemplateService(services.NewJournalService(repo, dir), services.DefaultTemplateAccounts)

	_, err := svc.PostRegistrationFee(context.Background(), "member-1", dec("1000"), "RCPT009")

	assert.ErrorIs(t, err, apperrors.ErrInactiveAccountViolation)
	assert.Equal(t, 0, repo.count(), "no partial entry may be persisted")
}

func TestTemplates_RejectValuesWiderThanColumns(t *testing.T) {
	longReceipt := strings.Repeat("R", domain.MaxReferenceLength-len(domain.RegistrationReferencePrefix)+1)
	maxReceipt := longReceipt[1:]
	longMember := strings.Repeat("m", domain.MaxMemberIDLength+1)

	tests := []struct {
		name     string
		memberID string
		receipt  string
		wantErr  bool
	}{
		{"receipt fills reference exactly", "member-1", maxReceipt, false},
		{"receipt one character too long", "member-1", longReceipt, true},
		{"member ID too long", longMember, "RCPT001", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poster := new(MockJournalPoster)
			svc := services.NewTemplateService(poster, services.DefaultTemplateAccounts, services.WithTemplateClock(pinnedClock()))
			ctx := context.Background()
			if !tt.wantErr {
				poster.On("PostEntry", ctx, mock.Anything, domain.SystemActor).
					Return(&domain.JournalEntry{}, nil).Once()
			}

			_, err := svc.PostRegistrationFee(ctx, tt.memberID, dec("1000"), tt.receipt)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.False(t, apperrors.IsLedgerValidation(err))
				poster.AssertNotCalled(t, "PostEntry", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			poster.AssertExpectations(t)
		})
	}
}
