package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/utils/accounting"
)

// journalService is the ledger posting engine plus read access to posted entries.
type journalService struct {
	BaseService
	accounts    portssvc.AccountDirectory
	journalRepo portsrepo.JournalRepositoryFacade
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClock overrides the clock used for audit timestamps.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.Now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accounts portssvc.AccountDirectory, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		BaseService: newBaseService(),
		accounts:    accounts,
		journalRepo: journalRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates draft and commits it. Checks run in a fixed order and the
// first failure is returned: duplicate reference, line count, per-line amounts,
// balance, then account resolution.
func (s *journalService) PostEntry(ctx context.Context, draft domain.JournalEntryDraft, creatorUserID string) (*domain.JournalEntry, error) {
	ref := strings.TrimSpace(draft.ReferenceNumber)
	logger := s.GetLogger(ctx).With(slog.String("reference", ref))

	if ref == "" {
		return nil, fmt.Errorf("%w: reference number is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(draft.Description) == "" {
		return nil, fmt.Errorf("%w: journal description is required", apperrors.ErrValidation)
	}
	if err := checkDraftWidths(ref, draft); err != nil {
		logger.Warn("Journal draft rejected", slog.String("error", err.Error()))
		return nil, err
	}

	exists, err := s.journalRepo.ExistsByReference(ctx, ref)
	if err != nil {
		logger.Error("Failed to check reference", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateReference(ref)
	}

	if err := validateDraftLines(ref, draft.Lines); err != nil {
		logger.Warn("Journal draft rejected", slog.String("error", err.Error()))
		return nil, err
	}

	codes := make([]string, len(draft.Lines))
	for i, l := range draft.Lines {
		codes[i] = l.AccountCode
	}
	resolved, err := s.accounts.FindAccountsByCodes(ctx, codes)
	if err != nil {
		logger.Error("Failed to resolve accounts", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.Now()
	entryID := uuid.NewString()
	lines := make([]domain.JournalEntryLine, len(draft.Lines))
	for i, l := range draft.Lines {
		account, ok := resolved[l.AccountCode]
		if !ok {
			return nil, apperrors.NewAccountNotFound(l.AccountCode)
		}
		if !account.IsActive {
			return nil, apperrors.NewInactiveAccountViolation(ref, l.AccountCode)
		}
		lines[i] = domain.JournalEntryLine{
			LineID:         uuid.NewString(),
			JournalEntryID: entryID,
			LineNumber:     i + 1,
			AccountID:      account.AccountID,
			AccountCode:    account.Code,
			AccountName:    account.Name,
			MemberID:       nonBlank(l.MemberID),
			DebitAmount:    l.DebitAmount.Round(domain.AmountScale),
			CreditAmount:   l.CreditAmount.Round(domain.AmountScale),
			Description:    l.Description,
			CreatedAt:      now,
		}
	}

	entry := domain.JournalEntry{
		JournalEntryID:  entryID,
		TransactionDate: truncateToDate(draft.TransactionDate),
		ReferenceNumber: ref,
		Description:     strings.TrimSpace(draft.Description),
		Status:          domain.Posted,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateReference) {
			// Lost the race against a concurrent post of the same reference.
			return nil, apperrors.NewDuplicateReference(ref)
		}
		if apperrors.IsLedgerValidation(err) {
			// An account was deactivated after it was resolved above.
			logger.Warn("Journal entry rejected at commit", slog.String("error", err.Error()))
			return nil, err
		}
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Journal entry posted",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.Int("lines", len(entry.Lines)),
		slog.String("total", entry.TotalDebits().StringFixed(domain.AmountScale)))
	return &entry, nil
}

// validateDraftLines applies the structural checks that need no lookups.
func validateDraftLines(ref string, lines []domain.LineDraft) error {
	if len(lines) < 2 {
		return apperrors.NewInsufficientLines(ref)
	}
	for i, l := range lines {
		if !accounting.IsOneSided(l.DebitAmount, l.CreditAmount) ||
			!accounting.FitsScale(l.DebitAmount, domain.AmountScale) ||
			!accounting.FitsScale(l.CreditAmount, domain.AmountScale) {
			return apperrors.NewInvalidLineAmounts(ref, i+1, l.AccountCode)
		}
	}
	debits, credits := accounting.SumDraftLines(lines)
	if !debits.Equal(credits) {
		return apperrors.NewTrialBalanceMismatch(ref, debits, credits)
	}
	return nil
}

// checkDraftWidths rejects text that would not fit the journal columns.
func checkDraftWidths(ref string, draft domain.JournalEntryDraft) error {
	if utf8.RuneCountInString(ref) > domain.MaxReferenceLength {
		return fmt.Errorf("%w: reference number exceeds %d characters", apperrors.ErrValidation, domain.MaxReferenceLength)
	}
	if utf8.RuneCountInString(strings.TrimSpace(draft.Description)) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: journal description exceeds %d characters", apperrors.ErrValidation, domain.MaxDescriptionLength)
	}
	for i, l := range draft.Lines {
		if m := nonBlank(l.MemberID); m != nil && utf8.RuneCountInString(*m) > domain.MaxMemberIDLength {
			return fmt.Errorf("%w: line %d member ID exceeds %d characters", apperrors.ErrValidation, i+1, domain.MaxMemberIDLength)
		}
		if utf8.RuneCountInString(l.Description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: line %d description exceeds %d characters", apperrors.ErrValidation, i+1, domain.MaxDescriptionLength)
		}
	}
	return nil
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func (s *journalService) GetEntry(ctx context.Context, reference string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("reference", reference))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntriesByStatus(ctx context.Context, status domain.JournalEntryStatus) ([]domain.JournalEntry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown journal status %q", apperrors.ErrValidation, status)
	}
	entries, err := s.journalRepo.ListEntriesByStatus(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries by status", slog.String("status", string(status)))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

func (s *journalService) ListEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	from, to = truncateToDate(from), truncateToDate(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", apperrors.ErrValidation,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	entries, err := s.journalRepo.ListEntriesByDateRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries by date",
			slog.Time("from", from), slog.Time("to", to))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

func (s *journalService) ListLinesByMember(ctx context.Context, memberID string) ([]domain.LedgerLine, error) {
	lines, err := s.journalRepo.ListLinesByMember(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list member lines", slog.String("member_id", memberID))
		return nil, err
	}
	if lines == nil {
		return []domain.LedgerLine{}, nil
	}
	return lines, nil
}

func (s *journalService) ListLinesByAccount(ctx context.Context, code string) ([]domain.LedgerLine, error) {
	resolved, err := s.accounts.FindAccountsByCodes(ctx, []string{code})
	if err != nil {
		return nil, err
	}
	if _, ok := resolved[code]; !ok {
		return nil, apperrors.NewAccountNotFound(code)
	}
	lines, err := s.journalRepo.ListLinesByAccountCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account lines", slog.String("code", code))
		return nil, err
	}
	if lines == nil {
		return []domain.LedgerLine{}, nil
	}
	return lines, nil
}

// GetTrialBalance summarises posted lines per account up to and including asOf.
func (s *journalService) GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	asOf = truncateToDate(asOf)
	rows, err := s.journalRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trial balance", slog.Time("as_of", asOf))
		return nil, fmt.Errorf("failed to load trial balance: %w", err)
	}

	report := &domain.TrialBalanceReport{
		AsOf:         asOf,
		Rows:         make([]domain.TrialBalanceRow, 0, len(rows)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, row := range rows {
		net, err := accounting.NormalBalance(row.AccountType, row.Debit, row.Credit)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", row.AccountCode, err)
		}
		row.NetBalance = net
		report.Rows = append(report.Rows, row)
		report.TotalDebits = report.TotalDebits.Add(row.Debit)
		report.TotalCredits = report.TotalCredits.Add(row.Credit)
	}
	report.IsBalanced = report.TotalDebits.Equal(report.TotalCredits)

	if !report.IsBalanced {
		s.GetLogger(ctx).Error("Trial balance does not balance",
			slog.String("debits", report.TotalDebits.StringFixed(domain.AmountScale)),
			slog.String("credits", report.TotalCredits.StringFixed(domain.AmountScale)))
	}
	return report, nil
}
