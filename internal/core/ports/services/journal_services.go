package services

import (
	"context"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
)

// JournalPosterSvc is the ledger posting engine.
type JournalPosterSvc interface {
	// PostEntry validates a draft and commits it as an immutable POSTED entry.
	PostEntry(ctx context.Context, draft domain.JournalEntryDraft, creatorUserID string) (*domain.JournalEntry, error)
}

// JournalReaderSvc defines read operations for posted entries
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, reference string) (*domain.JournalEntry, error)
	ListEntriesByStatus(ctx context.Context, status domain.JournalEntryStatus) ([]domain.JournalEntry, error)
	// ListEntriesByDateRange includes both boundary dates.
	ListEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)
}

// LedgerReportingSvc defines statement and report reads over posted lines
type LedgerReportingSvc interface {
	ListLinesByMember(ctx context.Context, memberID string) ([]domain.LedgerLine, error)
	ListLinesByAccount(ctx context.Context, code string) ([]domain.LedgerLine, error)
	GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalPosterSvc
	JournalReaderSvc
	LedgerReportingSvc
}
