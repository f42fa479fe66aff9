package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entries and their lines
type JournalReader interface {
	// ExistsByReference reports whether an entry with the reference number has been committed.
	ExistsByReference(ctx context.Context, reference string) (bool, error)

	// FindEntryByReference retrieves an entry and its lines in line order.
	FindEntryByReference(ctx context.Context, reference string) (*domain.JournalEntry, error)

	// ListEntriesByStatus retrieves entries with the status, lines included.
	ListEntriesByStatus(ctx context.Context, status domain.JournalEntryStatus) ([]domain.JournalEntry, error)

	// ListEntriesByDateRange retrieves entries whose transaction date lies in [from, to].
	ListEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)

	// ListLinesByMember retrieves posted lines annotated with the member.
	ListLinesByMember(ctx context.Context, memberID string) ([]domain.LedgerLine, error)

	// ListLinesByAccountCode retrieves posted lines against the account.
	ListLinesByAccountCode(ctx context.Context, code string) ([]domain.LedgerLine, error)

	// GetTrialBalanceData aggregates posted lines per account up to and including asOf.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
}

// JournalWriter defines write operations for journal entries. There is no update or delete.
type JournalWriter interface {
	// SaveEntry persists the entry header and all of its lines in one transaction.
	// A reference number collision returns apperrors.ErrDuplicateReference.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
