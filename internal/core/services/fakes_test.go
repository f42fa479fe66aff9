package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
)

// memJournalRepo enforces the reference uniqueness constraint in memory so that
// race and replay behaviour can be exercised without a database.
type memJournalRepo struct {
	mu      sync.Mutex
	entries map[string]domain.JournalEntry
	// beforeSave, when set, runs after the pre-check and before the insert.
	beforeSave func()
}

func newMemJournalRepo() *memJournalRepo {
	return &memJournalRepo{entries: map[string]domain.JournalEntry{}}
}

func (r *memJournalRepo) ExistsByReference(_ context.Context, reference string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[reference]
	return ok, nil
}

func (r *memJournalRepo) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	if r.beforeSave != nil {
		r.beforeSave()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ReferenceNumber]; ok {
		return apperrors.NewDuplicateReference(entry.ReferenceNumber)
	}
	r.entries[entry.ReferenceNumber] = entry
	return nil
}

func (r *memJournalRepo) FindEntryByReference(_ context.Context, reference string) (*domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[reference]
	if !ok {
		return nil, apperrors.NewNotFound(reference)
	}
	return &e, nil
}

func (r *memJournalRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *memJournalRepo) ListEntriesByStatus(context.Context, domain.JournalEntryStatus) ([]domain.JournalEntry, error) {
	return nil, nil
}

func (r *memJournalRepo) ListEntriesByDateRange(context.Context, time.Time, time.Time) ([]domain.JournalEntry, error) {
	return nil, nil
}

func (r *memJournalRepo) ListLinesByMember(context.Context, string) ([]domain.LedgerLine, error) {
	return nil, nil
}

func (r *memJournalRepo) ListLinesByAccountCode(context.Context, string) ([]domain.LedgerLine, error) {
	return nil, nil
}

func (r *memJournalRepo) GetTrialBalanceData(context.Context, time.Time) ([]domain.TrialBalanceRow, error) {
	return nil, nil
}

// staticDirectory is a fixed chart of accounts.
type staticDirectory map[string]domain.Account

func (d staticDirectory) FindAccountsByCodes(_ context.Context, codes []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(codes))
	for _, c := range codes {
		if a, ok := d[c]; ok {
			out[c] = a
		}
	}
	return out, nil
}

func (d staticDirectory) IsActive(_ context.Context, code string) (bool, error) {
	a, ok := d[code]
	return ok && a.IsActive, nil
}

func seededDirectory() staticDirectory {
	return staticDirectory{
		"1120": activeAccount("1120", "M-Pesa Clearing", domain.Asset),
		"2210": activeAccount("2210", "Member BOSA Savings", domain.Liability),
		"4210": activeAccount("4210", "Registration Fees Income", domain.Income),
	}
}
